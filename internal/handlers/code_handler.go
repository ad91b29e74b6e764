package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"dentalai_backend/internal/apperrors"
	"dentalai_backend/internal/middleware"
	"dentalai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CodeHandler struct {
	*BaseHandler
	codeService services.CodeService
}

func NewCodeHandler(base *BaseHandler, codeService services.CodeService) *CodeHandler {
	return &CodeHandler{BaseHandler: base, codeService: codeService}
}

func (h *CodeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	codes := rg.Group("/codes", middleware.AuthMiddleware())
	{
		codes.GET("", h.Table)
		codes.GET("/suggest", h.Suggest)
	}
}

// Suggest godoc
// @Summary      Suggest CDT billing codes for a procedure description
// @Description  Scores the description against the CDT reference table
// @Description  by keyword overlap and returns matches best first.
// @Tags         codes
// @Produce      json
// @Security     BearerAuth
// @Param        description query string true "Free-text procedure description"
// @Param        limit query int false "Maximum number of suggestions"
// @Success      200 {object} dto.CodeSuggestionsResponse
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /codes/suggest [get]
func (h *CodeHandler) Suggest(c *gin.Context) {
	description := c.Query("description")
	if strings.TrimSpace(description) == "" {
		apperrors.HandleError(c, apperrors.InvalidArgument("Missing or blank 'description' query parameter"))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			apperrors.HandleError(c, apperrors.InvalidArgument("'limit' must be a positive integer"))
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, h.codeService.Suggest(description, limit))
}

// Table godoc
// @Summary      Full CDT reference table
// @Tags         codes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} cdt.CodeEntry
// @Router       /codes [get]
func (h *CodeHandler) Table(c *gin.Context) {
	c.JSON(http.StatusOK, h.codeService.Table())
}
