package handlers

import (
	"net/http"

	"dentalai_backend/internal/apperrors"
	"dentalai_backend/internal/middleware"
	"dentalai_backend/internal/models"
	"dentalai_backend/internal/services"
	"dentalai_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	*BaseHandler
	noteService services.NoteService
}

func NewNoteHandler(base *BaseHandler, noteService services.NoteService) *NoteHandler {
	return &NoteHandler{BaseHandler: base, noteService: noteService}
}

func (h *NoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/notes", middleware.AuthMiddleware())
	{
		notes.POST("", h.Create)
		notes.POST("/draft", h.Draft)
		notes.GET("/:id", h.Get)
		notes.PATCH("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
		notes.POST("/:id/finalize", h.Finalize)

		// Only dentists sign; signing locks the note.
		notes.POST("/:id/sign", middleware.RequireRoles(models.UserRoleDentist), h.Sign)
	}

	rg.GET("/patients/:id/notes", middleware.AuthMiddleware(), h.ListByPatient)
}

// Create godoc
// @Summary      Create a clinical note manually
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateNoteRequest true "Note content"
// @Success      201 {object} dto.NoteResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	var req dto.CreateNoteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	note, err := h.noteService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewNoteResponse(note))
}

// Draft godoc
// @Summary      Draft a SOAP note from a visit transcript
// @Description  Sends the transcript to the configured AI provider,
// @Description  parses the reply into SOAP sections and attaches CDT
// @Description  billing code suggestions.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.DraftNoteRequest true "Transcript"
// @Success      201 {object} dto.NoteResponse
// @Failure      400 {object} apperrors.ErrorResponse
// @Failure      502 {object} apperrors.ErrorResponse
// @Router       /notes/draft [post]
func (h *NoteHandler) Draft(c *gin.Context) {
	var req dto.DraftNoteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	note, err := h.noteService.Draft(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewNoteResponse(note))
}

// Get godoc
// @Summary      Fetch one clinical note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note ID"
// @Success      200 {object} dto.NoteResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.noteService.Get(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewNoteResponse(note))
}

// ListByPatient godoc
// @Summary      List a patient's clinical notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Patient ID"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /patients/{id}/notes [get]
func (h *NoteHandler) ListByPatient(c *gin.Context) {
	page, pageSize := h.Pagination(c)

	notes, total, err := h.noteService.ListByPatient(middleware.GetUserID(c), c.Param("id"), page, pageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes":     notes,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Update godoc
// @Summary      Edit an unsigned note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note ID"
// @Param        request body dto.UpdateNoteRequest true "Fields to update"
// @Success      200 {object} dto.NoteResponse
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /notes/{id} [patch]
func (h *NoteHandler) Update(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	note, err := h.noteService.Update(middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewNoteResponse(note))
}

// Delete godoc
// @Summary      Delete an unsigned note
// @Tags         notes
// @Security     BearerAuth
// @Param        id path string true "Note ID"
// @Success      204 "No Content"
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.noteService.Delete(middleware.GetUserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Finalize godoc
// @Summary      Mark a draft note as final
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note ID"
// @Success      200 {object} dto.NoteResponse
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /notes/{id}/finalize [post]
func (h *NoteHandler) Finalize(c *gin.Context) {
	note, err := h.noteService.Finalize(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewNoteResponse(note))
}

// Sign godoc
// @Summary      Sign a note, locking it permanently
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note ID"
// @Success      200 {object} dto.NoteResponse
// @Failure      403 {object} apperrors.ErrorResponse
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /notes/{id}/sign [post]
func (h *NoteHandler) Sign(c *gin.Context) {
	note, err := h.noteService.Sign(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewNoteResponse(note))
}
