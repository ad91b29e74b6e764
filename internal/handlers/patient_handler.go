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

type PatientHandler struct {
	*BaseHandler
	patientService services.PatientService
}

func NewPatientHandler(base *BaseHandler, patientService services.PatientService) *PatientHandler {
	return &PatientHandler{BaseHandler: base, patientService: patientService}
}

func (h *PatientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	patients := rg.Group("/patients", middleware.AuthMiddleware())
	{
		patients.POST("", h.Create)
		patients.GET("", h.List)
		patients.GET("/:id", h.Get)
		patients.PATCH("/:id", h.Update)
		patients.DELETE("/:id", h.Delete)
	}
}

// chartOwner returns the dentist whose charts are being accessed.
// Admins see every chart; dentists and assistants see their own.
func chartOwner(c *gin.Context) string {
	if middleware.GetRole(c) == models.UserRoleAdmin {
		return ""
	}
	return middleware.GetUserID(c)
}

// Create godoc
// @Summary      Create a patient chart
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePatientRequest true "Patient data"
// @Success      201 {object} models.Patient
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /patients [post]
func (h *PatientHandler) Create(c *gin.Context) {
	var req dto.CreatePatientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	patient, err := h.patientService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// List godoc
// @Summary      List patients with search and pagination
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Name or phone search"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.PatientListResponse
// @Router       /patients [get]
func (h *PatientHandler) List(c *gin.Context) {
	var req dto.ListPatientsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.patientService.List(chartOwner(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Fetch one patient chart
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Patient ID"
// @Success      200 {object} models.Patient
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /patients/{id} [get]
func (h *PatientHandler) Get(c *gin.Context) {
	patient, err := h.patientService.Get(chartOwner(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

// Update godoc
// @Summary      Update a patient chart
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Patient ID"
// @Param        request body dto.UpdatePatientRequest true "Fields to update"
// @Success      200 {object} models.Patient
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /patients/{id} [patch]
func (h *PatientHandler) Update(c *gin.Context) {
	var req dto.UpdatePatientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	patient, err := h.patientService.Update(chartOwner(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

// Delete godoc
// @Summary      Soft-delete a patient chart
// @Tags         patients
// @Security     BearerAuth
// @Param        id path string true "Patient ID"
// @Success      204 "No Content"
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /patients/{id} [delete]
func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.patientService.Delete(chartOwner(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
