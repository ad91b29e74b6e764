package handlers

import (
	"net/http"
	"time"

	"dentalai_backend/internal/apperrors"
	"dentalai_backend/internal/middleware"
	"dentalai_backend/internal/services"
	"dentalai_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	*BaseHandler
	appointmentService services.AppointmentService
}

func NewAppointmentHandler(base *BaseHandler, appointmentService services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{BaseHandler: base, appointmentService: appointmentService}
}

func (h *AppointmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	appts := rg.Group("/appointments", middleware.AuthMiddleware())
	{
		appts.POST("", h.Create)
		appts.GET("", h.Schedule)
		appts.GET("/:id", h.Get)
		appts.PATCH("/:id", h.Update)
		appts.PATCH("/:id/status", h.UpdateStatus)
		appts.DELETE("/:id", h.Delete)
	}

	rg.GET("/patients/:id/appointments", middleware.AuthMiddleware(), h.ListByPatient)
}

// Create godoc
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAppointmentRequest true "Appointment slot"
// @Success      201 {object} models.Appointment
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	appt, err := h.appointmentService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// Schedule godoc
// @Summary      Daily or weekly schedule for the current dentist
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        from query string true "Range start (YYYY-MM-DD)"
// @Param        to query string true "Range end (YYYY-MM-DD)"
// @Success      200 {array} models.Appointment
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) Schedule(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid or missing 'from' date, expected YYYY-MM-DD"))
		return
	}

	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid or missing 'to' date, expected YYYY-MM-DD"))
		return
	}

	// The end date is inclusive.
	appts, err := h.appointmentService.Schedule(middleware.GetUserID(c), from, to.Add(24*time.Hour))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, appts)
}

// Get godoc
// @Summary      Fetch one appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Appointment ID"
// @Success      200 {object} models.Appointment
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	appt, err := h.appointmentService.Get(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// ListByPatient godoc
// @Summary      List a patient's appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Patient ID"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} map[string]interface{}
// @Router       /patients/{id}/appointments [get]
func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	page, pageSize := h.Pagination(c)

	appts, total, err := h.appointmentService.ListByPatient(c.Param("id"), page, pageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": appts,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}

// Update godoc
// @Summary      Reschedule or edit an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Appointment ID"
// @Param        request body dto.UpdateAppointmentRequest true "Fields to update"
// @Success      200 {object} models.Appointment
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /appointments/{id} [patch]
func (h *AppointmentHandler) Update(c *gin.Context) {
	var req dto.UpdateAppointmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	appt, err := h.appointmentService.Update(middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// UpdateStatus godoc
// @Summary      Change appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Appointment ID"
// @Param        request body dto.UpdateAppointmentStatusRequest true "New status"
// @Success      200 {object} models.Appointment
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateAppointmentStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	appt, err := h.appointmentService.UpdateStatus(middleware.GetUserID(c), c.Param("id"), req.Status)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// Delete godoc
// @Summary      Remove an appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id path string true "Appointment ID"
// @Success      204 "No Content"
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.appointmentService.Delete(middleware.GetUserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
