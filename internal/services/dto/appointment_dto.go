package dto

import (
	"time"

	"dentalai_backend/internal/models"
)

type CreateAppointmentRequest struct {
	PatientID string                 `json:"patient_id" validate:"required,uuid"`
	StartsAt  time.Time              `json:"starts_at" validate:"required"`
	EndsAt    time.Time              `json:"ends_at" validate:"required"`
	Type      models.AppointmentType `json:"type" validate:"required,is-appointment-type"`
	Reason    string                 `json:"reason,omitempty"`
}

type UpdateAppointmentRequest struct {
	StartsAt *time.Time              `json:"starts_at,omitempty"`
	EndsAt   *time.Time              `json:"ends_at,omitempty"`
	Type     *models.AppointmentType `json:"type,omitempty" validate:"omitempty,is-appointment-type"`
	Reason   *string                 `json:"reason,omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" validate:"required,is-appointment-status"`
}

type ScheduleRequest struct {
	From time.Time `form:"from" time_format:"2006-01-02" validate:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" validate:"required"`
}
