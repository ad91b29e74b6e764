package dto

import (
	"time"

	"dentalai_backend/internal/models"
)

type CreatePatientRequest struct {
	FirstName     string     `json:"first_name" validate:"required"`
	LastName      string     `json:"last_name" validate:"required"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty" validate:"omitempty,email"`
	Allergies     []string   `json:"allergies,omitempty"`
	Medications   []string   `json:"medications,omitempty"`
	MedicalAlerts string     `json:"medical_alerts,omitempty"`
	InsuranceID   string     `json:"insurance_id,omitempty"`
}

type UpdatePatientRequest struct {
	FirstName     *string    `json:"first_name,omitempty"`
	LastName      *string    `json:"last_name,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	Allergies     []string   `json:"allergies,omitempty"`
	Medications   []string   `json:"medications,omitempty"`
	MedicalAlerts *string    `json:"medical_alerts,omitempty"`
	InsuranceID   *string    `json:"insurance_id,omitempty"`
}

type ListPatientsRequest struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type PatientListResponse struct {
	Patients []models.Patient `json:"patients"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
