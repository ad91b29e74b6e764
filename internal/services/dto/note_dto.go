package dto

import (
	"time"

	"dentalai_backend/internal/models"
)

type CreateNoteRequest struct {
	PatientID      string     `json:"patient_id" validate:"required,uuid"`
	VisitDate      *time.Time `json:"visit_date,omitempty"`
	ChiefComplaint string     `json:"chief_complaint,omitempty"`
	Subjective     string     `json:"subjective,omitempty"`
	Objective      string     `json:"objective,omitempty"`
	Assessment     string     `json:"assessment,omitempty"`
	Plan           string     `json:"plan,omitempty"`
}

type UpdateNoteRequest struct {
	ChiefComplaint *string `json:"chief_complaint,omitempty"`
	Subjective     *string `json:"subjective,omitempty"`
	Objective      *string `json:"objective,omitempty"`
	Assessment     *string `json:"assessment,omitempty"`
	Plan           *string `json:"plan,omitempty"`
}

// DraftNoteRequest asks the AI provider to draft a SOAP note from a
// visit transcript. The draft is persisted with status "draft".
type DraftNoteRequest struct {
	PatientID      string `json:"patient_id" validate:"required,uuid"`
	Transcript     string `json:"transcript" validate:"required"`
	ChiefComplaint string `json:"chief_complaint,omitempty"`
}

type NoteResponse struct {
	Note           models.ClinicalNote    `json:"note"`
	SuggestedCodes []models.SuggestedCode `json:"suggested_codes"`
}

func NewNoteResponse(n *models.ClinicalNote) NoteResponse {
	return NoteResponse{
		Note:           *n,
		SuggestedCodes: n.GetSuggestedCodes(),
	}
}
