package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// SuggestedCode is one CDT billing suggestion attached to a note.
type SuggestedCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}

type ClinicalNote struct {
	BaseModel
	PatientID string `gorm:"type:uuid;not null;index" json:"patient_id"`
	AuthorID  string `gorm:"type:uuid;not null;index" json:"author_id"`

	VisitDate      time.Time `gorm:"not null" json:"visit_date"`
	ChiefComplaint string    `json:"chief_complaint,omitempty"`

	// SOAP sections
	Subjective string `gorm:"type:text" json:"subjective"`
	Objective  string `gorm:"type:text" json:"objective"`
	Assessment string `gorm:"type:text" json:"assessment"`
	Plan       string `gorm:"type:text" json:"plan"`

	// Provenance of AI-drafted notes
	Transcript string `gorm:"type:text" json:"transcript,omitempty"`
	AIProvider string `json:"ai_provider,omitempty"`
	AIModel    string `json:"ai_model,omitempty"`

	SuggestedCodes datatypes.JSON `json:"suggested_codes,omitempty" swaggerignore:"true"`

	Status   NoteStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
	SignedAt *time.Time `json:"signed_at,omitempty"`
}

// GetSuggestedCodes decodes the stored suggestions.
func (n *ClinicalNote) GetSuggestedCodes() []SuggestedCode {
	var codes []SuggestedCode
	if len(n.SuggestedCodes) > 0 {
		json.Unmarshal(n.SuggestedCodes, &codes)
	}
	return codes
}

// SetSuggestedCodes encodes suggestions into the JSON column.
func (n *ClinicalNote) SetSuggestedCodes(codes []SuggestedCode) error {
	data, err := json.Marshal(codes)
	if err != nil {
		return err
	}
	n.SuggestedCodes = datatypes.JSON(data)
	return nil
}

// IsSigned reports whether the note has been signed and is immutable.
func (n *ClinicalNote) IsSigned() bool {
	return n.Status == NoteStatusSigned
}
