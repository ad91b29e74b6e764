package models

import (
	"time"

	"github.com/lib/pq"
)

type Patient struct {
	BaseModelWithDeleted
	DentistID string `gorm:"type:uuid;not null;index" json:"dentist_id"`

	FirstName   string     `gorm:"not null" json:"first_name"`
	LastName    string     `gorm:"not null" json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Phone       string     `gorm:"index" json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`

	Allergies     pq.StringArray `gorm:"type:text[]" json:"allergies" swaggerignore:"true"`
	Medications   pq.StringArray `gorm:"type:text[]" json:"medications" swaggerignore:"true"`
	MedicalAlerts string         `json:"medical_alerts,omitempty"`
	InsuranceID   string         `json:"insurance_id,omitempty"`
	LastVisitAt   *time.Time     `json:"last_visit_at,omitempty"`

	// Relations
	Notes        []ClinicalNote `gorm:"foreignKey:PatientID" json:"-"`
	Appointments []Appointment  `gorm:"foreignKey:PatientID" json:"-"`
}

// FullName returns the display name used in schedules and reminders.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
