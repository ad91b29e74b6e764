package models

import "time"

type Appointment struct {
	BaseModel
	PatientID string `gorm:"type:uuid;not null;index" json:"patient_id"`
	DentistID string `gorm:"type:uuid;not null;index" json:"dentist_id"`

	StartsAt time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt   time.Time `gorm:"not null" json:"ends_at"`

	Type   AppointmentType   `gorm:"type:varchar(30);not null" json:"type"`
	Status AppointmentStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	Reason string            `json:"reason,omitempty"`

	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`

	// Relations
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist *User    `gorm:"foreignKey:DentistID" json:"-"`
}

// Overlaps reports whether two appointments share any time.
func (a *Appointment) Overlaps(startsAt, endsAt time.Time) bool {
	return a.StartsAt.Before(endsAt) && startsAt.Before(a.EndsAt)
}

// IsActive reports whether the appointment still occupies the calendar.
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusConfirmed
}
