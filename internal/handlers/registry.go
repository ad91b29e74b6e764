package handlers

import (
	"dentalai_backend/internal/services"
	"dentalai_backend/internal/validator"
)

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	Auth        *AuthHandler
	Patient     *PatientHandler
	Note        *NoteHandler
	Appointment *AppointmentHandler
	Recording   *RecordingHandler
	Code        *CodeHandler
}

// NewAppHandlers wires services into handlers with a shared validator.
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:        NewAuthHandler(base, sc.AuthService),
		Patient:     NewPatientHandler(base, sc.PatientService),
		Note:        NewNoteHandler(base, sc.NoteService),
		Appointment: NewAppointmentHandler(base, sc.AppointmentService),
		Recording:   NewRecordingHandler(base, sc.RecordingService),
		Code:        NewCodeHandler(base, sc.CodeService),
	}
}
