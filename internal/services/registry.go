package services

import (
	"dentalai_backend/internal/ai"
	"dentalai_backend/internal/email"
	"dentalai_backend/internal/imageprocessor"
	"dentalai_backend/internal/repositories"
	"dentalai_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService        AuthService
	PatientService     PatientService
	NoteService        NoteService
	AppointmentService AppointmentService
	RecordingService   RecordingService
	CodeService        CodeService
	EmailProvider      email.Provider
}

// NewServiceContainer wires repositories into services.
func NewServiceContainer(
	db *gorm.DB,
	store storage.Storage,
	emailProvider email.Provider,
	aiProvider ai.Provider,
	notifier Notifier,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	patientRepo := repositories.NewPatientRepository(db)
	noteRepo := repositories.NewNoteRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	recordingRepo := repositories.NewRecordingRepository(db)

	images := imageprocessor.NewProcessor(85)

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, emailProvider),
		PatientService:     NewPatientService(patientRepo),
		NoteService:        NewNoteService(noteRepo, patientRepo, aiProvider, notifier),
		AppointmentService: NewAppointmentService(appointmentRepo, patientRepo),
		RecordingService:   NewRecordingService(recordingRepo, patientRepo, store, images, aiProvider, notifier),
		CodeService:        NewCodeService(),
		EmailProvider:      emailProvider,
	}
}
