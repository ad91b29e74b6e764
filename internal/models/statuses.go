package models

type UserStatus string
type UserRole string
type NoteStatus string
type AppointmentStatus string
type AppointmentType string
type RecordingKind string
type TranscriptionStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleDentist   UserRole = "dentist"
	UserRoleAssistant UserRole = "assistant"
	UserRoleAdmin     UserRole = "admin"

	NoteStatusDraft  NoteStatus = "draft"
	NoteStatusFinal  NoteStatus = "final"
	NoteStatusSigned NoteStatus = "signed"

	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"

	AppointmentTypeCheckup    AppointmentType = "checkup"
	AppointmentTypeCleaning   AppointmentType = "cleaning"
	AppointmentTypeFilling    AppointmentType = "filling"
	AppointmentTypeRootCanal  AppointmentType = "root_canal"
	AppointmentTypeExtraction AppointmentType = "extraction"
	AppointmentTypeConsult    AppointmentType = "consultation"
	AppointmentTypeEmergency  AppointmentType = "emergency"

	RecordingKindAudio RecordingKind = "audio"
	RecordingKindImage RecordingKind = "image"

	TranscriptionStatusPending    TranscriptionStatus = "pending"
	TranscriptionStatusProcessing TranscriptionStatus = "processing"
	TranscriptionStatusCompleted  TranscriptionStatus = "completed"
	TranscriptionStatusFailed     TranscriptionStatus = "failed"
)
