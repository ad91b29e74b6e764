package apperrors

// Error codes returned to clients in the "code" field.
const (
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"
	CodeNotFound         ErrorCode = "NOT_FOUND"

	// Auth
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Users
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotVerified    ErrorCode = "USER_NOT_VERIFIED"
	CodeUserSuspended      ErrorCode = "USER_SUSPENDED"
	CodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole    ErrorCode = "INVALID_USER_ROLE"

	// Patients
	CodePatientNotFound ErrorCode = "PATIENT_NOT_FOUND"

	// Clinical notes
	CodeNoteNotFound    ErrorCode = "NOTE_NOT_FOUND"
	CodeNoteSigned      ErrorCode = "NOTE_SIGNED"
	CodeEmptyTranscript ErrorCode = "EMPTY_TRANSCRIPT"

	// Appointments
	CodeAppointmentNotFound ErrorCode = "APPOINTMENT_NOT_FOUND"
	CodeAppointmentConflict ErrorCode = "APPOINTMENT_CONFLICT"
	CodeInvalidTimeRange    ErrorCode = "INVALID_TIME_RANGE"

	// Recordings
	CodeRecordingNotFound ErrorCode = "RECORDING_NOT_FOUND"
	CodeFileTooLarge      ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType   ErrorCode = "INVALID_FILE_TYPE"

	// AI
	CodeAIProviderError          ErrorCode = "AI_PROVIDER_ERROR"
	CodeTranscriptionFailed      ErrorCode = "TRANSCRIPTION_FAILED"
	CodeProviderNotConfigured    ErrorCode = "AI_PROVIDER_NOT_CONFIGURED"
	CodeTranscriptionUnsupported ErrorCode = "TRANSCRIPTION_UNSUPPORTED"
)
