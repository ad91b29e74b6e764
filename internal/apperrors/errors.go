package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an application error class.
type ErrorCode string

// AppError is the application error carried from services up to the
// HTTP layer. HTTPCode decides the response status, Err keeps the
// wrapped cause out of the client payload.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	// Auth
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrUserNotVerified    = New(CodeUserNotVerified, "User not verified", http.StatusForbidden)
	ErrUserSuspended      = New(CodeUserSuspended, "User account suspended", http.StatusForbidden)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)

	// Patients
	ErrPatientNotFound = New(CodePatientNotFound, "Patient not found", http.StatusNotFound)

	// Clinical notes
	ErrNoteNotFound    = New(CodeNoteNotFound, "Clinical note not found", http.StatusNotFound)
	ErrNoteSigned      = New(CodeNoteSigned, "Signed notes cannot be modified", http.StatusConflict)
	ErrEmptyTranscript = New(CodeEmptyTranscript, "Transcript is empty", http.StatusBadRequest)

	// Appointments
	ErrAppointmentNotFound = New(CodeAppointmentNotFound, "Appointment not found", http.StatusNotFound)
	ErrAppointmentConflict = New(CodeAppointmentConflict, "Appointment overlaps an existing appointment", http.StatusConflict)
	ErrInvalidTimeRange    = New(CodeInvalidTimeRange, "Appointment end must be after start", http.StatusBadRequest)

	// Recordings
	ErrRecordingNotFound = New(CodeRecordingNotFound, "Recording not found", http.StatusNotFound)
	ErrFileTooLarge      = New(CodeFileTooLarge, "File too large", http.StatusBadRequest)
	ErrInvalidFileType   = New(CodeInvalidFileType, "Invalid file type", http.StatusBadRequest)

	// AI
	ErrProviderNotConfigured    = New(CodeProviderNotConfigured, "AI provider is not configured", http.StatusServiceUnavailable)
	ErrTranscriptionUnsupported = New(CodeTranscriptionUnsupported, "Configured AI provider does not support transcription", http.StatusBadRequest)
)

// ValidationError builds a validation failure with field details.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// InvalidArgument builds a bad-request error for a malformed argument.
func InvalidArgument(message string) *AppError {
	return New(CodeInvalidArgument, message, http.StatusBadRequest)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func AIProviderError(err error) *AppError {
	return Wrap(err, CodeAIProviderError, "AI provider request failed", http.StatusBadGateway)
}

func TranscriptionError(err error) *AppError {
	return Wrap(err, CodeTranscriptionFailed, "Transcription failed", http.StatusBadGateway)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewConflictError(message string) *AppError {
	return New(CodeAppointmentConflict, message, http.StatusConflict)
}

func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message, http.StatusInternalServerError)
}
