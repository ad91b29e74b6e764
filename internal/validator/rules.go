package validator

import (
	"log"
	"regexp"
	"strconv"

	"dentalai_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var cdtCodeRe = regexp.MustCompile(`^D\d{4}$`)

// registerCustomRules installs the clinic validation tags. Registration
// failure is a startup bug, not a runtime condition.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-note-status", validateNoteStatus)
	mustRegister("is-appointment-status", validateAppointmentStatus)
	mustRegister("is-appointment-type", validateAppointmentType)
	mustRegister("is-tooth-number", validateToothNumber)
	mustRegister("is-cdt-code", validateCDTCode)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is 'required's job
	}

	switch models.UserRole(value) {
	case models.UserRoleDentist, models.UserRoleAssistant, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateNoteStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.NoteStatus(value) {
	case models.NoteStatusDraft, models.NoteStatusFinal, models.NoteStatusSigned:
		return true
	default:
		return false
	}
}

func validateAppointmentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.AppointmentStatus(value) {
	case models.AppointmentStatusScheduled, models.AppointmentStatusConfirmed,
		models.AppointmentStatusCompleted, models.AppointmentStatusCancelled,
		models.AppointmentStatusNoShow:
		return true
	default:
		return false
	}
}

func validateAppointmentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.AppointmentType(value) {
	case models.AppointmentTypeCheckup, models.AppointmentTypeCleaning,
		models.AppointmentTypeFilling, models.AppointmentTypeRootCanal,
		models.AppointmentTypeExtraction, models.AppointmentTypeConsult,
		models.AppointmentTypeEmergency:
		return true
	default:
		return false
	}
}

// validateToothNumber accepts universal numbering for permanent teeth.
func validateToothNumber(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 32
}

func validateCDTCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return cdtCodeRe.MatchString(value)
}
