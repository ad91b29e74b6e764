package services

import (
	"errors"
	"time"

	"dentalai_backend/internal/apperrors"
	"dentalai_backend/internal/models"
	"dentalai_backend/internal/repositories"
	"dentalai_backend/internal/services/dto"
)

type AppointmentService interface {
	Create(dentistID string, req *dto.CreateAppointmentRequest) (*models.Appointment, error)
	Get(dentistID, appointmentID string) (*models.Appointment, error)
	Schedule(dentistID string, from, to time.Time) ([]models.Appointment, error)
	ListByPatient(patientID string, page, pageSize int) ([]models.Appointment, int64, error)
	Update(dentistID, appointmentID string, req *dto.UpdateAppointmentRequest) (*models.Appointment, error)
	UpdateStatus(dentistID, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error)
	Delete(dentistID, appointmentID string) error
}

type AppointmentServiceImpl struct {
	appointmentRepo repositories.AppointmentRepository
	patientRepo     repositories.PatientRepository
}

func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	patientRepo repositories.PatientRepository,
) AppointmentService {
	return &AppointmentServiceImpl{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
}

func (s *AppointmentServiceImpl) Create(dentistID string, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if _, err := s.patientRepo.FindByID(req.PatientID); err != nil {
		if errors.Is(err, repositories.ErrPatientNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.checkConflicts(dentistID, req.StartsAt, req.EndsAt, ""); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		PatientID: req.PatientID,
		DentistID: dentistID,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Type:      req.Type,
		Status:    models.AppointmentStatusScheduled,
		Reason:    req.Reason,
	}

	if err := s.appointmentRepo.Create(appt); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return appt, nil
}

func (s *AppointmentServiceImpl) Get(dentistID, appointmentID string) (*models.Appointment, error) {
	return s.findOwned(dentistID, appointmentID)
}

func (s *AppointmentServiceImpl) Schedule(dentistID string, from, to time.Time) ([]models.Appointment, error) {
	if !to.After(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	appts, err := s.appointmentRepo.FindByDentistAndRange(dentistID, from, to)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return appts, nil
}

func (s *AppointmentServiceImpl) ListByPatient(patientID string, page, pageSize int) ([]models.Appointment, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	appts, total, err := s.appointmentRepo.FindByPatient(patientID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return appts, total, nil
}

func (s *AppointmentServiceImpl) Update(dentistID, appointmentID string, req *dto.UpdateAppointmentRequest) (*models.Appointment, error) {
	appt, err := s.findOwned(dentistID, appointmentID)
	if err != nil {
		return nil, err
	}

	if req.StartsAt != nil {
		appt.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		appt.EndsAt = *req.EndsAt
	}
	if req.Type != nil {
		appt.Type = *req.Type
	}
	if req.Reason != nil {
		appt.Reason = *req.Reason
	}

	if !appt.EndsAt.After(appt.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if req.StartsAt != nil || req.EndsAt != nil {
		if err := s.checkConflicts(appt.DentistID, appt.StartsAt, appt.EndsAt, appt.ID); err != nil {
			return nil, err
		}
		// A rescheduled appointment goes back to needing confirmation.
		appt.ReminderSentAt = nil
		if appt.Status == models.AppointmentStatusConfirmed {
			appt.Status = models.AppointmentStatusScheduled
		}
	}

	if err := s.appointmentRepo.Update(appt); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return appt, nil
}

func (s *AppointmentServiceImpl) UpdateStatus(dentistID, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error) {
	appt, err := s.findOwned(dentistID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := s.appointmentRepo.UpdateStatus(appointmentID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	appt.Status = status
	return appt, nil
}

func (s *AppointmentServiceImpl) Delete(dentistID, appointmentID string) error {
	if _, err := s.findOwned(dentistID, appointmentID); err != nil {
		return err
	}

	if err := s.appointmentRepo.Delete(appointmentID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// checkConflicts rejects a slot that overlaps any active appointment
// of the same dentist.
func (s *AppointmentServiceImpl) checkConflicts(dentistID string, startsAt, endsAt time.Time, excludeID string) error {
	overlapping, err := s.appointmentRepo.FindOverlapping(dentistID, startsAt, endsAt, excludeID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if len(overlapping) > 0 {
		return apperrors.ErrAppointmentConflict
	}
	return nil
}

func (s *AppointmentServiceImpl) findOwned(dentistID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.appointmentRepo.FindByID(appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if dentistID != "" && appt.DentistID != dentistID {
		return nil, apperrors.ErrAppointmentNotFound
	}
	return appt, nil
}
