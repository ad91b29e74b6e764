package repositories

import (
	"errors"
	"time"

	"dentalai_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// Statuses that occupy the calendar for conflict checks.
var activeStatuses = []models.AppointmentStatus{
	models.AppointmentStatusScheduled,
	models.AppointmentStatusConfirmed,
}

type AppointmentRepository interface {
	FindByID(id string) (*models.Appointment, error)
	Create(appt *models.Appointment) error
	Update(appt *models.Appointment) error
	Delete(id string) error
	FindByDentistAndRange(dentistID string, from, to time.Time) ([]models.Appointment, error)
	FindByPatient(patientID string, limit, offset int) ([]models.Appointment, int64, error)
	FindOverlapping(dentistID string, startsAt, endsAt time.Time, excludeID string) ([]models.Appointment, error)
	UpdateStatus(id string, status models.AppointmentStatus) error
	FindDueReminders(windowStart, windowEnd time.Time) ([]models.Appointment, error)
	MarkReminderSent(id string, sentAt time.Time) error
}

type AppointmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &AppointmentRepositoryImpl{db: db}
}

func (r *AppointmentRepositoryImpl) FindByID(id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.Preload("Patient").First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (r *AppointmentRepositoryImpl) Create(appt *models.Appointment) error {
	return r.db.Create(appt).Error
}

func (r *AppointmentRepositoryImpl) Update(appt *models.Appointment) error {
	return r.db.Save(appt).Error
}

func (r *AppointmentRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepositoryImpl) FindByDentistAndRange(dentistID string, from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Preload("Patient").
		Where("dentist_id = ? AND starts_at >= ? AND starts_at < ?", dentistID, from, to).
		Order("starts_at").
		Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepositoryImpl) FindByPatient(patientID string, limit, offset int) ([]models.Appointment, int64, error) {
	query := r.db.Model(&models.Appointment{}).Where("patient_id = ?", patientID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appts []models.Appointment
	err := query.Order("starts_at DESC").Limit(limit).Offset(offset).Find(&appts).Error
	return appts, total, err
}

func (r *AppointmentRepositoryImpl) FindOverlapping(dentistID string, startsAt, endsAt time.Time, excludeID string) ([]models.Appointment, error) {
	query := r.db.
		Where("dentist_id = ?", dentistID).
		Where("status IN ?", activeStatuses).
		Where("starts_at < ? AND ? < ends_at", endsAt, startsAt)

	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var appts []models.Appointment
	err := query.Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepositoryImpl) UpdateStatus(id string, status models.AppointmentStatus) error {
	result := r.db.Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepositoryImpl) FindDueReminders(windowStart, windowEnd time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Preload("Patient").Preload("Dentist").
		Where("status IN ?", activeStatuses).
		Where("starts_at >= ? AND starts_at < ?", windowStart, windowEnd).
		Where("reminder_sent_at IS NULL").
		Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepositoryImpl) MarkReminderSent(id string, sentAt time.Time) error {
	return r.db.Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("reminder_sent_at", sentAt).Error
}
