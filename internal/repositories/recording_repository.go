package repositories

import (
	"errors"
	"time"

	"dentalai_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRecordingNotFound = errors.New("recording not found")

type RecordingRepository interface {
	FindByID(id string) (*models.Recording, error)
	Create(rec *models.Recording) error
	Update(rec *models.Recording) error
	Delete(id string) error
	FindByPatient(patientID string, limit, offset int) ([]models.Recording, int64, error)
	UpdateTranscription(id string, status models.TranscriptionStatus, transcript, errMsg string) error
	FindStuckProcessing(olderThan time.Time) ([]models.Recording, error)
}

type RecordingRepositoryImpl struct {
	db *gorm.DB
}

func NewRecordingRepository(db *gorm.DB) RecordingRepository {
	return &RecordingRepositoryImpl{db: db}
}

func (r *RecordingRepositoryImpl) FindByID(id string) (*models.Recording, error) {
	var rec models.Recording
	err := r.db.First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordingNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RecordingRepositoryImpl) Create(rec *models.Recording) error {
	return r.db.Create(rec).Error
}

func (r *RecordingRepositoryImpl) Update(rec *models.Recording) error {
	return r.db.Save(rec).Error
}

func (r *RecordingRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Recording{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordingNotFound
	}
	return nil
}

func (r *RecordingRepositoryImpl) FindByPatient(patientID string, limit, offset int) ([]models.Recording, int64, error) {
	query := r.db.Model(&models.Recording{}).Where("patient_id = ?", patientID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recs []models.Recording
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&recs).Error
	return recs, total, err
}

func (r *RecordingRepositoryImpl) UpdateTranscription(id string, status models.TranscriptionStatus, transcript, errMsg string) error {
	result := r.db.Model(&models.Recording{}).Where("id = ?", id).Updates(map[string]interface{}{
		"transcription_status": status,
		"transcript":           transcript,
		"transcription_error":  errMsg,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordingNotFound
	}
	return nil
}

func (r *RecordingRepositoryImpl) FindStuckProcessing(olderThan time.Time) ([]models.Recording, error) {
	var recs []models.Recording
	err := r.db.
		Where("transcription_status = ?", models.TranscriptionStatusProcessing).
		Where("updated_at < ?", olderThan).
		Find(&recs).Error
	return recs, err
}
