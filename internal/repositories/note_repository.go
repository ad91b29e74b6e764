package repositories

import (
	"errors"
	"time"

	"dentalai_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNoteNotFound = errors.New("clinical note not found")

type NoteRepository interface {
	FindByID(id string) (*models.ClinicalNote, error)
	Create(note *models.ClinicalNote) error
	Update(note *models.ClinicalNote) error
	Delete(id string) error
	FindByPatient(patientID string, limit, offset int) ([]models.ClinicalNote, int64, error)
	UpdateStatus(id string, status models.NoteStatus, signedAt *time.Time) error
	CountByAuthor(authorID string, since time.Time) (int64, error)
}

type NoteRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

func (r *NoteRepositoryImpl) FindByID(id string) (*models.ClinicalNote, error) {
	var note models.ClinicalNote
	err := r.db.First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepositoryImpl) Create(note *models.ClinicalNote) error {
	return r.db.Create(note).Error
}

func (r *NoteRepositoryImpl) Update(note *models.ClinicalNote) error {
	return r.db.Save(note).Error
}

func (r *NoteRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.ClinicalNote{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (r *NoteRepositoryImpl) FindByPatient(patientID string, limit, offset int) ([]models.ClinicalNote, int64, error) {
	query := r.db.Model(&models.ClinicalNote{}).Where("patient_id = ?", patientID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notes []models.ClinicalNote
	err := query.Order("visit_date DESC").Limit(limit).Offset(offset).Find(&notes).Error
	return notes, total, err
}

func (r *NoteRepositoryImpl) UpdateStatus(id string, status models.NoteStatus, signedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if signedAt != nil {
		updates["signed_at"] = signedAt
	}

	result := r.db.Model(&models.ClinicalNote{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (r *NoteRepositoryImpl) CountByAuthor(authorID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ClinicalNote{}).
		Where("author_id = ? AND created_at >= ?", authorID, since).
		Count(&count).Error
	return count, err
}
