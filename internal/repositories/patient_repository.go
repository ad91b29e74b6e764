package repositories

import (
	"errors"
	"time"

	"dentalai_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientFilter struct {
	DentistID string
	Search    string // matches name or phone
	Page      int
	PageSize  int
}

type PatientRepository interface {
	FindByID(id string) (*models.Patient, error)
	Create(patient *models.Patient) error
	Update(patient *models.Patient) error
	Delete(id string) error
	FindWithFilter(filter PatientFilter) ([]models.Patient, int64, error)
	TouchLastVisit(id string, visitedAt time.Time) error
}

type PatientRepositoryImpl struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &PatientRepositoryImpl{db: db}
}

func (r *PatientRepositoryImpl) FindByID(id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepositoryImpl) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

func (r *PatientRepositoryImpl) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

func (r *PatientRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Patient{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepositoryImpl) FindWithFilter(filter PatientFilter) ([]models.Patient, int64, error) {
	query := r.db.Model(&models.Patient{})

	if filter.DentistID != "" {
		query = query.Where("dentist_id = ?", filter.DentistID)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR phone LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var patients []models.Patient
	err := query.
		Order("last_name, first_name").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&patients).Error

	return patients, total, err
}

func (r *PatientRepositoryImpl) TouchLastVisit(id string, visitedAt time.Time) error {
	return r.db.Model(&models.Patient{}).
		Where("id = ?", id).
		Update("last_visit_at", visitedAt).Error
}
