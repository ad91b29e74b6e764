package services

import (
	"errors"
	"strings"

	"dentalai_backend/internal/apperrors"
	"dentalai_backend/internal/models"
	"dentalai_backend/internal/repositories"
	"dentalai_backend/internal/services/dto"
)

const defaultPageSize = 20

type PatientService interface {
	Create(dentistID string, req *dto.CreatePatientRequest) (*models.Patient, error)
	Get(dentistID, patientID string) (*models.Patient, error)
	List(dentistID string, req *dto.ListPatientsRequest) (*dto.PatientListResponse, error)
	Update(dentistID, patientID string, req *dto.UpdatePatientRequest) (*models.Patient, error)
	Delete(dentistID, patientID string) error
}

type PatientServiceImpl struct {
	patientRepo repositories.PatientRepository
}

func NewPatientService(patientRepo repositories.PatientRepository) PatientService {
	return &PatientServiceImpl{patientRepo: patientRepo}
}

func (s *PatientServiceImpl) Create(dentistID string, req *dto.CreatePatientRequest) (*models.Patient, error) {
	patient := &models.Patient{
		DentistID:     dentistID,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		DateOfBirth:   req.DateOfBirth,
		Phone:         req.Phone,
		Email:         req.Email,
		Allergies:     req.Allergies,
		Medications:   req.Medications,
		MedicalAlerts: req.MedicalAlerts,
		InsuranceID:   req.InsuranceID,
	}

	if err := s.patientRepo.Create(patient); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return patient, nil
}

func (s *PatientServiceImpl) Get(dentistID, patientID string) (*models.Patient, error) {
	return s.findOwned(dentistID, patientID)
}

func (s *PatientServiceImpl) List(dentistID string, req *dto.ListPatientsRequest) (*dto.PatientListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	patients, total, err := s.patientRepo.FindWithFilter(repositories.PatientFilter{
		DentistID: dentistID,
		Search:    strings.TrimSpace(req.Search),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PatientListResponse{
		Patients: patients,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *PatientServiceImpl) Update(dentistID, patientID string, req *dto.UpdatePatientRequest) (*models.Patient, error) {
	patient, err := s.findOwned(dentistID, patientID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		patient.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		patient.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.DateOfBirth != nil {
		patient.DateOfBirth = req.DateOfBirth
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Allergies != nil {
		patient.Allergies = req.Allergies
	}
	if req.Medications != nil {
		patient.Medications = req.Medications
	}
	if req.MedicalAlerts != nil {
		patient.MedicalAlerts = *req.MedicalAlerts
	}
	if req.InsuranceID != nil {
		patient.InsuranceID = *req.InsuranceID
	}

	if err := s.patientRepo.Update(patient); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return patient, nil
}

func (s *PatientServiceImpl) Delete(dentistID, patientID string) error {
	if _, err := s.findOwned(dentistID, patientID); err != nil {
		return err
	}

	if err := s.patientRepo.Delete(patientID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// findOwned loads a patient and enforces that the requesting dentist
// owns the chart. Admins bypass ownership via an empty dentistID.
func (s *PatientServiceImpl) findOwned(dentistID, patientID string) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByID(patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrPatientNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if dentistID != "" && patient.DentistID != dentistID {
		return nil, apperrors.ErrPatientNotFound
	}
	return patient, nil
}
