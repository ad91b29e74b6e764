package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"dentalai_backend/internal/ai"
	"dentalai_backend/internal/apperrors"
	"dentalai_backend/internal/cdt"
	"dentalai_backend/internal/logger"
	"dentalai_backend/internal/models"
	"dentalai_backend/internal/repositories"
	"dentalai_backend/internal/services/dto"
	"dentalai_backend/internal/soap"
)

// maxSuggestedCodes caps how many CDT suggestions are stored on a note.
const maxSuggestedCodes = 10

type NoteService interface {
	Create(authorID string, req *dto.CreateNoteRequest) (*models.ClinicalNote, error)
	Get(requesterID string, noteID string) (*models.ClinicalNote, error)
	ListByPatient(requesterID, patientID string, page, pageSize int) ([]models.ClinicalNote, int64, error)
	Update(requesterID, noteID string, req *dto.UpdateNoteRequest) (*models.ClinicalNote, error)
	Delete(requesterID, noteID string) error

	// Draft runs the AI pipeline: transcript -> model draft -> SOAP
	// sections -> CDT code suggestions -> persisted draft note.
	Draft(ctx context.Context, authorID string, req *dto.DraftNoteRequest) (*models.ClinicalNote, error)

	Finalize(requesterID, noteID string) (*models.ClinicalNote, error)
	Sign(requesterID, noteID string) (*models.ClinicalNote, error)
}

type NoteServiceImpl struct {
	noteRepo    repositories.NoteRepository
	patientRepo repositories.PatientRepository
	aiProvider  ai.Provider
	notifier    Notifier
}

func NewNoteService(
	noteRepo repositories.NoteRepository,
	patientRepo repositories.PatientRepository,
	aiProvider ai.Provider,
	notifier Notifier,
) NoteService {
	if notifier == nil {
		notifier = NoopNotifier
	}
	return &NoteServiceImpl{
		noteRepo:    noteRepo,
		patientRepo: patientRepo,
		aiProvider:  aiProvider,
		notifier:    notifier,
	}
}

func (s *NoteServiceImpl) Create(authorID string, req *dto.CreateNoteRequest) (*models.ClinicalNote, error) {
	if _, err := s.loadPatient(req.PatientID); err != nil {
		return nil, err
	}

	visitDate := time.Now()
	if req.VisitDate != nil {
		visitDate = *req.VisitDate
	}

	note := &models.ClinicalNote{
		PatientID:      req.PatientID,
		AuthorID:       authorID,
		VisitDate:      visitDate,
		ChiefComplaint: req.ChiefComplaint,
		Subjective:     req.Subjective,
		Objective:      req.Objective,
		Assessment:     req.Assessment,
		Plan:           req.Plan,
		Status:         models.NoteStatusDraft,
	}

	s.attachCodeSuggestions(note)

	if err := s.noteRepo.Create(note); err != nil {
		return nil, apperrors.InternalError(err)
	}

	_ = s.patientRepo.TouchLastVisit(note.PatientID, visitDate)
	return note, nil
}

func (s *NoteServiceImpl) Get(requesterID string, noteID string) (*models.ClinicalNote, error) {
	return s.loadNote(noteID)
}

func (s *NoteServiceImpl) ListByPatient(requesterID, patientID string, page, pageSize int) ([]models.ClinicalNote, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	if _, err := s.loadPatient(patientID); err != nil {
		return nil, 0, err
	}

	notes, total, err := s.noteRepo.FindByPatient(patientID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return notes, total, nil
}

func (s *NoteServiceImpl) Update(requesterID, noteID string, req *dto.UpdateNoteRequest) (*models.ClinicalNote, error) {
	note, err := s.loadNote(noteID)
	if err != nil {
		return nil, err
	}

	if note.IsSigned() {
		return nil, apperrors.ErrNoteSigned
	}

	if req.ChiefComplaint != nil {
		note.ChiefComplaint = *req.ChiefComplaint
	}
	if req.Subjective != nil {
		note.Subjective = *req.Subjective
	}
	if req.Objective != nil {
		note.Objective = *req.Objective
	}
	if req.Assessment != nil {
		note.Assessment = *req.Assessment
	}
	if req.Plan != nil {
		note.Plan = *req.Plan
	}

	// Edits to assessment or plan change what the visit covered, so
	// the code suggestions are recomputed.
	s.attachCodeSuggestions(note)

	if err := s.noteRepo.Update(note); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return note, nil
}

func (s *NoteServiceImpl) Delete(requesterID, noteID string) error {
	note, err := s.loadNote(noteID)
	if err != nil {
		return err
	}

	if note.IsSigned() {
		return apperrors.ErrNoteSigned
	}

	if err := s.noteRepo.Delete(noteID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NoteServiceImpl) Draft(ctx context.Context, authorID string, req *dto.DraftNoteRequest) (*models.ClinicalNote, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, apperrors.ErrEmptyTranscript
	}

	if s.aiProvider == nil {
		return nil, apperrors.ErrProviderNotConfigured
	}

	patient, err := s.loadPatient(req.PatientID)
	if err != nil {
		return nil, err
	}

	result, err := s.aiProvider.DraftNote(ctx, ai.DraftRequest{
		Transcript:     req.Transcript,
		ChiefComplaint: req.ChiefComplaint,
		PatientContext: patientContext(patient),
	})
	if err != nil {
		return nil, apperrors.AIProviderError(err)
	}

	parsed := soap.Parse(result.Text)
	if parsed.IsEmpty() {
		// No recognizable headings: keep the full draft under
		// subjective so nothing the model wrote is lost.
		parsed.Subjective = result.Text
	}

	note := &models.ClinicalNote{
		PatientID:      req.PatientID,
		AuthorID:       authorID,
		VisitDate:      time.Now(),
		ChiefComplaint: req.ChiefComplaint,
		Subjective:     parsed.Subjective,
		Objective:      parsed.Objective,
		Assessment:     parsed.Assessment,
		Plan:           parsed.Plan,
		Transcript:     req.Transcript,
		AIProvider:     result.Provider,
		AIModel:        result.Model,
		Status:         models.NoteStatusDraft,
	}

	s.attachCodeSuggestions(note)

	if err := s.noteRepo.Create(note); err != nil {
		return nil, apperrors.InternalError(err)
	}

	_ = s.patientRepo.TouchLastVisit(note.PatientID, note.VisitDate)

	s.notifier.NotifyUser(authorID, "note.drafted", dto.NewNoteResponse(note))
	return note, nil
}

func (s *NoteServiceImpl) Finalize(requesterID, noteID string) (*models.ClinicalNote, error) {
	note, err := s.loadNote(noteID)
	if err != nil {
		return nil, err
	}

	if note.IsSigned() {
		return nil, apperrors.ErrNoteSigned
	}

	if err := s.noteRepo.UpdateStatus(noteID, models.NoteStatusFinal, nil); err != nil {
		return nil, apperrors.InternalError(err)
	}

	note.Status = models.NoteStatusFinal
	return note, nil
}

func (s *NoteServiceImpl) Sign(requesterID, noteID string) (*models.ClinicalNote, error) {
	note, err := s.loadNote(noteID)
	if err != nil {
		return nil, err
	}

	if note.IsSigned() {
		return nil, apperrors.ErrNoteSigned
	}

	now := time.Now()
	if err := s.noteRepo.UpdateStatus(noteID, models.NoteStatusSigned, &now); err != nil {
		return nil, apperrors.InternalError(err)
	}

	note.Status = models.NoteStatusSigned
	note.SignedAt = &now
	return note, nil
}

// attachCodeSuggestions scores the note's assessment and plan against
// the CDT reference table and stores the top matches on the note.
func (s *NoteServiceImpl) attachCodeSuggestions(note *models.ClinicalNote) {
	query := strings.TrimSpace(note.Assessment + " " + note.Plan)
	if query == "" {
		query = note.ChiefComplaint
	}

	matches := cdt.TopN(cdt.Match(query), maxSuggestedCodes)

	codes := make([]models.SuggestedCode, 0, len(matches))
	for _, m := range matches {
		codes = append(codes, models.SuggestedCode{
			Code:        m.Code,
			Description: m.Description,
			Score:       m.Score,
		})
	}

	if err := note.SetSuggestedCodes(codes); err != nil {
		logger.WithError(err).Warn("failed to encode suggested codes", "note_id", note.ID)
	}
}

func (s *NoteServiceImpl) loadNote(noteID string) (*models.ClinicalNote, error) {
	note, err := s.noteRepo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, repositories.ErrNoteNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return note, nil
}

func (s *NoteServiceImpl) loadPatient(patientID string) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByID(patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrPatientNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return patient, nil
}

// patientContext summarizes chart facts the model should know before
// drafting: allergies, medications and standing alerts.
func patientContext(p *models.Patient) string {
	var parts []string
	if len(p.Allergies) > 0 {
		parts = append(parts, "Allergies: "+strings.Join(p.Allergies, ", "))
	}
	if len(p.Medications) > 0 {
		parts = append(parts, "Medications: "+strings.Join(p.Medications, ", "))
	}
	if p.MedicalAlerts != "" {
		parts = append(parts, "Alerts: "+p.MedicalAlerts)
	}
	return strings.Join(parts, "\n")
}
