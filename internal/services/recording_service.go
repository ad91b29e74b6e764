package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"dentalai_backend/internal/ai"
	"dentalai_backend/internal/apperrors"
	"dentalai_backend/internal/config"
	"dentalai_backend/internal/imageprocessor"
	"dentalai_backend/internal/logger"
	"dentalai_backend/internal/models"
	"dentalai_backend/internal/repositories"
	"dentalai_backend/internal/services/dto"
	"dentalai_backend/internal/storage"

	"github.com/google/uuid"
)

const signedURLExpiry = 15 * time.Minute

// UploadInput is a recording file received from a multipart request.
type UploadInput struct {
	Reader      io.Reader
	FileName    string
	ContentType string
	Size        int64
}

type RecordingService interface {
	Upload(ctx context.Context, ownerID, patientID string, in UploadInput) (*dto.RecordingResponse, error)
	Get(ctx context.Context, recordingID string) (*dto.RecordingResponse, error)
	ListByPatient(ctx context.Context, patientID string, page, pageSize int) ([]dto.RecordingResponse, int64, error)
	Delete(ctx context.Context, recordingID string) error

	// Transcribe runs speech to text on an audio recording and stores
	// the transcript. It is synchronous; handlers call it from a
	// goroutine after upload.
	Transcribe(ctx context.Context, recordingID string) error
}

type RecordingServiceImpl struct {
	recordingRepo repositories.RecordingRepository
	patientRepo   repositories.PatientRepository
	store         storage.Storage
	images        *imageprocessor.Processor
	aiProvider    ai.Provider
	notifier      Notifier
}

func NewRecordingService(
	recordingRepo repositories.RecordingRepository,
	patientRepo repositories.PatientRepository,
	store storage.Storage,
	images *imageprocessor.Processor,
	aiProvider ai.Provider,
	notifier Notifier,
) RecordingService {
	if notifier == nil {
		notifier = NoopNotifier
	}
	return &RecordingServiceImpl{
		recordingRepo: recordingRepo,
		patientRepo:   patientRepo,
		store:         store,
		images:        images,
		aiProvider:    aiProvider,
		notifier:      notifier,
	}
}

func (s *RecordingServiceImpl) Upload(ctx context.Context, ownerID, patientID string, in UploadInput) (*dto.RecordingResponse, error) {
	if _, err := s.patientRepo.FindByID(patientID); err != nil {
		if errors.Is(err, repositories.ErrPatientNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	kind, err := classify(in.ContentType, in.Size)
	if err != nil {
		return nil, err
	}

	rec := &models.Recording{
		OwnerID:     ownerID,
		PatientID:   patientID,
		Kind:        kind,
		FileName:    filepath.Base(in.FileName),
		ContentType: in.ContentType,
		Size:        in.Size,
	}
	rec.Path = fmt.Sprintf("recordings/%s/%s%s", patientID, uuid.NewString(), filepath.Ext(rec.FileName))

	if kind == models.RecordingKindAudio {
		rec.TranscriptionStatus = models.TranscriptionStatusPending
	} else {
		rec.TranscriptionStatus = models.TranscriptionStatusCompleted
	}

	if kind == models.RecordingKindImage && s.images != nil {
		// Images are buffered so the original and the thumbnail can
		// both be written.
		data, err := io.ReadAll(in.Reader)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		if err := s.store.Save(ctx, rec.Path, bytes.NewReader(data), in.ContentType); err != nil {
			return nil, apperrors.InternalError(err)
		}

		thumb, err := s.images.Resize(bytes.NewReader(data), imageprocessor.SizeThumbnail)
		if err != nil {
			logger.CtxWithError(ctx, "thumbnail generation failed", err, "path", rec.Path)
		} else {
			rec.ThumbPath = thumbPath(rec.Path)
			if err := s.store.Save(ctx, rec.ThumbPath, thumb, in.ContentType); err != nil {
				logger.CtxWithError(ctx, "thumbnail upload failed", err, "path", rec.ThumbPath)
				rec.ThumbPath = ""
			}
		}
	} else {
		if err := s.store.Save(ctx, rec.Path, in.Reader, in.ContentType); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.recordingRepo.Create(rec); err != nil {
		// Orphaned files are swept by the cleanup worker.
		return nil, apperrors.InternalError(err)
	}

	return s.respond(ctx, rec)
}

func (s *RecordingServiceImpl) Get(ctx context.Context, recordingID string) (*dto.RecordingResponse, error) {
	rec, err := s.load(recordingID)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, rec)
}

func (s *RecordingServiceImpl) ListByPatient(ctx context.Context, patientID string, page, pageSize int) ([]dto.RecordingResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	recs, total, err := s.recordingRepo.FindByPatient(patientID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	out := make([]dto.RecordingResponse, 0, len(recs))
	for i := range recs {
		resp, err := s.respond(ctx, &recs[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *resp)
	}
	return out, total, nil
}

func (s *RecordingServiceImpl) Delete(ctx context.Context, recordingID string) error {
	rec, err := s.load(recordingID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, rec.Path); err != nil {
		logger.CtxWithError(ctx, "failed to delete recording file", err, "path", rec.Path)
	}
	if rec.ThumbPath != "" {
		if err := s.store.Delete(ctx, rec.ThumbPath); err != nil {
			logger.CtxWithError(ctx, "failed to delete thumbnail", err, "path", rec.ThumbPath)
		}
	}

	if err := s.recordingRepo.Delete(recordingID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *RecordingServiceImpl) Transcribe(ctx context.Context, recordingID string) error {
	rec, err := s.load(recordingID)
	if err != nil {
		return err
	}

	if !rec.IsAudio() {
		return apperrors.NewBadRequestError("Only audio recordings can be transcribed")
	}

	if s.aiProvider == nil {
		return apperrors.ErrProviderNotConfigured
	}

	if err := s.recordingRepo.UpdateTranscription(rec.ID, models.TranscriptionStatusProcessing, "", ""); err != nil {
		return apperrors.InternalError(err)
	}

	audio, err := s.store.Get(ctx, rec.Path)
	if err != nil {
		_ = s.recordingRepo.UpdateTranscription(rec.ID, models.TranscriptionStatusFailed, "", "audio file unavailable")
		return apperrors.InternalError(err)
	}
	defer audio.Close()

	transcript, err := s.aiProvider.Transcribe(ctx, ai.TranscribeRequest{
		Audio:       audio,
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
	})
	if err != nil {
		_ = s.recordingRepo.UpdateTranscription(rec.ID, models.TranscriptionStatusFailed, "", err.Error())
		s.notifier.NotifyUser(rec.OwnerID, "transcription.failed", map[string]string{
			"recording_id": rec.ID,
			"error":        err.Error(),
		})
		if errors.Is(err, ai.ErrTranscriptionUnsupported) {
			return apperrors.ErrTranscriptionUnsupported
		}
		return apperrors.TranscriptionError(err)
	}

	if err := s.recordingRepo.UpdateTranscription(rec.ID, models.TranscriptionStatusCompleted, transcript, ""); err != nil {
		return apperrors.InternalError(err)
	}

	s.notifier.NotifyUser(rec.OwnerID, "transcription.completed", map[string]string{
		"recording_id": rec.ID,
		"patient_id":   rec.PatientID,
	})
	return nil
}

func (s *RecordingServiceImpl) load(recordingID string) (*models.Recording, error) {
	rec, err := s.recordingRepo.FindByID(recordingID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordingNotFound) {
			return nil, apperrors.ErrRecordingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return rec, nil
}

func (s *RecordingServiceImpl) respond(ctx context.Context, rec *models.Recording) (*dto.RecordingResponse, error) {
	resp := &dto.RecordingResponse{Recording: *rec}

	url, err := s.store.GetSignedURL(ctx, rec.Path, signedURLExpiry)
	if err != nil {
		logger.CtxWithError(ctx, "failed to sign recording URL", err, "path", rec.Path)
	} else {
		resp.URL = url
	}

	if rec.ThumbPath != "" {
		thumbURL, err := s.store.GetSignedURL(ctx, rec.ThumbPath, signedURLExpiry)
		if err == nil {
			resp.ThumbURL = thumbURL
		}
	}
	return resp, nil
}

// classify maps a content type onto a recording kind and enforces the
// configured size limits.
func classify(contentType string, size int64) (models.RecordingKind, error) {
	cfg := config.GetConfig()

	if contains(cfg.Upload.AllowedAudioTypes, contentType) {
		if size > cfg.Upload.MaxAudioSize {
			return "", apperrors.ErrFileTooLarge
		}
		return models.RecordingKindAudio, nil
	}

	if contains(cfg.Upload.AllowedImageTypes, contentType) {
		if size > cfg.Upload.MaxImageSize {
			return "", apperrors.ErrFileTooLarge
		}
		return models.RecordingKindImage, nil
	}

	return "", apperrors.ErrInvalidFileType
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func thumbPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
