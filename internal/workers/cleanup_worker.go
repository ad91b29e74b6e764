package workers

import (
	"context"
	"fmt"
	"time"

	"dentalai_backend/internal/logger"
	"dentalai_backend/internal/models"
	"dentalai_backend/internal/repositories"
)

const (
	cleanupInterval = 6 * time.Hour

	// Transcriptions stuck in processing longer than this are assumed
	// lost (process restart mid-call) and marked failed so the UI can
	// offer a retry.
	stuckTranscriptionAfter = 30 * time.Minute
)

// CleanupWorker sweeps expired refresh tokens and stuck transcriptions.
type CleanupWorker struct {
	userRepo      repositories.UserRepository
	recordingRepo repositories.RecordingRepository
}

func NewCleanupWorker(
	userRepo repositories.UserRepository,
	recordingRepo repositories.RecordingRepository,
) *CleanupWorker {
	return &CleanupWorker{
		userRepo:      userRepo,
		recordingRepo: recordingRepo,
	}
}

func (w *CleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *CleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *CleanupWorker) sweep() {
	deleted, err := w.userRepo.CleanExpiredRefreshTokens()
	if err != nil {
		logger.WorkerLog("cleanup", "clean expired refresh tokens", err)
	} else if deleted > 0 {
		logger.WorkerLog("cleanup", fmt.Sprintf("deleted %d expired refresh tokens", deleted), nil)
	}

	stuck, err := w.recordingRepo.FindStuckProcessing(time.Now().Add(-stuckTranscriptionAfter))
	if err != nil {
		logger.WorkerLog("cleanup", "find stuck transcriptions", err)
		return
	}

	for _, rec := range stuck {
		err := w.recordingRepo.UpdateTranscription(rec.ID, models.TranscriptionStatusFailed, "", "transcription timed out")
		if err != nil {
			logger.WorkerLog("cleanup", fmt.Sprintf("fail stuck transcription %s", rec.ID), err)
			continue
		}
		logger.WorkerLog("cleanup", fmt.Sprintf("marked stuck transcription %s as failed", rec.ID), nil)
	}
}
