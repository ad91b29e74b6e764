package handlers

import (
	"context"
	"net/http"
	"time"

	"dentalai_backend/internal/apperrors"
	"dentalai_backend/internal/logger"
	"dentalai_backend/internal/middleware"
	"dentalai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// transcriptionTimeout bounds the background transcription call once
// the HTTP request that triggered it has returned.
const transcriptionTimeout = 5 * time.Minute

type RecordingHandler struct {
	*BaseHandler
	recordingService services.RecordingService
}

func NewRecordingHandler(base *BaseHandler, recordingService services.RecordingService) *RecordingHandler {
	return &RecordingHandler{BaseHandler: base, recordingService: recordingService}
}

func (h *RecordingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	recs := rg.Group("/recordings", middleware.AuthMiddleware())
	{
		recs.POST("", h.Upload)
		recs.GET("/:id", h.Get)
		recs.DELETE("/:id", h.Delete)
		recs.POST("/:id/transcribe", h.Transcribe)
	}

	rg.GET("/patients/:id/recordings", middleware.AuthMiddleware(), h.ListByPatient)
}

// Upload godoc
// @Summary      Upload a dictation audio file or dental image
// @Description  Audio uploads start transcription in the background.
// @Tags         recordings
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        patient_id formData string true "Patient ID"
// @Param        file formData file true "Audio or image file"
// @Success      201 {object} dto.RecordingResponse
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /recordings [post]
func (h *RecordingHandler) Upload(c *gin.Context) {
	patientID := c.PostForm("patient_id")
	if patientID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing patient_id"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	resp, err := h.recordingService.Upload(c.Request.Context(), middleware.GetUserID(c), patientID, services.UploadInput{
		Reader:      file,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if resp.Recording.IsAudio() {
		h.transcribeAsync(resp.Recording.ID)
	}

	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Fetch recording metadata and signed URLs
// @Tags         recordings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Recording ID"
// @Success      200 {object} dto.RecordingResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /recordings/{id} [get]
func (h *RecordingHandler) Get(c *gin.Context) {
	resp, err := h.recordingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListByPatient godoc
// @Summary      List a patient's recordings
// @Tags         recordings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Patient ID"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} map[string]interface{}
// @Router       /patients/{id}/recordings [get]
func (h *RecordingHandler) ListByPatient(c *gin.Context) {
	page, pageSize := h.Pagination(c)

	recs, total, err := h.recordingService.ListByPatient(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recordings": recs,
		"total":      total,
		"page":       page,
		"page_size":  pageSize,
	})
}

// Delete godoc
// @Summary      Delete a recording and its files
// @Tags         recordings
// @Security     BearerAuth
// @Param        id path string true "Recording ID"
// @Success      204 "No Content"
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /recordings/{id} [delete]
func (h *RecordingHandler) Delete(c *gin.Context) {
	if err := h.recordingService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Transcribe godoc
// @Summary      Re-run transcription for an audio recording
// @Tags         recordings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Recording ID"
// @Success      202 {object} map[string]string
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /recordings/{id}/transcribe [post]
func (h *RecordingHandler) Transcribe(c *gin.Context) {
	h.transcribeAsync(c.Param("id"))
	c.JSON(http.StatusAccepted, gin.H{"status": "processing"})
}

func (h *RecordingHandler) transcribeAsync(recordingID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), transcriptionTimeout)
		defer cancel()

		if err := h.recordingService.Transcribe(ctx, recordingID); err != nil {
			logger.WithError(err).Warn("background transcription failed", "recording_id", recordingID)
		}
	}()
}
