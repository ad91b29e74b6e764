package dto

import "dentalai_backend/internal/models"

type RecordingResponse struct {
	Recording models.Recording `json:"recording"`
	URL       string           `json:"url,omitempty"`
	ThumbURL  string           `json:"thumb_url,omitempty"`
}
