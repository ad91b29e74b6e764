package models

type Recording struct {
	BaseModel
	OwnerID   string `gorm:"type:uuid;not null;index" json:"owner_id"`
	PatientID string `gorm:"type:uuid;not null;index" json:"patient_id"`

	Kind        RecordingKind `gorm:"type:varchar(10);not null" json:"kind"`
	Path        string        `gorm:"not null" json:"-"`
	ThumbPath   string        `json:"-"`
	FileName    string        `json:"file_name"`
	ContentType string        `json:"content_type"`
	Size        int64         `json:"size"`

	TranscriptionStatus TranscriptionStatus `gorm:"type:varchar(20);default:'pending'" json:"transcription_status"`
	Transcript          string              `gorm:"type:text" json:"transcript,omitempty"`
	TranscriptionError  string              `json:"transcription_error,omitempty"`
}

// IsAudio reports whether the recording can be transcribed.
func (r *Recording) IsAudio() bool {
	return r.Kind == RecordingKindAudio
}
