// Package ai defines the provider abstraction for AI-assisted note
// drafting and audio transcription.
package ai

import (
	"context"
	"errors"
	"io"
)

// ErrTranscriptionUnsupported is returned by providers that can draft
// notes but cannot transcribe audio.
var ErrTranscriptionUnsupported = errors.New("provider does not support transcription")

// DraftRequest carries the raw visit transcript and optional patient
// context for note drafting.
type DraftRequest struct {
	Transcript     string
	ChiefComplaint string
	PatientContext string // allergies, medications, alerts
}

// DraftResult is the raw model output plus provenance.
type DraftResult struct {
	Text     string
	Provider string
	Model    string
}

// TranscribeRequest carries an audio stream for transcription.
type TranscribeRequest struct {
	Audio       io.Reader
	FileName    string
	ContentType string
}

// Provider drafts clinical notes and transcribes dictation audio.
type Provider interface {
	// Name identifies the provider in logs and note provenance.
	Name() string

	// DraftNote sends the transcript to the model and returns its raw
	// text reply. Parsing into SOAP sections happens upstream.
	DraftNote(ctx context.Context, req DraftRequest) (*DraftResult, error)

	// Transcribe converts dictation audio to text. Providers without a
	// speech endpoint return ErrTranscriptionUnsupported.
	Transcribe(ctx context.Context, req TranscribeRequest) (string, error)
}
