package services

import (
	"context"
	"errors"
	"testing"

	"dentalai_backend/internal/apperrors"
	"dentalai_backend/internal/models"
	"dentalai_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const draftedSOAP = `Subjective: Patient reports throbbing pain in a lower molar for three days.
Objective: Tooth 19 tender to percussion, deep carious lesion visible on radiograph.
Assessment: Irreversible pulpitis, molar requires endodontic therapy.
Plan: Root canal on the molar, composite restoration at follow-up.`

func newNoteFixture(t *testing.T) (*fakeNoteRepo, *fakePatientRepo, *fakeAIProvider, *recordingNotifier, NoteService) {
	t.Helper()

	noteRepo := newFakeNoteRepo()
	patientRepo := newFakePatientRepo()
	provider := &fakeAIProvider{draftText: draftedSOAP}
	notifier := &recordingNotifier{}

	patientRepo.Create(&models.Patient{
		DentistID: "dentist-1",
		FirstName: "Maya",
		LastName:  "Torres",
		Allergies: []string{"penicillin"},
	})

	svc := NewNoteService(noteRepo, patientRepo, provider, notifier)
	return noteRepo, patientRepo, provider, notifier, svc
}

func TestDraftParsesSOAPAndSuggestsCodes(t *testing.T) {
	_, _, provider, notifier, svc := newNoteFixture(t)

	note, err := svc.Draft(context.Background(), "dentist-1", &dto.DraftNoteRequest{
		PatientID:      "patient-1",
		Transcript:     "patient came in with molar pain, recommending root canal",
		ChiefComplaint: "molar pain",
	})
	require.NoError(t, err)

	assert.Equal(t, models.NoteStatusDraft, note.Status)
	assert.Equal(t, "fake", note.AIProvider)
	assert.Equal(t, "fake-model", note.AIModel)
	assert.Contains(t, note.Subjective, "throbbing pain")
	assert.Contains(t, note.Objective, "percussion")
	assert.Contains(t, note.Assessment, "pulpitis")
	assert.Contains(t, note.Plan, "Root canal")

	// The chart context went to the model.
	assert.Contains(t, provider.lastDraft.PatientContext, "penicillin")

	// Assessment and plan mention a molar root canal. The premolar and
	// molar endodontic entries tie on score ("molar" is a substring of
	// "premolar") and come back in table order.
	codes := note.GetSuggestedCodes()
	require.GreaterOrEqual(t, len(codes), 2)
	assert.Equal(t, "D3320", codes[0].Code)
	assert.Equal(t, "D3330", codes[1].Code)
	assert.Equal(t, codes[0].Score, codes[1].Score)

	assert.Contains(t, notifier.events, "note.drafted")
}

func TestDraftRejectsEmptyTranscript(t *testing.T) {
	_, _, _, _, svc := newNoteFixture(t)

	_, err := svc.Draft(context.Background(), "dentist-1", &dto.DraftNoteRequest{
		PatientID:  "patient-1",
		Transcript: "   ",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmptyTranscript)
}

func TestDraftUnknownPatient(t *testing.T) {
	_, _, _, _, svc := newNoteFixture(t)

	_, err := svc.Draft(context.Background(), "dentist-1", &dto.DraftNoteRequest{
		PatientID:  "patient-999",
		Transcript: "some transcript",
	})
	assert.ErrorIs(t, err, apperrors.ErrPatientNotFound)
}

func TestDraftProviderFailure(t *testing.T) {
	_, _, provider, _, svc := newNoteFixture(t)
	provider.draftErr = errors.New("rate limited")

	_, err := svc.Draft(context.Background(), "dentist-1", &dto.DraftNoteRequest{
		PatientID:  "patient-1",
		Transcript: "some transcript",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAIProviderError, appErr.Code)
}

func TestDraftWithoutProviderConfigured(t *testing.T) {
	noteRepo := newFakeNoteRepo()
	patientRepo := newFakePatientRepo()
	patientRepo.Create(&models.Patient{DentistID: "dentist-1", FirstName: "Maya", LastName: "Torres"})

	svc := NewNoteService(noteRepo, patientRepo, nil, nil)

	_, err := svc.Draft(context.Background(), "dentist-1", &dto.DraftNoteRequest{
		PatientID:  "patient-1",
		Transcript: "some transcript",
	})
	assert.ErrorIs(t, err, apperrors.ErrProviderNotConfigured)
}

func TestDraftKeepsUnparseableTextInSubjective(t *testing.T) {
	_, _, provider, _, svc := newNoteFixture(t)
	provider.draftText = "The patient presented today and everything looked fine."

	note, err := svc.Draft(context.Background(), "dentist-1", &dto.DraftNoteRequest{
		PatientID:  "patient-1",
		Transcript: "short visit",
	})
	require.NoError(t, err)

	assert.Equal(t, provider.draftText, note.Subjective)
	assert.Empty(t, note.Plan)
}

func TestUpdateRecomputesSuggestions(t *testing.T) {
	_, _, _, _, svc := newNoteFixture(t)

	note, err := svc.Create("dentist-1", &dto.CreateNoteRequest{
		PatientID: "patient-1",
		Plan:      "prophylaxis cleaning for adult patient",
	})
	require.NoError(t, err)

	plan := "composite filling on posterior tooth, one surface"
	updated, err := svc.Update("dentist-1", note.ID, &dto.UpdateNoteRequest{Plan: &plan})
	require.NoError(t, err)

	codes := updated.GetSuggestedCodes()
	require.NotEmpty(t, codes)
	assert.Equal(t, "D2391", codes[0].Code)
}

func TestSignedNoteIsImmutable(t *testing.T) {
	_, _, _, _, svc := newNoteFixture(t)

	note, err := svc.Create("dentist-1", &dto.CreateNoteRequest{
		PatientID:  "patient-1",
		Assessment: "routine checkup",
	})
	require.NoError(t, err)

	signed, err := svc.Sign("dentist-1", note.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NoteStatusSigned, signed.Status)
	require.NotNil(t, signed.SignedAt)

	text := "edited after signing"
	_, err = svc.Update("dentist-1", note.ID, &dto.UpdateNoteRequest{Assessment: &text})
	assert.ErrorIs(t, err, apperrors.ErrNoteSigned)

	err = svc.Delete("dentist-1", note.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoteSigned)

	_, err = svc.Sign("dentist-1", note.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoteSigned)
}

func TestFinalizeDraft(t *testing.T) {
	_, _, _, _, svc := newNoteFixture(t)

	note, err := svc.Create("dentist-1", &dto.CreateNoteRequest{PatientID: "patient-1"})
	require.NoError(t, err)

	finalized, err := svc.Finalize("dentist-1", note.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NoteStatusFinal, finalized.Status)
}

func TestCreateTouchesLastVisit(t *testing.T) {
	_, patientRepo, _, _, svc := newNoteFixture(t)

	_, err := svc.Create("dentist-1", &dto.CreateNoteRequest{PatientID: "patient-1"})
	require.NoError(t, err)

	patient, err := patientRepo.FindByID("patient-1")
	require.NoError(t, err)
	assert.NotNil(t, patient.LastVisitAt)
}
