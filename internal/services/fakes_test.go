package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dentalai_backend/internal/ai"
	"dentalai_backend/internal/models"
	"dentalai_backend/internal/repositories"
)

// In-memory repository fakes for service tests.

type fakePatientRepo struct {
	patients map[string]*models.Patient
	nextID   int
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[string]*models.Patient)}
}

func (f *fakePatientRepo) FindByID(id string) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, repositories.ErrPatientNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePatientRepo) Create(patient *models.Patient) error {
	if patient.ID == "" {
		f.nextID++
		patient.ID = fmt.Sprintf("patient-%d", f.nextID)
	}
	cp := *patient
	f.patients[patient.ID] = &cp
	return nil
}

func (f *fakePatientRepo) Update(patient *models.Patient) error {
	if _, ok := f.patients[patient.ID]; !ok {
		return repositories.ErrPatientNotFound
	}
	cp := *patient
	f.patients[patient.ID] = &cp
	return nil
}

func (f *fakePatientRepo) Delete(id string) error {
	if _, ok := f.patients[id]; !ok {
		return repositories.ErrPatientNotFound
	}
	delete(f.patients, id)
	return nil
}

func (f *fakePatientRepo) FindWithFilter(filter repositories.PatientFilter) ([]models.Patient, int64, error) {
	var out []models.Patient
	for _, p := range f.patients {
		if filter.DentistID != "" && p.DentistID != filter.DentistID {
			continue
		}
		if filter.Search != "" {
			name := strings.ToLower(p.FirstName + " " + p.LastName)
			if !strings.Contains(name, strings.ToLower(filter.Search)) && !strings.Contains(p.Phone, filter.Search) {
				continue
			}
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePatientRepo) TouchLastVisit(id string, visitedAt time.Time) error {
	if p, ok := f.patients[id]; ok {
		p.LastVisitAt = &visitedAt
	}
	return nil
}

type fakeNoteRepo struct {
	notes  map[string]*models.ClinicalNote
	nextID int
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*models.ClinicalNote)}
}

func (f *fakeNoteRepo) FindByID(id string) (*models.ClinicalNote, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, repositories.ErrNoteNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNoteRepo) Create(note *models.ClinicalNote) error {
	if note.ID == "" {
		f.nextID++
		note.ID = fmt.Sprintf("note-%d", f.nextID)
	}
	cp := *note
	f.notes[note.ID] = &cp
	return nil
}

func (f *fakeNoteRepo) Update(note *models.ClinicalNote) error {
	if _, ok := f.notes[note.ID]; !ok {
		return repositories.ErrNoteNotFound
	}
	cp := *note
	f.notes[note.ID] = &cp
	return nil
}

func (f *fakeNoteRepo) Delete(id string) error {
	if _, ok := f.notes[id]; !ok {
		return repositories.ErrNoteNotFound
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeNoteRepo) FindByPatient(patientID string, limit, offset int) ([]models.ClinicalNote, int64, error) {
	var out []models.ClinicalNote
	for _, n := range f.notes {
		if n.PatientID == patientID {
			out = append(out, *n)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeNoteRepo) UpdateStatus(id string, status models.NoteStatus, signedAt *time.Time) error {
	n, ok := f.notes[id]
	if !ok {
		return repositories.ErrNoteNotFound
	}
	n.Status = status
	if signedAt != nil {
		n.SignedAt = signedAt
	}
	return nil
}

func (f *fakeNoteRepo) CountByAuthor(authorID string, since time.Time) (int64, error) {
	var count int64
	for _, n := range f.notes {
		if n.AuthorID == authorID && n.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

type fakeAppointmentRepo struct {
	appointments map[string]*models.Appointment
	nextID       int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepo) FindByID(id string) (*models.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, repositories.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	if appt.ID == "" {
		f.nextID++
		appt.ID = fmt.Sprintf("appt-%d", f.nextID)
	}
	cp := *appt
	f.appointments[appt.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error {
	if _, ok := f.appointments[appt.ID]; !ok {
		return repositories.ErrAppointmentNotFound
	}
	cp := *appt
	f.appointments[appt.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) Delete(id string) error {
	if _, ok := f.appointments[id]; !ok {
		return repositories.ErrAppointmentNotFound
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeAppointmentRepo) FindByDentistAndRange(dentistID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DentistID == dentistID && a.StartsAt.Before(to) && from.Before(a.EndsAt) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByPatient(patientID string, limit, offset int) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAppointmentRepo) FindOverlapping(dentistID string, startsAt, endsAt time.Time, excludeID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.ID == excludeID || a.DentistID != dentistID || !a.IsActive() {
			continue
		}
		if a.Overlaps(startsAt, endsAt) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(id string, status models.AppointmentStatus) error {
	a, ok := f.appointments[id]
	if !ok {
		return repositories.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (f *fakeAppointmentRepo) FindDueReminders(windowStart, windowEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.ReminderSentAt == nil && a.IsActive() && a.StartsAt.After(windowStart) && a.StartsAt.Before(windowEnd) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) MarkReminderSent(id string, sentAt time.Time) error {
	a, ok := f.appointments[id]
	if !ok {
		return repositories.ErrAppointmentNotFound
	}
	a.ReminderSentAt = &sentAt
	return nil
}

// fakeAIProvider returns a canned draft and records requests.
type fakeAIProvider struct {
	draftText  string
	draftErr   error
	lastDraft  ai.DraftRequest
	transcript string
}

func (f *fakeAIProvider) Name() string { return "fake" }

func (f *fakeAIProvider) DraftNote(ctx context.Context, req ai.DraftRequest) (*ai.DraftResult, error) {
	f.lastDraft = req
	if f.draftErr != nil {
		return nil, f.draftErr
	}
	return &ai.DraftResult{Text: f.draftText, Provider: "fake", Model: "fake-model"}, nil
}

func (f *fakeAIProvider) Transcribe(ctx context.Context, req ai.TranscribeRequest) (string, error) {
	if f.transcript == "" {
		return "", ai.ErrTranscriptionUnsupported
	}
	return f.transcript, nil
}

// recordingNotifier captures events sent to the websocket layer.
type recordingNotifier struct {
	events []string
}

func (r *recordingNotifier) NotifyUser(userID string, event string, payload interface{}) {
	r.events = append(r.events, event)
}
