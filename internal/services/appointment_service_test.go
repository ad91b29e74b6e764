package services

import (
	"testing"
	"time"

	"dentalai_backend/internal/apperrors"
	"dentalai_backend/internal/models"
	"dentalai_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentFixture(t *testing.T) (*fakeAppointmentRepo, AppointmentService) {
	t.Helper()

	apptRepo := newFakeAppointmentRepo()
	patientRepo := newFakePatientRepo()
	patientRepo.Create(&models.Patient{DentistID: "dentist-1", FirstName: "Maya", LastName: "Torres"})

	return apptRepo, NewAppointmentService(apptRepo, patientRepo)
}

func slot(dayOffset, hour int) (time.Time, time.Time) {
	start := time.Date(2026, 9, 1, hour, 0, 0, 0, time.UTC).AddDate(0, 0, dayOffset)
	return start, start.Add(time.Hour)
}

func TestCreateAppointment(t *testing.T) {
	_, svc := newAppointmentFixture(t)

	start, end := slot(0, 9)
	appt, err := svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  start,
		EndsAt:    end,
		Type:      models.AppointmentTypeCheckup,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusScheduled, appt.Status)
	assert.NotEmpty(t, appt.ID)
}

func TestCreateRejectsInvertedRange(t *testing.T) {
	_, svc := newAppointmentFixture(t)

	start, end := slot(0, 9)
	_, err := svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  end,
		EndsAt:    start,
		Type:      models.AppointmentTypeCheckup,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
}

func TestCreateRejectsOverlap(t *testing.T) {
	_, svc := newAppointmentFixture(t)

	start, end := slot(0, 9)
	_, err := svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  start,
		EndsAt:    end,
		Type:      models.AppointmentTypeCheckup,
	})
	require.NoError(t, err)

	// Overlaps the booked hour by 30 minutes.
	_, err = svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  start.Add(30 * time.Minute),
		EndsAt:    end.Add(30 * time.Minute),
		Type:      models.AppointmentTypeCleaning,
	})
	assert.ErrorIs(t, err, apperrors.ErrAppointmentConflict)

	// Back to back is allowed.
	_, err = svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  end,
		EndsAt:    end.Add(time.Hour),
		Type:      models.AppointmentTypeCleaning,
	})
	assert.NoError(t, err)
}

func TestCancelledSlotCanBeRebooked(t *testing.T) {
	_, svc := newAppointmentFixture(t)

	start, end := slot(0, 9)
	appt, err := svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  start,
		EndsAt:    end,
		Type:      models.AppointmentTypeCheckup,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus("dentist-1", appt.ID, models.AppointmentStatusCancelled)
	require.NoError(t, err)

	_, err = svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  start,
		EndsAt:    end,
		Type:      models.AppointmentTypeFilling,
	})
	assert.NoError(t, err)
}

func TestRescheduleChecksConflictsAndResetsReminder(t *testing.T) {
	apptRepo, svc := newAppointmentFixture(t)

	start1, end1 := slot(0, 9)
	first, err := svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  start1,
		EndsAt:    end1,
		Type:      models.AppointmentTypeCheckup,
	})
	require.NoError(t, err)

	start2, end2 := slot(0, 11)
	second, err := svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  start2,
		EndsAt:    end2,
		Type:      models.AppointmentTypeCleaning,
	})
	require.NoError(t, err)

	// Moving the second appointment onto the first must fail.
	_, err = svc.Update("dentist-1", second.ID, &dto.UpdateAppointmentRequest{
		StartsAt: &start1,
		EndsAt:   &end1,
	})
	assert.ErrorIs(t, err, apperrors.ErrAppointmentConflict)

	// A reminder already went out; rescheduling clears it.
	sent := time.Now()
	require.NoError(t, apptRepo.MarkReminderSent(first.ID, sent))

	newStart, newEnd := slot(1, 9)
	moved, err := svc.Update("dentist-1", first.ID, &dto.UpdateAppointmentRequest{
		StartsAt: &newStart,
		EndsAt:   &newEnd,
	})
	require.NoError(t, err)
	assert.Nil(t, moved.ReminderSentAt)
}

func TestScheduleReturnsRange(t *testing.T) {
	_, svc := newAppointmentFixture(t)

	start, end := slot(0, 9)
	_, err := svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  start,
		EndsAt:    end,
		Type:      models.AppointmentTypeCheckup,
	})
	require.NoError(t, err)

	dayStart := start.Truncate(24 * time.Hour)
	appts, err := svc.Schedule("dentist-1", dayStart, dayStart.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, appts, 1)

	appts, err = svc.Schedule("dentist-1", dayStart.AddDate(0, 0, 5), dayStart.AddDate(0, 0, 6))
	require.NoError(t, err)
	assert.Empty(t, appts)
}

func TestOwnershipEnforced(t *testing.T) {
	_, svc := newAppointmentFixture(t)

	start, end := slot(0, 9)
	appt, err := svc.Create("dentist-1", &dto.CreateAppointmentRequest{
		PatientID: "patient-1",
		StartsAt:  start,
		EndsAt:    end,
		Type:      models.AppointmentTypeCheckup,
	})
	require.NoError(t, err)

	_, err = svc.Get("dentist-2", appt.ID)
	assert.ErrorIs(t, err, apperrors.ErrAppointmentNotFound)

	// Admin access uses an empty dentist ID.
	_, err = svc.Get("", appt.ID)
	assert.NoError(t, err)
}
