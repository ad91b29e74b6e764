// Package workers runs the clinic's background jobs: appointment
// reminder email and periodic cleanup.
package workers

import (
	"context"
	"fmt"
	"time"

	"dentalai_backend/internal/config"
	"dentalai_backend/internal/email"
	"dentalai_backend/internal/logger"
	"dentalai_backend/internal/repositories"
)

// ReminderWorker emails patients ahead of upcoming appointments.
type ReminderWorker struct {
	appointmentRepo repositories.AppointmentRepository
	emailProvider   email.Provider
	hoursAhead      int
	interval        time.Duration
}

func NewReminderWorker(
	appointmentRepo repositories.AppointmentRepository,
	emailProvider email.Provider,
	cfg *config.Config,
) *ReminderWorker {
	hoursAhead := cfg.Reminders.HoursAhead
	if hoursAhead <= 0 {
		hoursAhead = 24
	}
	intervalMin := cfg.Reminders.IntervalMin
	if intervalMin <= 0 {
		intervalMin = 15
	}

	return &ReminderWorker{
		appointmentRepo: appointmentRepo,
		emailProvider:   emailProvider,
		hoursAhead:      hoursAhead,
		interval:        time.Duration(intervalMin) * time.Minute,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *ReminderWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("reminder worker stopped")
			return
		case <-ticker.C:
			w.sendDueReminders()
		}
	}
}

func (w *ReminderWorker) sendDueReminders() {
	now := time.Now()
	windowEnd := now.Add(time.Duration(w.hoursAhead) * time.Hour)

	due, err := w.appointmentRepo.FindDueReminders(now, windowEnd)
	if err != nil {
		logger.WorkerLog("reminder", "find due reminders", err)
		return
	}

	for _, appt := range due {
		if appt.Patient == nil || appt.Patient.Email == "" {
			// Nothing to send to; mark it so the query stops
			// returning this appointment.
			_ = w.appointmentRepo.MarkReminderSent(appt.ID, now)
			continue
		}

		dentistName := ""
		if appt.Dentist != nil {
			dentistName = appt.Dentist.Name
		}

		when := appt.StartsAt.Format("Monday, January 2 at 3:04 PM")
		err := w.emailProvider.SendAppointmentReminder(appt.Patient.Email, appt.Patient.FullName(), dentistName, when)
		if err != nil {
			logger.WorkerLog("reminder", fmt.Sprintf("send reminder for appointment %s", appt.ID), err)
			continue
		}

		if err := w.appointmentRepo.MarkReminderSent(appt.ID, now); err != nil {
			logger.WorkerLog("reminder", fmt.Sprintf("mark reminder sent for appointment %s", appt.ID), err)
			continue
		}

		logger.WorkerLog("reminder", fmt.Sprintf("reminder sent for appointment %s", appt.ID), nil)
	}
}
