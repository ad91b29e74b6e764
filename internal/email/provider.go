package email

// Provider sends transactional email for the clinic: account
// verification, password resets, appointment reminders.
type Provider interface {
	Send(to, subject, htmlBody string) error
	SendVerification(to, token string) error
	SendPasswordReset(to, token string) error
	SendAppointmentReminder(to, patientName, dentistName, when string) error
}
