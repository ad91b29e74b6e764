package app

// MockEmailProvider is used in local development when SMTP is not
// configured. It satisfies email.Provider and drops everything.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, htmlBody string) error  { return nil }
func (m *MockEmailProvider) SendVerification(to, token string) error  { return nil }
func (m *MockEmailProvider) SendPasswordReset(to, token string) error { return nil }
func (m *MockEmailProvider) SendAppointmentReminder(to, patientName, dentistName, when string) error {
	return nil
}
