package email

import (
	"fmt"

	"dentalai_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over SMTP.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendVerification(to, token string) error {
	body := fmt.Sprintf(
		`<p>Welcome to DentalAI Assistant.</p>
<p>Your verification code is: <b>%s</b></p>
<p>If you did not create this account, ignore this message.</p>`, token)

	return p.Send(to, "Verify your DentalAI Assistant account", body)
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	body := fmt.Sprintf(
		`<p>A password reset was requested for your account.</p>
<p>Your reset code is: <b>%s</b></p>
<p>The code expires in one hour.</p>`, token)

	return p.Send(to, "DentalAI Assistant password reset", body)
}

func (p *SMTPProvider) SendAppointmentReminder(to, patientName, dentistName, when string) error {
	body := fmt.Sprintf(
		`<p>Hello %s,</p>
<p>This is a reminder of your dental appointment with %s on %s.</p>
<p>Please call the office if you need to reschedule.</p>`,
		patientName, dentistName, when)

	return p.Send(to, "Appointment reminder", body)
}
