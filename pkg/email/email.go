package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"skilledup-backend/config"
)

// Service delivers transactional mail over SMTP. It satisfies the domain
// Notifier interface.
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// IsConfigured reports whether the SMTP credentials are present.
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// SendEmail sends a single HTML message. The context is accepted for
// interface symmetry; net/smtp has no cancellation hooks.
func (s *Service) SendEmail(_ context.Context, to, subject, body string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service not configured")
	}

	msg := bytes.Buffer{}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", s.fromEmail))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port

	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

const profileReviewedTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Profile Review Update</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Profile Review Update</h1>
        </div>
        <div class="content">
            <p>Hi {{.FirstName}},</p>
            <p>Your applicant profile has been <strong>{{.Outcome}}</strong>.</p>
            {{if .Approved}}<p>Hirers can now find you through search.</p>{{else}}<p>Update your profile and resubmit to start a new review.</p>{{end}}
        </div>
        <div class="footer">
            <p>This is an automated message from SkilledUp.</p>
        </div>
    </div>
</body>
</html>`

// ProfileReviewedBody renders the review-outcome notification body.
func ProfileReviewedBody(firstName string, approved bool) (string, error) {
	tmpl, err := template.New("profile_reviewed").Parse(profileReviewedTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	outcome := "approved"
	if !approved {
		outcome = "rejected"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		FirstName string
		Outcome   string
		Approved  bool
	}{firstName, outcome, approved}); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
