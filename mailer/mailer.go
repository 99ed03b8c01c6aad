// Package mailer sends contact-form notifications over SMTP.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"
)

var (
	ErrDisabled      = errors.New("email notifications are disabled")
	ErrNotConfigured = errors.New("email settings not configured")
)

// Settings are the stored SMTP parameters.
type Settings struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
	Enabled   bool
}

// Check reports why mail cannot be sent with s, or nil.
func (s Settings) Check() error {
	if !s.Enabled {
		return ErrDisabled
	}
	if s.Username == "" || s.Password == "" {
		return ErrNotConfigured
	}
	return nil
}

// Contact is the message being relayed.
type Contact struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Sender delivers a contact notification.
type Sender interface {
	Send(ctx context.Context, s Settings, c Contact) error
}

// SMTP sends through the configured server with mandatory STARTTLS.
type SMTP struct {
	Timeout time.Duration
}

func (m SMTP) Send(ctx context.Context, s Settings, c Contact) error {
	if err := s.Check(); err != nil {
		return err
	}
	msg, err := NewMessage(s, c)
	if err != nil {
		return err
	}
	timeout := m.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client, err := mail.NewClient(s.Host,
		mail.WithPort(s.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.Username),
		mail.WithPassword(s.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(timeout),
	)
	if err != nil {
		return fmt.Errorf("create SMTP client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// NewMessage builds the notification: From the SMTP account, Reply-To the
// submitter, To the configured recipient.
func NewMessage(s Settings, c Contact) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.Username); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.ReplyTo(c.Email); err != nil {
		return nil, fmt.Errorf("invalid reply-to address: %w", err)
	}
	if err := msg.To(s.Recipient); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject("New Contact Form Message: " + c.Subject)
	body, err := RenderBody(c)
	if err != nil {
		return nil, err
	}
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}

// RenderBody returns the HTML body for c with all fields escaped.
func RenderBody(c Contact) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return buf.String(), nil
}

var bodyTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #0a0a14; color: #f3f4f6; padding: 20px; }
.container { max-width: 600px; margin: 0 auto; background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%); border-radius: 16px; padding: 30px; border: 1px solid #374151; }
.header { text-align: center; margin-bottom: 30px; }
.header h1 { color: #f97316; margin: 0; font-size: 24px; }
.header p { color: #9ca3af; margin-top: 8px; }
.info-box { background: rgba(249, 115, 22, 0.1); border: 1px solid rgba(249, 115, 22, 0.3); border-radius: 12px; padding: 20px; margin: 20px 0; }
.info-row { margin-bottom: 12px; }
.info-label { color: #f97316; font-weight: 600; display: inline-block; min-width: 100px; }
.message-box { background: rgba(255, 255, 255, 0.05); border-radius: 12px; padding: 20px; margin-top: 20px; }
.message-box h3 { color: #f97316; margin-top: 0; }
.message-content { color: #d1d5db; line-height: 1.6; white-space: pre-wrap; }
.footer { text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #374151; color: #6b7280; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>New Contact Message</h1>
    <p>Someone reached out through your portfolio!</p>
  </div>
  <div class="info-box">
    <div class="info-row"><span class="info-label">From:</span> {{.Name}}</div>
    <div class="info-row"><span class="info-label">Email:</span> <a href="mailto:{{.Email}}" style="color: #60a5fa;">{{.Email}}</a></div>
    <div class="info-row"><span class="info-label">Subject:</span> {{.Subject}}</div>
  </div>
  <div class="message-box">
    <h3>Message</h3>
    <div class="message-content">{{.Body}}</div>
  </div>
  <div class="footer">
    <p>This notification was sent from your portfolio website.</p>
    <p>Reply directly to the sender's email address above.</p>
  </div>
</div>
</body>
</html>`))
