package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() Settings {
	return Settings{
		Host:      "smtp.example.com",
		Port:      587,
		Username:  "site@example.com",
		Password:  "secret",
		Recipient: "owner@example.com",
		Enabled:   true,
	}
}

func TestSettingsCheck(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		want   error
	}{
		{"valid", func(*Settings) {}, nil},
		{"disabled", func(s *Settings) { s.Enabled = false }, ErrDisabled},
		{"no username", func(s *Settings) { s.Username = "" }, ErrNotConfigured},
		{"no password", func(s *Settings) { s.Password = "" }, ErrNotConfigured},
		{"disabled wins", func(s *Settings) { s.Enabled = false; s.Password = "" }, ErrDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.modify(&s)
			assert.Equal(t, tt.want, s.Check())
		})
	}
}

func TestSendRefusesBeforeDialing(t *testing.T) {
	s := validSettings()
	s.Enabled = false
	err := SMTP{}.Send(context.Background(), s, Contact{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrDisabled)

	s = validSettings()
	s.Username = ""
	err = SMTP{}.Send(context.Background(), s, Contact{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(validSettings(), Contact{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Body:    "Hi there",
	})
	require.NoError(t, err)
	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"owner@example.com"}, rcpts)
}

func TestNewMessageInvalidAddresses(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings, *Contact)
		wantErr string
	}{
		{"from", func(s *Settings, _ *Contact) { s.Username = "not an address" }, "invalid from address"},
		{"reply-to", func(_ *Settings, c *Contact) { c.Email = "nope" }, "invalid reply-to address"},
		{"to", func(s *Settings, _ *Contact) { s.Recipient = "@@" }, "invalid to address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			c := Contact{Name: "Jane", Email: "jane@example.com", Subject: "Hi", Body: "x"}
			tt.modify(&s, &c)
			_, err := NewMessage(s, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRenderBodyEscapesInput(t *testing.T) {
	body, err := RenderBody(Contact{
		Name:    "<script>alert(1)</script>",
		Email:   "jane@example.com",
		Subject: "Quote & Co",
		Body:    "line one\nline two",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "Quote &amp; Co")
	assert.True(t, strings.Contains(body, "mailto:jane@example.com"))
}
