package portfolio

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/portfolio/mailer"
)

type messagesPage struct {
	page
	Messages []Message
}

// handleMessages lists messages newest first. Listing leaves the read flags
// untouched.
func (a *App) handleMessages(c echo.Context) error {
	messages, err := a.Store.Messages()
	if err != nil {
		return err
	}
	return a.render(c, "admin/messages.html", messagesPage{page: a.adminPage(c, "Messages"), Messages: messages})
}

func (a *App) handleMessageDelete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/messages")
	}
	return a.afterWrite(c, a.Store.DeleteMessage(id), "delete the message", "/admin/messages")
}

type emailSettingsPage struct {
	page
	Settings EmailSettings
	Success  bool
}

func (a *App) handleEmailSettingsPage(c echo.Context) error {
	es, err := a.Store.EmailSettings()
	if err != nil {
		return err
	}
	return a.render(c, "admin/email_settings.html", emailSettingsPage{page: a.adminPage(c, "Email settings"), Settings: es})
}

func (a *App) handleEmailSettingsSave(c echo.Context) error {
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/email-settings")
	}
	es := bindEmailSettings(form)
	if err := a.Store.UpdateEmailSettings(es); err != nil {
		return a.afterWrite(c, err, "save the email settings", "/admin/email-settings")
	}
	return a.render(c, "admin/email_settings.html", emailSettingsPage{
		page:     a.adminPage(c, "Email settings"),
		Settings: es,
		Success:  true,
	})
}

type emailTestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// handleEmailTest sends a fixed message with the stored settings and reports
// the outcome as JSON.
func (a *App) handleEmailTest(c echo.Context) error {
	es, err := a.Store.EmailSettings()
	if err != nil {
		return c.JSON(http.StatusOK, emailTestResult{Message: "Failed to load email settings: " + err.Error()})
	}
	if !es.Enabled {
		return c.JSON(http.StatusOK, emailTestResult{Message: "Email notifications are disabled"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Minute)
	defer cancel()
	err = a.Mailer.Send(ctx, es.mailerSettings(), mailer.Contact{
		Name:    "Test User",
		Email:   es.NotificationEmail,
		Subject: "Test Email",
		Body:    "This is a test email from your portfolio website. If you received this, your email settings are configured correctly!",
	})
	switch {
	case errors.Is(err, mailer.ErrNotConfigured):
		return c.JSON(http.StatusOK, emailTestResult{Message: "Email settings not configured"})
	case err != nil:
		a.Log.Warn("test email failed", zap.Error(err))
		return c.JSON(http.StatusOK, emailTestResult{Message: "Failed to send test email: " + err.Error()})
	}
	return c.JSON(http.StatusOK, emailTestResult{Success: true, Message: "Test email sent successfully!"})
}

type siteContentPage struct {
	page
	Sections []ContentSection
	Success  bool
}

func (a *App) handleSiteContentPage(c echo.Context) error {
	sections, err := a.Store.SiteContentSections()
	if err != nil {
		return err
	}
	return a.render(c, "admin/site_content.html", siteContentPage{page: a.adminPage(c, "Site content"), Sections: sections})
}

// handleSiteContentSave writes every submitted key back. The store ignores
// keys it does not know, which covers the _csrf field.
func (a *App) handleSiteContentSave(c echo.Context) error {
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/site-content")
	}
	updates := make(map[string]string)
	for _, k := range form.Keys() {
		if k == "_csrf" {
			continue
		}
		updates[k] = form.Raw(k)
	}
	if err := a.Store.UpdateSiteContent(updates); err != nil {
		return a.afterWrite(c, err, "save the site content", "/admin/site-content")
	}
	sections, err := a.Store.SiteContentSections()
	if err != nil {
		return err
	}
	return a.render(c, "admin/site_content.html", siteContentPage{
		page:     a.adminPage(c, "Site content"),
		Sections: sections,
		Success:  true,
	})
}
