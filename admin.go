package portfolio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type loginPage struct {
	page
	Error bool
}

func (a *App) handleLoginPage(c echo.Context) error {
	if IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	return a.render(c, "admin/login.html", loginPage{page: a.adminPage(c, "Login")})
}

func (a *App) handleLogin(c echo.Context) error {
	username := c.FormValue("username")
	admin, err := a.Store.Authenticate(username, c.FormValue("password"))
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			return err
		}
		a.Log.Info("admin login failed", zap.String("username", username), zap.String("ip", c.RealIP()))
		return a.render(c, "admin/login.html", loginPage{page: a.adminPage(c, "Login"), Error: true})
	}
	if err := setAdminSession(c, admin.Username); err != nil {
		return err
	}
	a.Log.Info("admin logged in", zap.String("username", admin.Username), zap.String("ip", c.RealIP()))
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (a *App) handleLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}

type dashboardPage struct {
	page
	BootstrapPassword bool
	ProjectCount      int
	BlogCount         int
	SkillCount        int
	MessageCount      int
	UnreadCount       int
	Messages          []Message
}

const dashboardMessages = 5

func (a *App) handleDashboard(c echo.Context) error {
	counts, err := a.Store.Counts("projects", "blogs", "skills", "messages")
	if err != nil {
		return err
	}
	unread, err := a.Store.UnreadMessageCount()
	if err != nil {
		return err
	}
	messages, err := a.Store.Messages()
	if err != nil {
		return err
	}
	if len(messages) > dashboardMessages {
		messages = messages[:dashboardMessages]
	}
	data := dashboardPage{
		page:         a.adminPage(c, "Dashboard"),
		ProjectCount: counts["projects"],
		BlogCount:    counts["blogs"],
		SkillCount:   counts["skills"],
		MessageCount: counts["messages"],
		UnreadCount:  unread,
		Messages:     messages,
	}
	if admin, err := a.Store.AdminByUsername(AdminUser(c)); err == nil {
		data.BootstrapPassword = admin.UsesBootstrapPassword()
	}
	return a.render(c, "admin/dashboard.html", data)
}

type profilePage struct {
	page
	Profile Profile
	Success bool
}

func (a *App) handleProfilePage(c echo.Context) error {
	profile, err := a.Store.Profile()
	if err != nil {
		return err
	}
	return a.render(c, "admin/profile.html", profilePage{page: a.adminPage(c, "Profile"), Profile: profile})
}

func (a *App) handleProfileSave(c echo.Context) error {
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/profile")
	}
	pf := bindProfile(form)
	profile := pf.Profile
	profile.AvatarURL = a.uploadURL(pf.Avatar, "/images/", profile.AvatarURL)
	profile.ResumeURL = a.uploadURL(pf.Resume, "/files/", profile.ResumeURL)

	data := profilePage{page: a.adminPage(c, "Profile"), Profile: profile}
	if err := a.Store.UpdateProfile(profile); err != nil {
		a.Log.Error("update profile", zap.Error(err))
		data.Flashes = append(data.Flashes, "Could not save the profile: "+err.Error())
		return a.render(c, "admin/profile.html", data)
	}
	data.Success = true
	return a.render(c, "admin/profile.html", data)
}

type passwordPage struct {
	page
	Error   string
	Success bool
}

func (a *App) handlePasswordPage(c echo.Context) error {
	return a.render(c, "admin/password.html", passwordPage{page: a.adminPage(c, "Password")})
}

func (a *App) handlePasswordSave(c echo.Context) error {
	data := passwordPage{page: a.adminPage(c, "Password")}
	current := c.FormValue("current_password")
	next := c.FormValue("new_password")
	if next != c.FormValue("confirm_password") {
		data.Error = "The new passwords do not match"
		return a.render(c, "admin/password.html", data)
	}
	err := a.Store.ChangeAdminPassword(AdminUser(c), current, next)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		data.Error = "The current password is wrong"
	case errors.Is(err, ErrPasswordTooShort):
		data.Error = "The new password must be at least " + strconv.Itoa(MinPasswordLength) + " characters"
	case err != nil:
		return err
	default:
		a.Log.Info("admin password changed", zap.String("username", AdminUser(c)))
		data.Success = true
	}
	return a.render(c, "admin/password.html", data)
}

type skillsPage struct {
	page
	Skills []Skill
}

func (a *App) handleSkills(c echo.Context) error {
	skills, err := a.Store.Skills()
	if err != nil {
		return err
	}
	return a.render(c, "admin/skills.html", skillsPage{page: a.adminPage(c, "Skills"), Skills: skills})
}

func (a *App) handleSkillAdd(c echo.Context) error {
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/skills")
	}
	sf := bindSkill(form)
	skill := sf.Skill
	skill.IconURL = a.uploadURL(sf.Icon, "/images/", skill.IconURL)
	_, err = a.Store.AddSkill(skill)
	return a.afterWrite(c, err, "save the skill", "/admin/skills")
}

func (a *App) handleSkillDelete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/skills")
	}
	return a.afterWrite(c, a.Store.DeleteSkill(id), "delete the skill", "/admin/skills")
}

// afterWrite redirects to the list page. A failed write is logged and shown
// there as a flash message.
func (a *App) afterWrite(c echo.Context, err error, action, list string) error {
	if err != nil {
		a.Log.Error("admin write failed", zap.String("action", action), zap.String("path", c.Request().URL.Path), zap.Error(err))
		addFlash(c, "Could not "+action+": "+err.Error())
	}
	return c.Redirect(http.StatusSeeOther, list)
}

// formError handles a body that could not be decoded.
func (a *App) formError(c echo.Context, err error, list string) error {
	return a.afterWrite(c, err, "read the submitted form", list)
}

func paramID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
