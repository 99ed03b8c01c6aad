package portfolio

import (
	"html/template"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/portfolio/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// page is the data every template receives. Page-specific structs embed it.
type page struct {
	Title   string
	Meta    views.PageMeta
	Profile Profile
	Content SiteContent
	CSRF    string
	Flashes []string
	Admin   bool
	Path    string
	JSONLD  template.JS
}

// publicPage loads the profile and site content shared by every public page.
func (a *App) publicPage(c echo.Context, title, description string) (page, error) {
	profile, err := a.Store.Profile()
	if err != nil {
		return page{}, err
	}
	content, err := a.Store.SiteContent()
	if err != nil {
		return page{}, err
	}
	if description == "" {
		description = profile.Bio
	}
	return page{
		Title:   title,
		Profile: profile,
		Content: content,
		CSRF:    CsrfToken(c),
		Path:    c.Request().URL.Path,
		Meta: views.PageMeta{
			Title:       title,
			Description: description,
			URL:         BuildURL(a.Config.SiteURL, c.Request().URL.Path),
			OGType:      "website",
			Image:       absoluteURL(a.Config.SiteURL, profile.AvatarURL),
		},
	}, nil
}

func (a *App) adminPage(c echo.Context, title string) page {
	return page{
		Title:   title,
		CSRF:    CsrfToken(c),
		Flashes: takeFlashes(c),
		Admin:   IsAdmin(c),
		Path:    c.Request().URL.Path,
	}
}

func (a *App) render(c echo.Context, name string, data any) error {
	return Render(c, a.Views.Page(name, data))
}

func absoluteURL(base, ref string) string {
	if ref == "" || ref[0] != '/' {
		return ref
	}
	return BuildURL(base, ref)
}
