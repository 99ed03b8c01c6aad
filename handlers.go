package portfolio

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/portfolio/mailer"
	"github.com/eringen/portfolio/markdown"
)

const recentBlogCount = 3

type homePage struct {
	page
	Services   []Service
	TechItems  []string
	Skills     []Skill
	Featured   []Project
	Experience []Experience
	Blogs      []Blog
}

func (a *App) handleHome(c echo.Context) error {
	p, err := a.publicPage(c, "Home", "")
	if err != nil {
		return err
	}
	p.JSONLD = PersonJsonLD(p.Profile, a.Config.SiteURL)
	data := homePage{page: p}
	if data.Services, err = a.Store.Services(); err != nil {
		return err
	}
	if data.Skills, err = a.Store.Skills(); err != nil {
		return err
	}
	if data.Featured, err = a.Store.FeaturedProjects(); err != nil {
		return err
	}
	if data.Experience, err = a.Store.Experience(); err != nil {
		return err
	}
	if data.Blogs, err = a.Store.RecentBlogs(recentBlogCount); err != nil {
		return err
	}
	data.TechItems = ParseTags(p.Content.Get("tech_items"))
	return a.render(c, "index.html", data)
}

type aboutPage struct {
	page
	Skills     []Skill
	Experience []Experience
	Education  []Education
}

func (a *App) handleAbout(c echo.Context) error {
	p, err := a.publicPage(c, "About", "")
	if err != nil {
		return err
	}
	p.JSONLD = PersonJsonLD(p.Profile, a.Config.SiteURL)
	data := aboutPage{page: p}
	if data.Skills, err = a.Store.Skills(); err != nil {
		return err
	}
	if data.Experience, err = a.Store.Experience(); err != nil {
		return err
	}
	if data.Education, err = a.Store.Education(); err != nil {
		return err
	}
	return a.render(c, "about.html", data)
}

type projectsPage struct {
	page
	Projects []Project
}

func (a *App) handleProjects(c echo.Context) error {
	p, err := a.publicPage(c, "Projects", "")
	if err != nil {
		return err
	}
	projects, err := a.Store.Projects()
	if err != nil {
		return err
	}
	return a.render(c, "projects.html", projectsPage{page: p, Projects: projects})
}

type projectPage struct {
	page
	Project Project
	Body    template.HTML
}

func (a *App) handleProject(c echo.Context) error {
	project, err := a.Store.ProjectBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, "Project not found")
		}
		return err
	}
	p, err := a.publicPage(c, project.Title, project.Description)
	if err != nil {
		return err
	}
	p.Meta.OGType = "article"
	if project.ImageURL != "" {
		p.Meta.Image = absoluteURL(a.Config.SiteURL, project.ImageURL)
	}
	return a.render(c, "project.html", projectPage{
		page:    p,
		Project: project,
		Body:    markdown.ToHTML(project.Content),
	})
}

type blogsPage struct {
	page
	Blogs     []Blog
	Tags      []string
	ActiveTag string
}

func (a *App) handleBlogs(c echo.Context) error {
	p, err := a.publicPage(c, "Blog", "")
	if err != nil {
		return err
	}
	blogs, err := a.Store.PublishedBlogs()
	if err != nil {
		return err
	}
	tag := strings.TrimSpace(c.QueryParam("tag"))
	data := blogsPage{page: p, Tags: blogTags(blogs), ActiveTag: tag}
	if tag == "" {
		data.Blogs = blogs
	} else {
		for _, b := range blogs {
			if b.HasTag(tag) {
				data.Blogs = append(data.Blogs, b)
			}
		}
	}
	return a.render(c, "blogs.html", data)
}

// blogTags returns the distinct tags across blogs, compared without regard
// to case and sorted. The first spelling seen wins.
func blogTags(blogs []Blog) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	var tags []string
	for _, b := range blogs {
		for _, t := range b.TagList() {
			if seen.Add(strings.ToLower(t)) {
				tags = append(tags, t)
			}
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})
	return tags
}

type blogPage struct {
	page
	Blog Blog
	Body template.HTML
}

func (a *App) handleBlog(c echo.Context) error {
	blog, err := a.Store.BlogBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, "Blog post not found")
		}
		return err
	}
	p, err := a.publicPage(c, blog.Title, blog.Excerpt)
	if err != nil {
		return err
	}
	p.Meta.OGType = "article"
	if blog.ImageURL != "" {
		p.Meta.Image = absoluteURL(a.Config.SiteURL, blog.ImageURL)
	}
	p.JSONLD = BlogPostingJsonLD(blog, p.Profile.Name, a.Config.SiteURL)
	return a.render(c, "blog.html", blogPage{
		page: p,
		Blog: blog,
		Body: markdown.ToHTML(blog.Content),
	})
}

type contactPage struct {
	page
	Success bool
}

func (a *App) handleContact(c echo.Context) error {
	p, err := a.publicPage(c, "Contact", "")
	if err != nil {
		return err
	}
	return a.render(c, "contact.html", contactPage{page: p})
}

// contactFields must all be present in a submission. Empty values are kept.
var contactFields = []string{"name", "email", "subject", "message"}

func (a *App) handleContactSubmit(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form body")
	}
	for _, k := range contactFields {
		if _, ok := params[k]; !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing form field: "+k)
		}
	}
	msg := Message{
		Name:    params.Get("name"),
		Email:   params.Get("email"),
		Subject: params.Get("subject"),
		Body:    params.Get("message"),
	}
	if _, err := a.Store.AddMessage(msg); err != nil {
		return err
	}
	a.notify(msg)

	p, err := a.publicPage(c, "Contact", "")
	if err != nil {
		return err
	}
	return a.render(c, "contact.html", contactPage{page: p, Success: true})
}

// notify forwards msg by email in the background when notifications are
// enabled. The outcome is only logged.
func (a *App) notify(msg Message) {
	es, err := a.Store.EmailSettings()
	if err != nil {
		a.Log.Error("load email settings", zap.Error(err))
		return
	}
	if !es.Enabled {
		return
	}
	a.notifications.Add(1)
	go func() {
		defer a.notifications.Done()
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		err := a.Mailer.Send(ctx, es.mailerSettings(), mailer.Contact{
			Name:    msg.Name,
			Email:   msg.Email,
			Subject: msg.Subject,
			Body:    msg.Body,
		})
		if err != nil {
			a.Log.Warn("contact notification failed", zap.String("from", msg.Email), zap.Error(err))
			return
		}
		a.Log.Info("contact notification sent", zap.String("from", msg.Email))
	}()
}

func (es EmailSettings) mailerSettings() mailer.Settings {
	return mailer.Settings{
		Host:      es.SMTPServer,
		Port:      es.SMTPPort,
		Username:  es.SMTPUsername,
		Password:  es.SMTPPassword,
		Recipient: es.NotificationEmail,
		Enabled:   es.Enabled,
	}
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /admin\n\nSitemap: " + BuildURL(a.Config.SiteURL, "sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

type errorPage struct {
	Code  int
	Title string
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	code := http.StatusInternalServerError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code == http.StatusNotFound || code >= 500 {
		if code >= 500 {
			a.Log.Error("server error",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err))
		}
		if a.Views != nil && a.Views.Has("error.html") {
			_ = RenderStatus(c, code, a.Views.Page("error.html", errorPage{Code: code, Title: http.StatusText(code)}))
			return
		}
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
