// Package portfolio is a personal portfolio site with a single-admin content
// console. Pages are rendered from embedded templates, every entity lives in
// one SQLite file, and contact submissions can be forwarded by SMTP.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/portfolio/mailer"
	"github.com/eringen/portfolio/views"
)

// App wires together the store, views, mailer and HTTP server.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Views  *views.Views
	Mailer mailer.Sender
	Log    *zap.Logger

	sessionKey    []byte
	ownsStore     bool
	notifications sync.WaitGroup
}

// New creates an App. Call Init before serving.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Echo:   e,
		Mailer: &mailer.SMTP{Timeout: 30 * time.Second},
		Log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init opens the store (unless one was injected), parses the templates and
// registers middleware and routes.
func (a *App) Init() error {
	if a.Store == nil {
		store, err := NewStore(a.Config.DatabasePath, WithAdminPassword(a.Config.AdminPassword))
		if err != nil {
			return fmt.Errorf("portfolio: open store: %w", err)
		}
		a.Store = store
		a.ownsStore = true
	}

	v, err := views.Load()
	if err != nil {
		return fmt.Errorf("portfolio: load views: %w", err)
	}
	a.Views = v
	a.Log.Debug("templates loaded", zap.Strings("pages", v.Names()))

	if a.Config.SessionSecret != "" {
		a.sessionKey = []byte(a.Config.SessionSecret)
	} else {
		a.sessionKey = securecookie.GenerateRandomKey(64)
		if a.sessionKey == nil {
			return errors.New("portfolio: generate session key")
		}
	}

	a.warnBootstrapPassword()
	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

func (a *App) warnBootstrapPassword() {
	admin, err := a.Store.AdminByUsername(DefaultAdminUsername)
	if err != nil {
		return
	}
	if admin.UsesBootstrapPassword() {
		a.Log.Warn("admin account still uses the initial password; change it at /admin/password",
			zap.String("username", admin.Username))
	}
}

// Start listens on Config.Addr until Shutdown is called.
func (a *App) Start() error {
	a.Log.Info("listening", zap.String("addr", a.Config.Addr()))
	if err := a.Echo.Start(a.Config.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Close waits for pending notification sends and closes the store if the
// App opened it.
func (a *App) Close() error {
	a.notifications.Wait()
	if a.ownsStore && a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.StaticFS("/static", echo.MustSubFS(StaticAssets, "static"))
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/images/:id", a.handleImage)
	e.GET("/files/:id", a.handleFile)

	e.GET("/", a.handleHome)
	e.GET("/about", a.handleAbout)
	e.GET("/projects", a.handleProjects)
	e.GET("/projects/:slug", a.handleProject)
	e.GET("/blogs", a.handleBlogs)
	e.GET("/blogs/:slug", a.handleBlog)
	e.GET("/contact", a.handleContact)
	e.POST("/contact", a.handleContactSubmit)

	e.GET("/admin/login", a.handleLoginPage)
	e.POST("/admin/login", a.handleLogin)
	e.GET("/admin/logout", a.handleLogout)
	e.POST("/admin/logout", a.handleLogout)

	g := e.Group("/admin")
	g.GET("", a.handleDashboard)
	g.GET("/profile", a.handleProfilePage)
	g.POST("/profile", a.handleProfileSave)
	g.GET("/password", a.handlePasswordPage)
	g.POST("/password", a.handlePasswordSave)

	g.GET("/skills", a.handleSkills)
	g.POST("/skills/add", a.handleSkillAdd)
	g.POST("/skills/delete/:id", a.handleSkillDelete)

	for _, r := range a.crudResources() {
		r.register(g)
	}

	g.GET("/messages", a.handleMessages)
	g.POST("/messages/delete/:id", a.handleMessageDelete)

	g.GET("/email-settings", a.handleEmailSettingsPage)
	g.POST("/email-settings", a.handleEmailSettingsSave)
	g.POST("/email-settings/test", a.handleEmailTest)
	g.GET("/site-content", a.handleSiteContentPage)
	g.POST("/site-content", a.handleSiteContentSave)
	g.POST("/upload-image", a.handleUploadImage)
}
