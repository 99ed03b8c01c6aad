package portfolio

import (
	"net"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/eringen/portfolio/mailer"
)

// Config holds all configuration for the portfolio server.
type Config struct {
	Host         string // HOST (default "0.0.0.0")
	Port         string // PORT (default "8080")
	DatabasePath string // DATABASE_URL (default "portfolio.db")
	SiteURL      string // SITE_URL, canonical base for sitemap and feed

	// SessionSecret signs the admin cookie. Left empty, a random key is
	// generated on every start, so sessions do not survive a restart.
	SessionSecret string
	CookieSecure  bool

	AdminPassword string // ADMIN_INITIAL_PASSWORD, only used to seed an empty admin table

	LogLevel string
	LogFile  string

	MaxUploadSize int64
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "portfolio.db"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:" + c.Port
	}
	if c.AdminPassword == "" {
		c.AdminPassword = DefaultAdminPassword
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.MaxUploadSize == 0 {
		c.MaxUploadSize = maxUploadSize
	}
}

// LoadConfig reads configuration from the environment.
func LoadConfig() Config {
	secure, _ := strconv.ParseBool(os.Getenv("COOKIE_SECURE"))
	cfg := Config{
		Host:          EnvOr("HOST", "0.0.0.0"),
		Port:          EnvOr("PORT", "8080"),
		DatabasePath:  EnvOr("DATABASE_URL", "portfolio.db"),
		SiteURL:       os.Getenv("SITE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CookieSecure:  secure,
		AdminPassword: os.Getenv("ADMIN_INITIAL_PASSWORD"),
		LogLevel:      EnvOr("LOG_LEVEL", "info"),
		LogFile:       os.Getenv("LOG_FILE"),
	}
	cfg.setDefaults()
	return cfg
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}

// WithMailer sets the sender used for contact notifications and test mail.
func WithMailer(m mailer.Sender) Option {
	return func(a *App) {
		a.Mailer = m
	}
}

// WithStore injects an already opened store instead of opening
// Config.DatabasePath on Init.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.Store = s
	}
}
