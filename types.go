package portfolio

import "strings"

// Profile is the singleton owner record shown across the public site.
type Profile struct {
	Name        string
	Title       string
	Bio         string
	Email       string
	Phone       string
	Location    string
	GithubURL   string
	LinkedinURL string
	TwitterURL  string
	ResumeURL   string
	AvatarURL   string
}

type Skill struct {
	ID          int64
	Name        string
	Category    string
	Proficiency int
	Icon        string
	IconURL     string
}

type Project struct {
	ID           int64
	Title        string
	Slug         string
	Description  string
	Content      string
	ImageURL     string
	DemoURL      string
	GithubURL    string
	Technologies string
	Featured     bool
	CreatedAt    string
}

// TechList splits the comma-separated technology string for display.
func (p Project) TechList() []string {
	return ParseTags(p.Technologies)
}

type Blog struct {
	ID        int64
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	ImageURL  string
	Tags      string
	Published bool
	CreatedAt string
	UpdatedAt string
}

// TagList splits the comma-separated tag string for display.
func (b Blog) TagList() []string {
	return ParseTags(b.Tags)
}

// HasTag reports whether the blog carries tag, ignoring case.
func (b Blog) HasTag(tag string) bool {
	for _, t := range b.TagList() {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

type Experience struct {
	ID          int64
	Company     string
	Position    string
	Description string
	StartDate   string
	EndDate     string
	Current     bool
}

type Education struct {
	ID          int64
	Institution string
	Degree      string
	Field       string
	StartDate   string
	EndDate     string
	Description string
}

// Message is a contact-form submission.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Body      string
	Read      bool
	CreatedAt string
}

type Service struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string
	Icon        string
	OrderIndex  int
}

// Admin is the single console account.
type Admin struct {
	ID                int64
	Username          string
	PasswordHash      string
	PasswordChangedAt string
}

// UsesBootstrapPassword reports whether the seeded credential was never rotated.
func (a Admin) UsesBootstrapPassword() bool {
	return a.PasswordChangedAt == ""
}

// StoredFile is an uploaded blob served from /images/{id} or /files/{id}.
type StoredFile struct {
	ID          string
	Filename    string
	ContentType string
	Data        []byte
	CreatedAt   string
}

type EmailSettings struct {
	SMTPServer        string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	NotificationEmail string
	Enabled           bool
}

type SiteContentItem struct {
	Key         string
	Value       string
	Section     string
	Description string
}

// ContentSection groups site-content items for the admin editor.
type ContentSection struct {
	Name  string
	Items []SiteContentItem
}

// SiteContent is the key/value text bag injected into every page.
type SiteContent map[string]string

// Get returns the value for key, or "" when the key is unknown.
func (s SiteContent) Get(key string) string {
	return s[key]
}
