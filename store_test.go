package portfolio

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "portfolio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

var seededCounts = map[string]int{
	"profile":    1,
	"admin":      1,
	"skills":     12,
	"projects":   2,
	"blogs":      2,
	"experience": 2,
	"education":  1,
	"services":   3,
}

func tableNames(m map[string]int) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	return names
}

func TestNewStoreSeedsDefaults(t *testing.T) {
	s := newTestStore(t)

	counts, err := s.Counts(tableNames(seededCounts)...)
	require.NoError(t, err)
	assert.Equal(t, seededCounts, counts)

	p, err := s.Profile()
	require.NoError(t, err)
	assert.NotEmpty(t, p.Name)

	content, err := s.SiteContent()
	require.NoError(t, err)
	assert.Equal(t, "Tech Stack", content.Get("tech_title"))
	assert.Equal(t, "", content.Get("no_such_key"))
}

func TestNewStoreIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")

	s, err := NewStore(path)
	require.NoError(t, err)
	_, err = s.AddSkill(Skill{Name: "Zig", Category: "Backend", Proficiency: 40})
	require.NoError(t, err)
	require.NoError(t, s.UpdateSiteContent(map[string]string{"tech_title": "Tools"}))
	require.NoError(t, s.Close())

	s, err = NewStore(path)
	require.NoError(t, err)
	defer s.Close()

	counts, err := s.Counts(tableNames(seededCounts)...)
	require.NoError(t, err)
	want := map[string]int{}
	for k, v := range seededCounts {
		want[k] = v
	}
	want["skills"]++
	assert.Equal(t, want, counts)

	content, err := s.SiteContent()
	require.NoError(t, err)
	assert.Equal(t, "Tools", content.Get("tech_title"), "reseeding must not overwrite edited content")
}

func TestAddProjectRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddProject(Project{
		Title:        "Crème Brûlée Tracker!",
		Description:  "Tracks desserts",
		Content:      "## Hi",
		Technologies: "Go, SQLite",
		Featured:     true,
	})
	require.NoError(t, err)

	got, err := s.ProjectBySlug("creme-brulee-tracker")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Crème Brûlée Tracker!", got.Title)
	assert.Equal(t, "Tracks desserts", got.Description)
	assert.True(t, got.Featured)
	assert.Equal(t, []string{"Go", "SQLite"}, got.TechList())
	assert.NotEmpty(t, got.CreatedAt)

	byID, err := s.ProjectByID(id)
	require.NoError(t, err)
	assert.Equal(t, got, byID)
}

func TestAddProjectDuplicateTitleFails(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddProject(Project{Title: "Same", Description: "a"})
	require.NoError(t, err)
	_, err = s.AddProject(Project{Title: "same!", Description: "b"})
	assert.ErrorContains(t, err, "add project: ")
}

func TestAddProjectNonLatinTitles(t *testing.T) {
	s := newTestStore(t)

	for _, title := range []string{"日本語", "Привет"} {
		id, err := s.AddProject(Project{Title: title, Description: "x"})
		require.NoError(t, err, title)
		p, err := s.ProjectByID(id)
		require.NoError(t, err)
		require.NotEmpty(t, p.Slug)

		bySlug, err := s.ProjectBySlug(p.Slug)
		require.NoError(t, err)
		assert.Equal(t, title, bySlug.Title)
	}
}

func TestUpdateProjectRegeneratesSlug(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddProject(Project{Title: "Old Name", Description: "x"})
	require.NoError(t, err)
	require.NoError(t, s.UpdateProject(id, Project{Title: "New Name", Description: "y"}))

	_, err = s.ProjectBySlug("old-name")
	assert.ErrorIs(t, err, ErrNotFound)
	p, err := s.ProjectBySlug("new-name")
	require.NoError(t, err)
	assert.Equal(t, "y", p.Description)
	assert.False(t, p.Featured)
}

func TestFeaturedProjectsLimit(t *testing.T) {
	s := newTestStore(t)
	for _, title := range []string{"A", "B", "C", "D"} {
		_, err := s.AddProject(Project{Title: title, Description: title, Featured: true})
		require.NoError(t, err)
	}
	featured, err := s.FeaturedProjects()
	require.NoError(t, err)
	assert.Len(t, featured, 4)
}

func TestBlogBySlugPublishedOnly(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddBlog(Blog{Title: "Draft Post", Excerpt: "e", Content: "c"})
	require.NoError(t, err)

	_, err = s.BlogBySlug("draft-post")
	assert.ErrorIs(t, err, ErrNotFound)

	b, err := s.BlogByID(id)
	require.NoError(t, err)
	assert.False(t, b.Published)

	require.NoError(t, s.UpdateBlog(id, Blog{Title: "Draft Post", Excerpt: "e", Content: "c", Published: true}))
	b, err = s.BlogBySlug("draft-post")
	require.NoError(t, err)
	assert.True(t, b.Published)

	recent, err := s.RecentBlogs(1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestDeleteServiceLeavesOtherEntities(t *testing.T) {
	s := newTestStore(t)

	services, err := s.Services()
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, "UI/UX Design", services[0].Name)

	require.NoError(t, s.DeleteService(services[0].ID))

	_, err = s.ServiceByID(services[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	counts, err := s.Counts(tableNames(seededCounts)...)
	require.NoError(t, err)
	for table, n := range seededCounts {
		if table == "services" {
			n--
		}
		assert.Equal(t, n, counts[table], table)
	}
}

func TestExperienceAndEducationCRUD(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddExperience(Experience{Company: "Acme", Position: "Dev", StartDate: "2024-01", Current: true})
	require.NoError(t, err)
	ex, err := s.ExperienceByID(id)
	require.NoError(t, err)
	assert.True(t, ex.Current)
	assert.Empty(t, ex.EndDate)

	require.NoError(t, s.UpdateExperience(id, Experience{Company: "Acme", Position: "Lead", StartDate: "2024-01", EndDate: "2025-01"}))
	ex, err = s.ExperienceByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Lead", ex.Position)
	assert.False(t, ex.Current)
	require.NoError(t, s.DeleteExperience(id))
	_, err = s.ExperienceByID(id)
	assert.ErrorIs(t, err, ErrNotFound)

	eid, err := s.AddEducation(Education{Institution: "MIT", Degree: "MSc", Field: "CS", StartDate: "2020"})
	require.NoError(t, err)
	ed, err := s.EducationByID(eid)
	require.NoError(t, err)
	assert.Equal(t, "MIT", ed.Institution)
	require.NoError(t, s.DeleteEducation(eid))
	_, err = s.EducationByID(eid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessages(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Ann", "Bob"} {
		_, err := s.AddMessage(Message{Name: name, Email: name + "@example.com", Subject: "Hi", Body: "Hello"})
		require.NoError(t, err)
	}
	n, err := s.UnreadMessageCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	msgs, err := s.Messages()
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Bob", msgs[0].Name, "newest first")
	assert.False(t, msgs[0].Read)

	require.NoError(t, s.DeleteMessage(msgs[0].ID))
	msgs, err = s.Messages()
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	n, err = s.UnreadMessageCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFiles(t *testing.T) {
	s := newTestStore(t)

	data := []byte("%PDF-1.4 resume")
	require.NoError(t, s.SaveFile(StoredFile{ID: "f1", Filename: "cv.pdf", ContentType: "application/pdf", Data: data}))

	f, err := s.File("f1")
	require.NoError(t, err)
	assert.Equal(t, data, f.Data)
	assert.Equal(t, "cv.pdf", f.Filename)
	assert.NotEmpty(t, f.CreatedAt)

	_, err = s.File("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveFileDuplicateIDNamesOperation(t *testing.T) {
	s := newTestStore(t)

	f := StoredFile{ID: "dup", Filename: "a.png", ContentType: "image/png", Data: []byte("x")}
	require.NoError(t, s.SaveFile(f))
	err := s.SaveFile(f)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "save file: "), err.Error())
	assert.NoError(t, wrapErr("save file", nil))
}

func TestEmailSettings(t *testing.T) {
	s := newTestStore(t)

	es, err := s.EmailSettings()
	require.NoError(t, err)
	assert.Equal(t, EmailSettings{SMTPServer: "smtp.gmail.com", SMTPPort: 587}, es)

	want := EmailSettings{
		SMTPServer:        "smtp.example.com",
		SMTPPort:          2525,
		SMTPUsername:      "me@example.com",
		SMTPPassword:      "pw",
		NotificationEmail: "inbox@example.com",
		Enabled:           true,
	}
	require.NoError(t, s.UpdateEmailSettings(want))
	got, err := s.EmailSettings()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSiteContentSections(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpdateSiteContent(map[string]string{"hero_greeting": "Hey", "not_a_key": "x"}))
	content, err := s.SiteContent()
	require.NoError(t, err)
	assert.Equal(t, "Hey", content.Get("hero_greeting"))
	_, ok := content["not_a_key"]
	assert.False(t, ok)

	sections, err := s.SiteContentSections()
	require.NoError(t, err)
	require.NotEmpty(t, sections)
	total := 0
	for i, sec := range sections {
		if i > 0 {
			assert.Less(t, sections[i-1].Name, sec.Name)
		}
		total += len(sec.Items)
	}
	assert.Equal(t, len(content), total)
}

func TestCountsRejectsUnknownTable(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Counts("sqlite_master")
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)

	admin, err := s.Authenticate(DefaultAdminUsername, DefaultAdminPassword)
	require.NoError(t, err)
	assert.True(t, admin.UsesBootstrapPassword())

	_, err = s.Authenticate(DefaultAdminUsername, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate("nobody", DefaultAdminPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.ErrorIs(t, s.ChangeAdminPassword(DefaultAdminUsername, "wrong", "long-enough-1"), ErrInvalidCredentials)
	assert.ErrorIs(t, s.ChangeAdminPassword(DefaultAdminUsername, DefaultAdminPassword, "short"), ErrPasswordTooShort)
	require.NoError(t, s.ChangeAdminPassword(DefaultAdminUsername, DefaultAdminPassword, "long-enough-1"))

	admin, err = s.Authenticate(DefaultAdminUsername, "long-enough-1")
	require.NoError(t, err)
	assert.False(t, admin.UsesBootstrapPassword())
	_, err = s.Authenticate(DefaultAdminUsername, DefaultAdminPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.ErrorIs(t, s.ResetAdminPassword("nobody", "long-enough-2"), ErrNotFound)
}

func TestWithAdminPassword(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "p.db"), WithAdminPassword("initial-secret"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Authenticate(DefaultAdminUsername, "initial-secret")
	assert.NoError(t, err)
}
