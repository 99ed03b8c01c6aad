package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	v, err := Load()
	require.NoError(t, err)

	for _, name := range []string{
		"index.html", "about.html", "projects.html", "project.html",
		"blogs.html", "blog.html", "contact.html", "error.html",
		"admin/login.html", "admin/dashboard.html", "admin/projects.html",
		"admin/project_form.html", "admin/site_content.html",
	} {
		assert.True(t, v.Has(name), name)
	}
	assert.False(t, v.Has("layout.html"))
	assert.False(t, v.Has("admin/layout.html"))
	assert.Contains(t, v.Names(), "admin/email_settings.html")
}

func TestPageUnknown(t *testing.T) {
	v, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = v.Page("missing.html", nil).Render(context.Background(), &buf)
	assert.ErrorContains(t, err, "unknown page")
}

func TestErrorPageRenders(t *testing.T) {
	v, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	data := struct {
		Code  int
		Title string
	}{404, "Not Found"}
	require.NoError(t, v.Page("error.html", data).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "<h1>404</h1>")
}

func TestFuncs(t *testing.T) {
	assert.Equal(t, "2024-05-01", DateOnly("2024-05-01 12:00:00"))
	assert.Equal(t, "short", DateOnly("short"))
	assert.Equal(t, "héllo…", Truncate("héllo world", 5))
	assert.Equal(t, "hi", Truncate("hi", 5))
	assert.Equal(t, "/images/abc?w=640", Thumb("/images/abc", 640))
	assert.Equal(t, "/images/abc?w=1", Thumb("/images/abc?w=1", 640))
	assert.Equal(t, "https://cdn.example.com/x.png", Thumb("https://cdn.example.com/x.png", 640))
	assert.Equal(t, "AL", Initials("ada lovelace byron"))
	assert.Equal(t, 0, Percent(-5))
	assert.Equal(t, 100, Percent(140))
	assert.Equal(t, 42, Percent(42))
}
