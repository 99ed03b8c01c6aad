// Package views loads the embedded HTML templates and exposes each page as
// a templ.Component.
//
// Public pages are parsed together with templates/layout.html and the shared
// partials; admin pages with templates/admin/layout.html. A page only defines
// the "title" and "content" blocks.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

//go:embed templates
var templateFS embed.FS

// Views is a parsed template set keyed by page name, e.g. "index.html" or
// "admin/projects.html".
type Views struct {
	pages map[string]*template.Template
}

// Load parses every page in the embedded template tree.
func Load() (*Views, error) {
	return LoadFS(templateFS)
}

// LoadFS parses pages from fsys, which must contain a templates/ directory
// with the same layout as the embedded one.
func LoadFS(fsys fs.FS) (*Views, error) {
	v := &Views{pages: make(map[string]*template.Template)}

	partials, err := fs.Glob(fsys, "templates/partials/*.html")
	if err != nil {
		return nil, err
	}

	sets := []struct {
		dir    string
		prefix string
		layout string
		shared []string
	}{
		{"templates/pages", "", "templates/layout.html", partials},
		{"templates/admin", "admin/", "templates/admin/layout.html", nil},
	}
	for _, set := range sets {
		files, err := fs.Glob(fsys, set.dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if file == set.layout {
				continue
			}
			name := set.prefix + path.Base(file)
			patterns := append([]string{set.layout}, set.shared...)
			patterns = append(patterns, file)
			tpl, err := template.New(path.Base(set.layout)).Funcs(Funcs).ParseFS(fsys, patterns...)
			if err != nil {
				return nil, fmt.Errorf("views: parse %s: %w", name, err)
			}
			v.pages[name] = tpl
		}
	}

	errTpl, err := template.New("error.html").Funcs(Funcs).ParseFS(fsys, "templates/error.html")
	if err != nil {
		return nil, fmt.Errorf("views: parse error.html: %w", err)
	}
	v.pages["error.html"] = errTpl
	return v, nil
}

// Page returns the named page rendered with data.
func (v *Views) Page(name string, data any) templ.Component {
	tpl, ok := v.pages[name]
	if !ok {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return fmt.Errorf("views: unknown page %q", name)
		})
	}
	return templ.FromGoHTML(tpl, data)
}

// Names lists the loaded pages in sorted order.
func (v *Views) Names() []string {
	names := make([]string, 0, len(v.pages))
	for n := range v.pages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a page called name was loaded.
func (v *Views) Has(name string) bool {
	_, ok := v.pages[strings.TrimPrefix(name, "/")]
	return ok
}
