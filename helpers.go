package portfolio

import (
	"encoding/json"
	"html/template"
	"net/url"
	"path"
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify converts a title to a URL-safe slug. Combining marks are dropped,
// the rest is transliterated to ASCII ("Straße" becomes "strasse", Cyrillic
// and CJK are romanised), then everything outside [a-z0-9] collapses to "-".
func Slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err == nil {
		s = folded
	}
	s = strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ParseTags splits a comma-separated string ("Rust, Web, Actix") into trimmed,
// non-empty items.
func ParseTags(s string) []string {
	return FilterEmpty(strings.Split(s, ","))
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// BuildURL joins a base URL with path segments.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	return u.String()
}

// PersonJsonLD returns a schema.org Person block for the profile.
func PersonJsonLD(p Profile, siteURL string) template.JS {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Name,
		"jobTitle": p.Title,
		"url":      BuildURL(siteURL),
	}
	var sameAs []string
	for _, u := range []string{p.GithubURL, p.LinkedinURL, p.TwitterURL} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	return marshalJsonLD(data)
}

// BlogPostingJsonLD returns a schema.org BlogPosting block for a blog.
func BlogPostingJsonLD(b Blog, author, siteURL string) template.JS {
	postURL := BuildURL(siteURL, "blogs", b.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      b.Title,
		"description":   b.Excerpt,
		"datePublished": b.CreatedAt,
		"dateModified":  b.UpdatedAt,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  author,
		}
	}
	if tags := b.TagList(); len(tags) > 0 {
		data["keywords"] = strings.Join(tags, ", ")
	}
	return marshalJsonLD(data)
}

func marshalJsonLD(data map[string]interface{}) template.JS {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return template.JS(b)
}
