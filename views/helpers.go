package views

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Funcs are available to every page template.
var Funcs = template.FuncMap{
	"pathEscape": url.PathEscape,
	"year":       func() int { return time.Now().Year() },
	"date":       DateOnly,
	"truncate":   Truncate,
	"thumb":      Thumb,
	"initials":   Initials,
	"pct":        Percent,
}

// DateOnly trims a "2006-01-02 15:04:05" timestamp to its date.
func DateOnly(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "…"
}

// Thumb asks the image endpoint for a downscaled copy of stored images.
// Other URLs are returned unchanged.
func Thumb(src string, width int) string {
	if !strings.HasPrefix(src, "/images/") || strings.Contains(src, "?") {
		return src
	}
	return src + "?w=" + strconv.Itoa(width)
}

// Initials returns up to two uppercase initials for an avatar fallback.
func Initials(name string) string {
	var b strings.Builder
	for _, f := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(f)
		b.WriteString(strings.ToUpper(string(r)))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// Percent clamps a proficiency value into 0..100 for CSS widths.
func Percent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
