// Package markdown converts the markdown bodies of projects and blog posts
// into HTML for the detail pages.
//
// The supported subset is headings (#, ##, ###), paragraphs, fenced code,
// block quotes, ordered and unordered lists, pipe tables, horizontal rules,
// and the inline forms bold, italic, code, links and images. Raw HTML in the
// source is always escaped.
package markdown

import (
	"html"
	"html/template"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	reStrong     = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	reEm         = regexp.MustCompile(`\*([^*]+)\*|\b_([^_]+)_\b`)
	reCode       = regexp.MustCompile("`([^`]+)`")
	reLink       = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]*)\)(\^)?`)
	reImage      = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]*)\)`)
	reOrderedItm = regexp.MustCompile(`^\d+\.\s+`)
)

type block int

const (
	none block = iota
	para
	quote
	ulist
	olist
	table
	code
)

var closers = map[block]string{
	para:  "</p>",
	quote: "</blockquote>",
	ulist: "</ul>",
	olist: "</ol>",
	code:  "</code></pre>",
}

type renderer struct {
	b       strings.Builder
	open    block
	tbody   bool
	lazyImg int
}

// ToHTML renders md. The result is safe to place in a template.
func ToHTML(md string) template.HTML {
	return template.HTML(Render(md))
}

// Render renders md and returns the HTML as a string.
func Render(md string) string {
	r := &renderer{}
	for _, raw := range strings.Split(md, "\n") {
		r.line(strings.TrimRight(raw, "\r"))
	}
	r.close()
	return r.b.String()
}

func (r *renderer) close() {
	if r.open == table {
		if r.tbody {
			r.b.WriteString("</tbody>")
		}
		r.b.WriteString("</table>")
		r.tbody = false
	} else {
		r.b.WriteString(closers[r.open])
	}
	r.open = none
}

// enter closes the current block unless it is already of kind k.
// It reports whether a new block was started.
func (r *renderer) enter(k block, tag string) bool {
	if r.open == k {
		return false
	}
	r.close()
	r.open = k
	r.b.WriteString(tag)
	return true
}

func (r *renderer) line(line string) {
	if strings.HasPrefix(line, "```") {
		if r.open == code {
			r.close()
			return
		}
		r.close()
		r.open = code
		if lang := strings.TrimSpace(line[3:]); lang != "" {
			r.b.WriteString(`<pre class="code-block"><code class="language-` + html.EscapeString(lang) + `">`)
		} else {
			r.b.WriteString(`<pre class="code-block"><code>`)
		}
		return
	}
	if r.open == code {
		r.b.WriteString(html.EscapeString(line))
		r.b.WriteByte('\n')
		return
	}

	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		r.close()
	case strings.HasPrefix(line, "---"):
		r.close()
		r.b.WriteString("<hr>")
	case heading(line) > 0:
		n := heading(line)
		r.close()
		tag := "h" + strconv.Itoa(n)
		r.b.WriteString("<" + tag + ">" + r.inline(strings.TrimSpace(line[n+1:])) + "</" + tag + ">")
	case strings.HasPrefix(line, "|"):
		r.tableRow(line)
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		r.enter(ulist, "<ul>")
		r.b.WriteString("<li>" + r.inline(strings.TrimSpace(line[2:])) + "</li>")
	case reOrderedItm.MatchString(line):
		r.enter(olist, "<ol>")
		r.b.WriteString("<li>" + r.inline(strings.TrimSpace(reOrderedItm.ReplaceAllString(line, ""))) + "</li>")
	case strings.HasPrefix(line, "> "):
		if !r.enter(quote, "<blockquote>") {
			r.b.WriteByte(' ')
		}
		r.b.WriteString(r.inline(strings.TrimSpace(line[2:])))
	default:
		if !r.enter(para, "<p>") {
			r.b.WriteByte(' ')
		}
		r.b.WriteString(r.inline(trimmed))
	}
}

func heading(line string) int {
	for n := 1; n <= 3; n++ {
		if strings.HasPrefix(line, strings.Repeat("#", n)+" ") {
			return n
		}
	}
	return 0
}

func (r *renderer) tableRow(line string) {
	cells := strings.Split(strings.Trim(strings.TrimSpace(line), "|"), "|")
	if r.enter(table, "<table><thead><tr>") {
		for _, c := range cells {
			r.b.WriteString("<th>" + r.inline(strings.TrimSpace(c)) + "</th>")
		}
		r.b.WriteString("</tr></thead>")
		return
	}
	if !r.tbody {
		r.b.WriteString("<tbody>")
		r.tbody = true
	}
	if separatorRow(cells) {
		return
	}
	r.b.WriteString("<tr>")
	for _, c := range cells {
		r.b.WriteString("<td>" + r.inline(strings.TrimSpace(c)) + "</td>")
	}
	r.b.WriteString("</tr>")
}

func separatorRow(cells []string) bool {
	for _, c := range cells {
		if strings.Trim(strings.TrimSpace(c), "-:") != "" {
			return false
		}
	}
	return true
}

// inline formats one line of text. Code spans are cut out first so nothing
// inside backticks is formatted, and emphasis is applied only to text that
// lies outside generated tags.
func (r *renderer) inline(s string) string {
	out := html.EscapeString(s)

	var spans []string
	out = reCode.ReplaceAllStringFunc(out, func(m string) string {
		spans = append(spans, "<code>"+reCode.FindStringSubmatch(m)[1]+"</code>")
		return "\x00" + strconv.Itoa(len(spans)-1) + "\x00"
	})

	out = reImage.ReplaceAllStringFunc(out, func(m string) string {
		sub := reImage.FindStringSubmatch(m)
		src := SafeURL(sub[2])
		if src == "" {
			return sub[1]
		}
		r.lazyImg++
		loading := ""
		if r.lazyImg > 1 {
			loading = ` loading="lazy"`
		}
		return `<img src="` + src + `" alt="` + sub[1] + `"` + loading + ` decoding="async">`
	})
	out = reLink.ReplaceAllStringFunc(out, func(m string) string {
		sub := reLink.FindStringSubmatch(m)
		href := SafeURL(sub[2])
		if href == "" {
			return sub[1]
		}
		attrs := ""
		if sub[3] == "^" {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `"` + attrs + `>` + sub[1] + `</a>`
	})

	out = outsideTags(out, func(seg string) string {
		seg = reStrong.ReplaceAllString(seg, "<strong>$2</strong>")
		return reEm.ReplaceAllStringFunc(seg, func(m string) string {
			sub := reEm.FindStringSubmatch(m)
			return "<em>" + sub[1] + sub[2] + "</em>"
		})
	})

	for i, span := range spans {
		out = strings.Replace(out, "\x00"+strconv.Itoa(i)+"\x00", span, 1)
	}
	return out
}

// outsideTags applies fn to the text between HTML tags in s.
func outsideTags(s string, fn func(string) string) string {
	var b strings.Builder
	for s != "" {
		lt := strings.IndexByte(s, '<')
		if lt < 0 {
			b.WriteString(fn(s))
			break
		}
		b.WriteString(fn(s[:lt]))
		gt := strings.IndexByte(s[lt:], '>')
		if gt < 0 {
			b.WriteString(s[lt:])
			break
		}
		b.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return b.String()
}

// SafeURL returns raw escaped for an attribute when it is a relative URL or
// uses http, https, mailto or tel. Anything else yields "".
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	u, err := url.Parse(val)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	}
	return ""
}
