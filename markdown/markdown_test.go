package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"h1", "# Title", "<h1>Title</h1>"},
		{"h2", "## Section", "<h2>Section</h2>"},
		{"h3", "### Sub", "<h3>Sub</h3>"},
		{"paragraph joins lines", "one\ntwo", "<p>one two</p>"},
		{"two paragraphs", "one\n\ntwo", "<p>one</p><p>two</p>"},
		{"unordered", "- a\n- b", "<ul><li>a</li><li>b</li></ul>"},
		{"ordered", "1. a\n2. b", "<ol><li>a</li><li>b</li></ol>"},
		{"quote", "> said\n> twice", "<blockquote>said twice</blockquote>"},
		{"rule", "---", "<hr>"},
		{"list then text", "- a\n\ntext", "<ul><li>a</li></ul><p>text</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.in))
		})
	}
}

func TestRenderCodeFence(t *testing.T) {
	got := Render("```go\nfmt.Println(\"<hi>\")\n**x**\n```\nafter")
	assert.Equal(t,
		`<pre class="code-block"><code class="language-go">fmt.Println(&#34;&lt;hi&gt;&#34;)`+"\n**x**\n</code></pre><p>after</p>",
		got)
}

func TestRenderUnclosedFence(t *testing.T) {
	assert.Equal(t, "<pre class=\"code-block\"><code>x\n</code></pre>", Render("```\nx"))
}

func TestRenderTable(t *testing.T) {
	got := Render("| Lang | Year |\n|---|:-:|\n| Go | 2009 |")
	assert.Equal(t,
		"<table><thead><tr><th>Lang</th><th>Year</th></tr></thead><tbody><tr><td>Go</td><td>2009</td></tr></tbody></table>",
		got)
}

func TestInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold**", "<p><strong>bold</strong></p>"},
		{"__bold__", "<p><strong>bold</strong></p>"},
		{"*it*", "<p><em>it</em></p>"},
		{"_it_", "<p><em>it</em></p>"},
		{"snake_case_name", "<p>snake_case_name</p>"},
		{"`**raw**`", "<p><code>**raw**</code></p>"},
		{"[Go](https://go.dev/doc_x_y)", `<p><a href="https://go.dev/doc_x_y">Go</a></p>`},
		{"[Go](https://go.dev)^", `<p><a href="https://go.dev" target="_blank" rel="noopener noreferrer">Go</a></p>`},
		{"[bad](javascript:alert(1))", "<p>bad)</p>"},
		{"<script>", "<p>&lt;script&gt;</p>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Render(tt.in), tt.in)
	}
}

func TestImagesAfterFirstAreLazy(t *testing.T) {
	got := Render("![a](/images/1)\n\n![b](/images/2)")
	assert.Contains(t, got, `<img src="/images/1" alt="a" decoding="async">`)
	assert.Contains(t, got, `<img src="/images/2" alt="b" loading="lazy" decoding="async">`)
}

func TestSafeURL(t *testing.T) {
	assert.Equal(t, "/files/x", SafeURL("/files/x"))
	assert.Equal(t, "mailto:a@b.c", SafeURL("mailto:a@b.c"))
	assert.Equal(t, "", SafeURL("javascript:alert(1)"))
	assert.Equal(t, "", SafeURL("data:text/html,x"))
	assert.Equal(t, "", SafeURL("  "))
}

func TestToHTML(t *testing.T) {
	assert.Equal(t, "<p>x</p>", string(ToHTML("x")))
}
