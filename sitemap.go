package portfolio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

var sitemapPages = []string{"", "about", "projects", "blogs", "contact"}

func (a *App) handleSitemap(c echo.Context) error {
	projects, err := a.Store.Projects()
	if err != nil {
		return err
	}
	blogs, err := a.Store.PublishedBlogs()
	if err != nil {
		return err
	}

	base := a.Config.SiteURL
	urls := make([]sitemapURL, 0, len(sitemapPages)+len(projects)+len(blogs))
	for _, p := range sitemapPages {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, p), ChangeFreq: "weekly"})
	}
	for _, p := range projects {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "projects", p.Slug),
			LastMod: dateOf(p.CreatedAt),
		})
	}
	for _, b := range blogs {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "blogs", b.Slug),
			LastMod: dateOf(b.UpdatedAt),
		})
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

// dateOf trims a stored timestamp to YYYY-MM-DD.
func dateOf(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
