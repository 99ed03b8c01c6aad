package portfolio

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category,omitempty"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
}

func (a *App) handleFeed(c echo.Context) error {
	profile, err := a.Store.Profile()
	if err != nil {
		return err
	}
	blogs, err := a.Store.PublishedBlogs()
	if err != nil {
		return err
	}

	base := a.Config.SiteURL
	items := make([]rssItem, 0, len(blogs))
	for _, b := range blogs {
		link := BuildURL(base, "blogs", b.Slug)
		item := rssItem{
			Title:       b.Title,
			Link:        link,
			Description: b.Excerpt,
			Categories:  b.TagList(),
			GUID:        link,
		}
		if t, err := time.Parse(timeLayout, b.CreatedAt); err == nil {
			item.PubDate = t.Format(time.RFC1123Z)
		}
		items = append(items, item)
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       profile.Name,
			Link:        BuildURL(base),
			Description: profile.Title,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
