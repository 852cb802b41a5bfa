package portfolio

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestFeed(t *testing.T) {
	a := newTestApp(t)
	a.Config.URL = "https://example.com"

	if _, err := a.PublishPost("Feed Post", "In the feed", "body", ""); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/feed.xml", nil)
	rec := httptest.NewRecorder()
	if err := a.handleFeed(a.Echo.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Feed Post</title>") {
		t.Errorf("feed = %s", body)
	}
	if !strings.Contains(body, "https://example.com/blog/feed-post/") {
		t.Errorf("feed = %s", body)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.Contains(ct, "rss+xml") {
		t.Errorf("content type = %q", ct)
	}
}

func TestSitemap(t *testing.T) {
	a := newTestApp(t)
	a.Config.URL = "https://example.com"

	if _, err := a.PublishPost("Mapped Post", "d", "body", ""); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	if err := a.handleSitemap(a.Echo.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<loc>https://example.com/blog/mapped-post/</loc>") {
		t.Errorf("sitemap = %s", body)
	}
	if !strings.Contains(body, "<lastmod>") {
		t.Errorf("sitemap missing lastmod: %s", body)
	}
}
