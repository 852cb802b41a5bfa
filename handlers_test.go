package portfolio

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHomeRendersProfileAndContent(t *testing.T) {
	a := newTestApp(t)

	if _, err := a.PublishPost("Front Page Post", "d", "body", ""); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := a.handleHome(a.Echo.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Pradyumna S R") {
		t.Error("profile name missing from home page")
	}
	if !strings.Contains(body, "Front Page Post") {
		t.Error("published post missing from home page")
	}
}

func TestBlogPostServed(t *testing.T) {
	a := newTestApp(t)

	rec2, err := a.PublishPost("Served Post", "d", "the body text", "")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/blog/"+rec2.Slug, nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues(rec2.Slug)

	if err := a.handleBlogPost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "the body text") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestBlogPostUnknownSlug(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/blog/ghost", nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("ghost")

	if err := a.handleBlogPost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestBlogPostDeletedDocumentNotServed(t *testing.T) {
	a := newTestApp(t)

	post, err := a.PublishPost("Half Gone", "d", "body", "")
	if err != nil {
		t.Fatal(err)
	}
	// Record survives but the document is gone.
	if err := os.Remove(filepath.Join(a.blogDir(), post.Slug+".html")); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/blog/"+post.Slug, nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues(post.Slug)

	if err := a.handleBlogPost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListContent(t *testing.T) {
	a := newTestApp(t)

	if _, err := a.PublishPost("Public Post", "d", "body", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := a.SavePaper("pub.pdf", []byte("%PDF"), "Public Paper", "d"); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	rec := httptest.NewRecorder()
	if err := a.handleListContent(a.Echo.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Public Post") || !strings.Contains(body, "Public Paper") {
		t.Errorf("body = %s", body)
	}
}

func TestRobots(t *testing.T) {
	a := newTestApp(t)
	a.Config.URL = "https://example.com"

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	rec := httptest.NewRecorder()
	if err := a.handleRobots(a.Echo.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Disallow: /admin/") {
		t.Errorf("body = %s", body)
	}
	if !strings.Contains(body, "Sitemap: https://example.com/sitemap.xml") {
		t.Errorf("body = %s", body)
	}
}
