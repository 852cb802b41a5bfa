package portfolio

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestPublishPost(t *testing.T) {
	a := newTestApp(t)

	rec, err := a.PublishPost("Hello World", "A greeting", "Line one.\n\nLine two.", "")
	if err != nil {
		t.Fatalf("PublishPost failed: %v", err)
	}
	if rec.Slug != "hello-world" {
		t.Errorf("Slug = %q, want hello-world", rec.Slug)
	}
	if rec.ID == "" || rec.Type != TypeBlog || rec.CreatedDate == "" {
		t.Errorf("record = %+v", rec)
	}

	doc, err := os.ReadFile(filepath.Join(a.blogDir(), "hello-world.html"))
	if err != nil {
		t.Fatalf("document unreadable: %v", err)
	}
	html := string(doc)
	if !strings.Contains(html, "<p>Line one.</p>") || !strings.Contains(html, "<p>Line two.</p>") {
		t.Errorf("paragraphs missing from document:\n%s", html)
	}
	if !strings.Contains(html, "Hello World") {
		t.Error("title missing from document")
	}

	cs, err := a.Store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(cs.Posts) != 1 || cs.Posts[0].Slug != "hello-world" {
		t.Errorf("Posts = %+v", cs.Posts)
	}
}

func TestPublishPostValidation(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		name                        string
		title, description, content string
	}{
		{"missing title", "", "d", "c"},
		{"missing description", "t", "", "c"},
		{"missing content", "t", "d", ""},
		{"whitespace content", "t", "d", "   \n  "},
		{"unsluggable title", "!!!", "d", "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.PublishPost(tt.title, tt.description, tt.content, "")
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}

	cs, _ := a.Store.Load()
	if len(cs.Posts) != 0 {
		t.Errorf("store not empty after rejections: %+v", cs.Posts)
	}
	if _, err := os.Stat(a.blogDir()); !os.IsNotExist(err) {
		if entries, _ := os.ReadDir(a.blogDir()); len(entries) > 0 {
			t.Errorf("blog dir not empty after rejections")
		}
	}
}

func TestPublishPostSlugDisambiguation(t *testing.T) {
	a := newTestApp(t)

	first, err := a.PublishPost("Hello World", "d", "first body", "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.PublishPost("Hello World", "d", "second body", "")
	if err != nil {
		t.Fatal(err)
	}
	third, err := a.PublishPost("Hello World", "d", "third body", "")
	if err != nil {
		t.Fatal(err)
	}

	if first.Slug != "hello-world" || second.Slug != "hello-world-2" || third.Slug != "hello-world-3" {
		t.Errorf("slugs = %q, %q, %q", first.Slug, second.Slug, third.Slug)
	}

	// Each publish keeps its own document.
	for slug, want := range map[string]string{
		"hello-world":   "first body",
		"hello-world-2": "second body",
		"hello-world-3": "third body",
	} {
		doc, err := os.ReadFile(filepath.Join(a.blogDir(), slug+".html"))
		if err != nil {
			t.Fatalf("document %s unreadable: %v", slug, err)
		}
		if !strings.Contains(string(doc), want) {
			t.Errorf("document %s does not contain %q", slug, want)
		}
	}

	cs, _ := a.Store.Load()
	if len(cs.Posts) != 3 {
		t.Errorf("len(Posts) = %d, want 3", len(cs.Posts))
	}
}

func TestUniqueSlug(t *testing.T) {
	cs := &ContentStore{Posts: []PostRecord{
		{Slug: "taken"},
		{Slug: "taken-2"},
	}}
	if got := uniqueSlug(cs, "free"); got != "free" {
		t.Errorf("uniqueSlug free = %q", got)
	}
	if got := uniqueSlug(cs, "taken"); got != "taken-3" {
		t.Errorf("uniqueSlug taken = %q, want taken-3", got)
	}
}

func TestRemoveContentBlog(t *testing.T) {
	a := newTestApp(t)

	rec, err := a.PublishPost("Doomed Post", "d", "body", "")
	if err != nil {
		t.Fatal(err)
	}
	docPath := filepath.Join(a.blogDir(), rec.Slug+".html")
	if _, err := os.Stat(docPath); err != nil {
		t.Fatalf("document missing before delete: %v", err)
	}

	if err := a.RemoveContent(rec.ID); err != nil {
		t.Fatalf("RemoveContent failed: %v", err)
	}
	if _, err := os.Stat(docPath); !os.IsNotExist(err) {
		t.Error("document still exists after delete")
	}
	cs, _ := a.Store.Load()
	if len(cs.Posts) != 0 {
		t.Errorf("Posts = %+v after delete", cs.Posts)
	}
}

func TestRemoveContentPaper(t *testing.T) {
	a := newTestApp(t)

	rec, err := a.SavePaper("gone.pdf", []byte("%PDF"), "t", "d")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(a.papersDir(), rec.Filename)

	if err := a.RemoveContent(rec.ID); err != nil {
		t.Fatalf("RemoveContent failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("paper file still exists after delete")
	}
	cs, _ := a.Store.Load()
	if len(cs.Papers) != 0 {
		t.Errorf("Papers = %+v after delete", cs.Papers)
	}
}

func TestRemoveContentUnknownID(t *testing.T) {
	a := newTestApp(t)

	if _, err := a.PublishPost("Keeper", "d", "body", ""); err != nil {
		t.Fatal(err)
	}
	if err := a.RemoveContent("no-such-id"); err != nil {
		t.Errorf("unknown id should be a no-op, got %v", err)
	}
	cs, _ := a.Store.Load()
	if len(cs.Posts) != 1 {
		t.Errorf("Posts = %+v, want the keeper untouched", cs.Posts)
	}
}

func TestRemoveContentMissingArtifact(t *testing.T) {
	a := newTestApp(t)

	rec, err := a.PublishPost("Ghost", "d", "body", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(a.blogDir(), rec.Slug+".html")); err != nil {
		t.Fatal(err)
	}
	if err := a.RemoveContent(rec.ID); err != nil {
		t.Errorf("delete with missing artifact should succeed, got %v", err)
	}
}

func TestCreateBlogHandler(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/create_blog",
		strings.NewReader(`{"title":"Via Handler","description":"d","content":"body"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)

	if err := a.handleCreateBlog(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"slug":"via-handler"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDeleteContentHandler(t *testing.T) {
	a := newTestApp(t)

	post, err := a.PublishPost("Delete Me", "d", "body", "")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/admin/api/blogs/"+post.ID, nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(post.ID)

	if err := a.handleDeleteContent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	cs, _ := a.Store.Load()
	if len(cs.Posts) != 0 {
		t.Errorf("post survived delete: %+v", cs.Posts)
	}
}
