package portfolio

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Pradyumna2098/Portfolio/views"
)

// PublishPost validates the input, renders a static HTML document into the
// blog directory, and appends a PostRecord to the content store. The slug is
// derived from the title and suffix-disambiguated against existing posts, so
// a duplicate title never overwrites an earlier document.
func (a *App) PublishPost(title, description, content, image string) (PostRecord, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" || strings.TrimSpace(content) == "" {
		return PostRecord{}, validationf("title, description and content are required")
	}
	base := Slugify(title)
	if base == "" {
		return PostRecord{}, validationf("title must contain letters or digits")
	}

	now := time.Now()
	rec := PostRecord{
		ID:          NewID(),
		Title:       title,
		Description: description,
		Image:       image,
		CreatedDate: now.Format(timestampLayout),
		Type:        TypeBlog,
	}

	// Slug choice, document write, and record append happen inside one
	// Update so a concurrent publish cannot claim the same slug.
	err := a.Store.Update(func(cs *ContentStore) error {
		rec.Slug = uniqueSlug(cs, base)
		doc := views.BlogDoc{
			Title:      title,
			Date:       now.Format("January 2, 2006"),
			Image:      image,
			Paragraphs: splitParagraphs(content),
		}
		var buf bytes.Buffer
		if err := views.BlogDocument(a.viewCfg(), doc).Render(context.Background(), &buf); err != nil {
			return &StorageError{Op: "write", Err: err}
		}
		if err := os.MkdirAll(a.blogDir(), 0o755); err != nil {
			return &StorageError{Op: "write", Err: err}
		}
		if err := os.WriteFile(filepath.Join(a.blogDir(), rec.Slug+".html"), buf.Bytes(), 0o644); err != nil {
			return &StorageError{Op: "write", Err: err}
		}
		cs.Posts = append(cs.Posts, rec)
		return nil
	})
	if err != nil {
		return PostRecord{}, err
	}
	return rec, nil
}

// uniqueSlug returns base, or the first base-N not yet used by a post.
func uniqueSlug(cs *ContentStore, base string) string {
	if !cs.HasSlug(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !cs.HasSlug(candidate) {
			return candidate
		}
	}
}

// RemoveContent deletes the record with the given id and its on-disk
// artifact (paper file or rendered blog document). Unknown ids are a no-op.
func (a *App) RemoveContent(id string) error {
	var removed Removed
	var found bool
	err := a.Store.Update(func(cs *ContentStore) error {
		removed, found = cs.RemoveByID(id)
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	var path string
	switch removed.Type {
	case TypePaper:
		path = filepath.Join(a.papersDir(), removed.Filename)
	case TypeBlog:
		path = filepath.Join(a.blogDir(), removed.Slug+".html")
	default:
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

func (a *App) handleCreateBlog(c echo.Context) error {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		Image       string `json:"image"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, validationf("invalid request body"))
	}
	rec, err := a.PublishPost(req.Title, req.Description, req.Content, req.Image)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "post": rec})
}

func (a *App) handleDeleteContent(c echo.Context) error {
	if err := a.RemoveContent(c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
