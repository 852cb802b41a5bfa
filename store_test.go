package portfolio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := SiteConfig{
		ContentPath:  filepath.Join(dir, "data", "content.json"),
		MessagesPath: filepath.Join(dir, "data", "messages.db"),
		PublicDir:    filepath.Join(dir, "public"),
	}
	cfg.setDefaults()

	store, err := NewStore(cfg.ContentPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return &App{Config: cfg, Echo: echo.New(), Store: store}
}

func TestLoadMissingDocument(t *testing.T) {
	a := newTestApp(t)

	cs, err := a.Store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cs.Posts == nil || cs.Papers == nil {
		t.Fatal("empty store should have non-nil slices")
	}
	if len(cs.Posts) != 0 || len(cs.Papers) != 0 {
		t.Errorf("expected empty store, got %d posts, %d papers", len(cs.Posts), len(cs.Papers))
	}
}

func TestSaveAndLoad(t *testing.T) {
	a := newTestApp(t)

	want := ContentStore{
		Posts: []PostRecord{
			{ID: NewID(), Title: "First", Description: "d", Slug: "first", CreatedDate: "2024-01-15 10:00:00", Type: TypeBlog},
		},
		Papers: []PaperRecord{
			{ID: NewID(), Title: "Paper", Description: "d", Filename: "20240115100000_paper.pdf", UploadDate: "2024-01-15 10:00:00", Type: TypePaper},
		},
	}
	if err := a.Store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := a.Store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Posts) != 1 || got.Posts[0].ID != want.Posts[0].ID {
		t.Errorf("Posts = %+v, want %+v", got.Posts, want.Posts)
	}
	if len(got.Papers) != 1 || got.Papers[0].Filename != want.Papers[0].Filename {
		t.Errorf("Papers = %+v, want %+v", got.Papers, want.Papers)
	}
}

func TestLoadCorruptDocument(t *testing.T) {
	a := newTestApp(t)

	if err := os.WriteFile(a.Config.ContentPath, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := a.Store.Load()
	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if !se.Corrupt {
		t.Error("expected Corrupt to be set")
	}
}

func TestUpdateDoesNotSaveOnError(t *testing.T) {
	a := newTestApp(t)

	boom := errors.New("boom")
	err := a.Store.Update(func(cs *ContentStore) error {
		cs.Posts = append(cs.Posts, PostRecord{ID: "x"})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := os.Stat(a.Config.ContentPath); !os.IsNotExist(err) {
		t.Error("document should not exist after failed update")
	}
}

func TestUpdateAppendsInOrder(t *testing.T) {
	a := newTestApp(t)

	for _, title := range []string{"one", "two", "three"} {
		if err := a.Store.Update(func(cs *ContentStore) error {
			cs.Posts = append(cs.Posts, PostRecord{ID: NewID(), Title: title, Type: TypeBlog})
			return nil
		}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	cs, err := a.Store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cs.Posts) != 3 {
		t.Fatalf("len(Posts) = %d, want 3", len(cs.Posts))
	}
	for i, want := range []string{"one", "two", "three"} {
		if cs.Posts[i].Title != want {
			t.Errorf("Posts[%d].Title = %q, want %q", i, cs.Posts[i].Title, want)
		}
	}
}

func TestRemoveByID(t *testing.T) {
	cs := ContentStore{
		Posts: []PostRecord{
			{ID: "a", Slug: "first"},
			{ID: "b", Slug: "second"},
			{ID: "c", Slug: "third"},
		},
		Papers: []PaperRecord{
			{ID: "p", Filename: "x.pdf"},
		},
	}

	removed, found := cs.RemoveByID("b")
	if !found {
		t.Fatal("expected to find id b")
	}
	if removed.Type != TypeBlog || removed.Slug != "second" {
		t.Errorf("removed = %+v", removed)
	}
	if len(cs.Posts) != 2 || cs.Posts[0].ID != "a" || cs.Posts[1].ID != "c" {
		t.Errorf("Posts after remove = %+v", cs.Posts)
	}

	removed, found = cs.RemoveByID("p")
	if !found || removed.Type != TypePaper || removed.Filename != "x.pdf" {
		t.Errorf("paper remove = %+v found=%v", removed, found)
	}

	if _, found := cs.RemoveByID("missing"); found {
		t.Error("unknown id should not be found")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
