package portfolio

import (
	"path/filepath"
	"testing"
)

func newTestMessageStore(t *testing.T) *MessageStore {
	t.Helper()
	s, err := NewMessageStore(filepath.Join(t.TempDir(), "data", "messages.db"))
	if err != nil {
		t.Fatalf("failed to create message store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMessageStoreRoundTrip(t *testing.T) {
	s := newTestMessageStore(t)

	first := ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	if err := s.SaveMessage(&first); err != nil {
		t.Fatalf("SaveMessage failed: %v", err)
	}
	if first.ID == 0 || first.CreatedAt == "" {
		t.Errorf("SaveMessage should fill ID and CreatedAt: %+v", first)
	}

	second := ContactMessage{Name: "Grace", Email: "grace@example.com", Message: "Hi"}
	if err := s.SaveMessage(&second); err != nil {
		t.Fatal(err)
	}

	msgs, err := s.ListMessages()
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d, want 2", len(msgs))
	}
	// Newest first.
	if msgs[0].Name != "Grace" || msgs[1].Name != "Ada" {
		t.Errorf("order = %q, %q", msgs[0].Name, msgs[1].Name)
	}
}

func TestMessageStoreEmpty(t *testing.T) {
	s := newTestMessageStore(t)

	msgs, err := s.ListMessages()
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected no messages, got %+v", msgs)
	}
}
