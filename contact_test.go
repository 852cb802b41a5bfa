package portfolio

import (
	"errors"
	"net/http"
	"testing"
)

type fakeMailer struct {
	sent []ContactMessage
	err  error
}

func (f *fakeMailer) Send(msg ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestContactStoresAndRelays(t *testing.T) {
	a := newTestApp(t)
	ms, err := NewMessageStore(a.Config.MessagesPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ms.Close() })
	a.Messages = ms
	mailer := &fakeMailer{}
	a.Mailer = mailer

	rec := postJSON(t, a, a.handleContact, `{"name":"Ada","email":"ada@example.com","message":"Hello there"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	if len(mailer.sent) != 1 || mailer.sent[0].Email != "ada@example.com" {
		t.Errorf("mailer.sent = %+v", mailer.sent)
	}
	msgs, err := ms.ListMessages()
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Name != "Ada" {
		t.Errorf("stored messages = %+v", msgs)
	}
}

func TestContactWithoutMailerStillStores(t *testing.T) {
	a := newTestApp(t)
	ms, err := NewMessageStore(a.Config.MessagesPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ms.Close() })
	a.Messages = ms

	rec := postJSON(t, a, a.handleContact, `{"name":"Ada","email":"ada@example.com","message":"Hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	msgs, _ := ms.ListMessages()
	if len(msgs) != 1 {
		t.Errorf("stored messages = %+v", msgs)
	}
}

func TestContactValidation(t *testing.T) {
	a := newTestApp(t)
	mailer := &fakeMailer{}
	a.Mailer = mailer

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.c","message":"m"}`},
		{"missing email", `{"name":"Ada","message":"m"}`},
		{"missing message", `{"name":"Ada","email":"a@b.c"}`},
		{"whitespace only", `{"name":"  ","email":"a@b.c","message":"m"}`},
		{"email without at", `{"name":"Ada","email":"not-an-email","message":"m"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, a, a.handleContact, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
	if len(mailer.sent) != 0 {
		t.Errorf("invalid submissions must not be relayed: %+v", mailer.sent)
	}
}

func TestContactMailerFailure(t *testing.T) {
	a := newTestApp(t)
	a.Mailer = &fakeMailer{err: &DownstreamError{Service: "smtp", Err: errors.New("connection refused")}}

	rec := postJSON(t, a, a.handleContact, `{"name":"Ada","email":"ada@example.com","message":"Hi"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
