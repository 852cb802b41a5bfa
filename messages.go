package portfolio

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ContactMessage is one submission from the contact form.
type ContactMessage struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// MessageStore keeps contact submissions in a SQLite database so they
// survive a failed or unconfigured mail relay.
type MessageStore struct {
	db *sql.DB
}

// NewMessageStore opens (or creates) the SQLite database at path, ensures
// the data directory exists, and creates the schema.
func NewMessageStore(path string) (*MessageStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open message db: %w", err)
	}
	// WAL plus a busy timeout so a writer waits instead of failing with
	// SQLITE_BUSY; synchronous=NORMAL is safe under WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, fmt.Errorf("configure message db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &MessageStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *MessageStore) Close() error {
	return s.db.Close()
}

func (s *MessageStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TEXT NOT NULL
);
`)
	return err
}

// SaveMessage inserts a message, filling in its ID and CreatedAt.
func (s *MessageStore) SaveMessage(m *ContactMessage) error {
	m.CreatedAt = time.Now().Format(timestampLayout)
	res, err := s.db.Exec(`INSERT INTO messages (name, email, message, created_at) VALUES (?, ?, ?, ?)`,
		m.Name, m.Email, m.Message, m.CreatedAt)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if id, err := res.LastInsertId(); err == nil {
		m.ID = id
	}
	return nil
}

// ListMessages returns all messages, newest first.
func (s *MessageStore) ListMessages() ([]ContactMessage, error) {
	rows, err := s.db.Query(`SELECT id, name, email, message, created_at FROM messages ORDER BY id DESC`)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	defer rows.Close()

	var msgs []ContactMessage
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, &StorageError{Op: "load", Err: err}
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return msgs, nil
}
