package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/ashhad25/moderateai-console/internal/model"
)

// credentialKey is the single fixed key the admin credential lives under
const credentialKey = "token"

// Store persists the console's session state across restarts: the admin
// bearer credential plus a local history of manual moderation tests.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the session store at the given path
func Open(path string) (*Store, error) {
	// Ensure data directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Single admin, low traffic
	db.SetMaxOpenConns(2)

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	zap.L().Info("Session store opened", zap.String("path", path))
	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SetCredential stores the admin credential, overwriting any previous one
func (s *Store) SetCredential(token string) error {
	query := `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	_, err := s.db.Exec(query, credentialKey, token)
	return err
}

// ClearCredential removes the stored credential. Clearing an already empty
// store is a no-op.
func (s *Store) ClearCredential() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE key = ?`, credentialKey)
	return err
}

// Credential returns the stored credential, or "" when absent
func (s *Store) Credential() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, credentialKey).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return token, nil
}

// AppendTestRecord records one manual moderation test in the local history
func (s *Store) AppendTestRecord(text, recommendation string, confidence float64) error {
	now := time.Now().Format(time.RFC3339)
	query := `
		INSERT INTO test_history (text, recommendation, confidence, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.Exec(query, text, recommendation, confidence, now)
	return err
}

// TestHistory returns the most recent manual test records, newest first
func (s *Store) TestHistory(limit int) ([]model.TestRecord, error) {
	query := `
		SELECT id, text, recommendation, confidence, created_at
		FROM test_history ORDER BY id DESC LIMIT ?
	`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.TestRecord
	for rows.Next() {
		var rec model.TestRecord
		if err := rows.Scan(&rec.ID, &rec.Text, &rec.Recommendation, &rec.Confidence, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *Store) createTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS session (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS test_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			recommendation TEXT NOT NULL,
			confidence REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,
	}

	for _, table := range tables {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to execute SQL: %s, error: %w", table, err)
		}
	}

	return nil
}
