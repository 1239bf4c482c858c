package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// Note is one key/value row.
type Note struct {
	Key       string
	Value     string
	UpdatedAt string
}

// GetNote returns the value under key, or "" when unset.
func (d *DB) GetNote(key string) (string, error) {
	n, err := d.Note(key)
	if err != nil || n == nil {
		return "", err
	}
	return n.Value, nil
}

// Note returns the full row for key, or nil when unset.
func (d *DB) Note(key string) (*Note, error) {
	n := Note{Key: key}
	err := d.conn.QueryRow("SELECT value, updated_at FROM notes WHERE key = ?", key).Scan(&n.Value, &n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading note %q: %w", key, err)
	}
	return &n, nil
}

// SetNote upserts key.
func (d *DB) SetNote(key, value string) error {
	_, err := d.conn.Exec(
		`INSERT INTO notes (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = datetime('now')`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing note %q: %w", key, err)
	}
	return nil
}
