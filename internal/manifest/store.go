// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest keeps an optional append-only SQLite log of created
// sidecar notes. The pipeline never consults it for preconditions — the
// filesystem existence check stays authoritative — so enabling or
// disabling the manifest cannot change note semantics.
package manifest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/photo-sidecar/pkg/types"
)

// Store manages the manifest SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one logged sidecar creation.
type Entry struct {
	ImagePath   string
	NotePath    string
	CameraModel string
	CreatedAt   time.Time
}

// Open opens or creates the manifest database at path, creating the
// schema and any parent directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating manifest directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening manifest database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating manifest schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		image_path TEXT NOT NULL,
		note_path TEXT NOT NULL,
		camera_model TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`)
	return err
}

// RecordNote logs one created sidecar. Safe for concurrent pipeline runs;
// SQLite serializes the writes.
func (s *Store) RecordNote(ctx context.Context, imagePath, notePath string, rec *types.Record) error {
	camera := ""
	if rec.CameraModel != nil {
		camera = *rec.CameraModel
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (image_path, note_path, camera_model, created_at) VALUES (?, ?, ?, ?)`,
		imagePath, notePath, camera, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting manifest entry: %w", err)
	}
	return nil
}

// Recent returns the most recently created entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT image_path, note_path, camera_model, created_at FROM notes ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying manifest: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ImagePath, &e.NotePath, &e.CameraModel, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning manifest entry: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
