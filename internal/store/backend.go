package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Backend is a minimal key-value store. Values are opaque byte payloads
// written and read whole.
type Backend interface {
	// Get returns the value for key; ok is false when the key was never written.
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Close() error
}

// FileBackend stores each key as <dir>/<key>.json.
type FileBackend struct {
	dir string
}

// NewFileBackend creates dir if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure dir %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) pathFor(key string) string {
	return filepath.Join(b.dir, strings.TrimSpace(key)+".json")
}

// Get reads the file for key.
func (b *FileBackend) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return data, true, nil
}

// Put replaces the file for key. The payload is written and synced to a temp
// file that is then renamed over the target, so readers see either the old
// or the new history.
func (b *FileBackend) Put(key string, value []byte) error {
	target := b.pathFor(key)
	tmp, err := os.CreateTemp(b.dir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: replace %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are opened per call.
func (b *FileBackend) Close() error { return nil }

// SQLiteBackend keeps keys in a single kv table.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the database at path.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure dir for %s: %w", path, err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping sqlite %s: %w", path, err)
	}
	const createKV = `CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);`
	if _, err := db.Exec(createKV); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create kv table: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

// Get selects the value for key.
func (b *SQLiteBackend) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: select %s: %w", key, err)
	}
	return value, true, nil
}

// Put upserts the value for key.
func (b *SQLiteBackend) Put(key string, value []byte) error {
	_, err := b.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store: upsert %s: %w", key, err)
	}
	return nil
}

// Close closes the database handle.
func (b *SQLiteBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
