package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLite persists key-value pairs in a single SQLite table. Every Set is a
// whole-value replace, so a crash mid-write leaves either the previous or
// the new value, never a mix.
type SQLite struct {
	db   *sql.DB
	path string
	opts options
}

// Open opens (creating if needed) the store at path. The special path
// ":memory:" opens a private in-process database.
func Open(path string, opts ...Option) (*SQLite, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
				return nil, fmt.Errorf("create store directory: %w", err)
			}
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLite{db: db, path: path, opts: newOptions(opts)}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := s.opts.pause(ctx); err != nil {
		return nil, false, err
	}
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		s.opts.log.Debug().Str("key", key).Bool("hit", false).Msg("store get")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	s.opts.log.Debug().Str("key", key).Bool("hit", true).Int("bytes", len(value)).Msg("store get")
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	if err := s.opts.pause(ctx); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	s.opts.log.Debug().Str("key", key).Int("bytes", len(value)).Msg("store set")
	return nil
}

func (s *SQLite) Remove(ctx context.Context, key string) error {
	if err := s.opts.pause(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	s.opts.log.Debug().Str("key", key).Msg("store remove")
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }

var _ KV = (*SQLite)(nil)
