package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Store is a flat key-value store of JSON documents backed by sqlite. Each
// logical container (a day's plan, a week's events, the timer set) lives
// under one string key; the last write to a key wins.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the raw document stored under key, or nil when the key has
// never been written.
func (s *Store) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT value FROM kv_documents WHERE key = ?`,
		key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return json.RawMessage(value), nil
}

// Set marshals value and writes it under key, replacing any prior document.
func (s *Store) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO kv_documents (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		string(data),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// SetMulti writes several documents inside a single transaction. Multi-key
// operations such as moving a task across days use this so a failure cannot
// leave some containers updated and others stale.
func (s *Store) SetMulti(ctx context.Context, docs map[string]interface{}) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for key, value := range docs {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO kv_documents (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key,
			string(data),
			now,
		); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Delete removes the document under key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(
		ctx,
		`DELETE FROM kv_documents WHERE key = ?`,
		key,
	); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
