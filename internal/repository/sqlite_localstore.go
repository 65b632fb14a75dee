package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/BigChangeApps/labs-sub003/internal/db"
)

// SQLiteLocalStore implements LocalStore on the local_store table.
type SQLiteLocalStore struct {
	db  db.DBTX
	now func() time.Time
}

// NewSQLiteLocalStore creates a new SQLiteLocalStore.
func NewSQLiteLocalStore(conn db.DBTX) *SQLiteLocalStore {
	return &SQLiteLocalStore{db: conn, now: time.Now}
}

func (s *SQLiteLocalStore) Get(ctx context.Context, namespace, key string) (*Entry, error) {
	query := `SELECT namespace, key, value, updated_at FROM local_store WHERE namespace = ? AND key = ?`
	row := s.db.QueryRowContext(ctx, query, namespace, key)

	var e Entry
	var value, updatedAt string
	if err := row.Scan(&e.Namespace, &e.Key, &value, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s/%s: %w", namespace, key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning %s/%s: %w", namespace, key, err)
	}
	e.Value = []byte(value)
	e.UpdatedAt = parseTimestamp(updatedAt)
	return &e, nil
}

func (s *SQLiteLocalStore) Put(ctx context.Context, namespace, key string, value []byte) error {
	query := `INSERT INTO local_store (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := s.db.ExecContext(ctx, query,
		namespace,
		key,
		string(value),
		s.now().UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (s *SQLiteLocalStore) Delete(ctx context.Context, namespace, key string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM local_store WHERE namespace = ? AND key = ?`, namespace, key)
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", namespace, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete of %s/%s: %w", namespace, key, err)
	}
	if n == 0 {
		return fmt.Errorf("%s/%s: %w", namespace, key, ErrNotFound)
	}
	return nil
}

// List returns the entries of a namespace, most recently written first.
func (s *SQLiteLocalStore) List(ctx context.Context, namespace string) ([]*Entry, error) {
	query := `SELECT namespace, key, value, updated_at FROM local_store
		WHERE namespace = ? ORDER BY updated_at DESC, key`
	rows, err := s.db.QueryContext(ctx, query, namespace)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", namespace, err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var value, updatedAt string
		if err := rows.Scan(&e.Namespace, &e.Key, &value, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning %s entry: %w", namespace, err)
		}
		e.Value = []byte(value)
		e.UpdatedAt = parseTimestamp(updatedAt)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", namespace, err)
	}
	return entries, nil
}
