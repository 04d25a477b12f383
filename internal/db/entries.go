package db

import (
	"database/sql"
	"fmt"
	"maps"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dori/wille/internal/storage"
)

const entriesTable = "entries"

// Read returns the raw value stored under name
func (db *DB) Read(name string) ([]byte, error) {
	query, args, err := sq.Select("value").
		From(entriesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var value string
	err = db.QueryRow(query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %q: %w", name, err)
	}
	return []byte(value), nil
}

// Write upserts every entry in a single transaction
func (db *DB) Write(entries map[string][]byte) error {
	now := time.Now()
	return db.Transaction(func(tx *sql.Tx) error {
		for _, name := range slices.Sorted(maps.Keys(entries)) {
			query, args, err := sq.Insert(entriesTable).
				Columns("name", "value", "updated_at").
				Values(name, string(entries[name]), now).
				Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("failed to write entry %q: %w", name, err)
			}
		}
		return nil
	})
}

// Delete removes the entry stored under name
func (db *DB) Delete(name string) error {
	query, args, err := sq.Delete(entriesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete entry %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

var _ storage.Backend = (*DB)(nil)
