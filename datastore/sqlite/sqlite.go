/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package sqlite provides a durable local driver backed by SQLite. Each namespace is a
// table holding one row per key with the JSON encoded value.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/suparena/strictstore/datastore"
	"github.com/suparena/strictstore/registry"
	"github.com/suparena/strictstore/storagemodels"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Driver stores values in one table of a SQLite database.
type Driver struct {
	db    *sql.DB
	table string
	owned bool
}

// Open opens (or creates) the database file at dsn and ensures the table exists.
func Open(ctx context.Context, dsn string, table string) (*Driver, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	d, err := New(ctx, db, table)
	if err != nil {
		db.Close()
		return nil, err
	}
	d.owned = true
	return d, nil
}

// New wraps an already open database. The caller keeps ownership of db.
func New(ctx context.Context, db *sql.DB, table string) (*Driver, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`, table)
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return nil, fmt.Errorf("failed to create table %s: %w", table, err)
	}

	return &Driver{db: db, table: table}, nil
}

func init() {
	registry.RegisterDriver("sqlite", func(namespace string, opts registry.Options) (datastore.Driver, error) {
		return Open(context.Background(), opts.Get("dsn", "strictstore.sqlite"), opts.Get("table", namespace))
	})
}

// GetItem reads and decodes the row for key.
func (d *Driver) GetItem(ctx context.Context, key string) (any, bool, error) {
	var raw, updatedAt string
	query := fmt.Sprintf("SELECT value, updated_at FROM %s WHERE key = ?", d.table)
	err := d.db.QueryRowContext(ctx, query, key).Scan(&raw, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	rec := storagemodels.Record{Key: key, Value: []byte(raw)}
	value, err := rec.Decode()
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// SetItem upserts value under key. datastore.Undefined removes the row.
func (d *Driver) SetItem(ctx context.Context, key string, value any) error {
	if datastore.IsUndefined(value) {
		query := fmt.Sprintf("DELETE FROM %s WHERE key = ?", d.table)
		if _, err := d.db.ExecContext(ctx, query, key); err != nil {
			return fmt.Errorf("failed to delete key %q: %w", key, err)
		}
		return nil
	}

	rec, err := storagemodels.NewRecord(key, value)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, d.table)
	if _, err := d.db.ExecContext(ctx, query, key, string(rec.Value), rec.UpdatedAt.String()); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Count returns the number of rows in the table.
func (d *Driver) Count(ctx context.Context) (int, error) {
	var n int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", d.table)
	if err := d.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return -1, err
	}
	return n, nil
}

// Close closes the database if this driver opened it.
func (d *Driver) Close() error {
	if !d.owned {
		return nil
	}
	return d.db.Close()
}

var _ datastore.Driver = (*Driver)(nil)
