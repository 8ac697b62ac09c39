/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package bolt provides a durable local driver backed by a BoltDB file. Each namespace is a
// bucket and each key a JSON encoded storagemodels.Record.
package bolt

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/boltdb/bolt"

	"github.com/suparena/strictstore/datastore"
	"github.com/suparena/strictstore/registry"
	"github.com/suparena/strictstore/storagemodels"
)

// DefaultFileMode is used when the database file has to be created.
const DefaultFileMode os.FileMode = 0o600

// Driver stores values in one bucket of a BoltDB database.
type Driver struct {
	db     *bolt.DB
	bucket []byte
	owned  bool
}

// Open opens (or creates) the database at path and ensures the bucket exists. The returned
// driver owns the database and closes it on Close.
func Open(path string, bucket string) (*Driver, error) {
	db, err := bolt.Open(path, DefaultFileMode, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("unable to open %v: %w", path, err)
	}
	d, err := New(db, bucket)
	if err != nil {
		db.Close()
		return nil, err
	}
	d.owned = true
	return d, nil
}

// New wraps an already open database. The caller keeps ownership of db.
func New(db *bolt.DB, bucket string) (*Driver, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	err := db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
			return fmt.Errorf("error creating bucket %s: %w", bucket, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Driver{db: db, bucket: []byte(bucket)}, nil
}

func init() {
	registry.RegisterDriver("bolt", func(namespace string, opts registry.Options) (datastore.Driver, error) {
		return Open(opts.Get("path", "strictstore.db"), opts.Get("bucket", namespace))
	})
}

// GetItem reads and decodes the record for key.
func (d *Driver) GetItem(ctx context.Context, key string) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var rec *storagemodels.Record
	err := d.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(d.bucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		var err error
		rec, err = storagemodels.UnmarshalRecord(raw)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	if rec == nil {
		return nil, false, nil
	}

	value, err := rec.Decode()
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// SetItem writes value under key. datastore.Undefined removes the record.
func (d *Driver) SetItem(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if datastore.IsUndefined(value) {
		return d.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(d.bucket).Delete([]byte(key))
		})
	}

	rec, err := storagemodels.NewRecord(key, value)
	if err != nil {
		return err
	}
	raw, err := rec.Marshal()
	if err != nil {
		return err
	}

	return d.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(d.bucket).Put([]byte(key), raw)
	})
}

// Count returns the number of records in the bucket.
func (d *Driver) Count() (int, error) {
	count := 0
	err := d.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(d.bucket).Stats().KeyN
		return nil
	})
	if err != nil {
		return -1, err
	}
	return count, nil
}

// Path returns the database file path.
func (d *Driver) Path() string {
	return d.db.Path()
}

// Close closes the database if this driver opened it.
func (d *Driver) Close() error {
	if !d.owned {
		return nil
	}
	return d.db.Close()
}

var _ datastore.Driver = (*Driver)(nil)
