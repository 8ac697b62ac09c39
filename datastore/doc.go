/*
Package datastore defines the backing store contract for StrictStore.

The main interface is Driver, a plain key/value accessor:

	type Driver interface {
	    GetItem(ctx context.Context, key string) (value any, found bool, err error)
	    SetItem(ctx context.Context, key string, value any) error
	}

Implementations:
  - memory: process-wide in-memory driver, the default when nothing is configured
  - mock: in-memory test double with error injection and latency simulation
  - bolt: durable local driver on BoltDB
  - sqlite: durable local driver on SQLite
  - ddb: DynamoDB driver for single-table designs

A driver is borrowed by a storage, never owned: it is not closed when the storage is
disposed unless the caller does so from a dispose hook.
*/
package datastore
