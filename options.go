/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"github.com/suparena/strictstore/datastore"
	"github.com/suparena/strictstore/observability"
)

// Option configures a Storage at construction.
type Option func(*options)

type options struct {
	id            string
	driver        datastore.Driver
	driverFactory datastore.Factory
	index         Index
	indexFactory  func() Index
	observer      observability.Observer
}

// WithDriver sets the backing store. Without it the process-wide memory driver is used.
func WithDriver(d datastore.Driver) Option {
	return func(o *options) {
		o.driver = d
		o.driverFactory = nil
	}
}

// WithDriverFactory sets a constructor invoked once by New to obtain the backing store.
func WithDriverFactory(f datastore.Factory) Option {
	return func(o *options) {
		o.driverFactory = f
		o.driver = nil
	}
}

// WithIndex sets the in-memory index. The Storage takes ownership and clears it on Dispose.
func WithIndex(idx Index) Option {
	return func(o *options) {
		o.index = idx
		o.indexFactory = nil
	}
}

// WithIndexFactory sets a constructor invoked once by New to obtain the index.
func WithIndexFactory(f func() Index) Option {
	return func(o *options) {
		o.indexFactory = f
		o.index = nil
	}
}

// WithObserver receives every lifecycle transition and index mutation.
func WithObserver(obs observability.Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithID overrides the generated storage ID used as event source.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}
