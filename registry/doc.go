/*
Package registry manages named backing store drivers for StrictStore.

Driver packages register a constructor under a short type name, typically from an init()
function, so that configuration files can select a backend by name:

	registry.RegisterDriver("bolt", func(namespace string, opts registry.Options) (datastore.Driver, error) {
	    return bolt.Open(opts.Get("path", "strictstore.db"), namespace)
	})

	driver, err := registry.NewDriver("bolt", "profile", registry.Options{"path": "./data.db"})

Registering the same name twice panics. The registry is thread-safe.
*/
package registry
