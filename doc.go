/*
Package strictstore provides a strict, lifecycle-guarded cache over a pluggable key/value
backing store.

A Storage holds a closed set of keys declared up front with their default values. It goes
through an explicit lifecycle:
  - Uninitialized: only Initialize is allowed
  - Initialized: reads are served from memory, writes go to the backing store first
  - Disposed: every operation fails with errors.ErrInvalidState

Keys outside the declared set fail with errors.ErrInvalidKey. Writing nil resets a key to a
copy of its default; Undefined is written and cached as-is.

Basic Usage:

	defaults := strictstore.MustDefaults(
	    strictstore.Entry{Key: "user", Value: "guest"},
	    strictstore.Entry{Key: "no", Value: -1},
	)

	driver, _ := bolt.Open("./profile.db", "profile")
	s, _ := strictstore.New(defaults, strictstore.WithDriver(driver))

	if err := s.Initialize(ctx); err != nil {
	    return err
	}
	user, _ := s.GetItem("user")
	_ = s.SetItem(ctx, "user", "user001")

	_ = s.Dispose(strictstore.CloseDriver)

Storages can also be described in YAML and built with LoadConfig and NewManagerFromConfig.
*/
package strictstore
