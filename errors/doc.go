/*
Package errors provides semantic error types for the StrictStore library.

The package defines the failure modes of a guarded storage with specific types that
can be checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrInvalidState = errors.New("invalid operation for current state")
	    ErrInvalidKey   = errors.New("key is an invalid value")
	    ErrTypeMismatch = errors.New("type mismatch")
	    ErrInvalidInput = errors.New("invalid input")
	)

Usage:

	value, err := storage.GetItem("user")
	if err != nil {
	    if errors.IsInvalidKey(err) {
	        // the key was never declared in the defaults
	    }
	    if errors.IsInvalidState(err) {
	        // not initialized yet, or already disposed
	    }
	    return err
	}

Errors returned by a backing store driver are never wrapped into these types; they reach
the caller exactly as the driver produced them.
*/
package errors
