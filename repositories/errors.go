// File: /repositories/errors.go
package repositories

import "errors"

// ErrRecordNotFound is returned by lookups and mutations on an id or key
// that is not in the store.
var ErrRecordNotFound = errors.New("record not found")
