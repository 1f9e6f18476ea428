package domain

import "errors"

// Core error taxonomy. Every failure returned by the ledger wraps exactly one
// of these sentinels so callers can branch with errors.Is.
var (
	// ErrValidation indicates malformed or out-of-range input on a create or
	// update. The mutation is never partially applied.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound indicates an update or delete referencing an id that is not
	// present in the targeted kind's partition.
	ErrNotFound = errors.New("not found")
	// ErrDecode indicates a malformed persisted blob. No partial store is
	// ever constructed from a blob that fails to decode.
	ErrDecode = errors.New("malformed data")
)
