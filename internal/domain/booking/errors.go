package booking

import "errors"

// Store-level sentinels. Repositories translate driver errors into these.
var (
	ErrRecordNotFound = errors.New("record not found")

	// ErrConflict marks a write that lost a race (unique violation or
	// serialization failure) and may succeed if retried.
	ErrConflict = errors.New("concurrent write conflict")
)
