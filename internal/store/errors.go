package store

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrCorruptRow is returned when a stored row cannot be decoded, for
	// example a malformed review date. The row is never coerced.
	ErrCorruptRow = errors.New("store: corrupt row")
	// ErrDuplicate is returned when a problem name already exists in its list.
	ErrDuplicate = errors.New("store: duplicate problem")
	// ErrInvalidQuery is returned for a Query that cannot be executed.
	ErrInvalidQuery = errors.New("store: invalid query")
)
