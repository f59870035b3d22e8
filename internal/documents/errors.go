package documents

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrExtractionFailed = errors.New("extraction failed")
	ErrStorageFailed    = errors.New("storage failed")
	// ErrDuplicateID indicates an identifier collision. IDs are random UUIDs,
	// so hitting this means an internal invariant was violated.
	ErrDuplicateID = errors.New("duplicate id")
)
