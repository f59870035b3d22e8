package blob

import (
	"context"
	"io"
)

// Store defines the contract for persisting raw document bytes keyed by
// document identifier. A document has exactly one blob; the identifier
// determines the blob's location.
type Store interface {
	Write(ctx context.Context, id string, data []byte) error
	Open(ctx context.Context, id string) (io.ReadCloser, error)
	Remove(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) bool
}
