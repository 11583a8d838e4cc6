package ports

import (
	"context"

	"github.com/shopor/catalog-api/internal/core/domain"
)

// DocumentStore owns the single persisted catalog document.
//
// Update runs the entire load-modify-save span as one critical section: the
// implementation must serialize concurrent updates so that two callers can
// never interleave between one caller's load and its save. When fn returns an
// error nothing is persisted and the error is passed through unchanged.
type DocumentStore interface {
	// Load returns a snapshot of the current document. Mutating the snapshot
	// has no effect on persisted state.
	Load(ctx context.Context) (*domain.Catalog, error)
	Update(ctx context.Context, fn func(*domain.Catalog) error) error
}
