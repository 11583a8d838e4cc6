package ports

import (
	"context"

	"github.com/shopor/catalog-api/internal/core/domain"
)

// ItemInput carries every caller-settable item field. Id and createdBy are
// owned by the service and never accepted from the outside.
type ItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Quantity    int
	Image       string
}

// ItemService is the ownership-aware CRUD surface over the items collection.
type ItemService interface {
	Create(ctx context.Context, p domain.Principal, in ItemInput) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	// Update replaces all fields except id and createdBy. The item must exist
	// (ErrItemNotFound) and the principal must own it or be admin
	// (ErrForbidden), checked in that order.
	Update(ctx context.Context, p domain.Principal, id int, in ItemInput) (*domain.Item, error)
	// Delete removes the single matching item under the same policy as Update.
	Delete(ctx context.Context, p domain.Principal, id int) error
}
