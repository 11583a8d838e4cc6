package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopor/catalog-api/internal/core/domain"
	"github.com/shopor/catalog-api/internal/core/ports"
)

// ItemService implements ownership-aware CRUD over the items collection.
type ItemService struct {
	store ports.DocumentStore
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewItemService(store ports.DocumentStore, audit ports.AuditRecorder, log zerolog.Logger) *ItemService {
	return &ItemService{store: store, audit: audit, log: log}
}

// Create appends a new item owned by the calling principal.
func (s *ItemService) Create(ctx context.Context, p domain.Principal, in ports.ItemInput) (*domain.Item, error) {
	var item domain.Item
	err := s.store.Update(ctx, func(cat *domain.Catalog) error {
		item = domain.Item{
			ID:          cat.NextItemID(),
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Category:    in.Category,
			Quantity:    in.Quantity,
			Image:       in.Image,
			CreatedBy:   p.Username,
		}
		cat.Items = append(cat.Items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Actor:     p.Username,
		Action:    domain.AuditItemCreated,
		ItemID:    item.ID,
		Timestamp: time.Now().UTC(),
	})
	s.log.Info().Int("item_id", item.ID).Str("created_by", p.Username).Msg("item created")

	return &item, nil
}

// List returns every item, visible to any authenticated principal.
func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	cat, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cat.Items == nil {
		return []domain.Item{}, nil
	}
	return cat.Items, nil
}

// Update replaces every field except id and createdBy. The lookup runs before
// the ownership check so an absent item is reported as not found rather than
// forbidden.
func (s *ItemService) Update(ctx context.Context, p domain.Principal, id int, in ports.ItemInput) (*domain.Item, error) {
	var item domain.Item
	err := s.store.Update(ctx, func(cat *domain.Catalog) error {
		idx := cat.FindItem(id)
		if idx < 0 {
			return domain.ErrItemNotFound
		}
		if !domain.CanModify(p, cat.Items[idx]) {
			return domain.ErrForbidden
		}
		item = domain.Item{
			ID:          cat.Items[idx].ID,
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Category:    in.Category,
			Quantity:    in.Quantity,
			Image:       in.Image,
			CreatedBy:   cat.Items[idx].CreatedBy,
		}
		cat.Items[idx] = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Actor:     p.Username,
		Action:    domain.AuditItemUpdated,
		ItemID:    item.ID,
		Timestamp: time.Now().UTC(),
	})
	s.log.Info().Int("item_id", item.ID).Str("actor", p.Username).Msg("item updated")

	return &item, nil
}

// Delete removes the single matching item under the same policy as Update.
func (s *ItemService) Delete(ctx context.Context, p domain.Principal, id int) error {
	err := s.store.Update(ctx, func(cat *domain.Catalog) error {
		idx := cat.FindItem(id)
		if idx < 0 {
			return domain.ErrItemNotFound
		}
		if !domain.CanModify(p, cat.Items[idx]) {
			return domain.ErrForbidden
		}
		cat.Items = append(cat.Items[:idx], cat.Items[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		Actor:     p.Username,
		Action:    domain.AuditItemDeleted,
		ItemID:    id,
		Timestamp: time.Now().UTC(),
	})
	s.log.Info().Int("item_id", id).Str("actor", p.Username).Msg("item deleted")

	return nil
}
