package service

import (
	"context"
	"sync"

	"github.com/shopor/catalog-api/internal/core/domain"
)

// memStore is an in-memory DocumentStore used by the service tests. It
// mirrors the real store's contract: Update serializes the whole
// load-modify-save span, and a failed mutation persists nothing.
type memStore struct {
	mu  sync.Mutex
	doc *domain.Catalog
}

func newMemStore() *memStore {
	return &memStore{doc: domain.NewCatalog()}
}

func cloneCatalog(c *domain.Catalog) *domain.Catalog {
	out := &domain.Catalog{Counters: c.Counters}
	out.Users = append([]domain.User(nil), c.Users...)
	out.Items = append([]domain.Item(nil), c.Items...)
	return out
}

func (m *memStore) Load(_ context.Context) (*domain.Catalog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneCatalog(m.doc), nil
}

func (m *memStore) Update(_ context.Context, fn func(*domain.Catalog) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	draft := cloneCatalog(m.doc)
	if err := fn(draft); err != nil {
		return err
	}
	m.doc = draft
	return nil
}

// captureAudit records audit events for assertions.
type captureAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *captureAudit) Record(e domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *captureAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Action)
	}
	return out
}
