package mongo

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopor/catalog-api/internal/core/domain"
)

const (
	catalogCollection = "catalog"
	catalogDocID      = "catalog"
)

// CatalogStore persists the whole catalog as a single MongoDB document.
//
// Every mutation goes through Update, which holds a single-writer lock for
// the full load-modify-save span. Two concurrent updates therefore can never
// read the same document state and clobber each other's writes, which is what
// keeps counter-based id allocation and collection growth safe.
type CatalogStore struct {
	coll *mongo.Collection
	mu   sync.Mutex
}

func NewCatalogStore(db *mongo.Database) *CatalogStore {
	return &CatalogStore{coll: db.Collection(catalogCollection)}
}

type catalogDoc struct {
	ID       string          `bson:"_id"`
	Users    []domain.User   `bson:"users"`
	Items    []domain.Item   `bson:"items"`
	Counters domain.Counters `bson:"counters"`
}

// Load returns a snapshot of the current document. A missing document reads
// as an empty catalog so first use needs no provisioning step.
func (s *CatalogStore) Load(ctx context.Context) (*domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Update applies fn to the current document and persists the result. When fn
// fails nothing is written and its error is returned unchanged. The lock is
// released on every exit path.
func (s *CatalogStore) Update(ctx context.Context, fn func(*domain.Catalog) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(cat); err != nil {
		return err
	}
	return s.save(ctx, cat)
}

func (s *CatalogStore) load(ctx context.Context) (*domain.Catalog, error) {
	var doc catalogDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": catalogDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return domain.NewCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	cat := &domain.Catalog{
		Users:    doc.Users,
		Items:    doc.Items,
		Counters: doc.Counters,
	}
	cat.SeedCounters()
	return cat, nil
}

func (s *CatalogStore) save(ctx context.Context, cat *domain.Catalog) error {
	doc := catalogDoc{
		ID:       catalogDocID,
		Users:    cat.Users,
		Items:    cat.Items,
		Counters: cat.Counters,
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": catalogDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}
