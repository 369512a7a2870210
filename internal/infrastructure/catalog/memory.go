package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/shopstation/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory catalog. It satisfies
// domain.CatalogProvider: Snapshot hands out deep copies so a caller's view
// stays stable while the store is mutated by admin tooling.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]domain.CatalogProduct
}

// NewMemoryStore creates an empty catalog store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: make(map[string]domain.CatalogProduct)}
}

// NewSeededStore creates a store preloaded with the starter catalog.
func NewSeededStore() *MemoryStore {
	store := NewMemoryStore()
	for _, product := range seedProducts {
		store.Upsert(product)
	}
	return store
}

// Snapshot returns a deep copy of the full catalog.
func (s *MemoryStore) Snapshot(ctx context.Context) (map[string]domain.CatalogProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]domain.CatalogProduct, len(s.products))
	for key, product := range s.products {
		snapshot[key] = copyProduct(product)
	}
	return snapshot, nil
}

// Stores returns the sorted set of store names appearing in any price table.
func (s *MemoryStore) Stores(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, product := range s.products {
		for store := range product.Prices {
			seen[store] = struct{}{}
		}
	}

	stores := make([]string, 0, len(seen))
	for store := range seen {
		stores = append(stores, store)
	}
	sort.Strings(stores)
	return stores, nil
}

// Upsert inserts or replaces a product by key.
func (s *MemoryStore) Upsert(product domain.CatalogProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.Key] = copyProduct(product)
}

// Delete removes a product by key.
func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, key)
}

// Len returns the number of products in the store.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func copyProduct(p domain.CatalogProduct) domain.CatalogProduct {
	clone := p
	clone.Synonyms = append([]string(nil), p.Synonyms...)
	clone.CommonBrands = append([]string(nil), p.CommonBrands...)
	if p.Prices != nil {
		clone.Prices = make(map[string]domain.PriceEntry, len(p.Prices))
		for store, entry := range p.Prices {
			clone.Prices[store] = entry
		}
	}
	return clone
}
