package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/shopstation/backend/internal/domain"
)

// PricingService aggregates matched items into per-store totals.
type PricingService struct {
	catalog            domain.CatalogProvider
	enableDebugLogging bool
}

// NewPricingService creates a pricing service over the given catalog.
func NewPricingService(catalog domain.CatalogProvider, enableDebugLogging bool) *PricingService {
	return &PricingService{catalog: catalog, enableDebugLogging: enableDebugLogging}
}

// CompareAcrossStores totals the matched items at each requested store.
// Items without a price entry at a store are recorded in that store's
// ItemsMissing. Stores where nothing is available still appear in the result
// with a zero total, for transparency, but sort last regardless of numeric
// total. Among the rest the order is ascending by total; an exact tie keeps
// storeList order (stable sort), which is the documented tie-break.
//
// Ranking is by raw total only: a store that is cheaper because it stocks
// fewer of the requested items still ranks ahead. Callers that want to
// penalize partial coverage can use StoreTotal.Coverage.
func (s *PricingService) CompareAcrossStores(ctx context.Context, items []domain.MatchedItem, storeList []string) ([]domain.StoreTotal, error) {
	if len(storeList) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog snapshot: %w", err)
	}

	totals := make([]domain.StoreTotal, 0, len(storeList))
	for _, store := range storeList {
		total := domain.StoreTotal{StoreName: store}

		for _, item := range items {
			product, ok := catalog[item.MatchedKey]
			if !ok {
				total.ItemsMissing = append(total.ItemsMissing, item.Item.OriginalText)
				continue
			}
			entry, stocked := product.Prices[store]
			if !stocked || !entry.Available() {
				total.ItemsMissing = append(total.ItemsMissing, item.Item.OriginalText)
				continue
			}
			total.Total += entry.Price * item.Quantity()
			total.ItemsAvailable++
		}

		if s.enableDebugLogging {
			log.Printf("[PRICE] %s: total %.2f, %d available, %d missing",
				store, total.Total, total.ItemsAvailable, len(total.ItemsMissing))
		}
		totals = append(totals, total)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		iEmpty := totals[i].ItemsAvailable == 0
		jEmpty := totals[j].ItemsAvailable == 0
		if iEmpty != jEmpty {
			return jEmpty
		}
		return totals[i].Total < totals[j].Total
	})

	return totals, nil
}

// BestStore returns the cheapest store that has at least one requested item
// available. The totals slice must already be sorted by CompareAcrossStores.
// Returns false when no store stocks anything.
func BestStore(totals []domain.StoreTotal) (domain.StoreTotal, bool) {
	for _, total := range totals {
		if total.ItemsAvailable > 0 {
			return total, true
		}
	}
	return domain.StoreTotal{}, false
}
