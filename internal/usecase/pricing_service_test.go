package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopstation/backend/internal/domain"
)

func pricingCatalog() *stubCatalog {
	return &stubCatalog{products: map[string]domain.CatalogProduct{
		"milk": {
			Key:         "milk",
			DisplayName: "Milk",
			Prices: map[string]domain.PriceEntry{
				"StoreA": {Price: 1.00, Unit: "2 pints"},
				"StoreB": {Price: 1.50, Unit: "2 pints"},
			},
		},
		"bread": {
			Key:         "bread",
			DisplayName: "Bread",
			Prices: map[string]domain.PriceEntry{
				"StoreA": {Price: 2.00, Unit: "loaf"},
			},
		},
	}}
}

func matchedItem(text, key string, qty float64) domain.MatchedItem {
	return domain.MatchedItem{
		Item:       domain.ParsedListItem{OriginalText: text, Quantity: qty, Unit: "item"},
		MatchedKey: key,
		Confidence: 1.0,
		Method:     domain.MatchMethodExact,
	}
}

func TestCompareAcrossStores(t *testing.T) {
	ctx := context.Background()
	svc := NewPricingService(pricingCatalog(), false)

	items := []domain.MatchedItem{
		matchedItem("milk", "milk", 2),
		matchedItem("bread", "bread", 1),
	}

	t.Run("rejects empty store list", func(t *testing.T) {
		_, err := svc.CompareAcrossStores(ctx, items, nil)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("totals, missing items and ascending order", func(t *testing.T) {
		totals, err := svc.CompareAcrossStores(ctx, items, []string{"StoreA", "StoreB"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals) != 2 {
			t.Fatalf("got %d totals, want 2", len(totals))
		}

		// StoreB is cheaper on raw total (3.00 vs 4.00) because it stocks
		// less; raw-total ranking puts it first.
		if totals[0].StoreName != "StoreB" {
			t.Errorf("first store = %s, want StoreB", totals[0].StoreName)
		}
		if totals[0].Total != 3.00 {
			t.Errorf("StoreB total = %v, want 3.00", totals[0].Total)
		}
		if len(totals[0].ItemsMissing) != 1 || totals[0].ItemsMissing[0] != "bread" {
			t.Errorf("StoreB missing = %v, want [bread]", totals[0].ItemsMissing)
		}

		if totals[1].StoreName != "StoreA" {
			t.Errorf("second store = %s, want StoreA", totals[1].StoreName)
		}
		if totals[1].Total != 4.00 {
			t.Errorf("StoreA total = %v, want 4.00", totals[1].Total)
		}
		if totals[1].ItemsAvailable != 2 || len(totals[1].ItemsMissing) != 0 {
			t.Errorf("StoreA coverage = %d available, %v missing, want full", totals[1].ItemsAvailable, totals[1].ItemsMissing)
		}
	})

	t.Run("zero coverage store included but ranked last", func(t *testing.T) {
		totals, err := svc.CompareAcrossStores(ctx, items, []string{"StoreEmpty", "StoreA", "StoreB"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals) != 3 {
			t.Fatalf("got %d totals, want 3", len(totals))
		}
		last := totals[2]
		if last.StoreName != "StoreEmpty" {
			t.Errorf("last store = %s, want StoreEmpty despite zero total", last.StoreName)
		}
		if last.Total != 0 || last.ItemsAvailable != 0 {
			t.Errorf("StoreEmpty = %+v, want zero total and coverage", last)
		}
		if len(last.ItemsMissing) != 2 {
			t.Errorf("StoreEmpty missing = %v, want both items", last.ItemsMissing)
		}
	})

	t.Run("exact tie keeps store list order", func(t *testing.T) {
		catalog := &stubCatalog{products: map[string]domain.CatalogProduct{
			"milk": {
				Key: "milk",
				Prices: map[string]domain.PriceEntry{
					"Second": {Price: 1.00},
					"First":  {Price: 1.00},
				},
			},
		}}
		svc := NewPricingService(catalog, false)
		totals, err := svc.CompareAcrossStores(ctx, []domain.MatchedItem{matchedItem("milk", "milk", 1)}, []string{"First", "Second"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals[0].StoreName != "First" || totals[1].StoreName != "Second" {
			t.Errorf("tie order = [%s %s], want [First Second]", totals[0].StoreName, totals[1].StoreName)
		}
	})

	t.Run("zero quantity defaults to one", func(t *testing.T) {
		totals, err := svc.CompareAcrossStores(ctx, []domain.MatchedItem{matchedItem("milk", "milk", 0)}, []string{"StoreA"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals[0].Total != 1.00 {
			t.Errorf("total = %v, want 1.00 (quantity defaulted)", totals[0].Total)
		}
	})

	t.Run("unknown matched key counts as missing", func(t *testing.T) {
		totals, err := svc.CompareAcrossStores(ctx, []domain.MatchedItem{matchedItem("dragon fruit", "dragonfruit", 1)}, []string{"StoreA"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals[0].ItemsAvailable != 0 {
			t.Errorf("available = %d, want 0", totals[0].ItemsAvailable)
		}
		if len(totals[0].ItemsMissing) != 1 || totals[0].ItemsMissing[0] != "dragon fruit" {
			t.Errorf("missing = %v, want [dragon fruit]", totals[0].ItemsMissing)
		}
	})
}

func TestBestStore(t *testing.T) {
	t.Run("picks cheapest covered store", func(t *testing.T) {
		totals := []domain.StoreTotal{
			{StoreName: "B", Total: 3.00, ItemsAvailable: 1},
			{StoreName: "A", Total: 4.00, ItemsAvailable: 2},
		}
		best, ok := BestStore(totals)
		if !ok || best.StoreName != "B" {
			t.Errorf("best = %v %v, want B", best.StoreName, ok)
		}
	})

	t.Run("skips zero coverage stores", func(t *testing.T) {
		totals := []domain.StoreTotal{
			{StoreName: "Empty", Total: 0, ItemsAvailable: 0},
			{StoreName: "A", Total: 4.00, ItemsAvailable: 2},
		}
		best, ok := BestStore(totals)
		if !ok || best.StoreName != "A" {
			t.Errorf("best = %v %v, want A", best.StoreName, ok)
		}
	})

	t.Run("no coverage anywhere", func(t *testing.T) {
		totals := []domain.StoreTotal{{StoreName: "Empty", ItemsAvailable: 0}}
		if _, ok := BestStore(totals); ok {
			t.Error("expected no best store")
		}
	})
}

func TestStoreTotalCoverage(t *testing.T) {
	total := domain.StoreTotal{ItemsAvailable: 1}
	if got := total.Coverage(2); got != 0.5 {
		t.Errorf("Coverage(2) = %v, want 0.5", got)
	}
	if got := total.Coverage(0); got != 0 {
		t.Errorf("Coverage(0) = %v, want 0", got)
	}
}
