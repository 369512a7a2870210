package catalog

import (
	"time"

	"github.com/shopstation/backend/internal/domain"
)

// Store names for the starter catalog.
const (
	StoreKosherKingdom = "Kosher Kingdom"
	StoreBKosher       = "B Kosher"
	StoreTapuach       = "Tapuach"
	StoreGrodzinski    = "Grodzinski"
)

var seedTime = time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

func price(amount float64, unit string) domain.PriceEntry {
	return domain.PriceEntry{Price: amount, Unit: unit, LastUpdated: seedTime}
}

// seedProducts is the starter catalog used until real catalog management
// data is loaded. Keys are stable identifiers; display names are what the
// comparison UI shows.
var seedProducts = []domain.CatalogProduct{
	{
		Key:          "milk",
		DisplayName:  "Milk",
		Category:     "dairy",
		Synonyms:     []string{"2 pint milk", "pint of milk"},
		CommonBrands: []string{"muller", "anchor"},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(1.35, "2 pints"),
			StoreBKosher:       price(1.25, "2 pints"),
			StoreTapuach:       price(1.40, "2 pints"),
			StoreGrodzinski:    price(1.30, "2 pints"),
		},
	},
	{
		Key:         "challah",
		DisplayName: "Challah",
		Category:    "bakery",
		Synonyms:    []string{"challah loaf", "medium challah"},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(2.50, "each"),
			StoreBKosher:       price(2.80, "each"),
			StoreGrodzinski:    price(2.20, "each"),
		},
	},
	{
		Key:         "bread",
		DisplayName: "Bread",
		Category:    "bakery",
		Synonyms:    []string{"sliced loaf"},
		CommonBrands: []string{
			"hovis", "kingsmill", "warburtons",
		},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(1.80, "800g loaf"),
			StoreBKosher:       price(1.75, "800g loaf"),
			StoreTapuach:       price(1.95, "800g loaf"),
		},
	},
	{
		Key:         "eggs",
		DisplayName: "Eggs",
		Category:    "dairy",
		Synonyms:    []string{"dozen eggs", "box of eggs"},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(2.95, "dozen"),
			StoreBKosher:       price(3.10, "dozen"),
			StoreTapuach:       price(2.90, "dozen"),
			StoreGrodzinski:    price(3.00, "dozen"),
		},
	},
	{
		Key:         "chicken_breast",
		DisplayName: "Chicken Breast",
		Category:    "meat",
		Synonyms:    []string{"chicken fillets"},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(8.50, "per kg"),
			StoreBKosher:       price(8.95, "per kg"),
			StoreTapuach:       price(8.20, "per kg"),
		},
	},
	{
		Key:         "tomatoes",
		DisplayName: "Tomatoes",
		Category:    "produce",
		Synonyms:    []string{"salad tomatoes"},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(1.60, "per kg"),
			StoreBKosher:       price(1.45, "per kg"),
			StoreTapuach:       price(1.50, "per kg"),
			StoreGrodzinski:    price(1.70, "per kg"),
		},
	},
	{
		Key:         "potatoes",
		DisplayName: "Potatoes",
		Category:    "produce",
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(1.20, "per kg"),
			StoreBKosher:       price(1.10, "per kg"),
			StoreTapuach:       price(1.25, "per kg"),
		},
	},
	{
		Key:         "butter",
		DisplayName: "Butter",
		Category:    "dairy",
		CommonBrands: []string{
			"lurpak", "anchor",
		},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(2.40, "250g"),
			StoreBKosher:       price(2.55, "250g"),
			StoreGrodzinski:    price(2.35, "250g"),
		},
	},
	{
		Key:         "cheese",
		DisplayName: "Cheese",
		Category:    "dairy",
		Synonyms:    []string{"cheddar block"},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(3.80, "400g"),
			StoreBKosher:       price(3.95, "400g"),
			StoreTapuach:       price(3.60, "400g"),
		},
	},
	{
		Key:         "hummus",
		DisplayName: "Hummus",
		Category:    "pantry",
		Synonyms:    []string{"hummus tub"},
		CommonBrands: []string{
			"osem", "yarden",
		},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(1.50, "300g tub"),
			StoreBKosher:       price(1.40, "300g tub"),
			StoreTapuach:       price(1.35, "300g tub"),
		},
	},
	{
		Key:         "grape_juice",
		DisplayName: "Grape Juice",
		Category:    "drinks",
		CommonBrands: []string{
			"kedem",
		},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(3.25, "1 litre"),
			StoreBKosher:       price(3.40, "1 litre"),
			StoreGrodzinski:    price(3.15, "1 litre"),
		},
	},
	{
		Key:         "orange_juice",
		DisplayName: "Orange Juice",
		Category:    "drinks",
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(2.10, "1 litre"),
			StoreTapuach:       price(1.95, "1 litre"),
		},
	},
	{
		Key:         "salmon",
		DisplayName: "Salmon",
		Category:    "fish",
		Synonyms:    []string{"salmon fillet"},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(12.50, "per kg"),
			StoreBKosher:       price(13.00, "per kg"),
		},
	},
	{
		Key:         "rice",
		DisplayName: "Rice",
		Category:    "pantry",
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(2.20, "1kg"),
			StoreBKosher:       price(2.05, "1kg"),
			StoreTapuach:       price(2.30, "1kg"),
		},
	},
	{
		Key:         "pasta",
		DisplayName: "Pasta",
		Category:    "pantry",
		CommonBrands: []string{
			"osem",
		},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(1.15, "500g"),
			StoreBKosher:       price(1.20, "500g"),
			StoreGrodzinski:    price(1.10, "500g"),
		},
	},
	{
		Key:         "olive_oil",
		DisplayName: "Olive Oil",
		Category:    "pantry",
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(5.50, "750ml"),
			StoreTapuach:       price(5.20, "750ml"),
		},
	},
	{
		Key:         "shabbat_candles",
		DisplayName: "Shabbat Candles",
		Category:    "household",
		Synonyms:    []string{"candles", "shabbos candles"},
		Prices: map[string]domain.PriceEntry{
			StoreKosherKingdom: price(3.99, "box of 72"),
			StoreBKosher:       price(4.25, "box of 72"),
			StoreGrodzinski:    price(3.85, "box of 72"),
		},
	},
}
