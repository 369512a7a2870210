package domain

import "time"

// CatalogProduct is one entry of the read-only product catalog. The matcher
// never mutates a product; catalog management lives with an external
// collaborator.
type CatalogProduct struct {
	Key          string                `json:"key"`
	DisplayName  string                `json:"displayName"`
	Category     string                `json:"category"`
	Synonyms     []string              `json:"synonyms,omitempty"`
	CommonBrands []string              `json:"commonBrands,omitempty"`
	Prices       map[string]PriceEntry `json:"prices,omitempty"` // storeName -> entry
}

// PriceEntry holds one store's price for a product. A missing entry means
// "not stocked at that store"; an entry with Price <= 0 is treated the same.
type PriceEntry struct {
	Price       float64   `json:"price"`
	Unit        string    `json:"unit,omitempty"` // free text, e.g. "2 pints"
	LastUpdated time.Time `json:"lastUpdated,omitempty"`
}

// Available reports whether this entry counts as stocked.
func (p PriceEntry) Available() bool {
	return p.Price > 0
}

// ParsedListItem is the result of running one raw list line through the
// normalization pipeline.
type ParsedListItem struct {
	OriginalText       string  `json:"originalText"`
	Quantity           float64 `json:"quantity"`
	Unit               string  `json:"unit"`
	ExtractedBrand     string  `json:"extractedBrand,omitempty"`
	ExtractedQuantity  string  `json:"extractedQuantity,omitempty"` // the raw token, e.g. "2kg"
	CleanProductPhrase string  `json:"cleanProductPhrase"`
}

// MatchMethod identifies which tier of the matcher produced a result.
type MatchMethod string

const (
	MatchMethodExact        MatchMethod = "exact"         // query equals a catalog key
	MatchMethodExactDisplay MatchMethod = "exact_display" // query equals a normalized display name
	MatchMethodSynonym      MatchMethod = "synonym"       // hit in the seeded/learned synonym table
	MatchMethodDBSynonym    MatchMethod = "db_synonym"    // hit in a product's own synonym list
	MatchMethodPartial      MatchMethod = "partial"       // fuzzy tier, boosted score above 0.8
	MatchMethodFuzzy        MatchMethod = "fuzzy"         // fuzzy tier
)

// MatchResult represents the outcome of matching a single query against the
// catalog. A nil *MatchResult means "no match", which is an expected outcome,
// not an error.
type MatchResult struct {
	MatchedKey string      `json:"matchedKey"`
	Confidence float64     `json:"confidence"` // 0..1
	Method     MatchMethod `json:"method"`
	Category   string      `json:"category,omitempty"` // only set for fuzzy/partial matches
}

// MatchedItem is an accepted list line together with its resolved product.
type MatchedItem struct {
	Item       ParsedListItem `json:"item"`
	MatchedKey string         `json:"matchedKey"`
	Confidence float64        `json:"confidence"`
	Method     MatchMethod    `json:"method"`
}

// Quantity returns the item quantity, defaulting to 1 when the parsed
// quantity is missing or nonsensical.
func (m MatchedItem) Quantity() float64 {
	if m.Item.Quantity <= 0 {
		return 1
	}
	return m.Item.Quantity
}

// MatchDetail is the per-line audit record produced for every input line,
// accepted or not, in input order.
type MatchDetail struct {
	OriginalText string      `json:"originalText"`
	MatchedKey   string      `json:"matchedKey,omitempty"`
	Confidence   float64     `json:"confidence"`
	Method       MatchMethod `json:"method,omitempty"`
	Accepted     bool        `json:"accepted"`
}

// ListMatchResult is the reconciled outcome for a whole pasted list.
type ListMatchResult struct {
	Matched      []MatchedItem `json:"matched"`
	Unmatched    []string      `json:"unmatched"`
	MatchDetails []MatchDetail `json:"matchDetails"`
}

// StoreTotal is one store's cost for a matched shopping list.
type StoreTotal struct {
	StoreName      string   `json:"storeName"`
	Total          float64  `json:"total"`
	ItemsAvailable int      `json:"itemsAvailable"`
	ItemsMissing   []string `json:"itemsMissing,omitempty"` // original texts with no price here
}

// Coverage returns the fraction of requested items this store can price.
func (s StoreTotal) Coverage(requested int) float64 {
	if requested == 0 {
		return 0
	}
	return float64(s.ItemsAvailable) / float64(requested)
}
