package usecase

import (
	"log"
	"sort"
	"sync"

	"github.com/shopstation/backend/internal/domain"
)

// autoLearnThreshold is the minimum key similarity before an unmatched
// phrase is adopted as a synonym without user confirmation.
const autoLearnThreshold = 0.7

// defaultSynonyms seeds the store at construction. Keys are canonical
// catalog keys; values are phrases shoppers actually type.
var defaultSynonyms = map[string][]string{
	"milk": {
		"whole milk", "full fat milk", "semi skimmed milk", "skimmed milk", "fresh milk", "blue milk", "green milk",
	},
	"chicken_breast": {
		"chicken breast", "chicken fillet", "chicken fillets", "breast of chicken", "boneless chicken",
	},
	"eggs": {
		"egg", "free range egg", "medium egg", "large egg", "box of egg",
	},
	"challah": {
		"challah bread", "plaited loaf", "shabbat bread", "challa bread",
	},
	"bread": {
		"white bread", "brown bread", "wholemeal bread", "sliced bread", "loaf",
	},
	"tomatoes": {
		"tomato", "cherry tomato", "vine tomato", "plum tomato",
	},
	"potatoes": {
		"potato", "white potato", "baking potato", "new potato",
	},
	"butter": {
		"salted butter", "unsalted butter", "block of butter",
	},
	"cheese": {
		"cheddar", "cheddar cheese", "hard cheese", "block of cheese",
	},
	"orange_juice": {
		"orange juice", "oj", "fresh orange juice", "smooth orange juice",
	},
	"olive_oil": {
		"olive oil", "extra virgin olive oil", "evoo",
	},
	"grape_juice": {
		"grape juice", "kiddush wine substitute", "red grape juice",
	},
	"hummus": {
		"houmous dip", "chickpea dip",
	},
	"salmon": {
		"salmon fillet", "fresh salmon", "salmon side",
	},
	"rice": {
		"white rice", "basmati rice", "long grain rice",
	},
	"pasta": {
		"penne", "fusilli", "spaghetti",
	},
	"sugar": {
		"white sugar", "granulated sugar", "caster sugar",
	},
	"flour": {
		"plain flour", "self raising flour", "white flour",
	},
}

// SynonymStore owns the mutable phrase -> canonical-key mapping for the
// process lifetime. It is an explicit injected value rather than a package
// singleton so tests can run against isolated instances. Reads and writes
// are guarded by a RWMutex; concurrent corrections need no ordering
// guarantee beyond that.
type SynonymStore struct {
	mu    sync.RWMutex
	table map[string][]string // canonical key -> synonym phrases
	debug bool
}

// NewSynonymStore returns a store seeded from the static synonym table.
func NewSynonymStore() *SynonymStore {
	table := make(map[string][]string, len(defaultSynonyms))
	for key, phrases := range defaultSynonyms {
		table[key] = append([]string(nil), phrases...)
	}
	return &SynonymStore{table: table}
}

// SetDebug enables correction/auto-learn logging.
func (s *SynonymStore) SetDebug(debug bool) {
	s.debug = debug
}

// Resolve maps a normalized phrase to a canonical catalog key. Checks run
// in a fixed order and the first hit wins:
//  1. the phrase is itself a catalog key
//  2. the phrase equals a product's normalized display name
//  3. the phrase is in the store's seeded/learned table for a key that
//     exists in the supplied catalog
//  4. the phrase is in a catalog product's own synonym list
//
// The returned method distinguishes which check succeeded.
func (s *SynonymStore) Resolve(phrase string, catalog map[string]domain.CatalogProduct) (string, domain.MatchMethod, bool) {
	if phrase == "" {
		return "", "", false
	}

	if _, ok := catalog[phrase]; ok {
		return phrase, domain.MatchMethodExact, true
	}

	for _, key := range sortedKeys(catalog) {
		if Normalize(catalog[key].DisplayName) == phrase {
			return key, domain.MatchMethodExactDisplay, true
		}
	}

	s.mu.RLock()
	for _, key := range sortedTableKeys(s.table) {
		if _, inCatalog := catalog[key]; !inCatalog {
			continue
		}
		for _, synonym := range s.table[key] {
			if Normalize(synonym) == phrase {
				s.mu.RUnlock()
				return key, domain.MatchMethodSynonym, true
			}
		}
	}
	s.mu.RUnlock()

	for _, key := range sortedKeys(catalog) {
		for _, synonym := range catalog[key].Synonyms {
			if Normalize(synonym) == phrase {
				return key, domain.MatchMethodDBSynonym, true
			}
		}
	}

	return "", "", false
}

// LearnFromCorrection records a user's correction of a wrong match: the
// normalized query becomes a synonym of correctKey (idempotently) and is
// removed from wrongKey's list if present. An entry living under several
// keys is only ever removed from the named wrong key.
func (s *SynonymStore) LearnFromCorrection(query, wrongKey, correctKey string) {
	phrase := Normalize(query)
	if phrase == "" || correctKey == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !containsNormalized(s.table[correctKey], phrase) {
		s.table[correctKey] = append(s.table[correctKey], phrase)
		if s.debug {
			log.Printf("[LEARN] %q -> %s (user correction)", phrase, correctKey)
		}
	}

	if wrongKey == "" || wrongKey == correctKey {
		return
	}
	kept := s.table[wrongKey][:0]
	for _, synonym := range s.table[wrongKey] {
		if Normalize(synonym) != phrase {
			kept = append(kept, synonym)
		}
	}
	s.table[wrongKey] = kept
}

// AutoLearn compares an unmatched phrase against every canonical key and
// adopts it as a synonym of the closest key when similarity clears the
// auto-learn threshold. Best effort, append-only; meant to run over
// historical unmatched logs, not on the request path.
func (s *SynonymStore) AutoLearn(unmatchedPhrase string) (string, bool) {
	phrase := Normalize(unmatchedPhrase)
	if phrase == "" {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bestKey := ""
	bestScore := 0.0
	for _, key := range sortedTableKeys(s.table) {
		score := diceCoefficient(phrase, Normalize(key))
		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}

	if bestKey == "" || bestScore <= autoLearnThreshold {
		return "", false
	}
	if !containsNormalized(s.table[bestKey], phrase) {
		s.table[bestKey] = append(s.table[bestKey], phrase)
		if s.debug {
			log.Printf("[LEARN] %q -> %s (auto, score %.2f)", phrase, bestKey, bestScore)
		}
	}
	return bestKey, true
}

// Synonyms returns a copy of the current synonym list for a key.
func (s *SynonymStore) Synonyms(key string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.table[key]...)
}

func containsNormalized(phrases []string, normalized string) bool {
	for _, p := range phrases {
		if Normalize(p) == normalized {
			return true
		}
	}
	return false
}

func sortedKeys(catalog map[string]domain.CatalogProduct) []string {
	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedTableKeys(table map[string][]string) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
