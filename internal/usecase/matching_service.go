package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/shopstation/backend/internal/domain"
)

// Scoring constants for the fuzzy tier
const (
	exactConfidence   = 1.0  // exact key / display-name hit
	synonymConfidence = 0.95 // synonym table / product synonym hit
	confidenceCap     = 0.9  // fuzzy results never report above this
	partialThreshold  = 0.8  // pre-cap score above this reports method "partial"
	substringFloor    = 0.8  // substring containment forces at least this score
	categoryBoost     = 1.2  // same non-"other" category multiplier

	defaultCandidateFloor = 0.5 // candidates must score strictly above this
)

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	CandidateFloor     float64
	EnableDebugLogging bool
}

// MatchingService resolves a single raw query line to the best catalog
// product. It is stateless apart from the injected synonym store.
type MatchingService struct {
	synonyms           *SynonymStore
	candidateFloor     float64
	enableDebugLogging bool
}

// NewMatchingService creates a matching service around the given synonym
// store.
func NewMatchingService(synonyms *SynonymStore, config MatchConfig) *MatchingService {
	floor := config.CandidateFloor
	if floor <= 0 || floor >= 1 {
		floor = defaultCandidateFloor
	}
	return &MatchingService{
		synonyms:           synonyms,
		candidateFloor:     floor,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ParseItem runs a raw list line through the fixed normalization pipeline:
// normalize -> typo fix -> plural fold -> brand extraction -> quantity
// extraction. The stage order matters; quantity extraction expects typo-fixed
// lowercase text.
func (s *MatchingService) ParseItem(line string) domain.ParsedListItem {
	normalized := Normalize(line)
	corrected := HandlePlurals(FixTypos(normalized))

	brand := ExtractBrand(corrected)
	quantity := ExtractQuantity(brand.CleanText)

	return domain.ParsedListItem{
		OriginalText:       line,
		Quantity:           quantity.Quantity,
		Unit:               quantity.Unit,
		ExtractedBrand:     brand.Brand,
		ExtractedQuantity:  quantity.Token,
		CleanProductPhrase: quantity.CleanText,
	}
}

// FindBestMatch resolves a raw query against a catalog snapshot. Returns nil
// when nothing clears the candidate floor; "no match" is an expected outcome,
// not an error.
//
// Tiers, in order:
//  1. exact: processed query equals a catalog key or normalized display name
//  2. synonym: processed query is a known synonym (seeded/learned or from the
//     product record itself)
//  3. fuzzy: Dice bigram similarity against every product name, with a 1.2x
//     same-category boost and a 0.8 substring floor; ties broken by key so
//     results are deterministic regardless of map iteration order
func (s *MatchingService) FindBestMatch(rawQuery string, catalog map[string]domain.CatalogProduct) *domain.MatchResult {
	item := s.ParseItem(rawQuery)
	return s.matchPhrase(item.CleanProductPhrase, catalog)
}

// MatchItem resolves an already-parsed item against a catalog snapshot.
func (s *MatchingService) MatchItem(item domain.ParsedListItem, catalog map[string]domain.CatalogProduct) *domain.MatchResult {
	return s.matchPhrase(item.CleanProductPhrase, catalog)
}

type fuzzyCandidate struct {
	key   string
	score float64
}

func (s *MatchingService) matchPhrase(phrase string, catalog map[string]domain.CatalogProduct) *domain.MatchResult {
	if phrase == "" || len(catalog) == 0 {
		return nil
	}

	// Tiers 1-2: exact and synonym lookups through the synonym store
	if key, method, ok := s.synonyms.Resolve(phrase, catalog); ok {
		confidence := synonymConfidence
		if method == domain.MatchMethodExact || method == domain.MatchMethodExactDisplay {
			confidence = exactConfidence
		}
		if s.enableDebugLogging {
			log.Printf("[MATCH] %q -> %s via %s", phrase, key, method)
		}
		return &domain.MatchResult{MatchedKey: key, Confidence: confidence, Method: method}
	}

	// Tier 3: fuzzy scoring over every product
	queryCategory := CategoryOf(phrase)
	var candidates []fuzzyCandidate

	for key, product := range catalog {
		name := Normalize(product.DisplayName)
		if name == "" {
			name = Normalize(key)
		}

		score := diceCoefficient(phrase, name)
		if queryCategory != CategoryOther && product.Category == queryCategory {
			score *= categoryBoost
		}
		if strings.Contains(phrase, name) || strings.Contains(name, phrase) {
			if score < substringFloor {
				score = substringFloor
			}
		}

		if score > s.candidateFloor {
			candidates = append(candidates, fuzzyCandidate{key: key, score: score})
		}
	}

	if len(candidates) == 0 {
		if s.enableDebugLogging {
			log.Printf("[MATCH] %q -> no candidate above %.2f", phrase, s.candidateFloor)
		}
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].key < candidates[j].key
	})

	best := candidates[0]
	method := domain.MatchMethodFuzzy
	if best.score > partialThreshold {
		method = domain.MatchMethodPartial
	}
	confidence := best.score
	if confidence > confidenceCap {
		confidence = confidenceCap
	}

	if s.enableDebugLogging {
		log.Printf("[MATCH] %q -> %s via %s (score %.3f, confidence %.3f)", phrase, best.key, method, best.score, confidence)
	}

	return &domain.MatchResult{
		MatchedKey: best.key,
		Confidence: confidence,
		Method:     method,
		Category:   queryCategory,
	}
}

// diceCoefficient computes the Sorensen-Dice similarity over character
// bigrams. Symmetric, 1.0 for identical strings, 0.0 for disjoint bigram
// sets. Single-character strings only score against exact equals.
func diceCoefficient(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) < 2 || len(b) < 2 {
		return 0.0
	}

	bigramsA := bigrams(a)
	bigramsB := bigrams(b)

	overlap := 0
	for bg, countA := range bigramsA {
		if countB, ok := bigramsB[bg]; ok {
			if countA < countB {
				overlap += countA
			} else {
				overlap += countB
			}
		}
	}

	totalA := 0
	for _, c := range bigramsA {
		totalA += c
	}
	totalB := 0
	for _, c := range bigramsB {
		totalB += c
	}

	return 2.0 * float64(overlap) / float64(totalA+totalB)
}

func bigrams(s string) map[string]int {
	runes := []rune(s)
	grams := make(map[string]int, len(runes))
	for i := 0; i+1 < len(runes); i++ {
		grams[string(runes[i:i+2])]++
	}
	return grams
}
