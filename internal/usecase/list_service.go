package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopstation/backend/internal/domain"
)

// MatchSummary is the analytics digest emitted after each reconciled list.
type MatchSummary struct {
	TotalItems    int
	MatchedItems  int
	MatchRate     float64
	MethodCounts  map[domain.MatchMethod]int
	AvgConfidence float64 // of accepted matches only
}

// SummarySink receives list summaries. Sinks are fire-and-forget: a panicking
// or slow sink must never affect the caller's result.
type SummarySink func(MatchSummary)

// ListServiceConfig holds configuration for the list service
type ListServiceConfig struct {
	AcceptanceFloor    float64
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

const defaultAcceptanceFloor = 0.6

// ListService reconciles whole pasted lists: it runs every line through the
// matcher against one stable catalog snapshot, partitions the results by the
// acceptance floor, and feeds user corrections back into the synonym store.
type ListService struct {
	matcher            *MatchingService
	synonyms           *SynonymStore
	catalog            domain.CatalogProvider
	cache              domain.CacheRepository
	sink               SummarySink
	acceptanceFloor    float64
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewListService creates a list service. cache may be nil to disable match
// memoization; sink may be nil to use the default log-based sink.
func NewListService(
	matcher *MatchingService,
	synonyms *SynonymStore,
	catalog domain.CatalogProvider,
	cache domain.CacheRepository,
	sink SummarySink,
	config ListServiceConfig,
) *ListService {
	floor := config.AcceptanceFloor
	if floor <= 0 || floor >= 1 {
		floor = defaultAcceptanceFloor
	}
	ttl := config.CacheTTL
	if ttl == 0 {
		ttl = time.Hour
	}
	if sink == nil {
		sink = logSummary
	}
	return &ListService{
		matcher:            matcher,
		synonyms:           synonyms,
		catalog:            catalog,
		cache:              cache,
		sink:               sink,
		acceptanceFloor:    floor,
		cacheTTL:           ttl,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// MatchList resolves every raw line against a single catalog snapshot taken
// at entry, so a mutating store cannot produce a mid-run inconsistent view.
// One MatchDetail is produced per input line in input order. Matches are
// accepted only when confidence is strictly above the acceptance floor;
// anything below lands in Unmatched.
func (s *ListService) MatchList(ctx context.Context, lines []string) (*domain.ListMatchResult, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog snapshot: %w", err)
	}

	result := &domain.ListMatchResult{
		Matched:      []domain.MatchedItem{},
		Unmatched:    []string{},
		MatchDetails: make([]domain.MatchDetail, 0, len(lines)),
	}

	for _, line := range lines {
		item := s.matcher.ParseItem(line)
		match := s.lookupMatch(ctx, item, catalog)

		detail := domain.MatchDetail{OriginalText: line}
		if match != nil {
			detail.MatchedKey = match.MatchedKey
			detail.Confidence = match.Confidence
			detail.Method = match.Method
		}

		if s.accepted(match) {
			detail.Accepted = true
			result.Matched = append(result.Matched, domain.MatchedItem{
				Item:       item,
				MatchedKey: match.MatchedKey,
				Confidence: match.Confidence,
				Method:     match.Method,
			})
		} else {
			result.Unmatched = append(result.Unmatched, line)
		}
		result.MatchDetails = append(result.MatchDetails, detail)
	}

	s.emitSummary(result)

	return result, nil
}

// RecordUserFeedback ingests a user's verdict on a suggested match. Accepted
// suggestions need no action; a rejection with a correction becomes a synonym
// of the corrected product and is removed from the wrong one. Learning
// invalidates the match cache so stale suggestions do not survive.
func (s *ListService) RecordUserFeedback(ctx context.Context, originalQuery, suggestedMatch, userCorrection string, wasAccepted bool) {
	if wasAccepted || userCorrection == "" {
		return
	}

	s.synonyms.LearnFromCorrection(originalQuery, suggestedMatch, userCorrection)

	if s.cache != nil {
		if err := s.cache.Clear(ctx); err != nil && s.enableDebugLogging {
			log.Printf("[LIST] cache clear after feedback failed: %v", err)
		}
	}
}

// accepted applies the acceptance floor: strictly greater, so a result at
// exactly the floor is rejected. The gap between the matcher's candidate
// floor and this one is deliberate tuning room.
func (s *ListService) accepted(match *domain.MatchResult) bool {
	return match != nil && match.Confidence > s.acceptanceFloor
}

// lookupMatch consults the memoization cache before running the matcher.
// Cache failures are treated as misses.
func (s *ListService) lookupMatch(ctx context.Context, item domain.ParsedListItem, catalog map[string]domain.CatalogProduct) *domain.MatchResult {
	if s.cache == nil {
		return s.matcher.MatchItem(item, catalog)
	}

	cacheKey := "match:" + item.CleanProductPhrase
	if value, err := s.cache.Get(ctx, cacheKey); err == nil {
		if match, ok := value.(*domain.MatchResult); ok {
			return match
		}
	}

	match := s.matcher.MatchItem(item, catalog)
	// A nil match is cached too: unknown phrases are the expensive case.
	if err := s.cache.Set(ctx, cacheKey, match, s.cacheTTL); err != nil && s.enableDebugLogging {
		log.Printf("[LIST] cache set failed for %q: %v", cacheKey, err)
	}
	return match
}

// emitSummary computes and dispatches the analytics digest. Everything here
// is best effort; a broken sink must never fail the reconciled list.
func (s *ListService) emitSummary(result *domain.ListMatchResult) {
	defer func() {
		if r := recover(); r != nil && s.enableDebugLogging {
			log.Printf("[LIST] summary sink panicked: %v", r)
		}
	}()

	summary := MatchSummary{
		TotalItems:   len(result.MatchDetails),
		MatchedItems: len(result.Matched),
		MethodCounts: make(map[domain.MatchMethod]int),
	}
	if summary.TotalItems > 0 {
		summary.MatchRate = float64(summary.MatchedItems) / float64(summary.TotalItems)
	}

	totalConfidence := 0.0
	for _, matched := range result.Matched {
		summary.MethodCounts[matched.Method]++
		totalConfidence += matched.Confidence
	}
	if summary.MatchedItems > 0 {
		summary.AvgConfidence = totalConfidence / float64(summary.MatchedItems)
	}

	s.sink(summary)
}

// logSummary is the default summary sink.
func logSummary(summary MatchSummary) {
	log.Printf("[LIST] matched %d/%d (rate %.0f%%, avg confidence %.2f) methods=%v",
		summary.MatchedItems, summary.TotalItems, summary.MatchRate*100, summary.AvgConfidence, summary.MethodCounts)
}
