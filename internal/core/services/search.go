package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
	"github.com/lumenboard/lumen-cli/internal/core/ports/driven"
	"github.com/lumenboard/lumen-cli/internal/core/ports/driving"
	"github.com/lumenboard/lumen-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService provides universal search over the dashboard content.
//
// One instance owns the session state: the current filter, the last
// result and the recent-query history. Construct it once per session
// and inject it into consumers; there is no package-level instance.
//
// Overlapping Search calls are not coordinated: each call independently
// recomputes and replaces the stored result, so the last call to finish
// wins. The mutex protects the state slots, not call ordering.
type SearchService struct {
	content      driven.ContentStore
	historyStore driven.HistoryStore
	collator     *collate.Collator

	mu        sync.RWMutex
	filter    domain.SearchFilter
	results   *domain.SearchResult
	searching bool
	history   []string
}

// NewSearchService creates a search service over the given content
// store. The history store is optional (can be nil); without it the
// recent-query list lives only for the session.
//
// Title sorting defaults to Korean-aware collation; use SetLocale to
// change it.
func NewSearchService(content driven.ContentStore, historyStore driven.HistoryStore) *SearchService {
	s := &SearchService{
		content:      content,
		historyStore: historyStore,
		collator:     collate.New(language.Korean),
		filter:       domain.DefaultFilter(),
	}
	s.loadHistory()
	return s
}

// SetLocale switches the collation locale used for title sorting.
// Unparseable locales are ignored.
func (s *SearchService) SetLocale(locale string) {
	tag, err := language.Parse(locale)
	if err != nil {
		logger.Warn("Ignoring invalid locale %q: %v", locale, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collator = collate.New(tag)
}

// Search merges the update onto the current filter state, recomputes
// the full pipeline and returns the result.
//
// The pipeline is synchronous and total: the aggregator treats failing
// collections as empty, so Search cannot fail in normal operation. The
// error return exists for API symmetry with remote search backends.
func (s *SearchService) Search(ctx context.Context, query string, update *domain.FilterUpdate) (*domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	s.mu.Lock()
	filter := update.Apply(s.filter)
	filter.Query = query
	s.filter = filter
	s.searching = true
	collator := s.collator
	s.mu.Unlock()

	started := time.Now()

	records := aggregate(ctx, s.content)
	records = applyFilters(records, filter)

	terms := tokenize(filter.Query)
	matched, matchedTerms := matchRecords(records, terms)
	logger.Debug("After text match: %d records, %d matched terms", len(matched), len(matchedTerms))

	sortRecords(matched, filter.SortBy, filter.SortOrder, collator)

	items := make([]domain.SearchableRecord, len(matched))
	for i := range matched {
		items[i] = matched[i].record
	}

	result := &domain.SearchResult{
		Items:        items,
		TotalCount:   len(items),
		MatchedTerms: matchedTerms,
		Took:         time.Since(started),
		Categories:   categoryFacets(items),
		Tags:         tagFacets(items),
	}

	s.mu.Lock()
	s.results = result
	s.searching = false
	s.mu.Unlock()

	logger.Info("Search finished: %d results in %s", result.TotalCount, result.Took)
	return result, nil
}

// ClearSearch resets the filter and result state to defaults.
// It transitions the session back to idle unconditionally.
func (s *SearchService) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = domain.DefaultFilter()
	s.results = nil
	s.searching = false
}

// Filter returns the current filter state.
func (s *SearchService) Filter() domain.SearchFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Results returns the stored result of the last search, or nil.
func (s *SearchService) Results() *domain.SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results
}

// IsSearching reports whether a search is currently computing.
func (s *SearchService) IsSearching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searching
}

// Stats computes a corpus-wide facet snapshot over the entire
// unfiltered aggregate, for filter-UI population.
func (s *SearchService) Stats(ctx context.Context) *domain.SearchStats {
	records := aggregate(ctx, s.content)
	return &domain.SearchStats{
		TotalItems: len(records),
		Categories: categoryFacets(records),
		Tags:       tagFacets(records),
	}
}
