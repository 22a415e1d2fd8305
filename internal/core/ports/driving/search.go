package driving

import (
	"context"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
)

// SearchService provides universal search over the dashboard content
// to external actors. A single instance owns the session's filter,
// result and history state.
type SearchService interface {
	// Search merges the update onto the current filter state, recomputes
	// the full aggregate-filter-match-sort-facet pipeline and returns the
	// result. The result also replaces the session's stored result.
	Search(ctx context.Context, query string, update *domain.FilterUpdate) (*domain.SearchResult, error)

	// ClearSearch resets the filter and result state to defaults.
	ClearSearch()

	// Filter returns the current filter state.
	Filter() domain.SearchFilter

	// Results returns the stored result of the last search,
	// or nil if no search ran since the last clear.
	Results() *domain.SearchResult

	// IsSearching reports whether a search is currently computing.
	IsSearching() bool

	// AddToHistory records a query in the bounded recent-query list.
	AddToHistory(query string)

	// ClearHistory empties the recent-query list.
	ClearHistory()

	// History returns the recent queries, most recent first.
	History() []string

	// Suggestions returns autocomplete candidates for a partial query.
	Suggestions(ctx context.Context, partial string) []string

	// HighlightText wraps query term occurrences in text with
	// <mark> markers for display. Independent of the search pipeline.
	HighlightText(text, query string) string

	// Stats returns a corpus-wide facet snapshot, independent of any
	// active query.
	Stats(ctx context.Context) *domain.SearchStats
}
