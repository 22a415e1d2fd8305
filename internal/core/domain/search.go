package domain

import "time"

// SortBy selects the result ordering.
type SortBy string

const (
	// SortByRelevance orders by weighted term-match score, best first.
	SortByRelevance SortBy = "relevance"
	// SortByDate orders by creation time.
	SortByDate SortBy = "date"
	// SortByTitle orders by locale-aware title comparison.
	SortByTitle SortBy = "title"
	// SortByPriority orders by todo priority rank.
	SortByPriority SortBy = "priority"
)

// SortOrder selects ascending or descending ordering.
type SortOrder string

const (
	// SortAsc orders ascending.
	SortAsc SortOrder = "asc"
	// SortDesc orders descending. This is the default.
	SortDesc SortOrder = "desc"
)

// DateRange is an inclusive creation-date window.
// Comparison happens at date granularity, not datetime, so records
// created late on the boundary day still fall inside the range.
type DateRange struct {
	// From is the first day of the window.
	From time.Time

	// To is the last day of the window.
	To time.Time
}

// Contains reports whether t falls within the range, compared as dates.
func (d DateRange) Contains(t time.Time) bool {
	day := func(v time.Time) time.Time {
		return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
	}
	value := day(t)
	return !value.Before(day(d.From)) && !value.After(day(d.To))
}

// SearchFilter holds the query parameters for a search.
// It is session state: the search service merges updates onto its
// current filter rather than replacing it wholesale.
type SearchFilter struct {
	// Query is the free-text query. Empty matches everything.
	Query string

	// Type restricts results to one source type. SourceTypeAll is a no-op.
	Type SourceType

	// Category restricts results to an exact category value.
	Category string

	// Tags restricts results to records carrying any of these tags.
	Tags []string

	// Priority restricts results to todos with this priority.
	// Setting it implicitly excludes every non-todo record.
	Priority Priority

	// Completed restricts results to todos with this completion state.
	// Setting it implicitly excludes every non-todo record.
	Completed *bool

	// DateRange restricts results to a creation-date window.
	DateRange *DateRange

	// SortBy selects the result ordering.
	SortBy SortBy

	// SortOrder selects ascending or descending ordering.
	SortOrder SortOrder
}

// DefaultFilter returns the filter state of a fresh search session.
func DefaultFilter() SearchFilter {
	return SearchFilter{
		Query:     "",
		Type:      SourceTypeAll,
		SortBy:    SortByRelevance,
		SortOrder: SortDesc,
	}
}

// FilterUpdate is a partial SearchFilter. Nil fields leave the current
// filter value untouched; non-nil fields replace it.
type FilterUpdate struct {
	Type      *SourceType
	Category  *string
	Tags      []string
	Priority  *Priority
	Completed *bool
	DateRange *DateRange
	SortBy    *SortBy
	SortOrder *SortOrder
}

// Apply merges the update onto a filter and returns the result.
func (u *FilterUpdate) Apply(f SearchFilter) SearchFilter {
	if u == nil {
		return f
	}
	if u.Type != nil {
		f.Type = *u.Type
	}
	if u.Category != nil {
		f.Category = *u.Category
	}
	if u.Tags != nil {
		f.Tags = u.Tags
	}
	if u.Priority != nil {
		f.Priority = *u.Priority
	}
	if u.Completed != nil {
		f.Completed = u.Completed
	}
	if u.DateRange != nil {
		f.DateRange = u.DateRange
	}
	if u.SortBy != nil {
		f.SortBy = *u.SortBy
	}
	if u.SortOrder != nil {
		f.SortOrder = *u.SortOrder
	}
	return f
}

// Facet is a category or tag value paired with its frequency count.
type Facet struct {
	// Value is the category or tag.
	Value string `json:"value"`

	// Count is how many records carry the value.
	Count int `json:"count"`
}

// SearchResult is the output of one search invocation.
// It is replaced wholesale on each successful search.
type SearchResult struct {
	// Items is the ordered list of matched records.
	Items []SearchableRecord `json:"items"`

	// TotalCount is len(Items).
	TotalCount int `json:"total_count"`

	// MatchedTerms is the deduplicated union of query terms that
	// matched at least one record. Reported once for the whole
	// result set, not per record.
	MatchedTerms []string `json:"matched_terms"`

	// Took is the elapsed computation time.
	Took time.Duration `json:"took"`

	// Categories is the category frequency table over Items,
	// sorted descending by count.
	Categories []Facet `json:"categories"`

	// Tags is the tag frequency table over Items, sorted descending
	// by count and truncated to the top 20.
	Tags []Facet `json:"tags"`
}

// SearchStats is a corpus-wide facet snapshot, independent of any
// active query. Used to populate filter UIs.
type SearchStats struct {
	// TotalItems is the size of the aggregated corpus.
	TotalItems int `json:"total_items"`

	// Categories is the category frequency table over the corpus.
	Categories []Facet `json:"categories"`

	// Tags is the tag frequency table over the corpus, top 20.
	Tags []Facet `json:"tags"`
}
