package services

import (
	"sort"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
)

// maxTagFacets caps the tag frequency table at the most frequent tags.
const maxTagFacets = 20

// categoryFacets computes the category frequency table over a record
// set, sorted descending by count.
func categoryFacets(records []domain.SearchableRecord) []domain.Facet {
	counts := make(map[string]int)
	for i := range records {
		if records[i].Category != "" {
			counts[records[i].Category]++
		}
	}
	return sortedFacets(counts, 0)
}

// tagFacets computes the tag frequency table over a record set, sorted
// descending by count and truncated to the top 20.
func tagFacets(records []domain.SearchableRecord) []domain.Facet {
	counts := make(map[string]int)
	for i := range records {
		for _, tag := range records[i].Tags {
			counts[tag]++
		}
	}
	return sortedFacets(counts, maxTagFacets)
}

// sortedFacets converts a frequency map to a facet list sorted
// descending by count, with equal counts ordered by value so the
// output is deterministic. limit truncates the list; 0 means no cap.
func sortedFacets(counts map[string]int, limit int) []domain.Facet {
	facets := make([]domain.Facet, 0, len(counts))
	for value, count := range counts {
		facets = append(facets, domain.Facet{Value: value, Count: count})
	}
	sort.Slice(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return facets[i].Value < facets[j].Value
	})
	if limit > 0 && len(facets) > limit {
		facets = facets[:limit]
	}
	return facets
}
