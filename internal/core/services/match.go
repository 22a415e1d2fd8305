package services

import (
	"strings"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
)

// scoredRecord holds a matched record with its relevance score until
// sorting. The score is used purely for ordering and is never exposed.
type scoredRecord struct {
	record domain.SearchableRecord
	score  int
}

// Relevance weights per matched field.
const (
	weightTitle = 3
	weightBody  = 2
	weightTag   = 1
)

// tokenize splits a query into lowercase whitespace-separated terms.
func tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// matchRecords restricts records to those whose searchable surface
// contains every query term (AND semantics) and collects the
// deduplicated union of terms that matched, in query order.
//
// An empty term list matches everything and reports no matched terms.
func matchRecords(records []domain.SearchableRecord, terms []string) ([]scoredRecord, []string) {
	matched := make([]scoredRecord, 0, len(records))

	if len(terms) == 0 {
		for i := range records {
			matched = append(matched, scoredRecord{record: records[i]})
		}
		return matched, []string{}
	}

	for i := range records {
		surface := records[i].Surface()
		all := true
		for _, term := range terms {
			if !strings.Contains(surface, term) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, scoredRecord{
				record: records[i],
				score:  relevanceScore(&records[i], terms),
			})
		}
	}

	matchedTerms := []string{}
	if len(matched) > 0 {
		// Every surviving record contains every term, so the union is
		// simply the deduplicated term list.
		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			if !seen[term] {
				seen[term] = true
				matchedTerms = append(matchedTerms, term)
			}
		}
	}

	return matched, matchedTerms
}

// relevanceScore counts query terms per field with fixed weights:
// title x3, body x2, any tag x1.
func relevanceScore(r *domain.SearchableRecord, terms []string) int {
	title := strings.ToLower(r.Title)
	body := strings.ToLower(r.Body)

	score := 0
	for _, term := range terms {
		if strings.Contains(title, term) {
			score += weightTitle
		}
		if strings.Contains(body, term) {
			score += weightBody
		}
		for _, tag := range r.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				score += weightTag
				break
			}
		}
	}
	return score
}
