package services

import (
	"sort"

	"golang.org/x/text/collate"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
)

// sortRecords total-orders the matched set per SortBy/SortOrder.
//
// Relevance always orders best-match-first and ignores SortOrder; this
// mirrors the dashboard's long-standing behaviour and is asserted by a
// dedicated test. Every other ordering honours SortOrder, with desc the
// default. The sort is stable, so ties keep their pipeline order.
//
// An unrecognised SortBy falls through to the date comparator.
func sortRecords(records []scoredRecord, sortBy domain.SortBy, order domain.SortOrder, collator *collate.Collator) {
	if sortBy == domain.SortByRelevance {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].score > records[j].score
		})
		return
	}

	var less func(i, j int) bool
	switch sortBy {
	case domain.SortByTitle:
		less = func(i, j int) bool {
			return collator.CompareString(records[i].record.Title, records[j].record.Title) < 0
		}
	case domain.SortByPriority:
		less = func(i, j int) bool {
			return priorityRank(&records[i].record) < priorityRank(&records[j].record)
		}
	default:
		less = func(i, j int) bool {
			return records[i].record.CreatedAt.Before(records[j].record.CreatedAt)
		}
	}

	if order == domain.SortAsc {
		sort.SliceStable(records, less)
		return
	}
	sort.SliceStable(records, func(i, j int) bool { return less(j, i) })
}

// priorityRank maps a record to its priority ordering rank.
// Non-todo records rank 0, below every todo priority.
func priorityRank(r *domain.SearchableRecord) int {
	if r.Todo == nil {
		return 0
	}
	return r.Todo.Priority.Weight()
}
