package services

import (
	"github.com/lumenboard/lumen-cli/internal/core/domain"
	"github.com/lumenboard/lumen-cli/internal/logger"
)

// applyFilters narrows the aggregated set with the structural filters,
// in a fixed order. Each stage is a no-op when its filter field is
// unset; the stages are independent predicates, so the order matters
// only for how quickly the set shrinks.
func applyFilters(records []domain.SearchableRecord, f domain.SearchFilter) []domain.SearchableRecord {
	if f.Type != "" && f.Type != domain.SourceTypeAll {
		records = keep(records, func(r *domain.SearchableRecord) bool {
			return r.SourceType == f.Type
		})
		logger.Debug("After type filter (%s): %d records", f.Type, len(records))
	}

	if f.Category != "" {
		// Exact, case-sensitive match. Not a substring.
		records = keep(records, func(r *domain.SearchableRecord) bool {
			return r.Category == f.Category
		})
		logger.Debug("After category filter (%s): %d records", f.Category, len(records))
	}

	if len(f.Tags) > 0 {
		// OR semantics: any one requested tag suffices.
		records = keep(records, func(r *domain.SearchableRecord) bool {
			for _, tag := range f.Tags {
				if r.HasTag(tag) {
					return true
				}
			}
			return false
		})
		logger.Debug("After tag filter: %d records", len(records))
	}

	if f.Priority != "" {
		// Todo-only field: every non-todo record drops out here.
		records = keep(records, func(r *domain.SearchableRecord) bool {
			return r.Todo != nil && r.Todo.Priority == f.Priority
		})
		logger.Debug("After priority filter (%s): %d records", f.Priority, len(records))
	}

	if f.Completed != nil {
		records = keep(records, func(r *domain.SearchableRecord) bool {
			return r.Todo != nil && r.Todo.Completed == *f.Completed
		})
		logger.Debug("After completion filter: %d records", len(records))
	}

	if f.DateRange != nil {
		records = keep(records, func(r *domain.SearchableRecord) bool {
			return f.DateRange.Contains(r.CreatedAt)
		})
		logger.Debug("After date filter: %d records", len(records))
	}

	return records
}

// keep filters records by a predicate, preserving order.
func keep(records []domain.SearchableRecord, pred func(*domain.SearchableRecord) bool) []domain.SearchableRecord {
	out := make([]domain.SearchableRecord, 0, len(records))
	for i := range records {
		if pred(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
