package domain

import (
	"strings"
	"time"
)

// SourceType identifies the collection a searchable record came from.
type SourceType string

const (
	// SourceTypeAll is a filter wildcard matching every source type.
	SourceTypeAll SourceType = "all"
	// SourceTypeNote marks records derived from notes.
	SourceTypeNote SourceType = "note"
	// SourceTypeLink marks records derived from links.
	SourceTypeLink SourceType = "link"
	// SourceTypeVideo marks records derived from videos.
	SourceTypeVideo SourceType = "video"
	// SourceTypeImage marks records derived from images.
	SourceTypeImage SourceType = "image"
	// SourceTypeTodo marks records derived from todos.
	SourceTypeTodo SourceType = "todo"
)

// Fixed source type to category mapping for non-todo records.
// Todos carry their own user-assigned category.
const (
	CategoryNotes  = "Notes"
	CategoryLinks  = "Links"
	CategoryVideos = "Videos"
	CategoryImages = "Images"
	CategoryTodos  = "Todos"
)

// Priority is a todo task priority.
type Priority string

const (
	// PriorityHigh is the highest task priority.
	PriorityHigh Priority = "high"
	// PriorityMedium is the default task priority.
	PriorityMedium Priority = "medium"
	// PriorityLow is the lowest task priority.
	PriorityLow Priority = "low"
)

// Weight maps a priority to its ordering rank.
// Unknown or empty priorities rank below low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// TodoAttrs carries the todo-specific payload of a SearchableRecord.
// Nil for every other source type, so filter and sort code can test for
// "is a todo" once instead of re-checking the source type.
type TodoAttrs struct {
	// Priority is the task priority.
	Priority Priority

	// Completed reports whether the task is done.
	Completed bool

	// DueDate is the optional deadline.
	DueDate *time.Time
}

// SearchableRecord is the unified unit of search.
// It is derived, not stored: records are projected fresh from the source
// collections on every search call.
type SearchableRecord struct {
	// ID is the source item's identifier, stable per item.
	ID string

	// SourceType tags the origin collection.
	SourceType SourceType

	// Title is the display string.
	Title string

	// Body is optional free text (note content, link/video/image
	// description) used for matching only.
	Body string

	// Tags are the source item's tags, in display order.
	Tags []string

	// Category is the classification: fixed per source type for
	// non-todo records, user-assigned for todos.
	Category string

	// URL is present for link, video and image records.
	URL string

	// CreatedAt is the source item's creation time.
	CreatedAt time.Time

	// UpdatedAt is the last edit time, falling back to CreatedAt
	// when the source never recorded an update.
	UpdatedAt time.Time

	// Todo is the todo-specific payload, nil for other source types.
	Todo *TodoAttrs
}

// Surface returns the lowercased text a query term is matched against:
// title, body, tags and category joined with spaces.
func (r *SearchableRecord) Surface() string {
	parts := make([]string, 0, 3+len(r.Tags))
	parts = append(parts, r.Title, r.Body, r.Category)
	parts = append(parts, r.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// HasTag reports whether the record carries the given tag (exact match).
func (r *SearchableRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
