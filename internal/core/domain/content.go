package domain

import "time"

// Note is a free-form text note on the dashboard.
type Note struct {
	// ID is the unique identifier for the note.
	ID string

	// Title is the human-readable title.
	Title string

	// Content is the full note text.
	Content string

	// Tags classify the note. Order is preserved for display.
	Tags []string

	// CreatedAt is when the note was created.
	CreatedAt time.Time

	// UpdatedAt is when the note was last edited.
	// Zero if the note was never edited after creation.
	UpdatedAt time.Time
}

// Link is a saved bookmark.
type Link struct {
	// ID is the unique identifier for the link.
	ID string

	// Title is the human-readable title.
	Title string

	// Description is an optional free-text description.
	Description string

	// URL is the bookmarked address.
	URL string

	// Tags classify the link.
	Tags []string

	// CreatedAt is when the link was saved.
	CreatedAt time.Time

	// UpdatedAt is when the link was last edited.
	UpdatedAt time.Time
}

// Video is a saved video reference.
type Video struct {
	// ID is the unique identifier for the video.
	ID string

	// Title is the human-readable title.
	Title string

	// Description is an optional free-text description.
	Description string

	// URL is the video address.
	URL string

	// Tags classify the video.
	Tags []string

	// CreatedAt is when the video was saved.
	CreatedAt time.Time

	// UpdatedAt is when the video was last edited.
	UpdatedAt time.Time
}

// Image is a saved image reference.
type Image struct {
	// ID is the unique identifier for the image.
	ID string

	// Title is the human-readable title.
	Title string

	// Description is an optional free-text description.
	Description string

	// URL is the image address.
	URL string

	// Tags classify the image.
	Tags []string

	// CreatedAt is when the image was saved.
	CreatedAt time.Time

	// UpdatedAt is when the image was last edited.
	UpdatedAt time.Time
}

// Todo is a task on the dashboard.
// Unlike the other content types, todos carry a user-assigned category.
type Todo struct {
	// ID is the unique identifier for the todo.
	ID string

	// Title is the human-readable title.
	Title string

	// Description is an optional free-text description.
	Description string

	// Category is the user-assigned classification.
	// Empty means uncategorised.
	Category string

	// Tags classify the todo.
	Tags []string

	// Priority is the task priority (high, medium or low).
	Priority Priority

	// Completed reports whether the task is done.
	Completed bool

	// DueDate is the optional deadline.
	DueDate *time.Time

	// CreatedAt is when the todo was created.
	CreatedAt time.Time

	// UpdatedAt is when the todo was last edited.
	UpdatedAt time.Time
}
