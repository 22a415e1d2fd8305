package driven

import (
	"context"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
)

// ContentStore exposes the five dashboard content collections.
// The search core only reads; the save methods exist for the CLI's
// content authoring commands and for seeding test corpora.
//
// Implementations own their persistence (SQLite, memory). A read
// returning an error is treated by the search core as an empty
// collection, keeping search usable when parts of the store are
// unavailable.
type ContentStore interface {
	// Notes returns all notes.
	Notes(ctx context.Context) ([]domain.Note, error)

	// Links returns all links.
	Links(ctx context.Context) ([]domain.Link, error)

	// Videos returns all videos.
	Videos(ctx context.Context) ([]domain.Video, error)

	// Images returns all images.
	Images(ctx context.Context) ([]domain.Image, error)

	// Todos returns all todos.
	Todos(ctx context.Context) ([]domain.Todo, error)

	// SaveNote stores or updates a note.
	SaveNote(ctx context.Context, note *domain.Note) error

	// SaveLink stores or updates a link.
	SaveLink(ctx context.Context, link *domain.Link) error

	// SaveVideo stores or updates a video.
	SaveVideo(ctx context.Context, video *domain.Video) error

	// SaveImage stores or updates an image.
	SaveImage(ctx context.Context, image *domain.Image) error

	// SaveTodo stores or updates a todo.
	SaveTodo(ctx context.Context, todo *domain.Todo) error
}
