// Package memory provides in-memory implementations of driven port
// interfaces, used by tests and as a demo corpus for the TUI.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
	"github.com/lumenboard/lumen-cli/internal/core/ports/driven"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentStore = (*ContentStore)(nil)

// ContentStore is an in-memory implementation of driven.ContentStore.
// Items keep their insertion order.
type ContentStore struct {
	mu     sync.RWMutex
	notes  []domain.Note
	links  []domain.Link
	videos []domain.Video
	images []domain.Image
	todos  []domain.Todo
}

// NewContentStore creates an empty in-memory content store.
func NewContentStore() *ContentStore {
	return &ContentStore{}
}

// Notes returns all notes.
func (s *ContentStore) Notes(_ context.Context) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Note(nil), s.notes...), nil
}

// Links returns all links.
func (s *ContentStore) Links(_ context.Context) ([]domain.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Link(nil), s.links...), nil
}

// Videos returns all videos.
func (s *ContentStore) Videos(_ context.Context) ([]domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Video(nil), s.videos...), nil
}

// Images returns all images.
func (s *ContentStore) Images(_ context.Context) ([]domain.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Image(nil), s.images...), nil
}

// Todos returns all todos.
func (s *ContentStore) Todos(_ context.Context) ([]domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Todo(nil), s.todos...), nil
}

// SaveNote stores or updates a note. A missing ID is generated.
func (s *ContentStore) SaveNote(_ context.Context, note *domain.Note) error {
	if note == nil {
		return domain.ErrInvalidInput
	}
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == note.ID {
			s.notes[i] = *note
			return nil
		}
	}
	s.notes = append(s.notes, *note)
	return nil
}

// SaveLink stores or updates a link. A missing ID is generated.
func (s *ContentStore) SaveLink(_ context.Context, link *domain.Link) error {
	if link == nil {
		return domain.ErrInvalidInput
	}
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.links {
		if s.links[i].ID == link.ID {
			s.links[i] = *link
			return nil
		}
	}
	s.links = append(s.links, *link)
	return nil
}

// SaveVideo stores or updates a video. A missing ID is generated.
func (s *ContentStore) SaveVideo(_ context.Context, video *domain.Video) error {
	if video == nil {
		return domain.ErrInvalidInput
	}
	if video.ID == "" {
		video.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videos {
		if s.videos[i].ID == video.ID {
			s.videos[i] = *video
			return nil
		}
	}
	s.videos = append(s.videos, *video)
	return nil
}

// SaveImage stores or updates an image. A missing ID is generated.
func (s *ContentStore) SaveImage(_ context.Context, image *domain.Image) error {
	if image == nil {
		return domain.ErrInvalidInput
	}
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.images {
		if s.images[i].ID == image.ID {
			s.images[i] = *image
			return nil
		}
	}
	s.images = append(s.images, *image)
	return nil
}

// SaveTodo stores or updates a todo. A missing ID is generated.
func (s *ContentStore) SaveTodo(_ context.Context, todo *domain.Todo) error {
	if todo == nil {
		return domain.ErrInvalidInput
	}
	if todo.ID == "" {
		todo.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == todo.ID {
			s.todos[i] = *todo
			return nil
		}
	}
	s.todos = append(s.todos, *todo)
	return nil
}
