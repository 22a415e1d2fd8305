package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
	"github.com/lumenboard/lumen-cli/internal/core/ports/driven"
)

// contentStore implements driven.ContentStore.
type contentStore struct {
	store *Store
}

var _ driven.ContentStore = (*contentStore)(nil)

// Notes returns all notes, oldest first.
func (s *contentStore) Notes(ctx context.Context) ([]domain.Note, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, content, tags, created_at, updated_at
		FROM notes ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		var tagsJSON, createdAt, updatedAt string
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &tagsJSON, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		n.Tags = parseTags(tagsJSON)
		n.CreatedAt = parseTime(createdAt)
		n.UpdatedAt = parseTime(updatedAt)
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

// Links returns all links, oldest first.
func (s *contentStore) Links(ctx context.Context) ([]domain.Link, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, description, url, tags, created_at, updated_at
		FROM links ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying links: %w", err)
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var l domain.Link
		var tagsJSON, createdAt, updatedAt string
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.URL, &tagsJSON, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning link: %w", err)
		}
		l.Tags = parseTags(tagsJSON)
		l.CreatedAt = parseTime(createdAt)
		l.UpdatedAt = parseTime(updatedAt)
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating links: %w", err)
	}
	return links, nil
}

// Videos returns all videos, oldest first.
func (s *contentStore) Videos(ctx context.Context) ([]domain.Video, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, description, url, tags, created_at, updated_at
		FROM videos ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying videos: %w", err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var v domain.Video
		var tagsJSON, createdAt, updatedAt string
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.URL, &tagsJSON, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning video: %w", err)
		}
		v.Tags = parseTags(tagsJSON)
		v.CreatedAt = parseTime(createdAt)
		v.UpdatedAt = parseTime(updatedAt)
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating videos: %w", err)
	}
	return videos, nil
}

// Images returns all images, oldest first.
func (s *contentStore) Images(ctx context.Context) ([]domain.Image, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, description, url, tags, created_at, updated_at
		FROM images ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	var images []domain.Image
	for rows.Next() {
		var img domain.Image
		var tagsJSON, createdAt, updatedAt string
		if err := rows.Scan(&img.ID, &img.Title, &img.Description, &img.URL, &tagsJSON, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		img.Tags = parseTags(tagsJSON)
		img.CreatedAt = parseTime(createdAt)
		img.UpdatedAt = parseTime(updatedAt)
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating images: %w", err)
	}
	return images, nil
}

// Todos returns all todos, oldest first.
func (s *contentStore) Todos(ctx context.Context) ([]domain.Todo, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, description, category, tags, priority, completed, due_date, created_at, updated_at
		FROM todos ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var t domain.Todo
		var tagsJSON, priority, createdAt, updatedAt string
		var completed int
		var dueDate sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Category, &tagsJSON,
			&priority, &completed, &dueDate, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		t.Tags = parseTags(tagsJSON)
		t.Priority = domain.Priority(priority)
		t.Completed = completed != 0
		if dueDate.Valid && dueDate.String != "" {
			due := parseTime(dueDate.String)
			t.DueDate = &due
		}
		t.CreatedAt = parseTime(createdAt)
		t.UpdatedAt = parseTime(updatedAt)
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}
	return todos, nil
}

// SaveNote stores or updates a note.
func (s *contentStore) SaveNote(ctx context.Context, note *domain.Note) error {
	if note == nil || note.ID == "" {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO notes (id, title, content, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			tags = excluded.tags,
			updated_at = excluded.updated_at
	`, note.ID, note.Title, note.Content, marshalTags(note.Tags),
		formatTime(note.CreatedAt), formatTime(note.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving note: %w", err)
	}
	return nil
}

// SaveLink stores or updates a link.
func (s *contentStore) SaveLink(ctx context.Context, link *domain.Link) error {
	if link == nil || link.ID == "" {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO links (id, title, description, url, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			url = excluded.url,
			tags = excluded.tags,
			updated_at = excluded.updated_at
	`, link.ID, link.Title, link.Description, link.URL, marshalTags(link.Tags),
		formatTime(link.CreatedAt), formatTime(link.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving link: %w", err)
	}
	return nil
}

// SaveVideo stores or updates a video.
func (s *contentStore) SaveVideo(ctx context.Context, video *domain.Video) error {
	if video == nil || video.ID == "" {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO videos (id, title, description, url, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			url = excluded.url,
			tags = excluded.tags,
			updated_at = excluded.updated_at
	`, video.ID, video.Title, video.Description, video.URL, marshalTags(video.Tags),
		formatTime(video.CreatedAt), formatTime(video.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving video: %w", err)
	}
	return nil
}

// SaveImage stores or updates an image.
func (s *contentStore) SaveImage(ctx context.Context, image *domain.Image) error {
	if image == nil || image.ID == "" {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO images (id, title, description, url, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			url = excluded.url,
			tags = excluded.tags,
			updated_at = excluded.updated_at
	`, image.ID, image.Title, image.Description, image.URL, marshalTags(image.Tags),
		formatTime(image.CreatedAt), formatTime(image.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	return nil
}

// SaveTodo stores or updates a todo.
func (s *contentStore) SaveTodo(ctx context.Context, todo *domain.Todo) error {
	if todo == nil || todo.ID == "" {
		return domain.ErrInvalidInput
	}
	var dueDate any
	if todo.DueDate != nil {
		dueDate = formatTime(*todo.DueDate)
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO todos (id, title, description, category, tags, priority, completed, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			category = excluded.category,
			tags = excluded.tags,
			priority = excluded.priority,
			completed = excluded.completed,
			due_date = excluded.due_date,
			updated_at = excluded.updated_at
	`, todo.ID, todo.Title, todo.Description, todo.Category, marshalTags(todo.Tags),
		string(todo.Priority), boolToInt(todo.Completed), dueDate,
		formatTime(todo.CreatedAt), formatTime(todo.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving todo: %w", err)
	}
	return nil
}

// marshalTags encodes tags as a JSON array column value.
func marshalTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// parseTags decodes a JSON array column value, tolerating bad data.
func parseTags(raw string) []string {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
