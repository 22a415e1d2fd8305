package services

import (
	"context"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
	"github.com/lumenboard/lumen-cli/internal/core/ports/driven"
	"github.com/lumenboard/lumen-cli/internal/logger"
)

// aggregate projects the five content collections into the unified
// searchable record shape. It rebuilds from scratch on every call; no
// standing index is kept, so results always reflect the collections as
// they are right now.
//
// A collection that is unavailable or fails to load is treated as
// empty rather than aborting the search. This keeps search usable when
// parts of the store are broken.
func aggregate(ctx context.Context, store driven.ContentStore) []domain.SearchableRecord {
	if store == nil {
		logger.Warn("Content store not configured, searching empty corpus")
		return nil
	}

	var records []domain.SearchableRecord

	notes, err := store.Notes(ctx)
	if err != nil {
		logger.Warn("Loading notes failed: %v", err)
	}
	for i := range notes {
		records = append(records, noteRecord(&notes[i]))
	}

	links, err := store.Links(ctx)
	if err != nil {
		logger.Warn("Loading links failed: %v", err)
	}
	for i := range links {
		records = append(records, linkRecord(&links[i]))
	}

	videos, err := store.Videos(ctx)
	if err != nil {
		logger.Warn("Loading videos failed: %v", err)
	}
	for i := range videos {
		records = append(records, videoRecord(&videos[i]))
	}

	images, err := store.Images(ctx)
	if err != nil {
		logger.Warn("Loading images failed: %v", err)
	}
	for i := range images {
		records = append(records, imageRecord(&images[i]))
	}

	todos, err := store.Todos(ctx)
	if err != nil {
		logger.Warn("Loading todos failed: %v", err)
	}
	for i := range todos {
		records = append(records, todoRecord(&todos[i]))
	}

	logger.Debug("Aggregated corpus: %d records (%d notes, %d links, %d videos, %d images, %d todos)",
		len(records), len(notes), len(links), len(videos), len(images), len(todos))

	return records
}

func noteRecord(n *domain.Note) domain.SearchableRecord {
	r := domain.SearchableRecord{
		ID:         n.ID,
		SourceType: domain.SourceTypeNote,
		Title:      n.Title,
		Body:       n.Content,
		Tags:       emptyTags(n.Tags),
		Category:   domain.CategoryNotes,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	return r
}

func linkRecord(l *domain.Link) domain.SearchableRecord {
	r := domain.SearchableRecord{
		ID:         l.ID,
		SourceType: domain.SourceTypeLink,
		Title:      l.Title,
		Body:       l.Description,
		Tags:       emptyTags(l.Tags),
		Category:   domain.CategoryLinks,
		URL:        l.URL,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	return r
}

func videoRecord(v *domain.Video) domain.SearchableRecord {
	r := domain.SearchableRecord{
		ID:         v.ID,
		SourceType: domain.SourceTypeVideo,
		Title:      v.Title,
		Body:       v.Description,
		Tags:       emptyTags(v.Tags),
		Category:   domain.CategoryVideos,
		URL:        v.URL,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	return r
}

func imageRecord(img *domain.Image) domain.SearchableRecord {
	r := domain.SearchableRecord{
		ID:         img.ID,
		SourceType: domain.SourceTypeImage,
		Title:      img.Title,
		Body:       img.Description,
		Tags:       emptyTags(img.Tags),
		Category:   domain.CategoryImages,
		URL:        img.URL,
		CreatedAt:  img.CreatedAt,
		UpdatedAt:  img.UpdatedAt,
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	return r
}

func todoRecord(t *domain.Todo) domain.SearchableRecord {
	category := t.Category
	if category == "" {
		category = domain.CategoryTodos
	}
	r := domain.SearchableRecord{
		ID:         t.ID,
		SourceType: domain.SourceTypeTodo,
		Title:      t.Title,
		Body:       t.Description,
		Tags:       emptyTags(t.Tags),
		Category:   category,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
		Todo: &domain.TodoAttrs{
			Priority:  t.Priority,
			Completed: t.Completed,
			DueDate:   t.DueDate,
		},
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	return r
}

// emptyTags coerces missing tags to an empty slice so downstream code
// never needs a nil check.
func emptyTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
