package cli

import (
	"context"
	"time"

	"github.com/lumenboard/lumen-cli/internal/adapters/driven/storage/memory"
	"github.com/lumenboard/lumen-cli/internal/core/domain"
	"github.com/lumenboard/lumen-cli/internal/core/services"
)

// setupTestServices swaps the package-level services for a memory-backed
// search service over a small seeded corpus. The returned cleanup
// restores the previous wiring.
func setupTestServices() func() {
	oldSearchService := searchService
	oldContentStore := contentStore
	oldCloseStore := closeStore

	ctx := context.Background()
	store := memory.NewContentStore()
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	store.SaveNote(ctx, &domain.Note{ //nolint:errcheck // memory store cannot fail
		ID:        "note-1",
		Title:     "Meeting Notes",
		Content:   "Quarterly planning agenda",
		Tags:      []string{"work"},
		CreatedAt: created,
	})
	store.SaveLink(ctx, &domain.Link{ //nolint:errcheck // memory store cannot fail
		ID:        "link-1",
		Title:     "GitHub",
		URL:       "https://github.com",
		Tags:      []string{"dev"},
		CreatedAt: created.Add(time.Hour),
	})
	store.SaveTodo(ctx, &domain.Todo{ //nolint:errcheck // memory store cannot fail
		ID:        "todo-1",
		Title:     "Ship release",
		Category:  "Work",
		Priority:  domain.PriorityHigh,
		CreatedAt: created.Add(2 * time.Hour),
	})

	contentStore = store
	searchService = services.NewSearchService(store, nil)
	closeStore = nil

	return func() {
		searchService = oldSearchService
		contentStore = oldContentStore
		closeStore = oldCloseStore
	}
}
