package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenboard/lumen-cli/internal/adapters/driven/storage/memory"
	"github.com/lumenboard/lumen-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockHistoryStore implements driven.HistoryStore for testing.
type mockHistoryStore struct {
	saved   []string
	loadErr error
	saveErr error
}

func (m *mockHistoryStore) Load() ([]string, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.saved, nil
}

func (m *mockHistoryStore) Save(queries []string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append([]string(nil), queries...)
	return nil
}

// --- Helpers ---

func day(dayOfMonth int) time.Time {
	return time.Date(2026, 5, dayOfMonth, 10, 0, 0, 0, time.UTC)
}

// seedStore builds the standard test corpus: one note, one link, one
// video, one image and three todos with distinct priorities.
func seedStore(t *testing.T) *memory.ContentStore {
	t.Helper()
	ctx := context.Background()
	store := memory.NewContentStore()

	require.NoError(t, store.SaveNote(ctx, &domain.Note{
		ID:        "note-1",
		Title:     "Meeting Notes",
		Content:   "Quarterly planning agenda",
		Tags:      []string{"work"},
		CreatedAt: day(1),
	}))
	require.NoError(t, store.SaveLink(ctx, &domain.Link{
		ID:        "link-1",
		Title:     "GitHub",
		URL:       "https://github.com",
		Tags:      []string{"dev"},
		CreatedAt: day(2),
	}))
	require.NoError(t, store.SaveVideo(ctx, &domain.Video{
		ID:        "video-1",
		Title:     "Planning Workshop Recording",
		URL:       "https://example.com/v/1",
		Tags:      []string{"work"},
		CreatedAt: day(3),
	}))
	require.NoError(t, store.SaveImage(ctx, &domain.Image{
		ID:        "image-1",
		Title:     "Whiteboard Photo",
		URL:       "https://example.com/i/1",
		CreatedAt: day(4),
	}))
	require.NoError(t, store.SaveTodo(ctx, &domain.Todo{
		ID:        "todo-1",
		Title:     "Ship release",
		Category:  "Work",
		Priority:  domain.PriorityHigh,
		CreatedAt: day(5),
	}))
	require.NoError(t, store.SaveTodo(ctx, &domain.Todo{
		ID:        "todo-2",
		Title:     "Review budget",
		Category:  "Finance",
		Priority:  domain.PriorityMedium,
		Completed: true,
		CreatedAt: day(6),
	}))
	require.NoError(t, store.SaveTodo(ctx, &domain.Todo{
		ID:        "todo-3",
		Title:     "Water plants",
		Priority:  domain.PriorityLow,
		CreatedAt: day(7),
	}))

	return store
}

func newTestService(t *testing.T) *SearchService {
	t.Helper()
	return NewSearchService(seedStore(t), &mockHistoryStore{})
}

// --- Search ---

func TestSearch_SingleTerm(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Search(context.Background(), "meeting", nil)

	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, domain.SourceTypeNote, result.Items[0].SourceType)
	assert.Equal(t, "Meeting Notes", result.Items[0].Title)
	assert.Equal(t, []string{"meeting"}, result.MatchedTerms)
}

func TestSearch_AndSemantics(t *testing.T) {
	svc := newTestService(t)

	// "planning" alone matches the note and the video; adding
	// "agenda" must narrow to the note only.
	result, err := svc.Search(context.Background(), "planning agenda", nil)

	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "note-1", result.Items[0].ID)
	assert.ElementsMatch(t, []string{"planning", "agenda"}, result.MatchedTerms)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Search(context.Background(), "GITHUB", nil)

	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "link-1", result.Items[0].ID)
}

func TestSearch_NoMatch(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Search(context.Background(), "nonexistent-zzz", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalCount)
	assert.Empty(t, result.Items)
	assert.Empty(t, result.MatchedTerms)
}

func TestSearch_EmptyQueryReturnsEverything(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Search(context.Background(), "", nil)

	require.NoError(t, err)
	assert.Equal(t, 7, result.TotalCount)
	assert.Empty(t, result.MatchedTerms)
}

func TestSearch_Idempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Search(ctx, "work", nil)
	require.NoError(t, err)
	second, err := svc.Search(ctx, "work", nil)
	require.NoError(t, err)

	require.Equal(t, first.TotalCount, second.TotalCount)
	for i := range first.Items {
		assert.Equal(t, first.Items[i], second.Items[i])
	}
	assert.Equal(t, first.MatchedTerms, second.MatchedTerms)
	assert.Equal(t, first.Categories, second.Categories)
	assert.Equal(t, first.Tags, second.Tags)
}

func TestSearch_TypeFilterExclusive(t *testing.T) {
	svc := newTestService(t)

	todoType := domain.SourceTypeTodo
	result, err := svc.Search(context.Background(), "", &domain.FilterUpdate{Type: &todoType})

	require.NoError(t, err)
	require.Equal(t, 3, result.TotalCount)
	for _, item := range result.Items {
		assert.Equal(t, domain.SourceTypeTodo, item.SourceType)
	}
}

func TestSearch_PriorityFilterImplicitlyExcludesNonTodos(t *testing.T) {
	svc := newTestService(t)

	priority := domain.PriorityHigh
	result, err := svc.Search(context.Background(), "", &domain.FilterUpdate{Priority: &priority})

	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	require.NotNil(t, result.Items[0].Todo)
	assert.Equal(t, domain.PriorityHigh, result.Items[0].Todo.Priority)
}

func TestSearch_FacetCountsSumToTotal(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Search(context.Background(), "", nil)

	require.NoError(t, err)
	sum := 0
	for _, facet := range result.Categories {
		sum += facet.Count
	}
	assert.Equal(t, result.TotalCount, sum)
}

func TestSearch_MergesFilterState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	todoType := domain.SourceTypeTodo
	_, err := svc.Search(ctx, "", &domain.FilterUpdate{Type: &todoType})
	require.NoError(t, err)

	// The next search keeps the merged type filter.
	result, err := svc.Search(ctx, "", nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, domain.SourceTypeTodo, svc.Filter().Type)
}

func TestSearch_StoresResult(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Search(context.Background(), "github", nil)
	require.NoError(t, err)

	assert.Equal(t, result, svc.Results())
	assert.False(t, svc.IsSearching())
}

func TestSearch_TookIsMeasured(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Search(context.Background(), "", nil)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Took, time.Duration(0))
}

// --- ClearSearch ---

func TestClearSearch_ResetsToDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	todoType := domain.SourceTypeTodo
	_, err := svc.Search(ctx, "release", &domain.FilterUpdate{Type: &todoType})
	require.NoError(t, err)

	svc.ClearSearch()

	filter := svc.Filter()
	assert.Equal(t, "", filter.Query)
	assert.Equal(t, domain.SourceTypeAll, filter.Type)
	assert.Equal(t, domain.SortByRelevance, filter.SortBy)
	assert.Equal(t, domain.SortDesc, filter.SortOrder)
	assert.Nil(t, svc.Results())
	assert.False(t, svc.IsSearching())
}

// --- Degraded stores ---

// failingContentStore implements driven.ContentStore with every read
// failing.
type failingContentStore struct{}

func (failingContentStore) Notes(context.Context) ([]domain.Note, error) {
	return nil, errors.New("notes unavailable")
}
func (failingContentStore) Links(context.Context) ([]domain.Link, error) {
	return nil, errors.New("links unavailable")
}
func (failingContentStore) Videos(context.Context) ([]domain.Video, error) {
	return nil, errors.New("videos unavailable")
}
func (failingContentStore) Images(context.Context) ([]domain.Image, error) {
	return nil, errors.New("images unavailable")
}
func (failingContentStore) Todos(context.Context) ([]domain.Todo, error) {
	return nil, errors.New("todos unavailable")
}
func (failingContentStore) SaveNote(context.Context, *domain.Note) error    { return nil }
func (failingContentStore) SaveLink(context.Context, *domain.Link) error    { return nil }
func (failingContentStore) SaveVideo(context.Context, *domain.Video) error  { return nil }
func (failingContentStore) SaveImage(context.Context, *domain.Image) error  { return nil }
func (failingContentStore) SaveTodo(context.Context, *domain.Todo) error    { return nil }

func TestSearch_FailingStoreYieldsEmptyCorpus(t *testing.T) {
	svc := NewSearchService(failingContentStore{}, nil)

	result, err := svc.Search(context.Background(), "anything", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalCount)
}

func TestSearch_NilStoreYieldsEmptyCorpus(t *testing.T) {
	svc := NewSearchService(nil, nil)

	result, err := svc.Search(context.Background(), "", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalCount)
}

// --- Stats ---

func TestStats_CountsWholeCorpus(t *testing.T) {
	svc := newTestService(t)

	stats := svc.Stats(context.Background())

	assert.Equal(t, 7, stats.TotalItems)

	categories := make(map[string]int)
	for _, facet := range stats.Categories {
		categories[facet.Value] = facet.Count
	}
	assert.Equal(t, 1, categories["Notes"])
	assert.Equal(t, 1, categories["Links"])
	assert.Equal(t, 1, categories["Videos"])
	assert.Equal(t, 1, categories["Images"])
	assert.Equal(t, 1, categories["Work"])
	assert.Equal(t, 1, categories["Finance"])
	// The uncategorised todo lands in the default todo category.
	assert.Equal(t, 1, categories["Todos"])
}

func TestStats_IndependentOfActiveQuery(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Search(ctx, "github", nil)
	require.NoError(t, err)

	stats := svc.Stats(ctx)
	assert.Equal(t, 7, stats.TotalItems)
}

func TestStats_TagFacetCap(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContentStore()
	// 25 distinct tags across items; the snapshot must cap at 20.
	for i := 0; i < 25; i++ {
		require.NoError(t, store.SaveNote(ctx, &domain.Note{
			ID:        string(rune('a'+i)) + "-note",
			Title:     "Note",
			Tags:      []string{"tag-" + string(rune('a'+i))},
			CreatedAt: day(1),
		}))
	}
	svc := NewSearchService(store, nil)

	stats := svc.Stats(ctx)

	assert.Len(t, stats.Tags, 20)
	for i := 1; i < len(stats.Tags); i++ {
		assert.GreaterOrEqual(t, stats.Tags[i-1].Count, stats.Tags[i].Count)
	}
}
