package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, tokenize("  Hello   WORLD "))
	assert.Empty(t, tokenize(""))
	assert.Empty(t, tokenize("   "))
}

func TestMatchRecords_EmptyTermsMatchAll(t *testing.T) {
	records := []domain.SearchableRecord{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
	}

	matched, terms := matchRecords(records, nil)

	require.Len(t, matched, 2)
	assert.Zero(t, matched[0].score)
	require.NotNil(t, terms)
	assert.Empty(t, terms)
}

func TestMatchRecords_AndSemantics(t *testing.T) {
	records := []domain.SearchableRecord{
		{ID: "both", Title: "Project plan", Body: "roadmap draft"},
		{ID: "one", Title: "Project log"},
	}

	matched, terms := matchRecords(records, []string{"project", "roadmap"})

	require.Len(t, matched, 1)
	assert.Equal(t, "both", matched[0].record.ID)
	assert.Equal(t, []string{"project", "roadmap"}, terms)
}

func TestMatchRecords_SubstringMatch(t *testing.T) {
	records := []domain.SearchableRecord{
		{ID: "a", Title: "Refactoring"},
	}

	matched, _ := matchRecords(records, []string{"factor"})
	assert.Len(t, matched, 1)
}

func TestMatchRecords_MatchesAcrossFields(t *testing.T) {
	records := []domain.SearchableRecord{
		{ID: "a", Title: "Groceries", Body: "milk and eggs",
			Category: "Home", Tags: []string{"errand"}},
	}

	for _, term := range []string{"groceries", "milk", "home", "errand"} {
		matched, _ := matchRecords(records, []string{term})
		assert.Len(t, matched, 1, "term %q", term)
	}
}

func TestMatchRecords_NoMatchReportsNoTerms(t *testing.T) {
	records := []domain.SearchableRecord{
		{ID: "a", Title: "Something"},
	}

	matched, terms := matchRecords(records, []string{"something", "absent"})

	assert.Empty(t, matched)
	assert.Empty(t, terms)
}

func TestMatchRecords_DeduplicatesTerms(t *testing.T) {
	records := []domain.SearchableRecord{
		{ID: "a", Title: "go go go"},
	}

	_, terms := matchRecords(records, []string{"go", "go"})
	assert.Equal(t, []string{"go"}, terms)
}

func TestRelevanceScore_FieldWeights(t *testing.T) {
	tests := []struct {
		name   string
		record domain.SearchableRecord
		want   int
	}{
		{"title only", domain.SearchableRecord{Title: "alpha"}, 3},
		{"body only", domain.SearchableRecord{Body: "alpha"}, 2},
		{"tag only", domain.SearchableRecord{Tags: []string{"alpha"}}, 1},
		{"title and body", domain.SearchableRecord{Title: "alpha", Body: "alpha"}, 5},
		{"all fields", domain.SearchableRecord{Title: "alpha", Body: "alpha", Tags: []string{"alpha"}}, 6},
		{"multiple tags count once", domain.SearchableRecord{Tags: []string{"alpha", "alphabet"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevanceScore(&tt.record, []string{"alpha"}))
		})
	}
}

func TestRelevanceScore_SumsOverTerms(t *testing.T) {
	r := domain.SearchableRecord{Title: "alpha beta", Body: "beta"}

	// alpha: title 3. beta: title 3 + body 2.
	assert.Equal(t, 8, relevanceScore(&r, []string{"alpha", "beta"}))
}

func TestRelevanceScore_CaseInsensitive(t *testing.T) {
	r := domain.SearchableRecord{Title: "Alpha", Tags: []string{"ALPHA"}}

	assert.Equal(t, 4, relevanceScore(&r, []string{"alpha"}))
}
