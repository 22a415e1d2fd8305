package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Short(t *testing.T) {
	assert.Equal(t, "Search your dashboard content", searchCmd.Short)
}

func TestSearchCmd_Long(t *testing.T) {
	assert.Contains(t, searchCmd.Long, "one corpus")
	assert.Contains(t, searchCmd.Long, "AND semantics")
}

func TestSearchCmd_AcceptsMaxOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "one", "two"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestSearchCmd_HasTypeFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("type")
	require.NotNil(t, flag, "type flag should exist")
	assert.Equal(t, "t", flag.Shorthand)
}

func TestSearchCmd_HasSortFlags(t *testing.T) {
	require.NotNil(t, searchCmd.Flags().Lookup("sort"))
	require.NotNil(t, searchCmd.Flags().Lookup("order"))
	require.NotNil(t, searchCmd.Flags().Lookup("tag"))
	require.NotNil(t, searchCmd.Flags().Lookup("priority"))
	require.NotNil(t, searchCmd.Flags().Lookup("completed"))
	require.NotNil(t, searchCmd.Flags().Lookup("after"))
	require.NotNil(t, searchCmd.Flags().Lookup("before"))
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "meeting"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Results (1")
	assert.Contains(t, buf.String(), "Meeting Notes")
	assert.Contains(t, buf.String(), "Matched terms: meeting")
}

func TestSearchCmd_EmptyQueryListsEverything(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Results (3")
}

func TestSearchCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "nonexistent-zzz"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found.")
}

func TestSearchCmd_TypeFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--type", "todo"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchType = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Results (1")
	assert.Contains(t, buf.String(), "Ship release")
	assert.Contains(t, buf.String(), "Priority: high (open)")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--json", "github"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"total_count\": 1")
	assert.Contains(t, buf.String(), "GitHub")
}

func TestSearchCmd_RecordsHistory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"search", "meeting"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, []string{"meeting"}, searchService.History())
}

func TestSearchCmd_NoHistoryFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"search", "--no-history", "meeting"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchNoHistory = false
	}()

	require.NoError(t, rootCmd.Execute())

	assert.Empty(t, searchService.History())
}

func TestSearchCmd_InvalidAfterDate(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "--after", "not-a-date", "meeting"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchAfter = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --after date")
}

func TestSearchCmd_DateRangeFilters(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--after", "2026-05-01", "--before", "2026-05-01"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchAfter = ""
		searchBefore = ""
	}()

	err := rootCmd.Execute()

	// All three seeded items were created on 2026-05-01.
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Results (3")
}

func TestRunSearch_ErrorsWithoutService(t *testing.T) {
	oldSearchService := searchService
	searchService = nil
	defer func() {
		searchService = oldSearchService
	}()

	err := runSearch(searchCmd, []string{"anything"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}
