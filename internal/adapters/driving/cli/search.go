package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
)

var (
	searchType      string
	searchCategory  string
	searchTags      []string
	searchPriority  string
	searchCompleted bool
	searchAfter     string
	searchBefore    string
	searchSortBy    string
	searchOrder     string
	searchJSON      bool
	searchNoHistory bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search your dashboard content",
	Long: `Searches notes, links, videos, images and todos as one corpus.
All whitespace-separated query terms must match (AND semantics); results
can be narrowed by type, category, tags, priority, completion and
creation date, and ranked by relevance, date, title or priority.

An empty query returns everything that survives the filters.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "source type (note, link, video, image, todo)")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "exact category")
	searchCmd.Flags().StringArrayVar(&searchTags, "tag", nil, "tag to match (repeatable, any match suffices)")
	searchCmd.Flags().StringVarP(&searchPriority, "priority", "p", "", "todo priority (high, medium, low)")
	searchCmd.Flags().BoolVar(&searchCompleted, "completed", false, "todo completion state")
	searchCmd.Flags().StringVar(&searchAfter, "after", "", "first creation date (YYYY-MM-DD, inclusive)")
	searchCmd.Flags().StringVar(&searchBefore, "before", "", "last creation date (YYYY-MM-DD, inclusive)")
	searchCmd.Flags().StringVarP(&searchSortBy, "sort", "s", "", "sort by (relevance, date, title, priority)")
	searchCmd.Flags().StringVarP(&searchOrder, "order", "o", "", "sort order (asc, desc)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchNoHistory, "no-history", false, "do not record the query in search history")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	update, err := buildFilterUpdate(cmd)
	if err != nil {
		return err
	}

	result, err := searchService.Search(cmd.Context(), query, update)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if query != "" && !searchNoHistory {
		searchService.AddToHistory(query)
	}

	if searchJSON {
		return outputSearchJSON(cmd, result)
	}
	return outputSearchTable(cmd, result)
}

// buildFilterUpdate converts the changed flags to a partial filter.
func buildFilterUpdate(cmd *cobra.Command) (*domain.FilterUpdate, error) {
	update := &domain.FilterUpdate{}

	if searchType != "" {
		t := domain.SourceType(searchType)
		update.Type = &t
	}
	if searchCategory != "" {
		update.Category = &searchCategory
	}
	if len(searchTags) > 0 {
		update.Tags = searchTags
	}
	if searchPriority != "" {
		p := domain.Priority(searchPriority)
		update.Priority = &p
	}
	if cmd.Flags().Changed("completed") {
		completed := searchCompleted
		update.Completed = &completed
	}
	if searchAfter != "" || searchBefore != "" {
		dateRange, err := parseDateRange(searchAfter, searchBefore)
		if err != nil {
			return nil, err
		}
		update.DateRange = dateRange
	}
	if searchSortBy != "" {
		sortBy := domain.SortBy(searchSortBy)
		update.SortBy = &sortBy
	}
	if searchOrder != "" {
		order := domain.SortOrder(searchOrder)
		update.SortOrder = &order
	}

	return update, nil
}

// parseDateRange builds an inclusive date window. An open end defaults
// to the epoch or to today.
func parseDateRange(after, before string) (*domain.DateRange, error) {
	r := &domain.DateRange{
		From: time.Unix(0, 0).UTC(),
		To:   time.Now().UTC(),
	}
	if after != "" {
		from, err := time.Parse("2006-01-02", after)
		if err != nil {
			return nil, fmt.Errorf("invalid --after date %q: %w", after, err)
		}
		r.From = from
	}
	if before != "" {
		to, err := time.Parse("2006-01-02", before)
		if err != nil {
			return nil, fmt.Errorf("invalid --before date %q: %w", before, err)
		}
		r.To = to
	}
	return r, nil
}

func outputSearchJSON(cmd *cobra.Command, result *domain.SearchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, result *domain.SearchResult) error {
	if result.TotalCount == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results (%d, %s):\n\n", result.TotalCount, result.Took)
	for i := range result.Items {
		item := &result.Items[i]

		cmd.Printf("  [%d] %s (%s)\n", i+1, item.Title, item.SourceType)
		cmd.Printf("      Category: %s\n", item.Category)
		if len(item.Tags) > 0 {
			cmd.Printf("      Tags: %s\n", strings.Join(item.Tags, ", "))
		}
		if item.URL != "" {
			cmd.Printf("      URL: %s\n", item.URL)
		}
		if item.Todo != nil {
			state := "open"
			if item.Todo.Completed {
				state = "done"
			}
			cmd.Printf("      Priority: %s (%s)\n", item.Todo.Priority, state)
		}
		cmd.Println()
	}

	if len(result.MatchedTerms) > 0 {
		cmd.Printf("Matched terms: %s\n", strings.Join(result.MatchedTerms, ", "))
	}
	if len(result.Categories) > 0 {
		parts := make([]string, len(result.Categories))
		for i, facet := range result.Categories {
			parts[i] = fmt.Sprintf("%s (%d)", facet.Value, facet.Count)
		}
		cmd.Printf("Categories: %s\n", strings.Join(parts, ", "))
	}

	return nil
}
