package services

import (
	"context"
	"strings"

	"github.com/lumenboard/lumen-cli/internal/logger"
)

const (
	// maxHistory bounds the recent-query list.
	maxHistory = 10

	// maxSuggestions caps autocomplete candidates.
	maxSuggestions = 8

	// historySuggestions is how many recent queries an empty partial
	// query falls back to.
	historySuggestions = 5
)

// AddToHistory records a query at the front of the recent-query list.
// Re-adding an existing query moves it to the front instead of
// duplicating it; the list is capped at 10 entries.
//
// Persistence is best-effort: a failing history store is logged and
// otherwise ignored.
func (s *SearchService) AddToHistory(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.mu.Lock()
	next := make([]string, 0, maxHistory)
	next = append(next, query)
	for _, q := range s.history {
		if q != query && len(next) < maxHistory {
			next = append(next, q)
		}
	}
	s.history = next
	snapshot := append([]string(nil), next...)
	s.mu.Unlock()

	s.persistHistory(snapshot)
}

// ClearHistory empties the recent-query list.
func (s *SearchService) ClearHistory() {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()

	s.persistHistory([]string{})
}

// History returns the recent queries, most recent first.
func (s *SearchService) History() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.history...)
}

// Suggestions returns autocomplete candidates for a partial query by
// scanning record titles (tokenized by whitespace) and tags for tokens
// containing the partial as a case-insensitive substring. Up to 8
// distinct candidates are returned. An empty partial falls back to the
// 5 most recent history entries.
func (s *SearchService) Suggestions(ctx context.Context, partial string) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))

	if partial == "" {
		s.mu.RLock()
		defer s.mu.RUnlock()
		n := len(s.history)
		if n > historySuggestions {
			n = historySuggestions
		}
		return append([]string(nil), s.history[:n]...)
	}

	records := aggregate(ctx, s.content)

	suggestions := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool)
	add := func(candidate string) bool {
		key := strings.ToLower(candidate)
		if seen[key] || !strings.Contains(key, partial) {
			return false
		}
		seen[key] = true
		suggestions = append(suggestions, candidate)
		return len(suggestions) >= maxSuggestions
	}

	for i := range records {
		for _, token := range strings.Fields(records[i].Title) {
			if add(token) {
				return suggestions
			}
		}
		for _, tag := range records[i].Tags {
			if add(tag) {
				return suggestions
			}
		}
	}

	return suggestions
}

// loadHistory restores persisted history at construction time.
func (s *SearchService) loadHistory() {
	if s.historyStore == nil {
		return
	}
	queries, err := s.historyStore.Load()
	if err != nil {
		logger.Warn("Loading search history failed: %v", err)
		return
	}
	if len(queries) > maxHistory {
		queries = queries[:maxHistory]
	}
	s.history = queries
}

// persistHistory writes the history list through the store, swallowing
// failures. History persisting is never worth failing a search over.
func (s *SearchService) persistHistory(queries []string) {
	if s.historyStore == nil {
		return
	}
	if err := s.historyStore.Save(queries); err != nil {
		logger.Warn("Persisting search history failed: %v", err)
	}
}
