package services

import (
	"regexp"
	"strings"
)

// HighlightText wraps every occurrence of a query term in text with
// <mark>...</mark> for display. Matching is case-insensitive and
// independent of the search pipeline; the input text can be arbitrary.
// An empty or whitespace-only query returns the text unchanged.
func (s *SearchService) HighlightText(text, query string) string {
	terms := tokenize(query)
	if len(terms) == 0 || text == "" {
		return text
	}

	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = regexp.QuoteMeta(term)
	}

	re, err := regexp.Compile("(?i)(" + strings.Join(quoted, "|") + ")")
	if err != nil {
		return text
	}
	return re.ReplaceAllString(text, "<mark>$1</mark>")
}
