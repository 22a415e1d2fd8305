package driven

// HistoryStore persists the recent-query list across sessions.
//
// The search core treats persistence as best-effort: a store error is
// logged and swallowed, and history simply fails to survive the session.
type HistoryStore interface {
	// Load returns the persisted queries, most recent first.
	Load() ([]string, error)

	// Save replaces the persisted queries.
	Save(queries []string) error
}
