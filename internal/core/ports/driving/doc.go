// Package driving defines the interfaces the core exposes to external
// actors (CLI, TUI). Adapters call these; services implement them.
package driving
