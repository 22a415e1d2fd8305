// Package tui provides the interactive search view for Lumen.
//
// The view is a single bubbletea model: a query input on top, the
// result list below, and a status line with facet counts. Every
// keystroke reruns the search synchronously; the pipeline recomputes
// from the live collections, so the list always reflects the current
// corpus.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
	"github.com/lumenboard/lumen-cli/internal/core/ports/driving"
)

// visibleResults caps how many results the list renders at once.
const visibleResults = 10

// Styles for the search view.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
)

// Model is the bubbletea model for the search view.
type Model struct {
	input   textinput.Model
	search  driving.SearchService
	ctx     context.Context
	result  *domain.SearchResult
	cursor  int
	width   int
	height  int
	typeCycle []domain.SourceType
	typeIdx   int
}

// NewModel creates the search view over a search service.
func NewModel(search driving.SearchService) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search notes, links, videos, images, todos..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &Model{
		input:  ti,
		search: search,
		ctx:    context.Background(),
		width:  80,
		height: 24,
		typeCycle: []domain.SourceType{
			domain.SourceTypeAll,
			domain.SourceTypeNote,
			domain.SourceTypeLink,
			domain.SourceTypeVideo,
			domain.SourceTypeImage,
			domain.SourceTypeTodo,
		},
	}
}

// WithContext sets the context used for searches.
func (m *Model) WithContext(ctx context.Context) *Model {
	m.ctx = ctx
	return m
}

// Init initialises the view with an empty search so the corpus shows
// immediately.
func (m *Model) Init() tea.Cmd {
	m.runSearch()
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 12
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.result != nil && m.cursor < m.result.TotalCount-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeyTab:
			m.typeIdx = (m.typeIdx + 1) % len(m.typeCycle)
			m.runSearch()
			return m, nil
		case tea.KeyEnter:
			if query := strings.TrimSpace(m.input.Value()); query != "" {
				m.search.AddToHistory(query)
			}
			return m, nil
		default:
			// Typing falls through to the input below.
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.runSearch()
	return m, cmd
}

// runSearch recomputes the result for the current input and type.
func (m *Model) runSearch() {
	sourceType := m.typeCycle[m.typeIdx]
	result, err := m.search.Search(m.ctx, m.input.Value(), &domain.FilterUpdate{
		Type: &sourceType,
	})
	if err != nil {
		return
	}
	m.result = result
	if m.cursor >= result.TotalCount {
		m.cursor = 0
	}
}

// View renders the search view.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Lumen Search"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  [type: %s, tab to cycle]", m.typeCycle[m.typeIdx])))
	b.WriteString("\n\n")
	b.WriteString("Query: " + m.input.View())
	b.WriteString("\n\n")

	if m.result == nil || m.result.TotalCount == 0 {
		b.WriteString(mutedStyle.Render("No results."))
		b.WriteString("\n")
		b.WriteString(m.suggestionLine())
		return b.String()
	}

	start, end := window(m.cursor, m.result.TotalCount, visibleResults)
	for i := start; i < end; i++ {
		item := &m.result.Items[i]
		line := fmt.Sprintf("%s  %s", item.Title, mutedStyle.Render("("+string(item.SourceType)+")"))
		if len(item.Tags) > 0 {
			line += "  " + tagStyle.Render("#"+strings.Join(item.Tags, " #"))
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d results in %s", m.result.TotalCount, m.result.Took)))
	if len(m.result.Categories) > 0 {
		parts := make([]string, len(m.result.Categories))
		for i, facet := range m.result.Categories {
			parts[i] = fmt.Sprintf("%s %d", facet.Value, facet.Count)
		}
		b.WriteString(mutedStyle.Render("  |  " + strings.Join(parts, ", ")))
	}
	b.WriteString("\n")
	b.WriteString(m.suggestionLine())

	return b.String()
}

// suggestionLine renders autocomplete candidates for the current input.
func (m *Model) suggestionLine() string {
	suggestions := m.search.Suggestions(m.ctx, m.input.Value())
	if len(suggestions) == 0 {
		return ""
	}
	return mutedStyle.Render("Try: " + strings.Join(suggestions, ", "))
}

// window returns the slice bounds keeping cursor visible.
func window(cursor, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > total {
		end = total
		start = end - size
	}
	return start, end
}

// Run starts the interactive search view.
func Run(ctx context.Context, search driving.SearchService) error {
	model := NewModel(search).WithContext(ctx)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
