package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cberube/swaggerdeck/internal/types"
)

// handleSearchKeys handles input while the search prompt is active. Every
// change to the query re-derives the filtered list from scratch.
func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		// Keep the filter active
		m.mode = ModeNormal

	case "esc":
		m.clearSearchFilter()
		m.mode = ModeNormal

	case "backspace":
		m.searchQuery = trimLastRune(m.searchQuery)
		m.applyQueryChange()

	case "ctrl+u":
		m.searchQuery = ""
		m.applyQueryChange()

	default:
		if msg.Type == tea.KeyRunes {
			m.searchQuery += string(msg.Runes)
			m.applyQueryChange()
		} else if msg.Type == tea.KeySpace {
			m.searchQuery += " "
			m.applyQueryChange()
		}
	}
	return nil
}

// applyQueryChange re-derives the filtered list and resets the selection.
// The parameter index follows: a query change can put a different endpoint
// under the cursor.
func (m *Model) applyQueryChange() {
	m.updateFiltered()
	m.selectedIndex = 0
	m.selectedParamIndex = 0
}

// clearSearchFilter drops the active filter and resets the selection
func (m *Model) clearSearchFilter() {
	if m.searchQuery == "" {
		return
	}
	m.searchQuery = ""
	m.applyQueryChange()
}

// updateFiltered recomputes the filtered views from the full endpoint set
// and the current query. It must be called after every mutation of either.
func (m *Model) updateFiltered() {
	if m.searchQuery == "" {
		m.filtered = nil
		m.filteredGroups = nil
		return
	}

	m.filtered = filterEndpoints(m.endpoints, m.searchQuery)

	m.filteredGroups = nil
	for _, group := range m.groups {
		matched := filterEndpoints(group.Endpoints, m.searchQuery)
		if len(matched) > 0 {
			m.filteredGroups = append(m.filteredGroups, types.EndpointGroup{
				Name:      group.Name,
				Endpoints: matched,
			})
		}
	}
}

// filterEndpoints keeps endpoints whose path, method, summary, or any tag
// contains the query, case insensitive.
func filterEndpoints(endpoints []types.Endpoint, query string) []types.Endpoint {
	query = strings.ToLower(query)

	var matched []types.Endpoint
	for _, e := range endpoints {
		if endpointMatches(&e, query) {
			matched = append(matched, e)
		}
	}
	return matched
}

func endpointMatches(e *types.Endpoint, query string) bool {
	if strings.Contains(strings.ToLower(e.Path), query) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Method), query) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Summary), query) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
