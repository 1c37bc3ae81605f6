package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchFiltersEndpoints(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.viewMode = ViewFlat
	m.selectedIndex = 2

	m.handleKeyPress(keyRune('/'))
	AssertModelField(t, "mode", m.mode, ModeSearch)

	for _, r := range "users" {
		m.handleKeyPress(keyRune(r))
	}

	AssertModelField(t, "searchQuery", m.searchQuery, "users")
	AssertModelField(t, "filtered", len(m.filtered), 2)
	AssertModelField(t, "selectedIndex", m.selectedIndex, 0)
}

func TestSearchEnterKeepsFilter(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.mode = ModeSearch
	m.searchQuery = "health"
	m.updateFiltered()

	m.handleKeyPress(keyOf(tea.KeyEnter))

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "searchQuery", m.searchQuery, "health")
	AssertModelField(t, "filtered", len(m.filtered), 1)
}

func TestSearchEscClearsFilter(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.mode = ModeSearch
	m.searchQuery = "health"
	m.updateFiltered()

	m.handleKeyPress(keyOf(tea.KeyEsc))

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "searchQuery", m.searchQuery, "")
	if len(m.activeEndpoints()) != 3 {
		t.Errorf("expected full list after Esc, got %d", len(m.activeEndpoints()))
	}
}

func TestSearchBackspace(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.mode = ModeSearch
	m.searchQuery = "he"
	m.updateFiltered()

	m.handleKeyPress(keyOf(tea.KeyBackspace))

	AssertModelField(t, "searchQuery", m.searchQuery, "h")
}

func TestCtrlLClearsFilterFromNormalMode(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.searchQuery = "users"
	m.updateFiltered()

	m.handleKeyPress(keyOf(tea.KeyCtrlL))

	AssertModelField(t, "searchQuery", m.searchQuery, "")
	AssertModelField(t, "selectedIndex", m.selectedIndex, 0)
}

func TestFilterMatchesFields(t *testing.T) {
	endpoints := testEndpoints()

	tests := []struct {
		query string
		want  int
	}{
		{"get", 2},           // method
		{"/users", 2},        // path
		{"create a user", 1}, // summary
		{"USERS", 2},         // case insensitive tag/path
		{"nomatch", 0},
	}
	for _, tt := range tests {
		got := len(filterEndpoints(endpoints, tt.query))
		if got != tt.want {
			t.Errorf("filterEndpoints(%q) matched %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestFilteredGroupsDropEmptyGroups(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.searchQuery = "health"
	m.updateFiltered()

	if len(m.filteredGroups) != 1 || m.filteredGroups[0].Name != "Other" {
		t.Errorf("filteredGroups = %+v, want only Other", m.filteredGroups)
	}
}

func TestSearchChangeResetsParamIndex(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.viewMode = ViewFlat
	m.selectedIndex = 1 // GET /users/{id}, two editable params
	m.selectedParamIndex = 1

	m.handleKeyPress(keyRune('/'))
	for _, r := range "health" {
		m.handleKeyPress(keyRune(r))
	}

	// The query put a parameterless endpoint under the cursor.
	AssertModelField(t, "selectedIndex", m.selectedIndex, 0)
	AssertModelField(t, "selectedParamIndex", m.selectedParamIndex, 0)
}

func TestClearFilterResetsParamIndex(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.viewMode = ViewFlat
	m.searchQuery = "users"
	m.updateFiltered()
	m.selectedParamIndex = 1

	m.handleKeyPress(keyOf(tea.KeyCtrlL))

	AssertModelField(t, "searchQuery", m.searchQuery, "")
	AssertModelField(t, "selectedParamIndex", m.selectedParamIndex, 0)
}
