package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cberube/swaggerdeck/internal/types"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func testEndpoints() []types.Endpoint {
	return []types.Endpoint{
		{Method: "GET", Path: "/health"},
		{
			Method: "GET",
			Path:   "/users/{id}",
			Tags:   []string{"Users"},
			Parameters: []types.Parameter{
				{Name: "id", Location: types.LocationPath, Required: true},
				{Name: "active", Location: types.LocationQuery},
			},
		},
		{Method: "POST", Path: "/users", Summary: "Create a user", Tags: []string{"Users"}},
	}
}

func TestTabCycleForward(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())

	steps := []struct {
		panel Panel
		tab   Tab
	}{
		{PanelDetails, TabEndpoint},
		{PanelDetails, TabRequest},
		{PanelDetails, TabHeaders},
		{PanelDetails, TabResponse},
		{PanelEndpoints, TabEndpoint},
	}
	for i, want := range steps {
		m.handleKeyPress(keyOf(tea.KeyTab))
		if m.panel != want.panel || m.tab != want.tab {
			t.Fatalf("step %d: panel=%v tab=%v, want panel=%v tab=%v", i, m.panel, m.tab, want.panel, want.tab)
		}
	}
}

func TestTabCycleReversible(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())

	for _, n := range []int{1, 2, 3, 4, 5} {
		m.panel = PanelEndpoints
		m.tab = TabEndpoint

		for i := 0; i < n; i++ {
			m.nextTab()
		}
		for i := 0; i < n; i++ {
			m.prevTab()
		}

		AssertModelField(t, "panel", m.panel, PanelEndpoints)
		AssertModelField(t, "tab", m.tab, TabEndpoint)
	}
}

func TestTabForwardKeepsTabWhenLeavingList(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.panel = PanelEndpoints
	m.tab = TabHeaders

	m.nextTab()

	AssertModelField(t, "panel", m.panel, PanelDetails)
	AssertModelField(t, "tab", m.tab, TabHeaders)
}

func TestParamIndexResetsOnRequestTabEntry(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.panel = PanelDetails
	m.tab = TabEndpoint
	m.selectedParamIndex = 1

	m.nextTab()

	AssertModelField(t, "tab", m.tab, TabRequest)
	AssertModelField(t, "selectedParamIndex", m.selectedParamIndex, 0)
}

func TestParamIndexResetsOnEndpointChange(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.viewMode = ViewFlat
	m.selectedParamIndex = 1

	m.handleKeyPress(keyRune('j'))

	AssertModelField(t, "selectedIndex", m.selectedIndex, 1)
	AssertModelField(t, "selectedParamIndex", m.selectedParamIndex, 0)
}

func TestEditingRedirectsCommandKeys(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.viewMode = ViewFlat
	m.selectedIndex = 1 // GET /users/{id}
	m.panel = PanelDetails
	m.tab = TabRequest
	m.startParamEdit()

	if !m.isEditing() {
		t.Fatal("expected edit mode after startParamEdit")
	}

	viewBefore := m.viewMode
	for _, r := range "qgj1," {
		m.handleKeyPress(keyRune(r))
	}

	AssertModelField(t, "paramBuffer", m.paramBuffer, "qgj1,")
	AssertModelField(t, "viewMode", m.viewMode, viewBefore)
	AssertModelField(t, "panel", m.panel, PanelDetails)
	AssertModelField(t, "mode", m.mode, ModeNormal)
}

func TestEditingBlocksNavigationKeys(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.viewMode = ViewFlat
	m.selectedIndex = 1 // GET /users/{id}
	m.panel = PanelDetails
	m.tab = TabRequest
	m.startParamEdit()
	m.handleKeyPress(keyRunes("42"))

	// Tab cycling and list movement must not move the selection out from
	// under the edit.
	for i := 0; i < 3; i++ {
		m.handleKeyPress(keyOf(tea.KeyTab))
	}
	m.handleKeyPress(keyOf(tea.KeyDown))
	m.handleKeyPress(keyOf(tea.KeyShiftTab))

	AssertModelField(t, "selectedIndex", m.selectedIndex, 1)
	AssertModelField(t, "panel", m.panel, PanelDetails)
	AssertModelField(t, "tab", m.tab, TabRequest)
	AssertModelField(t, "editingParam", m.editingParam, "id")

	m.handleKeyPress(keyOf(tea.KeyEnter))

	usersCfg := m.configs[m.endpoints[1].Key()]
	if usersCfg == nil || usersCfg.PathParams["id"] != "42" {
		t.Fatalf("value must commit to the edited endpoint's path param, got %+v", usersCfg)
	}
	if healthCfg := m.configs[m.endpoints[0].Key()]; healthCfg != nil && len(healthCfg.QueryParams) > 0 {
		t.Errorf("other endpoints must stay untouched, got %+v", healthCfg)
	}
}

func TestSpaceAppendsWhileEditing(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.viewMode = ViewFlat
	m.selectedIndex = 1
	m.panel = PanelDetails
	m.tab = TabRequest
	m.startParamEdit()

	cmd := m.handleKeyPress(keyOf(tea.KeySpace))

	if cmd != nil {
		t.Error("space while editing must not execute")
	}
	AssertModelField(t, "paramBuffer", m.paramBuffer, " ")
}

func TestPasteBurstIntoParamBuffer(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.viewMode = ViewFlat
	m.selectedIndex = 1
	m.panel = PanelDetails
	m.tab = TabRequest
	m.startParamEdit()

	m.handleKeyPress(keyRunes("12345"))

	AssertModelField(t, "paramBuffer", m.paramBuffer, "12345")
}

func TestToggleViewModeKey(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.selectedIndex = 2

	m.handleKeyPress(keyRune('g'))

	AssertModelField(t, "viewMode", m.viewMode, ViewFlat)
	AssertModelField(t, "selectedIndex", m.selectedIndex, 0)

	m.handleKeyPress(keyRune('g'))
	AssertModelField(t, "viewMode", m.viewMode, ViewGrouped)
}

func TestToggleViewModeResetsParamIndex(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.viewMode = ViewFlat
	m.selectedIndex = 1
	m.selectedParamIndex = 1

	m.handleKeyPress(keyRune('g'))

	AssertModelField(t, "selectedParamIndex", m.selectedParamIndex, 0)
}

func TestPanelSwitchKeys(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())

	m.handleKeyPress(keyRune('2'))
	AssertModelField(t, "panel", m.panel, PanelDetails)

	m.handleKeyPress(keyRune('1'))
	AssertModelField(t, "panel", m.panel, PanelEndpoints)
}

func TestGroupToggleWithSpace(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())

	// Grouped view starts with every group collapsed: one row per group.
	if got := m.visibleCount(); got != 2 {
		t.Fatalf("visibleCount = %d, want 2 (Other, Users)", got)
	}

	m.handleKeyPress(keyOf(tea.KeySpace))

	if !m.expandedGroups["Other"] {
		t.Fatal("expected first group to expand")
	}
	if got := m.visibleCount(); got != 3 {
		t.Fatalf("visibleCount = %d, want 3 after expanding", got)
	}

	m.handleKeyPress(keyOf(tea.KeySpace))
	if m.expandedGroups["Other"] {
		t.Fatal("expected group to collapse on second press")
	}
}

func TestGroupCollapseClampsSelection(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.expandedGroups["Other"] = true
	m.expandedGroups["Users"] = true

	m.selectedIndex = m.visibleCount() - 1
	m.selectedParamIndex = 1
	m.toggleGroup("Users")

	if m.selectedIndex >= m.visibleCount() {
		t.Errorf("selection %d out of range after collapse (count %d)", m.selectedIndex, m.visibleCount())
	}
	AssertModelField(t, "selectedParamIndex", m.selectedParamIndex, 0)
}

func TestQuitKey(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())

	cmd := m.handleKeyPress(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestResponseLineNavigation(t *testing.T) {
	m := CreateTestModelWithEndpoints(t, testEndpoints())
	m.viewMode = ViewFlat
	m.panel = PanelDetails
	m.tab = TabResponse
	m.response = &types.ApiResponse{Status: 200, StatusText: "OK", Body: `{"a":1,"b":2}`}
	m.responseKey = m.endpoints[0].Key()

	m.handleKeyPress(keyRune('j'))
	m.handleKeyPress(keyRune('j'))
	AssertModelField(t, "responseLine", m.responseLine, 2)

	m.handleKeyPress(keyRune('k'))
	AssertModelField(t, "responseLine", m.responseLine, 1)
}
