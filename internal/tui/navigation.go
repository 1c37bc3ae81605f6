package tui

import (
	"github.com/cberube/swaggerdeck/internal/types"
)

// renderItem is one row of the endpoints list in grouped view
type renderItem struct {
	isGroup  bool
	group    string
	count    int
	expanded bool
	endpoint *types.Endpoint
}

// activeEndpoints returns the flat endpoint list after search filtering
func (m *Model) activeEndpoints() []types.Endpoint {
	if m.searchQuery != "" {
		return m.filtered
	}
	return m.endpoints
}

// activeGroups returns the grouped endpoint list after search filtering
func (m *Model) activeGroups() []types.EndpointGroup {
	if m.searchQuery != "" {
		return m.filteredGroups
	}
	return m.groups
}

// renderItems flattens the grouped view into selectable rows: one row per
// group header plus one row per endpoint of each expanded group.
func (m *Model) renderItems() []renderItem {
	var items []renderItem
	for _, group := range m.activeGroups() {
		expanded := m.expandedGroups[group.Name]
		items = append(items, renderItem{
			isGroup:  true,
			group:    group.Name,
			count:    len(group.Endpoints),
			expanded: expanded,
		})
		if !expanded {
			continue
		}
		for i := range group.Endpoints {
			items = append(items, renderItem{
				group:    group.Name,
				endpoint: &group.Endpoints[i],
			})
		}
	}
	return items
}

// visibleCount returns how many rows the endpoints list currently has
func (m *Model) visibleCount() int {
	if m.viewMode == ViewFlat {
		return len(m.activeEndpoints())
	}
	return len(m.renderItems())
}

// selectedEndpoint returns the endpoint under the cursor, or nil when the
// cursor sits on a group header or the list is empty.
func (m *Model) selectedEndpoint() *types.Endpoint {
	if m.viewMode == ViewFlat {
		endpoints := m.activeEndpoints()
		if m.selectedIndex >= 0 && m.selectedIndex < len(endpoints) {
			return &endpoints[m.selectedIndex]
		}
		return nil
	}

	items := m.renderItems()
	if m.selectedIndex >= 0 && m.selectedIndex < len(items) {
		return items[m.selectedIndex].endpoint
	}
	return nil
}

// getOrCreateConfig returns the request config for an endpoint, creating it
// on first access with schema defaults pre-filled so every parameter shows
// up in the request tab.
func (m *Model) getOrCreateConfig(endpoint *types.Endpoint) *types.RequestConfig {
	key := endpoint.Key()
	if cfg, ok := m.configs[key]; ok {
		return cfg
	}

	cfg := types.NewRequestConfig()
	for _, p := range endpoint.PathParams() {
		value := ""
		if p.Schema != nil {
			value = p.Schema.Default
		}
		cfg.PathParams[p.Name] = value
	}
	for _, p := range endpoint.QueryParams() {
		value := ""
		if p.Schema != nil {
			value = p.Schema.Default
		}
		cfg.QueryParams[p.Name] = value
	}
	m.configs[key] = cfg
	return cfg
}

func (m *Model) ensureConfigForSelected() {
	if endpoint := m.selectedEndpoint(); endpoint != nil {
		m.getOrCreateConfig(endpoint)
	}
}

// moveUp moves the list selection up one row
func (m *Model) moveUp() {
	if m.selectedIndex == 0 {
		return
	}
	m.selectedIndex--
	m.selectedParamIndex = 0
	m.responseScroll = 0
	m.responseLine = 0
	m.ensureConfigForSelected()
}

// moveDown moves the list selection down one row
func (m *Model) moveDown() {
	if m.selectedIndex >= m.visibleCount()-1 {
		return
	}
	m.selectedIndex++
	m.selectedParamIndex = 0
	m.responseScroll = 0
	m.responseLine = 0
	m.ensureConfigForSelected()
}

// toggleViewMode switches between flat and grouped display
func (m *Model) toggleViewMode() {
	if m.viewMode == ViewFlat {
		m.viewMode = ViewGrouped
	} else {
		m.viewMode = ViewFlat
	}
	m.selectedIndex = 0
	m.selectedParamIndex = 0
}

// toggleGroup expands or collapses a group and clamps the selection if rows
// disappeared below the cursor.
func (m *Model) toggleGroup(name string) {
	if m.expandedGroups[name] {
		delete(m.expandedGroups, name)
	} else {
		m.expandedGroups[name] = true
	}

	if count := m.visibleCount(); m.selectedIndex >= count && count > 0 {
		m.selectedIndex = count - 1
	}
	// Toggling shifts which row the cursor sits on.
	m.selectedParamIndex = 0
}

// nextTab walks the focus cycle forward: endpoints list, then each details
// tab in order, then back to the endpoints list.
func (m *Model) nextTab() {
	if m.panel == PanelEndpoints {
		m.panel = PanelDetails
		return
	}

	switch m.tab {
	case TabEndpoint:
		m.tab = TabRequest
		m.selectedParamIndex = 0
	case TabRequest:
		m.tab = TabHeaders
	case TabHeaders:
		m.tab = TabResponse
		m.responseScroll = 0
		m.responseLine = 0
	case TabResponse:
		m.panel = PanelEndpoints
		m.tab = TabEndpoint
	}
}

// prevTab walks the focus cycle backward, wrapping from the endpoints list
// to the response tab so backward always undoes forward.
func (m *Model) prevTab() {
	if m.panel == PanelEndpoints {
		m.panel = PanelDetails
		m.tab = TabResponse
		m.responseScroll = 0
		m.responseLine = 0
		return
	}

	switch m.tab {
	case TabRequest:
		m.tab = TabEndpoint
		m.selectedParamIndex = 0
	case TabResponse:
		m.tab = TabHeaders
		m.responseScroll = 0
		m.responseLine = 0
	case TabHeaders:
		m.tab = TabRequest
		m.selectedParamIndex = 0
	case TabEndpoint:
		m.panel = PanelEndpoints
	}
}

// paramUp moves the parameter selection up on the request tab
func (m *Model) paramUp() {
	if m.selectedParamIndex > 0 {
		m.selectedParamIndex--
	}
}

// paramDown moves the parameter selection down on the request tab
func (m *Model) paramDown() {
	endpoint := m.selectedEndpoint()
	if endpoint == nil {
		return
	}
	if m.selectedParamIndex < len(endpoint.EditableParams())-1 {
		m.selectedParamIndex++
	}
}

// responseLineUp moves the response line selection up, scrolling with it
func (m *Model) responseLineUp() {
	if m.responseLine > 0 {
		m.responseLine--
		if m.responseLine < m.responseScroll {
			m.responseScroll = m.responseLine
		}
	}
}

// responseLineDown moves the response line selection down, scrolling with it
func (m *Model) responseLineDown() {
	total := m.responseLineCount()
	if total == 0 || m.responseLine >= total-1 {
		return
	}
	m.responseLine++

	viewportHeight := m.responseViewportHeight()
	if m.responseLine >= m.responseScroll+viewportHeight {
		m.responseScroll = m.responseLine - viewportHeight + 1
	}
}

// responseLineCount counts the selectable lines of the response view: a
// status line, a blank separator, then the formatted body.
func (m *Model) responseLineCount() int {
	if m.response == nil || m.response.IsError {
		return 0
	}
	return 2 + len(splitLines(tryFormatJSON(m.response.Body)))
}

func (m *Model) responseViewportHeight() int {
	if m.height > 8 {
		return m.height - 8
	}
	return 20
}

func (m *Model) scrollResponseUp() {
	m.responseScroll -= scrollStep
	if m.responseScroll < 0 {
		m.responseScroll = 0
	}
}

func (m *Model) scrollResponseDown() {
	max := m.responseLineCount() - 1
	if max < 0 {
		max = 0
	}
	m.responseScroll += scrollStep
	if m.responseScroll > max {
		m.responseScroll = max
	}
}
