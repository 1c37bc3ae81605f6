package tui

import (
	"strings"

	"github.com/cberube/swaggerdeck/internal/types"
)

// startParamEdit begins editing the parameter under the cursor on the
// request tab, pre-filling the buffer with its stored value.
func (m *Model) startParamEdit() {
	if m.isEditing() {
		return
	}

	endpoint := m.selectedEndpoint()
	if endpoint == nil {
		return
	}

	params := endpoint.EditableParams()
	if m.selectedParamIndex >= len(params) {
		return
	}
	param := params[m.selectedParamIndex]

	cfg := m.getOrCreateConfig(endpoint)
	current := ""
	if param.Location == types.LocationPath {
		current = cfg.PathParams[param.Name]
	} else {
		current = cfg.QueryParams[param.Name]
	}

	m.editingParam = param.Name
	m.paramBuffer = current
}

// confirmParamEdit writes the edit buffer into the matching parameter map of
// the selected endpoint's config and leaves edit mode. When no edit is in
// progress this only resets the mode and buffer.
func (m *Model) confirmParamEdit() {
	defer func() {
		m.editingParam = ""
		m.paramBuffer = ""
	}()

	if !m.isEditing() {
		return
	}

	endpoint := m.selectedEndpoint()
	if endpoint == nil {
		return
	}

	isPathParam := false
	for _, p := range endpoint.Parameters {
		if p.Name == m.editingParam && p.Location == types.LocationPath {
			isPathParam = true
			break
		}
	}

	cfg := m.getOrCreateConfig(endpoint)
	if isPathParam {
		cfg.PathParams[m.editingParam] = m.paramBuffer
	} else {
		cfg.QueryParams[m.editingParam] = m.paramBuffer
	}
}

// cancelParamEdit discards the buffer and leaves edit mode
func (m *Model) cancelParamEdit() {
	m.editingParam = ""
	m.paramBuffer = ""
}

// deleteLastWord trims trailing whitespace, then truncates at the last
// remaining whitespace boundary, or clears the string entirely.
func deleteLastWord(s string) string {
	s = strings.TrimRight(s, " \t")
	if idx := strings.LastIndexAny(s, " \t"); idx >= 0 {
		return s[:idx]
	}
	return ""
}
