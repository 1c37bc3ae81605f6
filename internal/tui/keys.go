package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cberube/swaggerdeck/internal/types"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		m.Cleanup()
		return tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeEnteringURL:
		return m.handleURLModalKeys(msg)
	case ModeEnteringToken:
		return m.handleTokenModalKeys(msg)
	case ModeConfirmClearToken:
		return m.handleClearTokenConfirmKeys(msg)
	case ModeEnteringBody:
		return m.handleBodyModalKeys(msg)
	}
	return nil
}

// isEditing reports whether a parameter edit is in progress
func (m *Model) isEditing() bool {
	return m.editingParam != ""
}

// handleNormalKeys handles navigation and commands. While a parameter is
// being edited, printable keys are appended to the edit buffer and every
// other command key is inert, so the selection cannot change under the edit.
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	if m.isEditing() {
		return m.handleParamEditKeys(msg)
	}

	switch msg.String() {
	case "q":
		m.Cleanup()
		return tea.Quit

	case "j", "down":
		if m.panel == PanelEndpoints {
			m.moveDown()
		} else if m.tab == TabRequest {
			m.paramDown()
		} else if m.tab == TabResponse {
			m.responseLineDown()
		}

	case "k", "up":
		if m.panel == PanelEndpoints {
			m.moveUp()
		} else if m.tab == TabRequest {
			m.paramUp()
		} else if m.tab == TabResponse {
			m.responseLineUp()
		}

	case "a":
		m.enterTokenModal()

	case "e":
		if m.panel == PanelDetails && m.tab == TabRequest {
			m.startParamEdit()
		}

	case "g":
		m.toggleViewMode()

	case ",":
		m.enterURLModal()

	case "/":
		m.mode = ModeSearch

	case "b":
		m.enterBodyModal()

	case "x":
		if m.panel == PanelDetails && m.tab == TabRequest {
			m.bodySectionExpanded = !m.bodySectionExpanded
		}

	case "y":
		if m.panel == PanelDetails && m.tab == TabResponse {
			return m.yankResponseLine()
		}

	case "1":
		m.panel = PanelEndpoints

	case "2":
		m.panel = PanelDetails

	case "tab":
		m.nextTab()

	case "shift+tab":
		m.prevTab()

	case " ", "enter":
		return m.handleExecuteKey()

	case "esc":
		if m.searchQuery != "" {
			m.clearSearchFilter()
		}

	case "ctrl+r":
		if m.loading.Phase == types.PhaseError {
			m.retryCount++
			return m.startFetch()
		}

	case "ctrl+l":
		m.clearSearchFilter()

	case "ctrl+u":
		if m.panel == PanelDetails {
			m.scrollResponseUp()
		}

	case "ctrl+d":
		if m.panel == PanelDetails {
			m.scrollResponseDown()
		}
	}
	return nil
}

// handleParamEditKeys handles keys while a parameter edit is in progress.
// Multi-rune key events are a terminal paste burst and go into the buffer as
// one append; navigation and command keys do nothing until the edit ends.
func (m *Model) handleParamEditKeys(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyRunes {
		m.paramBuffer += string(msg.Runes)
		return nil
	}

	switch msg.String() {
	case " ":
		m.paramBuffer += " "
	case "enter":
		m.confirmParamEdit()
	case "backspace":
		m.paramBuffer = trimLastRune(m.paramBuffer)
	case "esc":
		m.cancelParamEdit()
	}
	return nil
}

// handleExecuteKey executes the selected endpoint, or toggles a group when
// the cursor sits on a group header.
func (m *Model) handleExecuteKey() tea.Cmd {
	if m.viewMode == ViewGrouped && m.panel == PanelEndpoints {
		items := m.renderItems()
		if m.selectedIndex < len(items) && items[m.selectedIndex].isGroup {
			m.toggleGroup(items[m.selectedIndex].group)
			return nil
		}
	}
	return m.executeSelected()
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
