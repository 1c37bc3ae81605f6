package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// enterBodyModal opens the body editor for the selected endpoint, pre-filled
// with the stored body or an empty object. Only available on the request tab
// for methods that accept a body.
func (m *Model) enterBodyModal() {
	if m.panel != PanelDetails || m.tab != TabRequest {
		return
	}
	endpoint := m.selectedEndpoint()
	if endpoint == nil || !endpoint.SupportsBody() {
		return
	}

	cfg := m.getOrCreateConfig(endpoint)
	content := cfg.Body
	if content == "" {
		content = "{}"
	}

	m.bodyEditor.SetContent(content)
	m.bodyValidationError = ""
	m.mode = ModeEnteringBody
}

// handleBodyModalKeys handles the body editor modal. Enter validates,
// formats, and commits; a validation failure keeps the modal open with the
// error shown.
func (m *Model) handleBodyModalKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+n":
		m.bodyValidationError = ""
		m.bodyEditor.InsertNewline()

	case "enter":
		m.commitBody()

	case "esc":
		m.mode = ModeNormal
		m.bodyEditor.Clear()
		m.bodyValidationError = ""

	case "backspace":
		m.bodyValidationError = ""
		m.bodyEditor.DeleteBefore()

	case "left":
		m.bodyEditor.MoveLeft()

	case "right":
		m.bodyEditor.MoveRight()

	case "up":
		m.bodyEditor.MoveUp()

	case "down":
		m.bodyEditor.MoveDown()

	case " ":
		m.bodyValidationError = ""
		m.bodyEditor.InsertNormalized(" ")

	default:
		if msg.Type == tea.KeyRunes {
			m.bodyValidationError = ""
			// A multi-rune event is a terminal paste burst: insert it as
			// one batch and try to format the whole unit.
			m.bodyEditor.InsertNormalized(string(msg.Runes))
			if len(msg.Runes) > 1 {
				_ = m.bodyEditor.FormatJSON()
			}
		}
	}
	return nil
}

// commitBody validates and formats the editor content, then stores it on the
// selected endpoint's config. Content that is empty after trimming is stored
// as no body.
func (m *Model) commitBody() {
	endpoint := m.selectedEndpoint()
	if endpoint == nil {
		m.mode = ModeNormal
		m.bodyEditor.Clear()
		return
	}

	cfg := m.getOrCreateConfig(endpoint)
	if isBlank(m.bodyEditor.Content()) {
		cfg.Body = ""
	} else {
		if err := m.bodyEditor.ValidateJSON(); err != nil {
			m.bodyValidationError = err.Error()
			return
		}
		_ = m.bodyEditor.FormatJSON()
		cfg.Body = m.bodyEditor.Content()
	}

	m.mode = ModeNormal
	m.bodyEditor.Clear()
	m.bodyValidationError = ""
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
