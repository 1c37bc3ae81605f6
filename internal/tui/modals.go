package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cberube/swaggerdeck/internal/config"
)

// enterURLModal opens the URL dialog pre-filled with the configured URLs
func (m *Model) enterURLModal() {
	m.mode = ModeEnteringURL
	m.urlInput = m.swaggerURL
	m.baseURLInput = m.baseURL
	m.activeURLField = FieldSwaggerURL
}

func (m *Model) exitURLModal() {
	m.mode = ModeNormal
	m.urlInput = ""
	m.baseURLInput = ""
}

// handleURLModalKeys handles the two-field URL dialog. Enter validates both
// fields and, only when valid, persists them and starts a fetch.
func (m *Model) handleURLModalKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		if m.activeURLField == FieldSwaggerURL {
			m.activeURLField = FieldBaseURL
		} else {
			m.activeURLField = FieldSwaggerURL
		}

	case "enter":
		return m.submitURLs()

	case "esc":
		m.exitURLModal()

	case "backspace":
		if m.activeURLField == FieldSwaggerURL {
			m.urlInput = trimLastRune(m.urlInput)
		} else {
			m.baseURLInput = trimLastRune(m.baseURLInput)
		}

	case "ctrl+w":
		if m.activeURLField == FieldSwaggerURL {
			m.urlInput = deleteLastWord(m.urlInput)
		} else {
			m.baseURLInput = deleteLastWord(m.baseURLInput)
		}

	case "ctrl+l":
		if m.activeURLField == FieldSwaggerURL {
			m.urlInput = ""
		} else {
			m.baseURLInput = ""
		}

	default:
		if msg.Type == tea.KeyRunes {
			if m.activeURLField == FieldSwaggerURL {
				m.urlInput += string(msg.Runes)
			} else {
				m.baseURLInput += string(msg.Runes)
			}
		}
	}
	return nil
}

// submitURLs validates both URLs; invalid input keeps the modal open with a
// status message instead of committing anything.
func (m *Model) submitURLs() tea.Cmd {
	if err := config.ValidateURL(m.urlInput); err != nil {
		return m.setStatus("Swagger URL: " + err.Error())
	}
	if err := config.ValidateURL(m.baseURLInput); err != nil {
		return m.setStatus("Base URL: " + err.Error())
	}

	m.swaggerURL = m.urlInput
	m.baseURL = m.baseURLInput
	m.exitURLModal()

	saveErr := config.Save(&config.Config{SwaggerURL: m.swaggerURL, BaseURL: m.baseURL})

	fetch := m.startFetch()
	if saveErr != nil {
		return tea.Batch(fetch, m.setStatus("Failed to save config: "+saveErr.Error()))
	}
	return fetch
}

// enterTokenModal opens the bearer token dialog pre-filled with the current
// token.
func (m *Model) enterTokenModal() {
	m.mode = ModeEnteringToken
	m.tokenInput = m.token
}

// handleTokenModalKeys handles the single-field token dialog. Enter with an
// empty field exits without touching the stored token; Ctrl+X asks for
// confirmation before clearing it.
func (m *Model) handleTokenModalKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if m.tokenInput != "" {
			m.token = m.tokenInput
		}
		m.mode = ModeNormal
		m.tokenInput = ""

	case "esc":
		m.mode = ModeNormal
		m.tokenInput = ""

	case "backspace":
		m.tokenInput = trimLastRune(m.tokenInput)

	case "ctrl+w":
		m.tokenInput = deleteLastWord(m.tokenInput)

	case "ctrl+l":
		m.tokenInput = ""

	case "ctrl+x":
		m.mode = ModeConfirmClearToken

	case " ":
		m.tokenInput += " "

	default:
		if msg.Type == tea.KeyRunes {
			m.tokenInput += string(msg.Runes)
		}
	}
	return nil
}

// handleClearTokenConfirmKeys handles the yes/no prompt for clearing the
// stored token.
func (m *Model) handleClearTokenConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		m.token = ""
		m.tokenInput = ""
		m.mode = ModeNormal

	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return nil
}
