package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// yankResponseLine copies the value under the cursor on the response tab to
// the system clipboard. The first two display lines are the status header
// and are not yankable.
func (m *Model) yankResponseLine() tea.Cmd {
	if m.response == nil || m.response.IsError {
		return nil
	}
	if m.responseLine < 2 {
		return nil
	}

	lines := splitLines(tryFormatJSON(m.response.Body))
	bodyLine := m.responseLine - 2
	if bodyLine >= len(lines) {
		return nil
	}

	value := extractJSONValue(lines[bodyLine])
	if err := clipboard.WriteAll(value); err != nil {
		return m.setStatus("Failed to copy to clipboard: " + err.Error())
	}

	m.yankFlash = true
	return tea.Tick(yankFlashDuration*time.Millisecond, func(time.Time) tea.Msg {
		return clearYankFlashMsg{}
	})
}

// extractJSONValue pulls the scalar value out of a formatted JSON line, so
// yanking  `"access_token": "abc123",`  copies just  abc123.
func extractJSONValue(line string) string {
	trimmed := strings.TrimSpace(line)

	if colon := strings.Index(trimmed, ":"); colon >= 0 {
		value := strings.TrimSpace(trimmed[colon+1:])
		value = strings.TrimSpace(strings.TrimSuffix(value, ","))
		return strings.Trim(value, `"`)
	}

	// Not a key-value pair; strip structural characters.
	trimmed = strings.Trim(trimmed, "{}[],")
	return strings.TrimSpace(trimmed)
}
