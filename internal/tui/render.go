package tui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/cberube/swaggerdeck/internal/executor"
	"github.com/cberube/swaggerdeck/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleActiveTab = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan).
			Underline(true)
)

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	switch m.mode {
	case ModeEnteringURL:
		return m.renderURLModal()
	case ModeEnteringToken:
		return m.renderTokenModal()
	case ModeConfirmClearToken:
		return m.renderClearTokenModal()
	case ModeEnteringBody:
		return m.renderBodyModal()
	}

	sidebarWidth := max(40, m.width*40/100)
	if m.width < 100 {
		sidebarWidth = m.width / 2
	}
	detailsWidth := m.width - sidebarWidth - 4

	contentHeight := m.height - 4

	sidebar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.panelBorderColor(PanelEndpoints)).
		Width(sidebarWidth).
		Height(contentHeight).
		Render(m.renderEndpointsList(sidebarWidth-2, contentHeight))

	details := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.panelBorderColor(PanelDetails)).
		Width(detailsWidth).
		Height(contentHeight).
		Render(m.renderDetails(detailsWidth - 2))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, details),
		m.renderFooter(),
	)
}

func (m *Model) panelBorderColor(p Panel) lipgloss.AdaptiveColor {
	if m.panel == p {
		return colorGreen
	}
	return colorGray
}

func (m *Model) renderHeader() string {
	title := styleTitle.Render("swaggerdeck " + m.version)

	var status string
	switch m.loading.Phase {
	case types.PhaseFetching, types.PhaseParsing:
		status = styleWarning.Render(m.loading.Message)
	case types.PhaseError:
		status = styleError.Render(m.loading.Message)
		if m.retryCount > 0 {
			status += styleSubtle.Render(fmt.Sprintf(" (retry %d)", m.retryCount))
		}
	case types.PhaseComplete:
		status = styleSubtle.Render(fmt.Sprintf("%d endpoints", len(m.endpoints)))
	default:
		status = styleSubtle.Render("Press ',' to configure URLs")
	}

	if m.mode == ModeSearch || m.searchQuery != "" {
		status += "  " + styleWarning.Render("/"+m.searchQuery)
	}

	if m.latestVersion != "" {
		status += "  " + styleSubtle.Render("(v"+m.latestVersion+" available)")
	}

	return title + "  " + status
}

func (m *Model) renderEndpointsList(width, height int) string {
	var lines []string

	if m.viewMode == ViewFlat {
		for i, e := range m.activeEndpoints() {
			line := fmt.Sprintf("%s %s", renderMethod(e.Method), e.Path)
			if i == m.selectedIndex {
				line = styleSelected.Render(truncate(fmt.Sprintf("%-7s %s", e.Method, e.Path), width))
			}
			lines = append(lines, line)
		}
	} else {
		for i, item := range m.renderItems() {
			var line string
			if item.isGroup {
				marker := "▸"
				if item.expanded {
					marker = "▾"
				}
				line = fmt.Sprintf("%s %s (%d)", marker, styleTitle.Render(item.group), item.count)
				if i == m.selectedIndex {
					line = styleSelected.Render(truncate(fmt.Sprintf("%s %s (%d)", marker, item.group, item.count), width))
				}
			} else {
				line = fmt.Sprintf("  %s %s", renderMethod(item.endpoint.Method), item.endpoint.Path)
				if i == m.selectedIndex {
					line = styleSelected.Render(truncate(fmt.Sprintf("  %-7s %s", item.endpoint.Method, item.endpoint.Path), width))
				}
			}
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		if m.searchQuery != "" {
			return styleSubtle.Render("No endpoints match '" + m.searchQuery + "'")
		}
		return styleSubtle.Render("No endpoints loaded")
	}

	// Keep the selection visible
	start := 0
	if m.selectedIndex >= height {
		start = m.selectedIndex - height + 1
	}
	end := min(len(lines), start+height)
	return strings.Join(lines[start:end], "\n")
}

func renderMethod(method string) string {
	padded := fmt.Sprintf("%-7s", method)
	switch method {
	case "GET":
		return styleSuccess.Render(padded)
	case "POST":
		return lipgloss.NewStyle().Foreground(colorBlue).Render(padded)
	case "PUT", "PATCH":
		return styleWarning.Render(padded)
	case "DELETE":
		return styleError.Render(padded)
	}
	return padded
}

func (m *Model) renderDetails(width int) string {
	var b strings.Builder

	for i, t := range []Tab{TabEndpoint, TabRequest, TabHeaders, TabResponse} {
		if i > 0 {
			b.WriteString(" │ ")
		}
		if t == m.tab {
			b.WriteString(styleActiveTab.Render(t.String()))
		} else {
			b.WriteString(styleSubtle.Render(t.String()))
		}
	}
	b.WriteString("\n\n")

	endpoint := m.selectedEndpoint()
	if endpoint == nil {
		b.WriteString(styleSubtle.Render("Select an endpoint"))
		return b.String()
	}

	switch m.tab {
	case TabEndpoint:
		b.WriteString(m.renderEndpointTab(endpoint, width))
	case TabRequest:
		b.WriteString(m.renderRequestTab(endpoint, width))
	case TabHeaders:
		b.WriteString(m.renderHeadersTab(endpoint))
	case TabResponse:
		b.WriteString(m.renderResponseTab(endpoint, width))
	}
	return b.String()
}

func (m *Model) renderEndpointTab(endpoint *types.Endpoint, width int) string {
	var b strings.Builder

	b.WriteString(renderMethod(endpoint.Method) + endpoint.Path + "\n\n")
	if endpoint.Summary != "" {
		b.WriteString(wordwrap.String(endpoint.Summary, width) + "\n\n")
	}
	if len(endpoint.Tags) > 0 {
		b.WriteString(styleSubtle.Render("Tags: "+strings.Join(endpoint.Tags, ", ")) + "\n\n")
	}

	if len(endpoint.Parameters) > 0 {
		b.WriteString(styleTitle.Render("Parameters") + "\n")
		for _, p := range endpoint.Parameters {
			required := ""
			if p.Required {
				required = styleError.Render(" *")
			}
			typeName := ""
			if p.Schema != nil && p.Schema.Type != "" {
				typeName = " (" + p.Schema.Type + ")"
			}
			b.WriteString(fmt.Sprintf("  %s%s %s%s\n", p.Name, required, styleSubtle.Render(p.Location.String()), styleSubtle.Render(typeName)))
			if p.Description != "" {
				b.WriteString(styleSubtle.Render(wordwrap.String("    "+p.Description, width)) + "\n")
			}
		}
	}
	return b.String()
}

func (m *Model) renderRequestTab(endpoint *types.Endpoint, width int) string {
	var b strings.Builder

	b.WriteString(styleSubtle.Render("URL: ") + truncate(m.previewURL(endpoint), width-5) + "\n\n")

	params := endpoint.EditableParams()
	if len(params) == 0 {
		b.WriteString(styleSubtle.Render("No parameters") + "\n")
	}

	cfg := m.configs[endpoint.Key()]
	for i, p := range params {
		value := ""
		if cfg != nil {
			if p.Location == types.LocationPath {
				value = cfg.PathParams[p.Name]
			} else {
				value = cfg.QueryParams[p.Name]
			}
		}

		line := fmt.Sprintf("%s [%s]: %s", p.Name, p.Location, value)
		if i == m.selectedParamIndex {
			if m.isEditing() && m.editingParam == p.Name {
				line = fmt.Sprintf("%s [%s]: %s█", p.Name, p.Location, m.paramBuffer)
				line = styleWarning.Render(line)
			} else {
				line = styleSelected.Render(line)
			}
		}
		b.WriteString(line + "\n")
	}

	if endpoint.SupportsBody() {
		b.WriteString("\n" + styleTitle.Render("Body") + styleSubtle.Render(" [press 'b' to edit, 'x' to toggle]") + "\n")
		if m.bodySectionExpanded {
			body := ""
			if cfg != nil {
				body = cfg.Body
			}
			if body == "" {
				b.WriteString(styleSubtle.Render("  (no body)") + "\n")
			} else {
				for _, line := range splitLines(body) {
					b.WriteString("  " + truncate(line, width-2) + "\n")
				}
			}
		}
	}

	if m.isEditing() {
		b.WriteString("\n" + styleSubtle.Render("Enter to confirm, Esc to cancel"))
	} else {
		b.WriteString("\n" + styleSubtle.Render("'e' to edit, Space to execute"))
	}
	return b.String()
}

func (m *Model) renderHeadersTab(endpoint *types.Endpoint) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Request headers") + "\n")
	cfg := m.configs[endpoint.Key()]
	if cfg != nil && cfg.Body != "" {
		b.WriteString("  content-type: application/json\n")
	}
	if m.token != "" {
		b.WriteString("  authorization: Bearer " + maskToken(m.token) + "\n")
	}

	if m.response != nil && !m.response.IsError && m.responseKey == endpoint.Key() {
		b.WriteString("\n" + styleTitle.Render("Response headers") + "\n")
		for _, key := range sortedKeys(m.response.Headers) {
			b.WriteString(fmt.Sprintf("  %s: %s\n", key, m.response.Headers[key]))
		}
	}
	return b.String()
}

func (m *Model) renderResponseTab(endpoint *types.Endpoint, width int) string {
	if m.executing == endpoint.Key() {
		return styleWarning.Render("Executing " + endpoint.Method + " " + endpoint.Path + "...")
	}

	if m.response == nil || m.responseKey != endpoint.Key() {
		return styleSubtle.Render("No response yet. Space to execute.")
	}

	if m.response.IsError {
		return styleError.Render(wordwrap.String(m.response.ErrorMessage, width))
	}

	statusStyle := styleSuccess
	if !executor.IsSuccessStatus(m.response.Status) {
		statusStyle = styleError
	}
	statusLine := statusStyle.Render(fmt.Sprintf("%d %s", m.response.Status, m.response.StatusText)) +
		styleSubtle.Render("  "+executor.FormatDuration(m.response.Duration))

	lines := []string{statusLine, ""}
	for _, line := range splitLines(tryFormatJSON(m.response.Body)) {
		lines = append(lines, truncate(line, width))
	}

	// Highlight the selected line, flashing green right after a yank
	if m.responseLine >= 2 && m.responseLine < len(lines) {
		if m.yankFlash {
			lines[m.responseLine] = styleSuccess.Render(lines[m.responseLine])
		} else {
			lines[m.responseLine] = styleSelected.Render(lines[m.responseLine])
		}
	}

	m.responseView.Width = width
	m.responseView.Height = m.responseViewportHeight()
	m.responseView.SetContent(strings.Join(lines, "\n"))
	m.responseView.SetYOffset(m.responseScroll)
	return m.responseView.View()
}

func (m *Model) renderFooter() string {
	if m.statusMsg != "" {
		return styleWarning.Render(m.statusMsg)
	}

	switch m.mode {
	case ModeSearch:
		return styleSubtle.Render("Search: type to filter │ Enter keep │ Esc clear")
	default:
		return styleSubtle.Render("j/k move │ Tab cycle │ g group │ / search │ e edit │ Space execute │ a auth │ , urls │ q quit")
	}
}

func (m *Model) renderURLModal() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Configure URLs") + "\n\n")

	swaggerMarker, baseMarker := "  ", "  "
	if m.activeURLField == FieldSwaggerURL {
		swaggerMarker = styleSuccess.Render("> ")
	} else {
		baseMarker = styleSuccess.Render("> ")
	}
	b.WriteString(swaggerMarker + "Swagger URL: " + m.urlInput + cursorFor(m.activeURLField == FieldSwaggerURL) + "\n")
	b.WriteString(baseMarker + "Base URL:    " + m.baseURLInput + cursorFor(m.activeURLField == FieldBaseURL) + "\n\n")
	b.WriteString(styleSubtle.Render("Tab switch field │ Enter save │ Esc cancel │ Ctrl+W delete word │ Ctrl+L clear"))

	return m.centerModal(b.String())
}

func (m *Model) renderTokenModal() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Bearer token") + "\n\n")
	b.WriteString("  " + maskToken(m.tokenInput) + "█\n\n")
	b.WriteString(styleSubtle.Render("Enter save │ Esc cancel │ Ctrl+X clear token"))
	return m.centerModal(b.String())
}

func (m *Model) renderClearTokenModal() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Clear stored token?") + "\n\n")
	b.WriteString(styleSubtle.Render("y yes │ n/Esc no"))
	return m.centerModal(b.String())
}

func (m *Model) renderBodyModal() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Request body") + "\n\n")

	row, col := m.bodyEditor.Cursor()
	for i, line := range m.bodyEditor.Lines() {
		if i == row {
			runes := []rune(line)
			before, after := string(runes[:col]), string(runes[col:])
			b.WriteString(before + "█" + after + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	if m.bodyValidationError != "" {
		b.WriteString(styleError.Render(m.bodyValidationError) + "\n")
	}
	b.WriteString(styleSubtle.Render("Enter save │ Ctrl+N newline │ Esc cancel"))
	return m.centerModal(b.String())
}

func (m *Model) centerModal(content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Padding(1, 2).
		Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func cursorFor(active bool) string {
	if active {
		return "█"
	}
	return ""
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

// tryFormatJSON pretty-prints a JSON document, returning the input unchanged
// when it is not valid JSON.
func tryFormatJSON(body string) string {
	var value any
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		return body
	}
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return body
	}
	return string(pretty)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
