package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cberube/swaggerdeck/internal/executor"
	"github.com/cberube/swaggerdeck/internal/types"
)

// executeSelected runs the selected endpoint's request. Preconditions are
// checked synchronously: a configured base URL, no in-flight request for the
// same endpoint, and a value for every required path parameter. Failing the
// parameter check synthesizes an error response without any network call.
func (m *Model) executeSelected() tea.Cmd {
	endpoint := m.selectedEndpoint()
	if endpoint == nil {
		return nil
	}

	if m.baseURL == "" {
		m.response = types.ErrorResponse("Base URL not configured. Press ',' to set it.")
		m.responseKey = endpoint.Key()
		return nil
	}

	key := endpoint.Key()
	if m.executing == key {
		return nil
	}

	cfg := m.configs[key]
	if missing := endpoint.MissingPathParams(cfg); len(missing) > 0 {
		m.response = types.ErrorResponse("Missing required path parameter(s): " + strings.Join(missing, ", "))
		m.responseKey = key
		return nil
	}

	m.executing = key
	m.response = nil
	m.responseKey = ""

	fullURL := executor.BuildURL(m.baseURL, endpoint, cfg)
	body := ""
	if cfg != nil {
		body = cfg.Body
	}

	method := endpoint.Method
	token := m.token
	return func() tea.Msg {
		resp := executor.Execute(context.Background(), method, fullURL, body, token)
		return requestExecutedMsg{key: key, response: resp}
	}
}

// previewURL builds the URL the endpoint would be executed with right now,
// keeping unfilled path placeholders visible.
func (m *Model) previewURL(endpoint *types.Endpoint) string {
	return executor.BuildURL(m.baseURL, endpoint, m.configs[endpoint.Key()])
}
