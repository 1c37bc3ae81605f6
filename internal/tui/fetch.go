package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cberube/swaggerdeck/internal/swagger"
	"github.com/cberube/swaggerdeck/internal/types"
	"github.com/cberube/swaggerdeck/internal/version"
)

// startFetch marks the loading state and kicks off the spec download. A
// retrigger while a fetch is in flight simply races it; the last writer
// wins.
func (m *Model) startFetch() tea.Cmd {
	m.loading = types.LoadingState{Phase: types.PhaseFetching, Message: "Fetching API spec..."}
	return fetchSpec(m.swaggerURL)
}

func fetchSpec(url string) tea.Cmd {
	return func() tea.Msg {
		data, err := swagger.Fetch(context.Background(), url)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return specFetchedMsg{data: data}
	}
}

// checkForUpdates looks up the latest release in the background. Failures
// are swallowed; the notice is purely informational.
func checkForUpdates(current string) tea.Cmd {
	return func() tea.Msg {
		update, err := version.Check(current)
		if err != nil {
			return versionCheckMsg{}
		}
		return versionCheckMsg{update: update}
	}
}

func parseSpec(data []byte) tea.Cmd {
	return func() tea.Msg {
		endpoints, err := swagger.Parse(data)
		if err != nil {
			return parseFailedMsg{err: err}
		}
		return specParsedMsg{
			endpoints: endpoints,
			groups:    swagger.Group(endpoints),
		}
	}
}
