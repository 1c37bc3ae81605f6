package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cberube/swaggerdeck/internal/config"
	"github.com/cberube/swaggerdeck/internal/history"
)

// Run starts the TUI. Command-line URL overrides take precedence over the
// persisted configuration.
func Run(version, swaggerURL, baseURL string) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if swaggerURL != "" {
		cfg.SwaggerURL = swaggerURL
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	// History is best effort; the client works without it.
	historyManager, err := history.NewManager(config.DatabasePath)
	if err != nil {
		historyManager = nil
	}

	if os.Getenv("SWAGGERDECK_DEBUG") != "" {
		f, err := tea.LogToFile("swaggerdeck-debug.log", "debug")
		if err == nil {
			defer f.Close()
		}
	}

	m := New(cfg, historyManager, version)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
