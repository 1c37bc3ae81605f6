package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cberube/swaggerdeck/internal/config"
	"github.com/cberube/swaggerdeck/internal/editor"
	"github.com/cberube/swaggerdeck/internal/history"
	"github.com/cberube/swaggerdeck/internal/types"
	"github.com/cberube/swaggerdeck/internal/version"
)

// Model represents the TUI state
type Model struct {
	// Core state
	historyManager *history.Manager
	mode           Mode
	version        string
	latestVersion  string // set when a newer release exists
	statusMsg      string

	// Endpoint data
	endpoints  []types.Endpoint
	groups     []types.EndpointGroup
	loading    types.LoadingState
	retryCount int

	// Endpoints list
	viewMode       ViewMode
	expandedGroups map[string]bool
	selectedIndex  int

	// Focus
	panel Panel
	tab   Tab

	// Search
	searchQuery    string
	filtered       []types.Endpoint
	filteredGroups []types.EndpointGroup

	// Request configuration
	configs            map[string]*types.RequestConfig
	selectedParamIndex int
	editingParam       string // name of the parameter being edited, empty when viewing
	paramBuffer        string

	// Body editor modal
	bodyEditor          *editor.Editor
	bodyValidationError string
	bodySectionExpanded bool

	// Authentication
	token      string
	tokenInput string

	// URL modal
	urlInput       string
	baseURLInput   string
	activeURLField URLField

	// Configured URLs
	swaggerURL string
	baseURL    string

	// Execution and response
	executing      string // key of the endpoint with an in-flight request
	response       *types.ApiResponse
	responseKey    string // endpoint key the current response belongs to
	responseScroll int
	responseLine   int
	responseView   viewport.Model
	yankFlash      bool

	// Layout
	width  int
	height int
}

// Messages produced by background commands
type specFetchedMsg struct {
	data []byte
}

type fetchFailedMsg struct {
	err error
}

type specParsedMsg struct {
	endpoints []types.Endpoint
	groups    []types.EndpointGroup
}

type parseFailedMsg struct {
	err error
}

type requestExecutedMsg struct {
	key      string
	response *types.ApiResponse
}

type versionCheckMsg struct {
	update *version.Update
}

type clearYankFlashMsg struct{}

type clearStatusMsg struct{}

// New creates a new TUI model
func New(cfg *config.Config, historyManager *history.Manager, version string) Model {
	return Model{
		historyManager:      historyManager,
		mode:                ModeNormal,
		version:             version,
		loading:             types.LoadingState{Phase: types.PhaseIdle},
		viewMode:            ViewGrouped,
		expandedGroups:      make(map[string]bool),
		configs:             make(map[string]*types.RequestConfig),
		bodyEditor:          editor.New(),
		responseView:        viewport.New(80, 20),
		bodySectionExpanded: true,
		swaggerURL:          cfg.SwaggerURL,
		baseURL:             cfg.BaseURL,
	}
}

func (m *Model) Init() tea.Cmd {
	if m.swaggerURL != "" {
		return tea.Batch(m.startFetch(), checkForUpdates(m.version))
	}
	return checkForUpdates(m.version)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case specFetchedMsg:
		m.loading = types.LoadingState{Phase: types.PhaseParsing, Message: "Parsing endpoints..."}
		return m, parseSpec(msg.data)

	case fetchFailedMsg:
		// Prior endpoint data stays available after a failed refresh.
		m.loading = types.LoadingState{
			Phase:   types.PhaseError,
			Message: fmt.Sprintf("Network error: %v", msg.err),
		}

	case specParsedMsg:
		m.endpoints = msg.endpoints
		m.groups = msg.groups
		m.loading = types.LoadingState{Phase: types.PhaseComplete}
		m.retryCount = 0
		m.selectedIndex = 0
		m.selectedParamIndex = 0
		m.updateFiltered()

	case parseFailedMsg:
		m.loading = types.LoadingState{
			Phase:   types.PhaseError,
			Message: fmt.Sprintf("Parse error: %v", msg.err),
		}

	case requestExecutedMsg:
		if m.executing == msg.key {
			m.executing = ""
		}
		m.response = msg.response
		m.responseKey = msg.key
		m.responseScroll = 0
		m.responseLine = 0
		return m, m.saveHistory(msg.key, msg.response)

	case versionCheckMsg:
		if msg.update != nil {
			m.latestVersion = msg.update.Version
		}

	case clearYankFlashMsg:
		m.yankFlash = false

	case clearStatusMsg:
		m.statusMsg = ""
	}

	return m, nil
}

// saveHistory records an executed request, best effort.
func (m *Model) saveHistory(key string, resp *types.ApiResponse) tea.Cmd {
	if m.historyManager == nil {
		return nil
	}

	endpoint := m.endpointByKey(key)
	if endpoint == nil {
		return nil
	}
	fullURL := m.previewURL(endpoint)

	entry := &types.HistoryEntry{
		Method:     endpoint.Method,
		Path:       endpoint.Path,
		URL:        fullURL,
		Status:     resp.Status,
		DurationMs: resp.Duration,
		IsError:    resp.IsError,
	}
	return func() tea.Msg {
		_ = m.historyManager.Save(entry)
		return nil
	}
}

func (m *Model) endpointByKey(key string) *types.Endpoint {
	for i := range m.endpoints {
		if m.endpoints[i].Key() == key {
			return &m.endpoints[i]
		}
	}
	return nil
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Cleanup releases resources before quitting
func (m *Model) Cleanup() {
	if m.historyManager != nil {
		m.historyManager.Close()
	}
}
