package tui

// Mode represents the current TUI input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeEnteringURL
	ModeEnteringToken
	ModeConfirmClearToken
	ModeEnteringBody
)

// Panel represents which panel has focus
type Panel int

const (
	PanelEndpoints Panel = iota
	PanelDetails
)

// Tab represents the active tab inside the details panel
type Tab int

const (
	TabEndpoint Tab = iota
	TabRequest
	TabHeaders
	TabResponse
)

func (t Tab) String() string {
	switch t {
	case TabEndpoint:
		return "Endpoint"
	case TabRequest:
		return "Request"
	case TabHeaders:
		return "Headers"
	case TabResponse:
		return "Response"
	}
	return "Unknown"
}

// ViewMode represents how the endpoints list is displayed
type ViewMode int

const (
	ViewGrouped ViewMode = iota
	ViewFlat
)

// URLField identifies which field of the URL modal has focus
type URLField int

const (
	FieldSwaggerURL URLField = iota
	FieldBaseURL
)

const (
	yankFlashDuration = 200 // milliseconds
	scrollStep        = 5
)
