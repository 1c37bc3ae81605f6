package types

import "time"

// ParamLocation identifies where a request parameter is carried.
type ParamLocation int

const (
	LocationPath ParamLocation = iota
	LocationQuery
	LocationHeader
	LocationFormData
	LocationBody
)

// ParseLocation maps the "in" field of a Swagger parameter to a typed location.
func ParseLocation(in string) ParamLocation {
	switch in {
	case "path":
		return LocationPath
	case "query":
		return LocationQuery
	case "header":
		return LocationHeader
	case "formData":
		return LocationFormData
	case "body":
		return LocationBody
	}
	return LocationQuery
}

func (l ParamLocation) String() string {
	switch l {
	case LocationPath:
		return "path"
	case LocationQuery:
		return "query"
	case LocationHeader:
		return "header"
	case LocationFormData:
		return "formData"
	case LocationBody:
		return "body"
	}
	return "unknown"
}

// ParamSchema carries the type information declared for a parameter.
// Default holds the spec-provided default value, already stringified.
type ParamSchema struct {
	Type    string
	Format  string
	Default string
}

// Parameter describes one parameter of an endpoint. Immutable once parsed.
type Parameter struct {
	Name        string
	Location    ParamLocation
	Required    bool
	Description string
	Schema      *ParamSchema
}

// Endpoint is one (method, path) operation from the API specification.
// Immutable once parsed.
type Endpoint struct {
	Method     string
	Path       string
	Summary    string
	Tags       []string
	Parameters []Parameter
}

// Key identifies an endpoint. Two operations sharing a path but differing
// by method get distinct configs and responses.
func (e *Endpoint) Key() string {
	return e.Method + " " + e.Path
}

// PathParams returns the endpoint's path parameters in declaration order.
func (e *Endpoint) PathParams() []Parameter {
	var out []Parameter
	for _, p := range e.Parameters {
		if p.Location == LocationPath {
			out = append(out, p)
		}
	}
	return out
}

// QueryParams returns the endpoint's query parameters in declaration order.
func (e *Endpoint) QueryParams() []Parameter {
	var out []Parameter
	for _, p := range e.Parameters {
		if p.Location == LocationQuery {
			out = append(out, p)
		}
	}
	return out
}

// EditableParams returns path params followed by query params. The
// selected-parameter index on the Request tab indexes into this list.
func (e *Endpoint) EditableParams() []Parameter {
	return append(e.PathParams(), e.QueryParams()...)
}

// SupportsBody reports whether the endpoint's method can carry a request body.
func (e *Endpoint) SupportsBody() bool {
	switch e.Method {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}

// MissingPathParams returns the names of path parameters that have no stored
// value in the given config. A nil config leaves every path param missing.
func (e *Endpoint) MissingPathParams(cfg *RequestConfig) []string {
	var missing []string
	for _, p := range e.PathParams() {
		if cfg == nil || cfg.PathParams[p.Name] == "" {
			missing = append(missing, p.Name)
		}
	}
	return missing
}

// RequestConfig is the per-endpoint record of parameter values and body
// chosen by the user. Created lazily, overwritten but never deleted.
type RequestConfig struct {
	PathParams  map[string]string
	QueryParams map[string]string
	Body        string // empty means no body
}

// NewRequestConfig creates an empty request config.
func NewRequestConfig() *RequestConfig {
	return &RequestConfig{
		PathParams:  make(map[string]string),
		QueryParams: make(map[string]string),
	}
}

// ApiResponse is the result of one execution. Exactly one current response
// exists at a time; each execution replaces it wholesale.
type ApiResponse struct {
	Status       int
	StatusText   string
	Headers      map[string]string // keys lowercased
	Body         string
	Duration     int64 // milliseconds
	IsError      bool
	ErrorMessage string
}

// ErrorResponse builds a synthetic failure response.
func ErrorResponse(msg string) *ApiResponse {
	return &ApiResponse{
		Headers:      make(map[string]string),
		IsError:      true,
		ErrorMessage: msg,
	}
}

// LoadingPhase tracks the fetch pipeline's progress.
type LoadingPhase int

const (
	PhaseIdle LoadingPhase = iota
	PhaseFetching
	PhaseParsing
	PhaseComplete
	PhaseError
)

func (p LoadingPhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseFetching:
		return "Fetching"
	case PhaseParsing:
		return "Parsing"
	case PhaseComplete:
		return "Complete"
	case PhaseError:
		return "Error"
	}
	return "unknown"
}

// LoadingState is the fetch pipeline status surfaced to the user.
// Message is set only when Phase is PhaseError.
type LoadingState struct {
	Phase   LoadingPhase
	Message string
}

// EndpointGroup is one tag bucket of endpoints. Endpoints carrying several
// tags appear in several groups; untagged endpoints land in "Other".
type EndpointGroup struct {
	Name      string
	Endpoints []Endpoint
}

// HistoryEntry is one row of the execution audit log.
type HistoryEntry struct {
	ID         int64
	Method     string
	Path       string
	URL        string
	Status     int
	DurationMs int64
	IsError    bool
	ExecutedAt time.Time
}
