package types

import (
	"reflect"
	"testing"
)

func testEndpoint() Endpoint {
	return Endpoint{
		Method:  "GET",
		Path:    "/users/{id}",
		Summary: "Get a user",
		Tags:    []string{"Users"},
		Parameters: []Parameter{
			{Name: "id", Location: LocationPath, Required: true},
			{Name: "active", Location: LocationQuery},
			{Name: "X-Trace", Location: LocationHeader},
		},
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		in   string
		want ParamLocation
	}{
		{"path", LocationPath},
		{"query", LocationQuery},
		{"header", LocationHeader},
		{"formData", LocationFormData},
		{"body", LocationBody},
		{"", LocationQuery},
	}

	for _, tt := range tests {
		if got := ParseLocation(tt.in); got != tt.want {
			t.Errorf("ParseLocation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEndpointKey(t *testing.T) {
	ep := testEndpoint()
	if ep.Key() != "GET /users/{id}" {
		t.Errorf("Key() = %q, want %q", ep.Key(), "GET /users/{id}")
	}

	del := Endpoint{Method: "DELETE", Path: "/users/{id}"}
	if ep.Key() == del.Key() {
		t.Error("endpoints sharing a path but differing by method must have distinct keys")
	}
}

func TestEditableParamsOrder(t *testing.T) {
	ep := testEndpoint()

	params := ep.EditableParams()
	if len(params) != 2 {
		t.Fatalf("EditableParams() returned %d params, want 2", len(params))
	}
	if params[0].Name != "id" || params[1].Name != "active" {
		t.Errorf("EditableParams() order = [%s, %s], want path params first", params[0].Name, params[1].Name)
	}
}

func TestSupportsBody(t *testing.T) {
	for _, method := range []string{"POST", "PUT", "PATCH"} {
		ep := Endpoint{Method: method, Path: "/items"}
		if !ep.SupportsBody() {
			t.Errorf("%s endpoint should support a body", method)
		}
	}
	for _, method := range []string{"GET", "DELETE"} {
		ep := Endpoint{Method: method, Path: "/items"}
		if ep.SupportsBody() {
			t.Errorf("%s endpoint should not support a body", method)
		}
	}
}

func TestMissingPathParams(t *testing.T) {
	ep := testEndpoint()

	if got := ep.MissingPathParams(nil); !reflect.DeepEqual(got, []string{"id"}) {
		t.Errorf("MissingPathParams(nil) = %v, want [id]", got)
	}

	cfg := NewRequestConfig()
	if got := ep.MissingPathParams(cfg); !reflect.DeepEqual(got, []string{"id"}) {
		t.Errorf("MissingPathParams(empty) = %v, want [id]", got)
	}

	cfg.PathParams["id"] = "42"
	if got := ep.MissingPathParams(cfg); got != nil {
		t.Errorf("MissingPathParams(filled) = %v, want nil", got)
	}
}

func TestErrorResponse(t *testing.T) {
	resp := ErrorResponse("boom")
	if !resp.IsError {
		t.Error("ErrorResponse should set IsError")
	}
	if resp.ErrorMessage != "boom" {
		t.Errorf("ErrorMessage = %q, want %q", resp.ErrorMessage, "boom")
	}
	if resp.Headers == nil {
		t.Error("ErrorResponse should initialize headers map")
	}
}
