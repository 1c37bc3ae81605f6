package tui

import (
	"path/filepath"
	"testing"

	"github.com/cberube/swaggerdeck/internal/config"
	"github.com/cberube/swaggerdeck/internal/history"
	"github.com/cberube/swaggerdeck/internal/swagger"
	"github.com/cberube/swaggerdeck/internal/types"
)

// CreateTestModel creates a Model instance for testing with minimal dependencies
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	tempDir := t.TempDir()

	originalDBPath := config.DatabasePath
	config.DatabasePath = filepath.Join(tempDir, "test.db")
	t.Cleanup(func() {
		config.DatabasePath = originalDBPath
	})

	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		t.Fatalf("Failed to create history manager: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })

	m := New(&config.Config{
		SwaggerURL: "http://spec.test/swagger.json",
		BaseURL:    "http://api.test",
	}, mgr, "test-version")
	m.width = 120
	m.height = 40

	return &m
}

// CreateTestModelWithEndpoints creates a Model pre-loaded with endpoints as
// if a fetch had completed.
func CreateTestModelWithEndpoints(t *testing.T, endpoints []types.Endpoint) *Model {
	t.Helper()

	m := CreateTestModel(t)
	m.applyParsed(endpoints)
	return m
}

// applyParsed installs endpoints the way a finished fetch pipeline would
func (m *Model) applyParsed(endpoints []types.Endpoint) {
	m.endpoints = endpoints
	m.groups = swagger.Group(endpoints)
	m.loading = types.LoadingState{Phase: types.PhaseComplete}
	m.selectedIndex = 0
	m.selectedParamIndex = 0
	m.updateFiltered()
}

// AssertModelField fails the test when a field does not have the expected value
func AssertModelField[T comparable](t *testing.T, name string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
