package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cberube/swaggerdeck/internal/config"
)

func TestURLModalPrefills(t *testing.T) {
	m := CreateTestModel(t)

	m.handleKeyPress(keyRune(','))

	AssertModelField(t, "mode", m.mode, ModeEnteringURL)
	AssertModelField(t, "urlInput", m.urlInput, "http://spec.test/swagger.json")
	AssertModelField(t, "baseURLInput", m.baseURLInput, "http://api.test")
	AssertModelField(t, "activeURLField", m.activeURLField, FieldSwaggerURL)
}

func TestURLModalFieldToggle(t *testing.T) {
	m := CreateTestModel(t)
	m.enterURLModal()

	m.handleKeyPress(keyOf(tea.KeyTab))
	AssertModelField(t, "activeURLField", m.activeURLField, FieldBaseURL)

	m.handleKeyPress(keyOf(tea.KeyTab))
	AssertModelField(t, "activeURLField", m.activeURLField, FieldSwaggerURL)
}

func TestURLModalRejectsInvalidURL(t *testing.T) {
	m := CreateTestModel(t)
	m.enterURLModal()
	m.urlInput = "not-a-url"

	m.handleKeyPress(keyOf(tea.KeyEnter))

	AssertModelField(t, "mode", m.mode, ModeEnteringURL)
	AssertModelField(t, "swaggerURL", m.swaggerURL, "http://spec.test/swagger.json")
}

func TestURLModalSubmitPersistsAndFetches(t *testing.T) {
	m := CreateTestModel(t)

	origFile := config.ConfigFile
	config.ConfigFile = filepath.Join(t.TempDir(), "config.yaml")
	t.Cleanup(func() { config.ConfigFile = origFile })

	m.enterURLModal()
	m.urlInput = "https://petstore.swagger.io/v2/swagger.json"
	m.baseURLInput = "https://petstore.swagger.io/v2"

	cmd := m.handleKeyPress(keyOf(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("expected fetch command after valid submit")
	}
	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "swaggerURL", m.swaggerURL, "https://petstore.swagger.io/v2/swagger.json")
	AssertModelField(t, "baseURL", m.baseURL, "https://petstore.swagger.io/v2")

	saved, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	AssertModelField(t, "saved swagger_url", saved.SwaggerURL, m.swaggerURL)
}

func TestURLModalEscClearsFields(t *testing.T) {
	m := CreateTestModel(t)
	m.enterURLModal()

	m.handleKeyPress(keyOf(tea.KeyEsc))

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "urlInput", m.urlInput, "")
	AssertModelField(t, "baseURLInput", m.baseURLInput, "")
}

func TestURLModalEditsOnlyActiveField(t *testing.T) {
	m := CreateTestModel(t)
	m.enterURLModal()
	base := m.baseURLInput

	m.handleKeyPress(keyRune('x'))

	AssertModelField(t, "urlInput", m.urlInput, "http://spec.test/swagger.jsonx")
	AssertModelField(t, "baseURLInput", m.baseURLInput, base)
}

func TestTokenModalSavesToken(t *testing.T) {
	m := CreateTestModel(t)

	m.handleKeyPress(keyRune('a'))
	AssertModelField(t, "mode", m.mode, ModeEnteringToken)

	for _, r := range "secret" {
		m.handleKeyPress(keyRune(r))
	}
	m.handleKeyPress(keyOf(tea.KeyEnter))

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "token", m.token, "secret")
	AssertModelField(t, "tokenInput", m.tokenInput, "")
}

func TestTokenModalEmptyEnterKeepsToken(t *testing.T) {
	m := CreateTestModel(t)
	m.token = "existing"
	m.mode = ModeEnteringToken
	m.tokenInput = ""

	m.handleKeyPress(keyOf(tea.KeyEnter))

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "token", m.token, "existing")
}

func TestTokenModalPrefillsCurrentToken(t *testing.T) {
	m := CreateTestModel(t)
	m.token = "existing"

	m.enterTokenModal()

	AssertModelField(t, "tokenInput", m.tokenInput, "existing")
}

func TestClearTokenConfirmation(t *testing.T) {
	m := CreateTestModel(t)
	m.token = "secret"
	m.mode = ModeEnteringToken

	m.handleKeyPress(keyOf(tea.KeyCtrlX))
	AssertModelField(t, "mode", m.mode, ModeConfirmClearToken)

	m.handleKeyPress(keyRune('y'))
	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "token", m.token, "")
}

func TestClearTokenDeclined(t *testing.T) {
	m := CreateTestModel(t)
	m.token = "secret"
	m.mode = ModeConfirmClearToken

	m.handleKeyPress(keyRune('n'))

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "token", m.token, "secret")
}

func TestDeleteLastWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "hello"},
		{"hello world  ", "hello"},
		{"hello", ""},
		{"", ""},
		{"a b c", "a b"},
	}
	for _, tt := range tests {
		if got := deleteLastWord(tt.in); got != tt.want {
			t.Errorf("deleteLastWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestURLModalDeleteWord(t *testing.T) {
	m := CreateTestModel(t)
	m.enterURLModal()
	m.urlInput = "http://example.com and more"

	m.handleKeyPress(keyOf(tea.KeyCtrlW))

	AssertModelField(t, "urlInput", m.urlInput, "http://example.com and")
}
