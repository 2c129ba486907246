package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/designkit/aigen"
	"github.com/ByLCY/designkit/layout"
	"github.com/ByLCY/designkit/studio"
	"github.com/ByLCY/designkit/themebridge"
)

type fakeKeys struct {
	key   string
	saves []string
	err   error
}

func (f *fakeKeys) HasKey() bool   { return f.key != "" }
func (f *fakeKeys) Masked() string { return "********" + f.key }
func (f *fakeKeys) Save(key string) error {
	if f.err != nil {
		return f.err
	}
	f.saves = append(f.saves, key)
	f.key = key
	return nil
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestStartsInSettingsWithoutKey(t *testing.T) {
	m := NewModel(context.Background(), nil, &fakeKeys{}, themebridge.Light)
	assert.Equal(t, StateSettings, m.State())

	m = NewModel(context.Background(), nil, &fakeKeys{key: "sk"}, themebridge.Light)
	assert.Equal(t, StateForm, m.State())
}

func TestSaveDisabledWhileEmpty(t *testing.T) {
	keys := &fakeKeys{}
	m := NewModel(context.Background(), nil, keys, "")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, StateSettings, m.State())

	m = typeText(t, m, "sk-new")
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, []string{"sk-new"}, keys.saves)
	assert.Equal(t, StateForm, m.State())
	assert.Equal(t, "API key saved", m.Status())
}

func TestSaveErrorStaysInSettings(t *testing.T) {
	keys := &fakeKeys{err: errors.New("disk full")}
	m := NewModel(context.Background(), nil, keys, "")
	m = typeText(t, m, "sk")
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	assert.Equal(t, StateSettings, m.State())
	assert.Equal(t, "disk full", m.Status())
}

func TestMissingCredentialSwitchesToSettings(t *testing.T) {
	m := NewModel(context.Background(), nil, &fakeKeys{key: "sk"}, "")
	m, _ = update(t, m, GeneratedMsg{Err: aigen.ErrMissingCredential})
	assert.Equal(t, StateSettings, m.State())
	assert.Equal(t, "API key not set", m.Status())
}

func TestGenerateFlow(t *testing.T) {
	var got studio.Request
	gen := func(_ context.Context, req studio.Request) (*studio.Outcome, error) {
		got = req
		return &studio.Outcome{Elements: make([]layout.Element, 7), Source: studio.SourceTemplate}, nil
	}
	m := NewModel(context.Background(), gen, &fakeKeys{key: "sk"}, "")

	// type -> dashboard, scheme -> dark
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "sales")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, StateGenerating, m.State())

	m, _ = update(t, m, generateCmd(context.Background(), gen, studio.Request{Intent: m.Intent()})())
	assert.Equal(t, StateForm, m.State())
	assert.Equal(t, layout.Intent{Type: layout.Dashboard, Style: layout.StyleMinimal, ColorScheme: layout.SchemeDark, Description: "sales"}, got.Intent)
	assert.Contains(t, m.Status(), "7 elements")
	require.NotNil(t, m.Last())
}

func TestGenerateWithoutKeyOpensSettings(t *testing.T) {
	keys := &fakeKeys{key: "sk"}
	m := NewModel(context.Background(), nil, keys, "")
	keys.key = ""
	for i := 0; i < fieldSubmit; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, StateSettings, m.State())
}

func TestUpstreamErrorReturnsToForm(t *testing.T) {
	m := NewModel(context.Background(), nil, &fakeKeys{key: "sk"}, "")
	m, _ = update(t, m, GeneratedMsg{Err: &aigen.UpstreamError{StatusCode: 502}})
	assert.Equal(t, StateForm, m.State())
	assert.Contains(t, m.View(), "status 502")
	assert.Equal(t, "Failed to generate design: status 502", m.Status())
}

func TestInvalidFormatStatus(t *testing.T) {
	m := NewModel(context.Background(), nil, &fakeKeys{key: "sk"}, "")
	m, _ = update(t, m, GeneratedMsg{Err: fmt.Errorf("%w: 缺少 design 字段", aigen.ErrInvalidFormat)})
	assert.Equal(t, StateForm, m.State())
	assert.Equal(t, "Invalid AI response format", m.Status())
}

func TestThemeMessage(t *testing.T) {
	m := NewModel(context.Background(), nil, &fakeKeys{key: "sk"}, "")
	assert.Equal(t, themebridge.Light, m.Theme())
	m, _ = update(t, m, ThemeMsg{Theme: themebridge.Dark})
	assert.Equal(t, themebridge.Dark, m.Theme())
	assert.Contains(t, m.View(), "Generate Design")
}
