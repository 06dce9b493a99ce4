package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonefield/internal/config"
	"phonefield/internal/tui/messages"
)

// deliver executes a command tree the way the bubbletea runtime would,
// feeding widget messages back into Update. Cursor blinks and other
// component ticks are dropped; they would loop forever in a test.
func deliver(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	switch v := msg.(type) {
	case tea.BatchMsg:
		for _, c := range v {
			deliver(t, m, c)
		}
	case messages.CountryChosenMsg, messages.EmitPendingMsg, messages.ConfigReloadedMsg, messages.ErrorMsg:
		_, next := m.Update(v)
		deliver(t, m, next)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(config.New(), "", nil)
	m.Init()
	return m
}

func TestModelInitialization(t *testing.T) {
	m := newTestModel(t)
	assert.NotNil(t, m)
	assert.Equal(t, "US", m.GetCountry().ISO2)
	assert.False(t, m.picker.IsOpen())
	assert.False(t, m.IsValid())
}

func TestTypingEmits(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyRunes("2025550123"))
	deliver(t, m, cmd)

	value, iso2 := m.LastEmission()
	assert.Equal(t, "+12025550123", value)
	assert.Equal(t, "US", iso2)
	assert.True(t, m.IsValid())
	assert.Contains(t, m.View(), "(202) 555-0123")
}

func TestLetterRejected(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyRunes("abc"))
	deliver(t, m, cmd)

	value, _ := m.LastEmission()
	assert.Empty(t, value, "rejected input must not reach the host")
	assert.Empty(t, m.field.National())
}

func TestPickerFlow(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	deliver(t, m, cmd)
	require.True(t, m.picker.IsOpen())

	_, cmd = m.Update(keyRunes("germ"))
	deliver(t, m, cmd)
	assert.Equal(t, "germ", m.picker.Query())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	deliver(t, m, cmd)

	assert.False(t, m.picker.IsOpen(), "selection closes the picker")
	assert.Empty(t, m.picker.Query(), "selection clears the search query")
	assert.Equal(t, "DE", m.GetCountry().ISO2)

	value, iso2 := m.LastEmission()
	assert.Equal(t, "DE", iso2, "deferred emission ran under the new country")
	assert.True(t, strings.HasPrefix(value, "+49"))
}

func TestPickerEscClearsQuery(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	deliver(t, m, cmd)
	_, cmd = m.Update(keyRunes("tur"))
	deliver(t, m, cmd)
	require.Equal(t, "tur", m.picker.Query())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	deliver(t, m, cmd)

	assert.False(t, m.picker.IsOpen())
	assert.Empty(t, m.picker.Query())
	assert.Equal(t, "US", m.GetCountry().ISO2, "dismissal keeps the selection")
}

func TestCountrySwitchKeepsDigits(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyRunes("2025550123"))
	deliver(t, m, cmd)

	_, cmd = m.Update(messages.CountryChosenMsg{ISO2: "TR"})
	deliver(t, m, cmd)

	assert.Equal(t, "TR", m.GetCountry().ISO2)
	_, iso2 := m.LastEmission()
	assert.Equal(t, "TR", iso2)
	assert.Contains(t, m.field.National(), "202")
}

func TestImperativeSetCountry(t *testing.T) {
	m := newTestModel(t)

	deliver(t, m, m.SetCountry("TR"))
	assert.Equal(t, "TR", m.GetCountry().ISO2)
	_, iso2 := m.LastEmission()
	assert.Equal(t, "TR", iso2)

	// unknown codes are a no-op
	assert.Nil(t, m.SetCountry("ZZ"))
	assert.Equal(t, "TR", m.GetCountry().ISO2)
}

func TestClearKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyRunes("2025550123"))
	deliver(t, m, cmd)
	require.True(t, m.IsValid())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	deliver(t, m, cmd)

	assert.Empty(t, m.field.National())
	assert.False(t, m.IsValid())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestConfigReload(t *testing.T) {
	m := newTestModel(t)

	cfg := config.New()
	cfg.Countries.Allowed = []string{"US", "CA"}
	_, cmd := m.Update(messages.ConfigReloadedMsg{Config: cfg})
	deliver(t, m, cmd)

	assert.Len(t, m.field.Candidates(), 2)
	_, ok := m.field.ChooseCountry("DE")
	assert.False(t, ok)
}
