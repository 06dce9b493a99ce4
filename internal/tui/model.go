package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"phonefield/internal/config"
	"phonefield/internal/directory"
	"phonefield/internal/field"
	"phonefield/internal/log"
	"phonefield/internal/tui/components"
	"phonefield/internal/tui/messages"
	"phonefield/internal/tui/styles"
	"phonefield/pkg/types"
)

// Model is the root widget model: the phone input, the country picker, and
// the plumbing that feeds deferred emissions back through the event queue.
type Model struct {
	cfg        *config.Config
	configPath string

	field  *field.Field
	input  *components.PhoneInput
	picker *components.CountryPicker
	status *components.StatusBar

	keys     types.KeyMap
	help     help.Model
	showHelp bool

	// last emission, displayed for the demo and echoed back into the
	// field the way a host application would.
	lastValue string
	lastISO2  string

	reloads <-chan struct{}
}

// New builds the widget from a config. configPath is the file the reload
// channel refers to; pass reloads=nil to run without live reload.
func New(cfg *config.Config, configPath string, reloads <-chan struct{}) *Model {
	styles.Apply(cfg)

	m := &Model{
		cfg:        cfg,
		configPath: configPath,
		picker:     components.NewCountryPicker(),
		status:     components.NewStatusBar(),
		keys:       types.DefaultKeyMap(),
		help:       help.New(),
		reloads:    reloads,
	}

	candidates := directory.Candidates(cfg.Filter())
	m.field = field.New(candidates, cfg.DefaultCountry, func(value, iso2 string) {
		m.lastValue = value
		m.lastISO2 = iso2
		m.status.SetText(fmt.Sprintf("emitted %s (%s)", value, iso2))
		// Host contract: the canonical value comes straight back. The
		// guard recognizes it as our own echo.
		m.field.SetValue(value)
	})
	m.input = components.NewPhoneInput(m.field)
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), m.waitForReload())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case messages.CountryChosenMsg:
		pending, ok := m.field.ChooseCountry(msg.ISO2)
		m.picker.Close()
		m.input.Refresh()
		cmds := []tea.Cmd{m.input.Focus()}
		if ok {
			cmds = append(cmds, emitPendingCmd(pending))
		}
		return m, tea.Batch(cmds...)

	case messages.EmitPendingMsg:
		m.field.EmitPending(msg.Pending)
		return m, nil

	case messages.ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, m.waitForReload()

	case messages.ErrorMsg:
		log.Errorf("config reload failed: %v", msg.Err)
		m.status.SetText(fmt.Sprintf("config error: %v", msg.Err))
		return m, m.waitForReload()
	}

	// Everything else (cursor blink ticks and the like) goes to whichever
	// component is active.
	if m.picker.IsOpen() {
		return m, m.picker.Update(msg)
	}
	return m, m.input.Update(msg)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.IsOpen() {
		if key.Matches(msg, m.keys.ClosePicker) {
			m.picker.Close()
			return m, m.input.Focus()
		}
		return m, m.picker.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.OpenPicker):
		m.input.Blur()
		return m, m.picker.Open(m.field.Candidates(), m.field.Country().ISO2)
	case key.Matches(msg, m.keys.Clear):
		m.field.Reset()
		m.input.Refresh()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}
	return m, m.input.Update(msg)
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Theme.Title.Render("phonefield") + "\n\n")
	sb.WriteString(m.input.View() + "\n")
	sb.WriteString(styles.Theme.Help.Render(m.field.Country().Label()) + "\n")

	if m.picker.IsOpen() {
		sb.WriteString("\n" + m.picker.View() + "\n")
	}

	if status := m.status.View(); status != "" {
		sb.WriteString("\n" + status + "\n")
	}

	if m.showHelp {
		sb.WriteString("\n" + m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sb.WriteString("\n" + m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return styles.Theme.App.Render(sb.String())
}

// applyConfig swaps the candidate list and theme after a live reload. The
// current selection and typed digits stay put.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	styles.Apply(cfg)
	log.SetDebug(cfg.Settings.Debug)
	candidates := directory.Candidates(cfg.Filter())
	m.field.SetCandidates(candidates)
	m.picker.SetCandidates(candidates)
	m.status.SetText("config reloaded")
}

// waitForReload blocks on the reload channel and turns each signal into a
// freshly loaded config message.
func (m *Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.reloads; !ok {
			return nil
		}
		cfg, err := config.LoadConfigFile(m.configPath)
		if err != nil {
			return messages.ErrorMsg{Err: err}
		}
		return messages.ConfigReloadedMsg{Config: cfg}
	}
}

// emitPendingCmd queues the deferred emission; it runs after the current
// update finishes, strictly behind the synchronous state changes of the
// event that scheduled it.
func emitPendingCmd(p field.Pending) tea.Cmd {
	return func() tea.Msg {
		return messages.EmitPendingMsg{Pending: p}
	}
}

// Imperative control surface, for hosts embedding the widget.

// Focus gives the text field focus.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes focus from the text field.
func (m *Model) Blur() {
	m.input.Blur()
}

// GetCountry returns the current selection.
func (m *Model) GetCountry() types.Country {
	return m.field.Country()
}

// SetCountry behaves like a picker tap on iso2, including the deferred
// emission; unknown codes are a no-op returning nil.
func (m *Model) SetCountry(iso2 string) tea.Cmd {
	pending, ok := m.field.ChooseCountry(iso2)
	if !ok {
		return nil
	}
	m.input.Refresh()
	return emitPendingCmd(pending)
}

// IsValid reports the library's verdict on the currently composed number.
func (m *Model) IsValid() bool {
	return m.field.Valid()
}

// LastEmission returns the most recent (value, iso2) pair, for tests and
// host polling.
func (m *Model) LastEmission() (string, string) {
	return m.lastValue, m.lastISO2
}
