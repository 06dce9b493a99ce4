package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"phonefield/internal/field"
	"phonefield/internal/tui/styles"
)

// PhoneInput is the text-field half of the widget: a bubbles textinput
// whose content is kept in lockstep with the state machine's national
// display text. Raw edits flow into field.Input; rejected edits are rolled
// back so the buffer never drifts from the machine's state.
type PhoneInput struct {
	input textinput.Model
	field *field.Field
}

func NewPhoneInput(f *field.Field) *PhoneInput {
	ti := textinput.New()
	ti.Placeholder = "phone number"
	ti.Prompt = ""
	ti.Width = 24
	return &PhoneInput{
		input: ti,
		field: f,
	}
}

func (p *PhoneInput) Init() tea.Cmd {
	return nil
}

// Focus delegates to the text field.
func (p *PhoneInput) Focus() tea.Cmd {
	return p.input.Focus()
}

// Blur delegates to the text field.
func (p *PhoneInput) Blur() {
	p.input.Blur()
}

func (p *PhoneInput) Focused() bool {
	return p.input.Focused()
}

// Refresh re-syncs the visible buffer from the state machine, e.g. after a
// country switch reformatted the digits.
func (p *PhoneInput) Refresh() {
	p.input.SetValue(p.field.National())
	p.input.CursorEnd()
}

func (p *PhoneInput) Update(msg tea.Msg) tea.Cmd {
	prev := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	next := p.input.Value()
	if next == prev {
		return cmd
	}
	if !p.field.Input(next) {
		// Syntactic rejection: put the old text back, nothing was emitted.
		p.input.SetValue(prev)
		p.input.CursorEnd()
		return cmd
	}
	p.Refresh()
	return cmd
}

func (p *PhoneInput) View() string {
	var s strings.Builder

	c := p.field.Country()
	s.WriteString(styles.Theme.Prefix.Render(c.Flag + " +" + c.CallingCode))
	s.WriteString(" ")
	s.WriteString(p.input.View())
	s.WriteString(" ")
	if p.field.Valid() {
		s.WriteString(styles.Theme.Valid.Render("✓"))
	} else {
		s.WriteString(styles.Theme.Invalid.Render("…"))
	}

	return s.String()
}
