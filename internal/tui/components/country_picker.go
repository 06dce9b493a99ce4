package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"phonefield/internal/directory"
	"phonefield/internal/tui/messages"
	"phonefield/internal/tui/styles"
	"phonefield/pkg/types"
)

const pickerHeight = 8

// CountryPicker is the modal list half of the widget. The search query
// lives here and only here; it is wiped on every selection and on close.
type CountryPicker struct {
	search     textinput.Model
	candidates []types.Country
	filtered   []types.Country
	cursor     int
	open       bool
}

func NewCountryPicker() *CountryPicker {
	ti := textinput.New()
	ti.Placeholder = "search name, code or prefix"
	ti.Prompt = "/ "
	ti.Width = 32
	return &CountryPicker{
		search: ti,
	}
}

func (cp *CountryPicker) Init() tea.Cmd {
	return nil
}

// Open shows the picker over the candidate list with the cursor on the
// currently selected country.
func (cp *CountryPicker) Open(candidates []types.Country, selectedISO2 string) tea.Cmd {
	cp.candidates = candidates
	cp.search.SetValue("")
	cp.filtered = candidates
	cp.cursor = 0
	for i, c := range candidates {
		if c.ISO2 == selectedISO2 {
			cp.cursor = i
			break
		}
	}
	cp.open = true
	return cp.search.Focus()
}

// Close dismisses the picker and resets the search query.
func (cp *CountryPicker) Close() {
	cp.open = false
	cp.search.SetValue("")
	cp.search.Blur()
	cp.filtered = cp.candidates
	cp.cursor = 0
}

func (cp *CountryPicker) IsOpen() bool {
	return cp.open
}

// Query returns the live search text.
func (cp *CountryPicker) Query() string {
	return cp.search.Value()
}

// SetCandidates swaps the backing list, used when the config filter
// changes while the picker is closed.
func (cp *CountryPicker) SetCandidates(candidates []types.Country) {
	cp.candidates = candidates
	cp.filtered = directory.Search(candidates, cp.search.Value())
	cp.clampCursor()
}

// Highlighted returns the entry under the cursor.
func (cp *CountryPicker) Highlighted() (types.Country, bool) {
	if cp.cursor < 0 || cp.cursor >= len(cp.filtered) {
		return types.Country{}, false
	}
	return cp.filtered[cp.cursor], true
}

func (cp *CountryPicker) Update(msg tea.Msg) tea.Cmd {
	if !cp.open {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "ctrl+p":
			cp.MoveCursor(-1)
			return nil
		case "down", "ctrl+n":
			cp.MoveCursor(1)
			return nil
		case "home":
			cp.cursor = 0
			return nil
		case "end":
			cp.cursor = len(cp.filtered) - 1
			cp.clampCursor()
			return nil
		case "enter":
			return cp.choose()
		}
	}

	var cmd tea.Cmd
	cp.search, cmd = cp.search.Update(msg)
	cp.filtered = directory.Search(cp.candidates, cp.search.Value())
	cp.clampCursor()
	return cmd
}

// choose confirms the highlighted entry. The selection itself happens in
// the model when the message arrives; the picker only reports the tap.
func (cp *CountryPicker) choose() tea.Cmd {
	c, ok := cp.Highlighted()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return messages.CountryChosenMsg{ISO2: c.ISO2}
	}
}

func (cp *CountryPicker) MoveCursor(delta int) {
	newPos := cp.cursor + delta
	if newPos >= 0 && newPos < len(cp.filtered) {
		cp.cursor = newPos
	}
}

func (cp *CountryPicker) clampCursor() {
	if cp.cursor >= len(cp.filtered) {
		cp.cursor = len(cp.filtered) - 1
	}
	if cp.cursor < 0 {
		cp.cursor = 0
	}
}

func (cp *CountryPicker) View() string {
	var s strings.Builder

	s.WriteString(cp.search.View() + "\n\n")

	if len(cp.filtered) == 0 {
		s.WriteString(styles.Theme.Help.Render("no matching countries") + "\n")
		return styles.Theme.Overlay.Render(s.String())
	}

	// Window the list around the cursor
	start := 0
	if cp.cursor >= pickerHeight {
		start = cp.cursor - pickerHeight + 1
	}
	end := start + pickerHeight
	if end > len(cp.filtered) {
		end = len(cp.filtered)
	}

	for i := start; i < end; i++ {
		c := cp.filtered[i]
		cursor := " "
		style := styles.Theme.Entry
		if i == cp.cursor {
			cursor = ">"
			style = styles.Theme.Selected
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(c.Label())))
	}
	if end < len(cp.filtered) {
		s.WriteString(styles.Theme.Help.Render(fmt.Sprintf("  … %d more", len(cp.filtered)-end)) + "\n")
	}

	return styles.Theme.Overlay.Render(s.String())
}
