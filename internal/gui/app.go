// Package gui is the desktop rendition of the phone input. It is
// presentation only: every edit and country change is routed through the
// same field state machine the TUI uses.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"phonefield/internal/config"
	"phonefield/internal/directory"
	"phonefield/internal/field"
	"phonefield/pkg/types"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config

	field      *field.Field
	candidates []types.Country

	entry         *widget.Entry
	countrySelect *widget.Select
	validityLabel *widget.Label
	emittedLabel  *widget.Label

	// Fyne calls OnChanged for programmatic SetText too; this flag keeps
	// our own rewrites from looping back through the state machine.
	syncing bool
}

// NewApp creates a new GUI application
func NewApp(cfg *config.Config) *App {
	a := &App{
		fyneApp: app.NewWithID("io.github.phonefield"),
		cfg:     cfg,
	}
	a.mainWindow = a.fyneApp.NewWindow("phonefield")

	a.candidates = directory.Candidates(cfg.Filter())
	a.field = field.New(a.candidates, cfg.DefaultCountry, func(value, iso2 string) {
		a.emittedLabel.SetText(value + " (" + iso2 + ")")
		a.field.SetValue(value) // host echo, consumed by the guard
	})

	a.buildUI()
	return a
}

func (a *App) buildUI() {
	labels := make([]string, len(a.candidates))
	for i, c := range a.candidates {
		labels[i] = c.Label()
	}

	a.emittedLabel = widget.NewLabel("")
	a.validityLabel = widget.NewLabel("incomplete")

	a.entry = widget.NewEntry()
	a.entry.SetPlaceHolder("phone number")
	a.entry.OnChanged = func(text string) {
		if a.syncing {
			return
		}
		if !a.field.Input(text) {
			// rejected: restore the machine's text
			a.setEntryText(a.field.National())
			return
		}
		a.setEntryText(a.field.National())
		a.refreshValidity()
	}

	a.countrySelect = widget.NewSelect(labels, func(label string) {
		for i, l := range labels {
			if l == label {
				a.chooseCountry(a.candidates[i].ISO2)
				return
			}
		}
	})
	if cur := a.field.Country(); !cur.Zero() {
		a.countrySelect.SetSelected(cur.Label())
	}

	form := widget.NewCard("Phone number", "", container.NewVBox(
		a.countrySelect,
		a.entry,
		a.validityLabel,
		widget.NewSeparator(),
		widget.NewLabel("Emitted value:"),
		a.emittedLabel,
	))

	a.mainWindow.SetContent(container.NewPadded(form))
	a.mainWindow.Resize(fyne.NewSize(420, 320))
}

func (a *App) chooseCountry(iso2 string) {
	pending, ok := a.field.ChooseCountry(iso2)
	if !ok {
		return
	}
	a.setEntryText(a.field.National())
	a.refreshValidity()
	// Fyne invokes Select callbacks after its own widget state has
	// settled, so the emission can be redeemed inline; the strict
	// next-tick deferral is for hosts with re-entrant update cycles.
	a.field.EmitPending(pending)
}

func (a *App) setEntryText(text string) {
	a.syncing = true
	a.entry.SetText(text)
	a.syncing = false
}

func (a *App) refreshValidity() {
	if a.field.Valid() {
		a.validityLabel.SetText("valid")
	} else {
		a.validityLabel.SetText("incomplete")
	}
}

// Run shows the window and enters the event loop.
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}
