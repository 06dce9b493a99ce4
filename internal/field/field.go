// Package field implements the input-normalization and
// country-synchronization state machine behind the phone input widget.
// It owns the selected country, the national display text, and the
// reentrancy guard that keeps the field's own emissions from being
// re-parsed as external edits. Rendering and raw key events live elsewhere;
// this package only sees sanitized text and "country chosen" events.
package field

import (
	"phonefield/internal/directory"
	"phonefield/internal/format"
	"phonefield/internal/log"
	"phonefield/pkg/types"
)

// OnChange receives every canonical value the field produces, together with
// the ISO2 code it was composed under.
type OnChange func(value, iso2 string)

// Pending is a deferred emission token returned by ChooseCountry. It is
// redeemed on the next event-loop turn via EmitPending; if the field's
// state moved on in the meantime (another keystroke, another country
// change) the token is stale and redeeming it does nothing.
type Pending struct {
	seq    uint64
	digits string
}

// Field is a single widget instance's state. It is not safe for concurrent
// use; the surrounding event loop is single-threaded.
type Field struct {
	candidates []types.Country
	country    types.Country
	national   string

	// guard marks the next external value update as an echo of our own
	// emission. Set immediately before emitting, consumed by exactly one
	// SetValue observation.
	guard bool

	// seq invalidates pending deferred emissions whenever state advances.
	seq uint64

	onChange OnChange
}

// New creates a field over a candidate list, starting at defaultISO2. When
// the code is absent from the list the first candidate wins; an empty list
// falls back to the full directory.
func New(candidates []types.Country, defaultISO2 string, onChange OnChange) *Field {
	if len(candidates) == 0 {
		candidates = directory.All()
	}
	country, ok := directory.Lookup(candidates, defaultISO2)
	if !ok {
		country = candidates[0]
		if defaultISO2 != "" {
			log.Debugf("default country %q not in candidate list, using %s", defaultISO2, country.ISO2)
		}
	}
	return &Field{
		candidates: candidates,
		country:    country,
		onChange:   onChange,
	}
}

// Country returns the current selection.
func (f *Field) Country() types.Country {
	return f.country
}

// National returns the text the input field displays.
func (f *Field) National() string {
	return f.national
}

// Candidates returns the current candidate list.
func (f *Field) Candidates() []types.Country {
	return f.candidates
}

// SetCandidates swaps the candidate list, e.g. after a config reload. The
// current selection is kept even when it is no longer listed; the next
// explicit choice moves off it.
func (f *Field) SetCandidates(candidates []types.Country) {
	if len(candidates) == 0 {
		candidates = directory.All()
	}
	f.candidates = candidates
}

// Reset clears the typed number without touching the selection.
func (f *Field) Reset() {
	f.national = ""
	f.seq++
}

// SetValue reconciles an externally supplied canonical value. An update
// caused by the field's own emission consumes the guard and is otherwise
// ignored. All parse failures are absorbed: the worst case is the raw
// value displayed verbatim.
func (f *Field) SetValue(value string) {
	if f.guard {
		f.guard = false
		return
	}
	f.seq++
	if value == "" {
		f.national = ""
		return
	}

	region, ok := format.Resolve(value, f.country.ISO2)
	if !ok {
		f.national = value
		return
	}
	if region != f.country.ISO2 {
		if c, found := directory.Lookup(f.candidates, region); found {
			f.country = c
		}
	}
	f.national = format.AsTyped(f.country.ISO2, value)
}

// Input handles a keystroke-level text change. Text containing anything
// outside digits, space, hyphen, and parentheses is rejected outright:
// no state change, no emission, and the return value is false so the
// caller can keep its previous buffer. Accepted text is reformatted under
// the selected country and emitted synchronously.
func (f *Field) Input(text string) bool {
	if !format.Allowed(text) {
		return false
	}
	f.seq++
	f.national = format.AsTyped(f.country.ISO2, text)
	f.emit(format.CleanForEmit(text), f.country)
	return true
}

// ChooseCountry switches the selection to iso2, carrying the typed digits
// over and reformatting them under the new country. The lookup is against
// the current candidate list; a miss is a no-op (ok=false). The switch is
// synchronous but the emission is not: the returned Pending must be
// redeemed with EmitPending on the next event-loop turn, so observers are
// not mutated while the update that triggered the switch is still being
// processed.
func (f *Field) ChooseCountry(iso2 string) (Pending, bool) {
	c, ok := directory.Lookup(f.candidates, iso2)
	if !ok {
		log.Debugf("country %q not in candidate list", iso2)
		return Pending{}, false
	}
	digits := format.Digits(f.national)
	f.country = c
	f.national = format.AsTyped(c.ISO2, digits)
	f.seq++
	return Pending{seq: f.seq, digits: digits}, true
}

// EmitPending redeems a deferred emission. Stale tokens (anything emitted,
// typed, or chosen since) are dropped, so a deferred emission never beats a
// rapid subsequent keystroke.
func (f *Field) EmitPending(p Pending) bool {
	if p.seq != f.seq {
		log.Debugf("dropping stale deferred emission (seq %d, field at %d)", p.seq, f.seq)
		return false
	}
	f.emit(p.digits, f.country)
	return true
}

// Valid recomposes the current number under the selected country and
// returns the library's strict verdict. Parse failures are false, never
// errors.
func (f *Field) Valid() bool {
	digits := format.Digits(f.national)
	if digits == "" {
		return false
	}
	return format.Valid("+"+f.country.CallingCode+digits, f.country.ISO2)
}

// Value returns the canonical form of the current state, the same value an
// emission would carry.
func (f *Field) Value() string {
	return format.Canonical(format.Digits(f.national), f.country)
}

// emit produces the (value, iso2) pair and raises the guard so the
// resulting external update is recognized as an echo.
func (f *Field) emit(cleaned string, c types.Country) {
	if f.onChange == nil {
		return
	}
	value := format.Canonical(cleaned, c)
	f.guard = true
	f.onChange(value, c.ISO2)
}
