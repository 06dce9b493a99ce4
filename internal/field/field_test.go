package field

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonefield/internal/directory"
	"phonefield/internal/format"
	"phonefield/pkg/types"
)

// recorder collects emissions the way a host application would.
type recorder struct {
	values []types.Emission
}

func (r *recorder) onChange(value, iso2 string) {
	r.values = append(r.values, types.Emission{Value: value, ISO2: iso2})
}

func (r *recorder) last() types.Emission {
	if len(r.values) == 0 {
		return types.Emission{}
	}
	return r.values[len(r.values)-1]
}

func newField(t *testing.T, iso2 string) (*Field, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(nil, iso2, rec.onChange), rec
}

func TestNewDefaults(t *testing.T) {
	f, _ := newField(t, "US")
	assert.Equal(t, "US", f.Country().ISO2)
	assert.Empty(t, f.National())

	// unknown default falls back to the first candidate
	f2 := New(nil, "ZZ", nil)
	assert.Equal(t, directory.All()[0].ISO2, f2.Country().ISO2)
}

func TestInputEmitsUnderSelectedCountry(t *testing.T) {
	f, rec := newField(t, "US")

	for _, text := range []string{"2", "20", "202", "2025", "20255", "202555", "2025550123"} {
		require.True(t, f.Input(text))
	}

	// every emission stays on US until a country change happens
	for _, e := range rec.values {
		assert.Equal(t, "US", e.ISO2)
	}
	assert.Equal(t, "+12025550123", rec.last().Value)
	assert.Equal(t, "(202) 555-0123", f.National())
}

func TestInputSyntacticRejection(t *testing.T) {
	f, rec := newField(t, "US")
	require.True(t, f.Input("202"))
	emitted := len(rec.values)
	national := f.National()

	for _, bad := range []string{"202a", "call me", "202+", "202."} {
		assert.False(t, f.Input(bad), "input %q should be rejected", bad)
	}
	assert.Len(t, rec.values, emitted, "rejected input must not emit")
	assert.Equal(t, national, f.National(), "rejected input must not change state")
}

func TestInputIncompleteEmitsFallback(t *testing.T) {
	f, rec := newField(t, "US")
	require.True(t, f.Input("123"))
	assert.Equal(t, "+1123", rec.last().Value)
	assert.Equal(t, "US", rec.last().ISO2)
}

func TestSetValueRoundTrip(t *testing.T) {
	f, rec := newField(t, "TR")

	f.SetValue("+12025550123")
	assert.Equal(t, "US", f.Country().ISO2, "country inferred from the value")
	assert.Equal(t, "(202) 555-0123", f.National())

	// re-emitting from the displayed text reproduces the canonical value
	require.True(t, f.Input(f.National()))
	assert.Equal(t, "+12025550123", rec.last().Value)
	assert.Equal(t, "US", rec.last().ISO2)
}

func TestSetValueEmptyClears(t *testing.T) {
	f, _ := newField(t, "US")
	require.True(t, f.Input("2025550123"))
	f.SetValue("") // guard is consumed by this observation
	f.SetValue("")
	assert.Empty(t, f.National())
}

func TestSetValueUnparseableShowsRaw(t *testing.T) {
	f, _ := newField(t, "US")
	f.SetValue("no digits here")
	assert.Equal(t, "no digits here", f.National())
	assert.Equal(t, "US", f.Country().ISO2)
}

func TestSetValueKeepsCountryOnLookupMiss(t *testing.T) {
	// candidate list without GB: a +44 value cannot switch the selection
	candidates := directory.Candidates(directory.Filter{Allowed: []string{"US", "CA"}})
	f := New(candidates, "US", nil)

	f.SetValue("+442071838750")
	assert.Equal(t, "US", f.Country().ISO2)
	assert.NotEmpty(t, f.National())
}

func TestGuardConsumesExactlyOneEcho(t *testing.T) {
	var f *Field
	rec := &recorder{}
	f = New(nil, "US", func(value, iso2 string) {
		rec.onChange(value, iso2)
		f.SetValue(value) // synchronous host echo
	})

	require.True(t, f.Input("2025550123"))
	// the echo was swallowed: display text still the national format
	assert.Equal(t, "(202) 555-0123", f.National())

	// the next external update is NOT an echo and reconciles normally
	f.SetValue("+905321234567")
	assert.Equal(t, "TR", f.Country().ISO2)
}

func TestChooseCountryCarriesDigits(t *testing.T) {
	f, rec := newField(t, "US")
	require.True(t, f.Input("2025550123"))

	pending, ok := f.ChooseCountry("GB")
	require.True(t, ok)
	assert.Equal(t, "GB", f.Country().ISO2)
	// GB national formatting prepends the trunk '0'; the typed digit
	// sequence itself survives the switch.
	assert.True(t, strings.HasSuffix(format.Digits(f.National()), "2025550123"))

	// emission is deferred: nothing new yet
	assert.Equal(t, "US", rec.last().ISO2)

	require.True(t, f.EmitPending(pending))
	assert.Equal(t, "GB", rec.last().ISO2)
	assert.True(t, strings.HasPrefix(rec.last().Value, "+44"))
}

func TestChooseCountryLookupMiss(t *testing.T) {
	candidates := directory.Candidates(directory.Filter{Allowed: []string{"US", "CA"}})
	rec := &recorder{}
	f := New(candidates, "US", rec.onChange)

	_, ok := f.ChooseCountry("DE")
	assert.False(t, ok)
	assert.Equal(t, "US", f.Country().ISO2)
	assert.Empty(t, rec.values)
}

func TestStalePendingIsDropped(t *testing.T) {
	f, rec := newField(t, "US")
	require.True(t, f.Input("2025550123"))

	pending, ok := f.ChooseCountry("GB")
	require.True(t, ok)

	// the user types again before the deferred emission fires
	require.True(t, f.Input("20255501234"))
	emitted := len(rec.values)

	assert.False(t, f.EmitPending(pending))
	assert.Len(t, rec.values, emitted, "stale pending must not emit")
}

func TestValid(t *testing.T) {
	f, _ := newField(t, "US")

	require.True(t, f.Input("123"))
	assert.False(t, f.Valid())

	require.True(t, f.Input("2025550123"))
	assert.True(t, f.Valid())

	f.Reset()
	assert.False(t, f.Valid())
}

func TestValue(t *testing.T) {
	f, _ := newField(t, "US")
	require.True(t, f.Input("2025550123"))
	assert.Equal(t, "+12025550123", f.Value())
}

func TestSetCandidates(t *testing.T) {
	f, _ := newField(t, "DE")
	narrowed := directory.Candidates(directory.Filter{Allowed: []string{"US", "CA"}})
	f.SetCandidates(narrowed)

	// the selection survives even though DE is no longer listed
	assert.Equal(t, "DE", f.Country().ISO2)

	// but new choices come from the narrowed list
	_, ok := f.ChooseCountry("GB")
	assert.False(t, ok)
	_, ok = f.ChooseCountry("CA")
	assert.True(t, ok)
}
