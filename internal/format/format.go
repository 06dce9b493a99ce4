// Package format wraps github.com/nyaruka/phonenumbers behind the small
// surface the input field needs: incremental national formatting, strict
// validation, canonical (E.164) rendering, and region inference. Nothing
// here returns an error; parse failures degrade to passthrough or
// best-effort values, because a text field must stay usable on malformed
// intermediate input.
package format

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"phonefield/pkg/types"
)

// Numbers shorter than this are displayed verbatim; the library has no
// useful grouping for them anyway.
const minFormatDigits = 3

// Digits strips text down to its ASCII digits.
func Digits(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanForEmit strips everything except digits and '+', the characters that
// survive into the emission step.
func CleanForEmit(text string) string {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Allowed reports whether typed text passes the syntactic input filter:
// digits, space, hyphen, and parentheses only. This is not a validity
// check; it just keeps letters and stray symbols out of the field.
func Allowed(text string) bool {
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return true
}

// AsTyped renders the national display text for whatever has been typed so
// far under the given region. Inputs the library cannot parse (or with too
// few digits to group) pass through as bare digits.
func AsTyped(iso2, text string) string {
	digits := Digits(text)
	if len(digits) < minFormatDigits {
		return digits
	}
	raw := digits
	if strings.HasPrefix(strings.TrimSpace(text), "+") {
		raw = "+" + digits
	}
	num, err := phonenumbers.Parse(raw, iso2)
	if err != nil {
		return digits
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// E164 returns the canonical form of digits under a region when the library
// reports a complete, valid number. ok is false otherwise.
func E164(digits, iso2 string) (string, bool) {
	trimmed := strings.TrimSpace(digits)
	if trimmed == "" {
		return "", false
	}
	num, err := phonenumbers.Parse(trimmed, iso2)
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

// Canonical is the emission value for cleaned digits under a country:
// validated E.164 when possible, otherwise the best-effort concatenation of
// '+', the calling code, and the digits. It never fails.
func Canonical(digits string, c types.Country) string {
	if v, ok := E164(digits, c.ISO2); ok {
		return v
	}
	return "+" + c.CallingCode + Digits(digits)
}

// Valid is the strict verdict for digits under a region; any parse failure
// is reported as invalid rather than an error.
func Valid(digits, iso2 string) bool {
	num, err := phonenumbers.Parse(strings.TrimSpace(digits), iso2)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// Region infers the ISO2 region from a canonical ('+'-prefixed) value.
// Returns "" when nothing can be inferred.
func Region(value string) string {
	num, err := phonenumbers.Parse(strings.TrimSpace(value), "")
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(num)
}

// Resolve reconciles an externally supplied value against a currently
// selected region. It first parses scoped to iso2; if that fails or the
// result is invalid it retries unscoped, inferring the region from the
// value itself. The returned region is where the value resolved
// (possibly iso2 unchanged); ok is false only when every attempt failed.
func Resolve(value, iso2 string) (string, bool) {
	trimmed := strings.TrimSpace(value)

	num, err := phonenumbers.Parse(trimmed, iso2)
	if err == nil && phonenumbers.IsValidNumber(num) {
		if r := phonenumbers.GetRegionCodeForNumber(num); r != "" {
			return r, true
		}
		return iso2, true
	}

	if unscoped, err2 := phonenumbers.Parse(trimmed, ""); err2 == nil {
		if r := phonenumbers.GetRegionCodeForNumber(unscoped); r != "" {
			return r, true
		}
		return iso2, true
	}

	// Scoped parse succeeded but the number is incomplete; still usable
	// for display formatting.
	if err == nil {
		return iso2, true
	}
	return "", false
}
