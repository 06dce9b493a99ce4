package types

import "fmt"

// Country is a single entry of the country directory.
type Country struct {
	ISO2        string `json:"iso2" yaml:"iso2"`                 // two-letter code, unique key
	Name        string `json:"name" yaml:"name"`                 // display name
	CallingCode string `json:"calling_code" yaml:"calling_code"` // dialing prefix without '+'
	Flag        string `json:"flag" yaml:"flag"`                 // emoji flag
}

// Label renders the country the way pickers display it, e.g. "🇺🇸 United States (+1)".
func (c Country) Label() string {
	return fmt.Sprintf("%s %s (+%s)", c.Flag, c.Name, c.CallingCode)
}

// Zero reports whether the record is the empty value.
func (c Country) Zero() bool {
	return c.ISO2 == ""
}

// FlagEmoji builds the emoji flag for a two-letter country code by mapping
// each letter onto its regional indicator symbol. Returns "" for anything
// that is not exactly two ASCII letters.
func FlagEmoji(iso2 string) string {
	if len(iso2) != 2 {
		return ""
	}
	out := make([]rune, 0, 2)
	for _, r := range iso2 {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, 0x1F1E6+r-'A')
		case r >= 'a' && r <= 'z':
			out = append(out, 0x1F1E6+r-'a')
		default:
			return ""
		}
	}
	return string(out)
}

// Emission is the two-part result handed to the host application whenever
// the field produces a new canonical value. It is always populated; when the
// number is incomplete the Value is a best-effort concatenation rather than
// a validated E.164 string.
type Emission struct {
	Value string // canonical (or best-effort) phone value, '+' prefixed
	ISO2  string // country the value was composed under
}
