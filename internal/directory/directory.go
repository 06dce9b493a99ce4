// Package directory holds the static country dataset and the pure
// derivations over it: allow/exclude/prefer filtering and picker search.
package directory

import (
	"strconv"
	"strings"
	"sync"

	"github.com/nyaruka/phonenumbers"

	"phonefield/pkg/types"
)

var (
	buildOnce sync.Once
	all       []types.Country
	byISO2    map[string]types.Country
)

func build() {
	all = make([]types.Country, 0, len(nameTable))
	byISO2 = make(map[string]types.Country, len(nameTable))
	for _, row := range nameTable {
		cc := phonenumbers.GetCountryCodeForRegion(row.iso2)
		if cc == 0 {
			continue
		}
		c := types.Country{
			ISO2:        row.iso2,
			Name:        row.name,
			CallingCode: strconv.Itoa(cc),
			Flag:        types.FlagEmoji(row.iso2),
		}
		all = append(all, c)
		byISO2[row.iso2] = c
	}
}

// All returns the full directory in its canonical order.
// The returned slice is shared; callers must not mutate it.
func All() []types.Country {
	buildOnce.Do(build)
	return all
}

// Get looks a country up by ISO2 code, case-insensitively.
func Get(iso2 string) (types.Country, bool) {
	buildOnce.Do(build)
	c, ok := byISO2[strings.ToUpper(iso2)]
	return c, ok
}

// Lookup finds iso2 within a candidate list, case-insensitively.
// A miss is not an error; ok is false.
func Lookup(list []types.Country, iso2 string) (types.Country, bool) {
	want := strings.ToUpper(iso2)
	for _, c := range list {
		if c.ISO2 == want {
			return c, true
		}
	}
	return types.Country{}, false
}

// Search filters a candidate list by a picker query. Matching is
// case-insensitive against the display name, the calling code (substring,
// with or without a leading '+'), and the ISO2 code.
func Search(list []types.Country, query string) []types.Country {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	q = strings.TrimPrefix(q, "+")
	out := make([]types.Country, 0, len(list))
	for _, c := range list {
		switch {
		case strings.Contains(strings.ToLower(c.Name), q):
			out = append(out, c)
		case strings.Contains(c.CallingCode, q):
			out = append(out, c)
		case strings.Contains(strings.ToLower(c.ISO2), q):
			out = append(out, c)
		}
	}
	return out
}
