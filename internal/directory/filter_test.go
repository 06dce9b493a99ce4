package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesAllowed(t *testing.T) {
	got := Candidates(Filter{Allowed: []string{"US", "CA"}})
	// directory order: CA before US
	require.Equal(t, []string{"CA", "US"}, iso2s(got))
}

func TestCandidatesExcluded(t *testing.T) {
	got := Candidates(Filter{Excluded: []string{"US"}})
	assert.Len(t, got, len(All())-1)
	assert.NotContains(t, iso2s(got), "US")
}

func TestCandidatesPreferred(t *testing.T) {
	got := Candidates(Filter{Preferred: []string{"DE", "US"}})
	require.True(t, len(got) >= 2)
	assert.Equal(t, "DE", got[0].ISO2)
	assert.Equal(t, "US", got[1].ISO2)
	assert.Len(t, got, len(All()))

	// the remainder keeps directory order
	rest := iso2s(got[2:])
	var fromAll []string
	for _, c := range All() {
		if c.ISO2 != "DE" && c.ISO2 != "US" {
			fromAll = append(fromAll, c.ISO2)
		}
	}
	assert.Equal(t, fromAll, rest)
}

func TestCandidatesCombined(t *testing.T) {
	got := Candidates(Filter{
		Allowed:   []string{"US", "CA", "MX", "DE"},
		Excluded:  []string{"MX"},
		Preferred: []string{"DE"},
	})
	assert.Equal(t, []string{"DE", "CA", "US"}, iso2s(got))
}

func TestCandidatesGlobs(t *testing.T) {
	got := Candidates(Filter{Allowed: []string{"G*"}})
	codes := iso2s(got)
	require.NotEmpty(t, codes)
	for _, code := range codes {
		assert.Equal(t, byte('G'), code[0])
	}
	assert.Contains(t, codes, "GB")
	assert.Contains(t, codes, "GR")
}

func TestCandidatesNoDuplicates(t *testing.T) {
	// a preferred code listed twice must not double up
	got := Candidates(Filter{Preferred: []string{"US", "US", "DE"}})
	seen := make(map[string]int)
	for _, c := range got {
		seen[c.ISO2]++
	}
	for code, n := range seen {
		assert.Equal(t, 1, n, "duplicate %s", code)
	}
	assert.Equal(t, "US", got[0].ISO2)
	assert.Equal(t, "DE", got[1].ISO2)
}

func TestCandidatesUnknownPreferredIgnored(t *testing.T) {
	got := Candidates(Filter{Preferred: []string{"ZZ", "DE"}})
	assert.Equal(t, "DE", got[0].ISO2)
	assert.Len(t, got, len(All()))
}

func TestCandidatesMemoized(t *testing.T) {
	f := Filter{Allowed: []string{"US", "CA"}, Preferred: []string{"US"}}
	a := Candidates(f)
	b := Candidates(f)
	require.NotEmpty(t, a)
	assert.Same(t, &a[0], &b[0], "equal filters should reuse the cached derivation")

	// a different filter recomputes
	c := Candidates(Filter{Allowed: []string{"US"}})
	assert.Equal(t, []string{"US"}, iso2s(c))
}

func TestCandidatesZeroFilter(t *testing.T) {
	got := Candidates(Filter{})
	assert.Equal(t, iso2s(All()), iso2s(got))
}
