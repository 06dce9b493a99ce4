package directory

import (
	"strings"
	"sync"

	"github.com/gobwas/glob"

	"phonefield/internal/log"
	"phonefield/pkg/types"
)

// Filter narrows and reorders the directory. Allowed and Excluded entries
// may be glob patterns over ISO2 codes (e.g. "G*"); Preferred entries are
// exact codes whose list position decides their rank at the front.
type Filter struct {
	Allowed   []string
	Excluded  []string
	Preferred []string
}

// Zero reports whether the filter changes nothing.
func (f Filter) Zero() bool {
	return len(f.Allowed) == 0 && len(f.Excluded) == 0 && len(f.Preferred) == 0
}

func (f Filter) key() string {
	return strings.Join(f.Allowed, ",") + "|" +
		strings.Join(f.Excluded, ",") + "|" +
		strings.Join(f.Preferred, ",")
}

// Single-entry memo: the widget recomputes only when its three inputs
// change, so caching the last derivation is enough.
var (
	memoMu  sync.Mutex
	memoKey string
	memoVal []types.Country
	memoSet bool
)

// Candidates derives the ordered candidate list for a filter:
// allowed kept, excluded removed, preferred moved to the front in
// preference order, the rest trailing in directory order. The result never
// contains duplicate ISO2 codes. The slice is shared; don't mutate it.
func Candidates(f Filter) []types.Country {
	memoMu.Lock()
	defer memoMu.Unlock()

	k := f.key()
	if memoSet && k == memoKey {
		return memoVal
	}

	memoKey = k
	memoVal = derive(f)
	memoSet = true
	return memoVal
}

func derive(f Filter) []types.Country {
	list := All()

	if len(f.Allowed) > 0 {
		list = matchCodes(list, f.Allowed)
	}
	if len(f.Excluded) > 0 {
		excluded := make(map[string]bool)
		for _, c := range matchCodes(list, f.Excluded) {
			excluded[c.ISO2] = true
		}
		kept := make([]types.Country, 0, len(list))
		for _, c := range list {
			if !excluded[c.ISO2] {
				kept = append(kept, c)
			}
		}
		list = kept
	}
	if len(f.Preferred) == 0 {
		return list
	}

	front := make([]types.Country, 0, len(f.Preferred))
	pulled := make(map[string]bool)
	for _, code := range f.Preferred {
		if c, ok := Lookup(list, code); ok && !pulled[c.ISO2] {
			front = append(front, c)
			pulled[c.ISO2] = true
		}
	}
	for _, c := range list {
		if !pulled[c.ISO2] {
			front = append(front, c)
		}
	}
	return front
}

// matchCodes keeps the entries of list whose ISO2 matches any of the
// patterns. Plain codes are compared directly; anything with glob
// metacharacters is compiled, and a pattern that fails to compile is
// treated as a literal.
func matchCodes(list []types.Country, patterns []string) []types.Country {
	exact := make(map[string]bool)
	var globs []glob.Glob
	for _, p := range patterns {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !strings.ContainsAny(p, "*?[{") {
			exact[p] = true
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			log.Warnf("bad country pattern %q: %v", p, err)
			exact[p] = true
			continue
		}
		globs = append(globs, g)
	}

	out := make([]types.Country, 0, len(list))
	for _, c := range list {
		if exact[c.ISO2] {
			out = append(out, c)
			continue
		}
		for _, g := range globs {
			if g.Match(c.ISO2) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
