package scope

import "strconv"

// NameGenerator hands out unique names by appending a per-prefix counter.
//
// The first request for a free prefix returns the prefix itself; later
// requests return "prefix1", "prefix2", and so on. Reserved names count
// as already taken. NameGenerator is not safe for concurrent use.
type NameGenerator struct {
	counters map[string]int
}

// NewNameGenerator returns a generator with the given names reserved.
func NewNameGenerator(reserved ...string) *NameGenerator {
	g := &NameGenerator{counters: make(map[string]int)}
	for _, name := range reserved {
		g.counters[name] = 1
	}
	return g
}

// Fresh returns a name derived from prefix that has not been handed out
// before by this generator.
func (g *NameGenerator) Fresh(prefix string) string {
	n, taken := g.counters[prefix]
	if !taken {
		g.counters[prefix] = 1
		return prefix
	}
	for {
		candidate := prefix + strconv.Itoa(n)
		n++
		if _, clash := g.counters[candidate]; !clash {
			g.counters[prefix] = n
			g.counters[candidate] = 1
			return candidate
		}
	}
}
