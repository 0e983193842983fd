package slug

import "sort"

// Collision groups distinct source names that derive the same identifier.
type Collision struct {
	Slug    string
	Sources []string
}

// Collisions derives an identifier for every source with derive and reports
// each identifier produced by more than one distinct source. Results are
// sorted by identifier so error messages are stable.
func Collisions(sources []string, derive func(string) string) []Collision {
	bySlug := make(map[string][]string)
	seen := make(map[string]bool)
	for _, src := range sources {
		if seen[src] {
			continue
		}
		seen[src] = true
		s := derive(src)
		bySlug[s] = append(bySlug[s], src)
	}
	var out []Collision
	for s, srcs := range bySlug {
		if len(srcs) > 1 {
			sort.Strings(srcs)
			out = append(out, Collision{Slug: s, Sources: srcs})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
