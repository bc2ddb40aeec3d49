package leads

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// leadSet accumulates profile identifiers with set semantics while
// remembering insertion order, so truncation to the target count is
// deterministic (collection order wins).
type leadSet struct {
	seen  mapset.Set[string]
	order []string
}

func newLeadSet() *leadSet {
	return &leadSet{seen: mapset.NewThreadUnsafeSet[string]()}
}

// Add inserts an identifier, reporting whether it was new. Duplicates
// across pages are expected and silently absorbed.
func (s *leadSet) Add(id string) bool {
	if !s.seen.Add(id) {
		return false
	}
	s.order = append(s.order, id)
	return true
}

func (s *leadSet) Len() int {
	return len(s.order)
}

// Take returns at most n identifiers in collection order.
func (s *leadSet) Take(n int) []string {
	if n >= len(s.order) {
		out := make([]string, len(s.order))
		copy(out, s.order)
		return out
	}
	out := make([]string, n)
	copy(out, s.order[:n])
	return out
}
