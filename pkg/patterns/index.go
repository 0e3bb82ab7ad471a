package patterns

// Index groups patterns by equivalence key under a policy
type Index struct {
	policy Policy
	byKey  map[string][]Pattern
	size   int
}

// NewIndex creates an empty index
func NewIndex(policy Policy) *Index {
	return &Index{
		policy: policy,
		byKey:  make(map[string][]Pattern),
	}
}

// Add records a pattern. Patterns with an empty base are ignored.
func (ix *Index) Add(p Pattern) {
	if p.Base == "" {
		return
	}
	key := ix.policy.Key(p)
	ix.byKey[key] = append(ix.byKey[key], p)
	ix.size++
}

// Covered reports whether any indexed pattern covers want
func (ix *Index) Covered(want Pattern) bool {
	for _, have := range ix.byKey[ix.policy.Key(want)] {
		if ix.policy.Covers(have, want) {
			return true
		}
	}
	return false
}

// Len returns the number of indexed patterns
func (ix *Index) Len() int {
	return ix.size
}
