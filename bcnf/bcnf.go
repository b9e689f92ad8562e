package bcnf

import (
	"sort"

	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/closure"
	"github.com/relnorm/normalize/fd"
	"github.com/relnorm/normalize/subsets"
)

// Decompose returns a lossless-join decomposition of (universe, fds) into
// BCNF fragments.
func Decompose(universe attrset.AttributeSet, fds []fd.FD) []attrset.AttributeSet {
	if universe.IsEmpty() {
		return nil
	}
	if len(fds) == 0 {
		return []attrset.AttributeSet{universe.Clone()}
	}

	worklist := []attrset.AttributeSet{universe.Clone()}
	visited := make(map[string]bool)
	var output []attrset.AttributeSet

	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]

		key := s.Canonical()
		if visited[key] {
			continue
		}
		visited[key] = true

		s1, s2, violated := splitOnViolation(s, fds)
		if !violated {
			output = append(output, s)

			continue
		}
		if !s1.IsEmpty() {
			worklist = append(worklist, s1)
		}
		if !s2.IsEmpty() {
			worklist = append(worklist, s2)
		}
	}

	sort.Slice(output, func(i, j int) bool {
		if output[i].Size() != output[j].Size() {
			return output[i].Size() > output[j].Size()
		}

		return output[i].Canonical() < output[j].Canonical()
	})

	return output
}

// splitOnViolation scans fds for the first BCNF-violating FD within s and,
// if none is found, the subsets of s for a violating implied FD; if either
// is found, it returns the two fragments it splits s into.
func splitOnViolation(s attrset.AttributeSet, fds []fd.FD) (s1, s2 attrset.AttributeSet, violated bool) {
	for _, f := range fds {
		if !f.LHS.IsSubsetOf(s) || !f.RHS.IsSubsetOf(s) {
			continue
		}
		if f.RHS.IsSubsetOf(f.LHS) {
			continue // trivial within s
		}

		projected := closure.Of(f.LHS, fds).Intersect(s)
		if projected.Equals(s) {
			continue // LHS is a superkey of s, not a violation
		}

		s1 = f.LHS.Union(f.RHS).Intersect(s)
		s2 = f.LHS.Union(s.Difference(f.RHS))

		return s1, s2, true
	}

	// An FD implied within s but not listed in fds can also violate BCNF:
	// any subset x whose projected closure is neither x nor s splits s.
	_ = subsets.Each(s, func(x attrset.AttributeSet) bool {
		c := closure.Of(x, fds).Intersect(s)
		if c.Equals(x) || c.Equals(s) {
			return true
		}
		s1, s2, violated = c, x.Union(s.Difference(c)), true

		return false
	})

	return s1, s2, violated
}
