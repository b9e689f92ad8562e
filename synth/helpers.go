package synth

import (
	"sort"

	"github.com/relnorm/normalize/attrset"
)

// dedupFragments removes duplicate fragments by canonical serialization,
// preserving first-seen order.
func dedupFragments(frags []attrset.AttributeSet) []attrset.AttributeSet {
	seen := make(map[string]bool, len(frags))
	out := make([]attrset.AttributeSet, 0, len(frags))
	for _, f := range frags {
		c := f.Canonical()
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, f)
	}

	return out
}

// eliminateSubsets drops any fragment that is a (necessarily proper, since
// frags is already deduplicated) subset of another fragment.
func eliminateSubsets(frags []attrset.AttributeSet) []attrset.AttributeSet {
	out := make([]attrset.AttributeSet, 0, len(frags))
	for i, f := range frags {
		subsumed := false
		for j, g := range frags {
			if i == j {
				continue
			}
			if f.IsSubsetOf(g) {
				subsumed = true

				break
			}
		}
		if !subsumed {
			out = append(out, f)
		}
	}

	return out
}

// sortFragments orders fragments by size descending, then canonical
// serialization ascending. Any deterministic order is acceptable per
// spec.md §4.6; the tests do not depend on it.
func sortFragments(frags []attrset.AttributeSet) {
	sort.Slice(frags, func(i, j int) bool {
		if frags[i].Size() != frags[j].Size() {
			return frags[i].Size() > frags[j].Size()
		}

		return frags[i].Canonical() < frags[j].Canonical()
	})
}

// finalize dedups, prunes subset-redundant fragments, and sorts.
func finalize(frags []attrset.AttributeSet) []attrset.AttributeSet {
	frags = dedupFragments(frags)
	frags = eliminateSubsets(frags)
	sortFragments(frags)

	return frags
}

// anyFragmentCoversKey reports whether some fragment is a superset of key.
func anyFragmentCoversKey(frags []attrset.AttributeSet, key attrset.AttributeSet) bool {
	for _, f := range frags {
		if f.IsSupersetOf(key) {
			return true
		}
	}

	return false
}
