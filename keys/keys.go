package keys

import (
	"sort"

	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/closure"
	"github.com/relnorm/normalize/diag"
	"github.com/relnorm/normalize/fd"
	"github.com/relnorm/normalize/subsets"
)

// Option configures CandidateKeys.
type Option func(*config)

type config struct {
	maxBits int
}

// WithMaxBits overrides the enumeration bit-width cap (default subsets.MaxBits).
// Intended for callers that want a tighter bound than the package default.
func WithMaxBits(n int) Option {
	return func(c *config) { c.maxBits = n }
}

func newConfig(opts ...Option) *config {
	c := &config{maxBits: subsets.MaxBits}
	for _, o := range opts {
		o(c)
	}

	return c
}

// CandidateKeys returns every candidate key of the relation (universe, fds),
// sorted by (size ascending, canonical serialization ascending).
//
// Complexity: O(2^|universe| * |fds| * |universe|) worst case, gated by the
// configured bit-width cap (subsets.ErrUniverseTooLarge on overflow).
func CandidateKeys(universe attrset.AttributeSet, fds []fd.FD, opts ...Option) ([]attrset.AttributeSet, []diag.Diagnostic, error) {
	if universe.IsEmpty() {
		return nil, nil, nil
	}

	cfg := newConfig(opts...)
	if universe.Size() > cfg.maxBits {
		return nil, nil, subsets.ErrUniverseTooLarge
	}

	all, err := subsets.All(universe)
	if err != nil {
		return nil, nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Size() < all[j].Size() })

	var found []attrset.AttributeSet
	for _, x := range all {
		if dominatedByFoundKey(x, found) {
			continue
		}
		if closure.IsSuperkey(x, universe, fds) {
			found = append(found, x)
		}
	}

	var diags []diag.Diagnostic
	if len(found) == 0 {
		// Degenerate per spec.md §4.3: impossible in theory (X ⊆ X⁺ always),
		// guarded defensively.
		found = []attrset.AttributeSet{universe.Clone()}
		diags = append(diags, diag.New("no-candidate-keys",
			"exhaustive search found no superkey; falling back to the full universe"))
	}

	found = dedupAndSort(found)

	return found, diags, nil
}

// dominatedByFoundKey reports whether x is a (non-proper or proper) superset
// of any already-confirmed candidate key. Such an x cannot itself be minimal.
func dominatedByFoundKey(x attrset.AttributeSet, found []attrset.AttributeSet) bool {
	for _, k := range found {
		if x.IsSupersetOf(k) {
			return true
		}
	}

	return false
}

func dedupAndSort(in []attrset.AttributeSet) []attrset.AttributeSet {
	seen := make(map[string]bool, len(in))
	out := make([]attrset.AttributeSet, 0, len(in))
	for _, s := range in {
		c := s.Canonical()
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size() != out[j].Size() {
			return out[i].Size() < out[j].Size()
		}

		return out[i].Canonical() < out[j].Canonical()
	})

	return out
}

// PrimeAttributes returns the union of every candidate key: the prime
// attributes of the relation (spec.md §4.4).
func PrimeAttributes(keys []attrset.AttributeSet) attrset.AttributeSet {
	out := attrset.New()
	for _, k := range keys {
		out.AddAll(k)
	}

	return out
}
