package fd

import (
	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/diag"
)

// Relation is a schema R(A, F): a universe of attributes and an admitted,
// deduplicated set of functional dependencies over it.
type Relation struct {
	Universe attrset.AttributeSet
	FDs      []FD
}

// NewRelation assembles a Relation from a user-supplied universe and a list
// of already-admitted FDs (see New). It widens Universe to include every
// attribute mentioned by fds, deduplicates fds by (LHS, RHS) equality
// (first occurrence wins), and reports a Diagnostic whenever widening added
// attributes the caller's universe didn't declare.
//
// An empty universe with a non-empty fds is always rejected with
// ErrEmptyUniverseWithFDs; if universe is empty and fds is empty the
// degenerate relation R(∅, ∅) is returned with no error.
func NewRelation(universe attrset.AttributeSet, fds []FD) (*Relation, []diag.Diagnostic, error) {
	if universe.IsEmpty() && len(fds) > 0 {
		return nil, nil, ErrEmptyUniverseWithFDs
	}

	widened := universe.Clone()
	added := attrset.New()
	dedup := make([]FD, 0, len(fds))
	for _, f := range fds {
		if ContainsEqual(dedup, f) {
			continue
		}
		dedup = append(dedup, f.Clone())

		for _, a := range f.Attributes().Sorted() {
			if !widened.Contains(a) {
				widened.Add(a)
				added.Add(a)
			}
		}
	}

	var diags []diag.Diagnostic
	if !added.IsEmpty() {
		diags = append(diags, diag.New("universe-widened",
			"universe did not declare attributes mentioned by the dependency set: "+added.Canonical()))
	}

	return &Relation{Universe: widened, FDs: dedup}, diags, nil
}
