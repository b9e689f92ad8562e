package synth

import (
	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/cover"
	"github.com/relnorm/normalize/diag"
	"github.com/relnorm/normalize/fd"
)

// Decompose3NF builds a lossless-join, dependency-preserving decomposition
// of (universe, fds) into 3NF, per spec.md §4.6. candidateKeys must be
// sorted per keys.CandidateKeys' contract (size ascending, canonical
// ascending); the first entry is the one appended if needed.
func Decompose3NF(universe attrset.AttributeSet, fds []fd.FD, candidateKeys []attrset.AttributeSet) ([]attrset.AttributeSet, []diag.Diagnostic) {
	if len(fds) == 0 {
		if universe.IsEmpty() {
			return nil, nil
		}

		return []attrset.AttributeSet{universe.Clone()}, nil
	}

	if len(candidateKeys) == 0 {
		return []attrset.AttributeSet{universe.Clone()}, []diag.Diagnostic{diag.New("missing-candidate-keys",
			"3NF synthesis requires candidate keys; none were available")}
	}

	merged := cover.Consolidate(cover.MinimalCover(fds))

	frags := make([]attrset.AttributeSet, 0, len(merged)+1)
	for _, f := range merged {
		frags = append(frags, f.LHS.Union(f.RHS))
	}

	var diags []diag.Diagnostic
	key := candidateKeys[0]
	if !anyFragmentCoversKey(frags, key) {
		frags = append(frags, key.Clone())
		diags = append(diags, diag.New("key-fragment-appended",
			"no synthesized fragment covered a candidate key; appended "+key.Canonical()))
	}

	return finalize(frags), diags
}
