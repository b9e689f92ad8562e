package synth

import (
	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/fd"
	"github.com/relnorm/normalize/keys"
)

// Decompose2NF builds a lossless decomposition of (universe, fds) into 2NF
// using the strategy spec.md §9 settles on: isolate each partial dependency
// into its own fragment, then gather whatever attributes remain together
// with a full candidate key, and prune subset-redundant fragments.
//
// This is lossless by construction but, unlike Decompose3NF, is not
// guaranteed dependency-preserving in pathological cases (spec.md §9).
func Decompose2NF(universe attrset.AttributeSet, fds []fd.FD, candidateKeys []attrset.AttributeSet) []attrset.AttributeSet {
	if universe.IsEmpty() {
		return nil
	}
	if len(candidateKeys) == 0 {
		return []attrset.AttributeSet{universe.Clone()}
	}

	prime := keys.PrimeAttributes(candidateKeys)
	nonPrime := universe.Difference(prime)

	var frags []attrset.AttributeSet
	isolated := attrset.New()
	for _, f := range fds {
		if !isProperSubsetOfSomeKey(f.LHS, candidateKeys) {
			continue
		}
		nonPrimeRHS := f.RHS.Intersect(nonPrime)
		if nonPrimeRHS.IsEmpty() {
			continue
		}
		frags = append(frags, f.LHS.Union(nonPrimeRHS))
		isolated.AddAll(nonPrimeRHS)
	}

	remainder := universe.Difference(isolated).Union(candidateKeys[0])
	frags = append(frags, remainder)

	return finalize(frags)
}

func isProperSubsetOfSomeKey(lhs attrset.AttributeSet, candidateKeys []attrset.AttributeSet) bool {
	for _, k := range candidateKeys {
		if k.IsProperSupersetOf(lhs) {
			return true
		}
	}

	return false
}
