package normalform

import (
	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/closure"
	"github.com/relnorm/normalize/diag"
	"github.com/relnorm/normalize/fd"
	"github.com/relnorm/normalize/keys"
)

// Result is the outcome of classifying a relation against 2NF/3NF/BCNF.
type Result struct {
	IsBCNF bool
	Is3NF  bool
	Is2NF  bool

	// Violations holds, per form, the FDs (in first-witnessed order) that
	// violate it.
	ViolationsBCNF []fd.FD
	Violations3NF  []fd.FD
	Violations2NF  []fd.FD
}

// Classify determines which of 2NF/3NF/BCNF hold for (universe, fds) given
// its candidateKeys, and lists the violating FDs for each form.
//
// If universe or fds is empty, the schema is trivially in BCNF (all flags
// true, no violations). If candidateKeys is empty despite a non-empty
// universe, classification is not defined: all flags are false and a
// Diagnostic is attached.
func Classify(universe attrset.AttributeSet, fds []fd.FD, candidateKeys []attrset.AttributeSet) (Result, []diag.Diagnostic) {
	if universe.IsEmpty() || len(fds) == 0 {
		return Result{IsBCNF: true, Is3NF: true, Is2NF: true}, nil
	}

	if len(candidateKeys) == 0 {
		return Result{}, []diag.Diagnostic{diag.New("classification-undefined",
			"no candidate keys available for a non-empty universe; classification cannot proceed")}
	}

	prime := keys.PrimeAttributes(candidateKeys)

	var res Result
	for _, f := range fds {
		nonTrivialRHS := f.RHS.Difference(f.LHS)
		if nonTrivialRHS.IsEmpty() {
			continue // trivial FD, skipped for all checks
		}

		if closure.Of(f.LHS, fds).Equals(universe) {
			continue // LHS is a superkey: violates none of 2NF/3NF/BCNF
		}
		res.ViolationsBCNF = append(res.ViolationsBCNF, f)

		if isSubsetOfPrime(nonTrivialRHS, prime) {
			continue // every RHS attribute prime: 3NF-safe
		}
		res.Violations3NF = append(res.Violations3NF, f)

		if hasPartialDependencyWitness(f, nonTrivialRHS, prime, candidateKeys) {
			res.Violations2NF = append(res.Violations2NF, f)
		}
	}

	res.IsBCNF = len(res.ViolationsBCNF) == 0
	res.Is3NF = len(res.Violations3NF) == 0
	res.Is2NF = len(res.Violations2NF) == 0

	return res, nil
}

func isSubsetOfPrime(rhs, prime attrset.AttributeSet) bool {
	return rhs.IsSubsetOf(prime)
}

// hasPartialDependencyWitness reports whether there exists a candidate key K
// such that f.LHS is a proper subset of K and some attribute of rhs is
// non-prime.
func hasPartialDependencyWitness(f fd.FD, rhs, prime attrset.AttributeSet, candidateKeys []attrset.AttributeSet) bool {
	hasNonPrime := false
	for _, a := range rhs.Sorted() {
		if !prime.Contains(a) {
			hasNonPrime = true

			break
		}
	}
	if !hasNonPrime {
		return false
	}
	for _, k := range candidateKeys {
		if k.IsProperSupersetOf(f.LHS) {
			return true
		}
	}

	return false
}
