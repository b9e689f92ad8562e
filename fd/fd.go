package fd

import (
	"fmt"

	"github.com/relnorm/normalize/attrset"
)

// FD is a functional dependency LHS → RHS over non-empty, disjoint attribute
// sets: RHS never overlaps LHS once admitted.
type FD struct {
	LHS attrset.AttributeSet
	RHS attrset.AttributeSet
}

// New admits a raw (lhs, rhs) pair as an FD. It strips any rhs attributes
// already present in lhs; if lhs is empty, or rhs is empty even before
// stripping, or stripping leaves rhs empty (the FD was fully trivial), New
// returns the corresponding sentinel error and a zero FD.
func New(lhs, rhs attrset.AttributeSet) (FD, error) {
	if lhs.IsEmpty() {
		return FD{}, ErrEmptyLHS
	}
	if rhs.IsEmpty() {
		return FD{}, ErrEmptyRHS
	}

	cleanRHS := rhs.Difference(lhs)
	if cleanRHS.IsEmpty() {
		return FD{}, fmt.Errorf("%w: %s -> %s", ErrTrivialFD, lhs.Canonical(), rhs.Canonical())
	}

	return FD{LHS: lhs.Clone(), RHS: cleanRHS}, nil
}

// Equals reports whether f and other have set-equal LHS and RHS.
func (f FD) Equals(other FD) bool {
	return f.LHS.Equals(other.LHS) && f.RHS.Equals(other.RHS)
}

// IsTrivial reports whether RHS is a subset of LHS. Admitted FDs (built via
// New) are never trivial; this is useful after ad-hoc mutation (e.g. inside
// cover's LHS-reduction phase, which rebuilds FDs directly).
func (f FD) IsTrivial() bool {
	return f.RHS.IsSubsetOf(f.LHS)
}

// String renders "LHS -> RHS" using each side's canonical serialization.
func (f FD) String() string {
	return f.LHS.Canonical() + " -> " + f.RHS.Canonical()
}

// Attributes returns LHS ∪ RHS.
func (f FD) Attributes() attrset.AttributeSet {
	return f.LHS.Union(f.RHS)
}

// Clone returns a deep copy of f (independent LHS/RHS sets).
func (f FD) Clone() FD {
	return FD{LHS: f.LHS.Clone(), RHS: f.RHS.Clone()}
}

// CloneAll returns an independent deep copy of an FD slice, preserving order.
func CloneAll(fds []FD) []FD {
	out := make([]FD, len(fds))
	for i, f := range fds {
		out[i] = f.Clone()
	}

	return out
}

// ContainsEqual reports whether fds contains an FD equal to target.
func ContainsEqual(fds []FD, target FD) bool {
	for _, f := range fds {
		if f.Equals(target) {
			return true
		}
	}

	return false
}
