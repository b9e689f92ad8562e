package closure

import (
	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/fd"
)

// Of returns the closure of x under fds: the smallest superset of x closed
// under every FD in fds. fds is never mutated.
//
// Complexity: O(|fds| * |A|) per pass, bounded by |A| passes worst case.
func Of(x attrset.AttributeSet, fds []fd.FD) attrset.AttributeSet {
	y := x.Clone()
	if len(fds) == 0 {
		return y
	}

	for {
		grown := false
		for _, f := range fds {
			if f.LHS.IsSubsetOf(y) {
				for _, a := range f.RHS.Sorted() {
					if y.Add(a) {
						grown = true
					}
				}
			}
		}
		if !grown {
			break
		}
	}

	return y
}

// IsSuperkey reports whether x's closure under fds covers the whole universe.
func IsSuperkey(x, universe attrset.AttributeSet, fds []fd.FD) bool {
	return Of(x, fds).Equals(universe)
}
