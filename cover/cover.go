package cover

import (
	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/closure"
	"github.com/relnorm/normalize/fd"
)

// MinimalCover returns a minimal cover of fds. fds is never mutated; the
// algorithm works on an internal deep copy throughout.
func MinimalCover(fds []fd.FD) []fd.FD {
	g := decomposeRHS(fds)
	g = reduceLHS(g)
	g = removeRedundant(g)

	return g
}

// Consolidate merges FDs that share an LHS into one FD with the union of
// their RHSs. This is a presentation step (spec.md §4.5); consumers that
// need singleton RHSs must re-split via decomposeRHS-equivalent logic
// (MinimalCover's own phase 1, or fd-level splitting at the call site).
func Consolidate(fds []fd.FD) []fd.FD {
	idx := make(map[string]int, len(fds))
	out := make([]fd.FD, 0, len(fds))
	for _, f := range fds {
		key := f.LHS.Canonical()
		if i, ok := idx[key]; ok {
			out[i].RHS.AddAll(f.RHS)
			continue
		}
		idx[key] = len(out)
		out = append(out, f.Clone())
	}

	return out
}

// decomposeRHS splits each FD into one FD per RHS attribute.
func decomposeRHS(fds []fd.FD) []fd.FD {
	var out []fd.FD
	for _, f := range fds {
		for _, a := range f.RHS.Sorted() {
			out = append(out, fd.FD{LHS: f.LHS.Clone(), RHS: attrset.New(a)})
		}
	}

	return out
}

// singletonRHS returns the sole attribute of f's RHS. Callers only invoke
// this on working-set FDs, which are always singleton-RHS after phase 1.
func singletonRHS(f fd.FD) attrset.Attribute {
	return f.RHS.Sorted()[0]
}

// reduceLHS attempts to drop each LHS attribute of every FD in g, in place,
// processing FDs in input order and LHS attributes in a fixed (sorted)
// order per FD.
func reduceLHS(g []fd.FD) []fd.FD {
	for idx := range g {
		snapshot := g[idx].LHS.Sorted()
		for _, x := range snapshot {
			if g[idx].LHS.Size() <= 1 {
				break
			}
			candidate := g[idx].LHS.Clone()
			candidate.Remove(x)
			if candidate.IsEmpty() {
				continue
			}
			a := singletonRHS(g[idx])
			if closure.Of(candidate, g).Contains(a) {
				g[idx].LHS = candidate
			}
		}
	}

	return g
}

// removeRedundant drops any FD whose RHS attribute remains derivable from
// its LHS once the FD itself is excluded from the working set, applying
// drops immediately so subsequent checks see the shrunken set.
func removeRedundant(g []fd.FD) []fd.FD {
	work := fd.CloneAll(g)
	i := 0
	for i < len(work) {
		f := work[i]
		rest := without(work, i)
		a := singletonRHS(f)
		if closure.Of(f.LHS, rest).Contains(a) {
			work = rest
			continue // re-check the element that slid into position i
		}
		i++
	}

	return work
}

// without returns a copy of fds with the element at i removed.
func without(fds []fd.FD, i int) []fd.FD {
	out := make([]fd.FD, 0, len(fds)-1)
	out = append(out, fds[:i]...)
	out = append(out, fds[i+1:]...)

	return out
}
