package cover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/closure"
	"github.com/relnorm/normalize/cover"
	"github.com/relnorm/normalize/fd"
)

func mustFD(t *testing.T, lhs, rhs string) fd.FD {
	t.Helper()
	l := attrset.New()
	for _, c := range lhs {
		l.Add(attrset.Attribute(string(c)))
	}
	r := attrset.New()
	for _, c := range rhs {
		r.Add(attrset.Attribute(string(c)))
	}
	f, err := fd.New(l, r)
	require.NoError(t, err)

	return f
}

// equivalent asserts property §8.6: for every subset of universe, closures
// under a and b agree.
func equivalent(t *testing.T, universe attrset.AttributeSet, a, b []fd.FD) {
	t.Helper()
	all := allSubsets(universe)
	for _, x := range all {
		ca := closure.Of(x, a)
		cb := closure.Of(x, b)
		assert.True(t, ca.Equals(cb), "closure(%s) differs: a=%s b=%s", x.Canonical(), ca.Canonical(), cb.Canonical())
	}
}

func allSubsets(universe attrset.AttributeSet) []attrset.AttributeSet {
	attrs := universe.Sorted()
	n := len(attrs)
	var out []attrset.AttributeSet
	for mask := 0; mask < (1 << uint(n)); mask++ {
		s := attrset.New()
		for i, a := range attrs {
			if mask&(1<<uint(i)) != 0 {
				s.Add(a)
			}
		}
		out = append(out, s)
	}

	return out
}

func TestMinimalCover_SingletonRHS(t *testing.T) {
	fds := []fd.FD{mustFD(t, "A", "BC"), mustFD(t, "B", "D")}
	mc := cover.MinimalCover(fds)
	for _, f := range mc {
		assert.Equal(t, 1, f.RHS.Size())
	}
}

func TestMinimalCover_S4(t *testing.T) {
	universe := attrset.New("A", "B", "C", "D")
	fds := []fd.FD{
		mustFD(t, "AB", "C"),
		mustFD(t, "A", "B"),
		mustFD(t, "B", "C"),
		mustFD(t, "A", "D"),
	}
	mc := cover.MinimalCover(fds)
	equivalent(t, universe, fds, mc)

	// No extraneous LHS attributes: removing any one attribute from any LHS
	// changes the closure semantics (property §8.7, checked structurally).
	for _, f := range mc {
		for _, x := range f.LHS.Sorted() {
			shrunk := f.LHS.Clone()
			shrunk.Remove(x)
			if shrunk.IsEmpty() {
				continue
			}
			assert.False(t, closure.Of(shrunk, mc).IsSupersetOf(f.RHS),
				"attribute %s is extraneous in LHS of %s", x, f.String())
		}
	}
}

func TestMinimalCover_NoRedundantFDs(t *testing.T) {
	fds := []fd.FD{mustFD(t, "A", "BC"), mustFD(t, "B", "D"), mustFD(t, "AE", "C")}
	mc := cover.MinimalCover(fds)
	for i, f := range mc {
		rest := append(append([]fd.FD{}, mc[:i]...), mc[i+1:]...)
		a := f.RHS.Sorted()[0]
		assert.False(t, closure.Of(f.LHS, rest).Contains(a),
			"FD %s is redundant given the rest of the cover", f.String())
	}
}

func TestMinimalCover_Equivalence_S1(t *testing.T) {
	universe := attrset.New("A", "B", "C", "D", "E")
	fds := []fd.FD{mustFD(t, "A", "BC"), mustFD(t, "B", "D"), mustFD(t, "AE", "C")}
	mc := cover.MinimalCover(fds)
	equivalent(t, universe, fds, mc)
}

func TestMinimalCover_DoesNotMutateInput(t *testing.T) {
	fds := []fd.FD{mustFD(t, "AB", "C")}
	_ = cover.MinimalCover(fds)
	assert.Equal(t, 2, fds[0].LHS.Size())
	assert.Equal(t, 1, fds[0].RHS.Size())
}

func TestConsolidate_MergesByLHS(t *testing.T) {
	fds := []fd.FD{mustFD(t, "A", "B"), mustFD(t, "A", "C")}
	c := cover.Consolidate(fds)
	require.Len(t, c, 1)
	assert.True(t, c[0].RHS.Equals(attrset.New("B", "C")))
}

func TestMinimalCover_Empty(t *testing.T) {
	mc := cover.MinimalCover(nil)
	assert.Empty(t, mc)
}
