package fd_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/fd"
)

func TestNew_StripsOverlap(t *testing.T) {
	// S5: {A,B} -> {A,C} admits as {A,B} -> {C}.
	f, err := fd.New(attrset.New("A", "B"), attrset.New("A", "C"))
	require.NoError(t, err)
	assert.True(t, f.RHS.Equals(attrset.New("C")))
	assert.True(t, f.LHS.Equals(attrset.New("A", "B")))
}

func TestNew_RejectsFullyTrivial(t *testing.T) {
	// S5: {A,B} -> {A} is fully trivial and rejected.
	_, err := fd.New(attrset.New("A", "B"), attrset.New("A"))
	assert.ErrorIs(t, err, fd.ErrTrivialFD)
}

func TestNew_RejectsEmptySides(t *testing.T) {
	_, err := fd.New(attrset.New(), attrset.New("A"))
	assert.ErrorIs(t, err, fd.ErrEmptyLHS)

	_, err = fd.New(attrset.New("A"), attrset.New())
	assert.ErrorIs(t, err, fd.ErrEmptyRHS)
}

func TestEquals(t *testing.T) {
	a, _ := fd.New(attrset.New("A"), attrset.New("B", "C"))
	b, _ := fd.New(attrset.New("A"), attrset.New("C", "B"))
	assert.True(t, a.Equals(b))
}

func TestString(t *testing.T) {
	f, _ := fd.New(attrset.New("B", "A"), attrset.New("C"))
	assert.Equal(t, "A, B -> C", f.String())
}

func TestRelation_WidensUniverse(t *testing.T) {
	a, _ := fd.New(attrset.New("A"), attrset.New("B"))
	r, diags, err := fd.NewRelation(attrset.New("A"), []fd.FD{a})
	require.NoError(t, err)
	assert.True(t, r.Universe.Equals(attrset.New("A", "B")))
	require.Len(t, diags, 1)
	assert.Equal(t, "universe-widened", diags[0].Code)
}

func TestRelation_Dedup(t *testing.T) {
	a, _ := fd.New(attrset.New("A"), attrset.New("B"))
	b, _ := fd.New(attrset.New("A"), attrset.New("B"))
	r, _, err := fd.NewRelation(attrset.New("A", "B"), []fd.FD{a, b})
	require.NoError(t, err)
	assert.Len(t, r.FDs, 1)
}

func TestRelation_EmptyUniverseWithFDs(t *testing.T) {
	a, _ := fd.New(attrset.New("A"), attrset.New("B"))
	_, _, err := fd.NewRelation(attrset.New(), []fd.FD{a})
	assert.True(t, errors.Is(err, fd.ErrEmptyUniverseWithFDs))
}

func TestRelation_Degenerate(t *testing.T) {
	// S6: A = {A}, F = empty.
	r, diags, err := fd.NewRelation(attrset.New("A"), nil)
	require.NoError(t, err)
	assert.True(t, r.Universe.Equals(attrset.New("A")))
	assert.Empty(t, r.FDs)
	assert.Empty(t, diags)
}
