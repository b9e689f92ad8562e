package normalform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/fd"
	"github.com/relnorm/normalize/keys"
	"github.com/relnorm/normalize/normalform"
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

func TestClassify_S1(t *testing.T) {
	universe := attrset.New("A", "B", "C", "D", "E")
	fds := []fd.FD{mustFD(t, "A", "BC"), mustFD(t, "B", "D"), mustFD(t, "AE", "C")}
	ck, _, err := keys.CandidateKeys(universe, fds)
	require.NoError(t, err)

	res, diags := normalform.Classify(universe, fds, ck)
	assert.Empty(t, diags)
	assert.False(t, res.IsBCNF)
	assert.False(t, res.Is3NF)
	assert.False(t, res.Is2NF)
	assert.Len(t, res.ViolationsBCNF, 2) // A->BC, B->D
	assert.NotEmpty(t, res.Violations3NF)
	assert.NotEmpty(t, res.Violations2NF)
}

func TestClassify_S2_AlreadyBCNF(t *testing.T) {
	universe := attrset.New("A", "B")
	fds := []fd.FD{mustFD(t, "A", "B")}
	ck, _, err := keys.CandidateKeys(universe, fds)
	require.NoError(t, err)

	res, _ := normalform.Classify(universe, fds, ck)
	assert.True(t, res.IsBCNF)
	assert.True(t, res.Is3NF)
	assert.True(t, res.Is2NF)
	assert.Empty(t, res.ViolationsBCNF)
}

func TestClassify_S3_ThreeNFNotBCNF(t *testing.T) {
	universe := attrset.New("S", "J", "T")
	fds := []fd.FD{mustFD(t, "SJ", "T"), mustFD(t, "T", "J")}
	ck, _, err := keys.CandidateKeys(universe, fds)
	require.NoError(t, err)

	res, _ := normalform.Classify(universe, fds, ck)
	assert.False(t, res.IsBCNF)
	assert.True(t, res.Is3NF)
	assert.True(t, res.Is2NF)
	require.Len(t, res.ViolationsBCNF, 1)
	assert.True(t, res.ViolationsBCNF[0].LHS.Equals(attrset.New("T")))
}

func TestClassify_S6_Degenerate(t *testing.T) {
	res, diags := normalform.Classify(attrset.New("A"), nil, nil)
	assert.True(t, res.IsBCNF)
	assert.True(t, res.Is3NF)
	assert.True(t, res.Is2NF)
	assert.Empty(t, diags)
}

func TestClassify_EmptyUniverse(t *testing.T) {
	res, diags := normalform.Classify(attrset.New(), nil, nil)
	assert.True(t, res.IsBCNF)
	assert.Empty(t, diags)
}

func TestClassify_NoKeysUndefined(t *testing.T) {
	universe := attrset.New("A", "B")
	fds := []fd.FD{mustFD(t, "A", "B")}
	res, diags := normalform.Classify(universe, fds, nil)
	assert.False(t, res.IsBCNF)
	assert.False(t, res.Is3NF)
	assert.False(t, res.Is2NF)
	require.Len(t, diags, 1)
	assert.Equal(t, "classification-undefined", diags[0].Code)
}

func TestClassify_BCNFSoundness(t *testing.T) {
	// §8.10: isBCNF <=> every non-trivial FD has a superkey LHS.
	universe := attrset.New("A", "B", "C")
	fds := []fd.FD{mustFD(t, "A", "B"), mustFD(t, "A", "C")}
	ck, _, err := keys.CandidateKeys(universe, fds)
	require.NoError(t, err)
	res, _ := normalform.Classify(universe, fds, ck)
	assert.True(t, res.IsBCNF)
}
