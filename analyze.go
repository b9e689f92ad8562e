package normalize

import (
	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/bcnf"
	"github.com/relnorm/normalize/closure"
	"github.com/relnorm/normalize/cover"
	"github.com/relnorm/normalize/diag"
	"github.com/relnorm/normalize/fd"
	"github.com/relnorm/normalize/keys"
	"github.com/relnorm/normalize/normalform"
	"github.com/relnorm/normalize/subsets"
	"github.com/relnorm/normalize/synth"
)

// Analyze sequences closure, key discovery, classification, cover
// construction, and decomposition over (universe, fds), returning a
// structured Report. It is a total function: aside from the Diagnostics it
// may attach, every call to Analyze with well-formed (already-admitted) fds
// succeeds.
func Analyze(universe attrset.AttributeSet, fds []fd.FD) *Report {
	rel, relDiags, err := fd.NewRelation(universe, fds)
	if err != nil {
		// universe empty with non-empty fds: caller passed malformed input
		// (fd.New already rejects empty LHS/RHS/trivial FDs upstream of
		// this call, so this is the one admission-time condition Analyze
		// itself can still observe); report it as the degenerate empty
		// relation rather than panicking, since Analyze has no error return.
		return &Report{Universe: attrset.New(), ClosureOfAll: attrset.New()}
	}

	report := &Report{
		Universe:    rel.Universe,
		Diagnostics: append([]diag.Diagnostic(nil), relDiags...),
	}

	report.ClosureOfAll = closure.Of(rel.Universe, rel.FDs)

	if rel.Universe.Size() <= SubsetClosureCap {
		report.SubsetClosures = make(map[string]attrset.AttributeSet)
		_ = subsets.EachWithEmpty(rel.Universe, func(s attrset.AttributeSet) bool {
			report.SubsetClosures[s.Canonical()] = closure.Of(s, rel.FDs)

			return true
		})
	}

	ck, keyDiags, err := keys.CandidateKeys(rel.Universe, rel.FDs)
	if err != nil {
		// Universe exceeds the enumeration cap: key discovery, and anything
		// downstream of it, is simply skipped rather than attempted.
		report.Diagnostics = append(report.Diagnostics, diag.New("candidate-keys-skipped", err.Error()))
		report.NormalForms = NormalForms{}

		return report
	}
	report.CandidateKeys = ck
	report.Diagnostics = append(report.Diagnostics, keyDiags...)

	nfRes, nfDiags := normalform.Classify(rel.Universe, rel.FDs, ck)
	report.NormalForms = normalFormsFrom(nfRes)
	report.Diagnostics = append(report.Diagnostics, nfDiags...)

	report.MinimalCover = cover.Consolidate(cover.MinimalCover(rel.FDs))

	if !nfRes.Is2NF {
		report.Decomposition2NF = synth.Decompose2NF(rel.Universe, rel.FDs, ck)
	}

	if !nfRes.IsBCNF {
		frags3NF, synthDiags := synth.Decompose3NF(rel.Universe, rel.FDs, ck)
		report.Decomposition3NF = frags3NF
		report.Diagnostics = append(report.Diagnostics, synthDiags...)

		report.DecompositionBCNF = bcnf.Decompose(rel.Universe, rel.FDs)
	}

	return report
}
