package normalize

import (
	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/diag"
	"github.com/relnorm/normalize/fd"
	"github.com/relnorm/normalize/normalform"
)

// SubsetClosureCap is the universe size at or below which Report.
// SubsetClosures is populated (spec.md §6: "present iff |A| ≤ 8").
const SubsetClosureCap = 8

// NormalForms mirrors spec.md §6's normalForms block.
type NormalForms struct {
	IsBCNF bool
	Is3NF  bool
	Is2NF  bool

	ViolationsBCNF []fd.FD
	Violations3NF  []fd.FD
	Violations2NF  []fd.FD
}

// Report is the structured result of Analyze, mirroring spec.md §6.
type Report struct {
	Universe     attrset.AttributeSet
	ClosureOfAll attrset.AttributeSet

	// SubsetClosures maps every subset's canonical serialization to its
	// closure; nil unless Universe.Size() <= SubsetClosureCap.
	SubsetClosures map[string]attrset.AttributeSet

	CandidateKeys []attrset.AttributeSet
	MinimalCover  []fd.FD
	NormalForms   NormalForms

	// Decomposition2NF is nil unless !NormalForms.Is2NF.
	Decomposition2NF []attrset.AttributeSet
	// Decomposition3NF and DecompositionBCNF are nil unless !NormalForms.IsBCNF.
	Decomposition3NF  []attrset.AttributeSet
	DecompositionBCNF []attrset.AttributeSet
	Diagnostics       []diag.Diagnostic
}

func normalFormsFrom(res normalform.Result) NormalForms {
	return NormalForms{
		IsBCNF:         res.IsBCNF,
		Is3NF:          res.Is3NF,
		Is2NF:          res.Is2NF,
		ViolationsBCNF: res.ViolationsBCNF,
		Violations3NF:  res.Violations3NF,
		Violations2NF:  res.Violations2NF,
	}
}
