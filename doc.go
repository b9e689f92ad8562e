// Package normalize is a relational-schema normalization engine.
//
// Given a finite universe of attributes and a set of functional
// dependencies, Analyze computes attribute-set closures, candidate keys, a
// minimal cover, the highest normal form satisfied (2NF/3NF/BCNF) with
// violation witnesses, and lossless decompositions into 2NF, 3NF, and BCNF.
//
// The package is a thin orchestrator: everything it returns is computed by
// one of its sub-packages.
//
//	attrset/    — attribute sets and canonical serialization
//	fd/         — functional dependencies and relation assembly
//	diag/       — shared non-fatal diagnostic value
//	closure/    — attribute-set closure under a dependency set
//	subsets/    — bitmask subset enumeration
//	keys/       — candidate-key discovery
//	cover/      — minimal (canonical) cover construction
//	normalform/ — 2NF/3NF/BCNF classification with violation witnesses
//	synth/      — 2NF and 3NF (synthesis) decomposition
//	bcnf/       — BCNF (analysis) decomposition
//	gen/        — randomized schema generation, for property-based tests
//
// The core performs no I/O and holds no state between calls: each call to
// Analyze is independent. See spec.md and SPEC_FULL.md for the full
// specification this module implements.
package normalize
