// Package synth builds the 2NF and 3NF (synthesis) decompositions described
// in spec.md §4.6 and §9.
//
// Decompose3NF builds a minimal cover, emits one fragment per covering FD
// (LHS ∪ RHS), appends a candidate-key fragment if none of those already
// covers one, then prunes subset-redundant fragments. Losslessness follows
// from the appended key fragment; dependency preservation follows from every
// FD of the minimal cover appearing in some emitted fragment.
//
// Decompose2NF implements the strategy spec.md §9 settles on for its open
// question: for every FD whose LHS is a proper subset of some candidate key
// and whose RHS contains a non-prime attribute, emit a fragment isolating
// that partial dependency; then emit one fragment covering whatever
// attributes remain, together with a full candidate key, and prune
// subset-redundant fragments as in 3NF. This is lossless by construction
// (the key fragment is always present) but is not guaranteed
// dependency-preserving in pathological cases, matching the teaching note in
// spec.md §9.
package synth
