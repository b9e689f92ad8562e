// Package bcnf implements the recursive work-list BCNF analyzer of spec.md
// §4.7: split a fragment on any BCNF-violating FD until every fragment is in
// BCNF. Dependency preservation is not guaranteed — a known BCNF limitation,
// inherited rather than worked around.
//
// Decompose seeds a work-list with the whole universe and a visited-set
// keyed by canonical serialization (mirroring the color/visited idiom in
// dfs/topological.go, generalized from vertex IDs to attribute-set keys).
// For each popped fragment S, it scans the FDs relevant to S (LHS, RHS ⊆ S,
// non-trivial within S) in input order; the first one whose LHS is not a
// superkey of S splits S into two strictly smaller fragments sharing L and
// stops scanning (S itself is never emitted in that case). If no listed FD
// violates BCNF in S, every non-empty subset X of S is checked in ascending
// bitmask order: the first X whose closure intersected with S is neither X
// nor S splits S into X⁺ ∩ S and X ∪ (S \ X⁺), which catches violations by
// FDs that are only implied within S. A fragment with no violation of
// either kind is emitted unchanged. Strict size reduction on every split
// guarantees termination.
package bcnf
