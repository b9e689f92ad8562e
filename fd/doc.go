// Package fd defines the functional dependency (FD) type and Relation, the
// (universe, FD-set) pair the rest of this module analyzes.
//
// An FD is an ordered pair (LHS, RHS) of non-empty attrset.AttributeSets.
// Admission strips any RHS attributes already present in LHS; if that leaves
// RHS empty, the FD was fully trivial and New rejects it with ErrTrivialFD.
// Two FDs are equal iff both their LHS and RHS are set-equal (order of
// admission into a Relation is not part of identity).
//
// Relation assembles a universe A and an admitted, deduplicated FD list F,
// widening A to include every attribute mentioned by F (spec: A is the union
// of the user-supplied universe and the attributes mentioned by F) and
// recording a Diagnostic whenever that widening actually added attributes.
package fd
