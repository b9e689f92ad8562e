// Package closure computes attribute-set closures under a set of functional
// dependencies: the classic fixed-point algorithm, used by every other
// algorithmic package in this module (keys, cover, normalform, bcnf all call
// into closure.Of rather than reimplementing it).
//
// Of(X, F) returns the smallest Y ⊇ X such that for every FD (L, R) ∈ F with
// L ⊆ Y, R ⊆ Y also holds. Implementation: seed Y with X, then repeat a full
// pass over F folding in the RHS of every FD whose LHS is already covered,
// until a pass adds nothing. Y only grows and is bounded by the attributes
// mentioned across X and F, so termination is guaranteed; there is no error
// path, Of is a total function.
package closure
