// Package normalform classifies a relation against 2NF/3NF/BCNF and
// collects violation witnesses, per spec.md §4.4.
//
// Classify walks the input FD list once, in input order. For each
// non-trivial FD it runs the BCNF test (LHS is a superkey iff its closure
// equals the universe); on failure it falls through to the 3NF test (every
// RHS attribute is prime), and on that failure too, to the 2NF test
// (partial dependency: LHS is a proper subset of some candidate key and RHS
// contains a non-prime attribute). Each test only runs when the previous one
// failed for that FD — an FD whose LHS is already a superkey can violate
// none of the weaker forms.
package normalform
