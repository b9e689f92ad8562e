package fd

import "errors"

// Sentinel errors returned by FD admission. Callers branch with errors.Is;
// these are never wrapped with formatted context at the definition site.
var (
	// ErrEmptyLHS indicates an FD was constructed with an empty left-hand side.
	ErrEmptyLHS = errors.New("fd: left-hand side is empty")

	// ErrEmptyRHS indicates an FD was constructed with an empty right-hand side.
	ErrEmptyRHS = errors.New("fd: right-hand side is empty")

	// ErrTrivialFD indicates the right-hand side was wholly contained in the
	// left-hand side, so after admission's overlap-stripping nothing remained.
	ErrTrivialFD = errors.New("fd: dependency is trivial (rhs subset of lhs)")

	// ErrEmptyUniverseWithFDs indicates an empty universe was supplied
	// alongside a non-empty FD set.
	ErrEmptyUniverseWithFDs = errors.New("fd: empty universe with non-empty dependency set")
)
