package subsets

import "errors"

// ErrUniverseTooLarge is returned when the requested universe exceeds MaxBits
// attributes, making exhaustive bitmask enumeration infeasible.
var ErrUniverseTooLarge = errors.New("subsets: universe exceeds maximum enumerable size")

// MaxBits is the largest universe size this package will enumerate
// exhaustively (bounded by a machine word, per spec.md §4.2/§5).
const MaxBits = 63
