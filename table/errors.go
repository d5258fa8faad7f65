package table

import "errors"

// Sentinel errors for engine-level fatal conditions. Recoverable,
// user-facing conditions (duplicate key, string too long, syntax errors)
// are represented as plain result enums, not errors — see the repl
// package.
var (
	ErrInternalNodeFull      = errors.New("table: splitting internal node not implemented")
	ErrChildIndexOutOfBounds = errors.New("table: child index out of bounds")
)
