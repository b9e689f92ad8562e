// Package diag defines the non-fatal diagnostic value shared by the core's
// "impossible in theory, reported if it ever happens" paths (candidate-key
// discovery finding no keys, a synthesizer repair step). These are never
// errors: the core stays a total function and keeps running, attaching a
// Diagnostic to its result instead of failing the call.
package diag
