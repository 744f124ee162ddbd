// Package diag provides the two-severity failure reporting used across
// qcalgebra.
//
// Two kinds of failure exist, and they are not interchangeable:
//
//   - User: the caller violated a documented precondition (malformed
//     expression, bad permutation, empty input). These are ordinary,
//     recoverable errors; state is left untouched and the caller may
//     branch on the wrapped sentinel with errors.Is.
//   - Internal: an invariant inside the engine itself broke. These carry
//     the failing condition and its file:line so the simplifier can be
//     debugged, and should abort the current operation.
//
// Error policy (explicit and strict):
//   - Packages expose sentinel variables; callers branch with
//     errors.Is(err, ErrX), never by string comparison.
//   - Context is attached by wrapping with %w, not by reformatting
//     sentinels at the definition site.
//
// "Rule does not apply" in the simplifier is NOT a failure and never
// passes through this package.
package diag
