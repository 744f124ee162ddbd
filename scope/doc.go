// Package scope provides the name-resolution collaborators consumed by a
// compiler pipeline built around qcalgebra: a stack of nested symbol
// scopes with innermost-wins lookup, and a unique-name generator for
// fresh dummy-index and temporary names.
//
// Both are explicit context objects: nothing in this package is global,
// so a pipeline threads a *Map and a *NameGenerator through whatever
// needs them. The rewriting core itself only requires fresh names where
// index-relabeling rules are in play.
package scope
