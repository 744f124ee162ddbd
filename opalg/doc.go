// Package opalg implements the operator-algebra algorithms behind the
// operator rewrite rules: normal ordering with permutation-parity sign
// tracking, commutators and anticommutators at single-operator and
// product granularity, nested commutators, the truncated
// Baker–Campbell–Hausdorff series and Wick vacuum expectation values.
//
// Conventions:
//   - A product is normal ordered when every creation operator precedes
//     every annihilation operator. Number operators sort as
//     creation-like: creation < number < annihilation.
//   - The normal-ordering sign is (−1)^k where k counts the adjacent
//     transpositions of fermionic operator pairs performed by the
//     minimal (stable) reordering; bosonic products always get +1.
//   - Operators tagged with GeneralAlgebra carry no known commutation
//     relation; the predicates in core treat them as neither commuting
//     nor anticommuting, and this package never reorders past them
//     without counting them as opaque.
//
// Commutator expansions are returned as term lists ([]core.OperatorProduct)
// rather than expression trees, so they can feed either the expr
// factories or further algebra directly.
package opalg
