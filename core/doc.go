// Package core defines the domain model underneath qcalgebra expression
// trees: symbols, orbital indices, indexed tensors and second-quantization
// operators.
//
// All values in this package behave like values: constructors and the
// explicit setters are the only mutation points, Clone performs a deep
// copy, and everything captured by an expression node is cloned first so
// no aliasing escapes. Equality and ordering of symbols is by
// (name, kind); tensors and operators compare their full structure.
//
// One concern per file:
//
//	symbol.go   — Symbol kinds, scalar/complex payloads, property bags
//	index.go    — Index, IndexSet and the index factory helpers
//	tensor.go   — Tensor, transposition/conjugation, tensor factories
//	operator.go — Operator, OperatorProduct, operator factories
//
// Errors:
//
//	ErrBadPermutation - transpose permutation is not a bijection of the rank.
package core
