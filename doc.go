// Package qcalgebra is an in-memory symbolic term-rewriting engine for
// quantum-chemistry operator and tensor algebra.
//
// 🚀 What is qcalgebra?
//
//	A pure-Go computer-algebra core that builds expression trees over
//	symbols, indexed tensors and second-quantization operators, and
//	normalizes them through a rule-based simplifier:
//	  • Domain model: symbols, orbital indices, tensors, operators
//	  • Expression trees: immutable, deep-cloned, structurally hashed
//	  • Rewriting: algebraic, distributive, commutator, tensor,
//	    operator and symmetry rule libraries, run to a fixed point
//	  • Operator algebra: normal ordering with fermionic sign tracking,
//	    commutators, truncated BCH series, Wick contractions
//	  • Contraction planning: einsum-style cost model with exact
//	    subset-DP search and a greedy fallback
//
// ✨ Why choose qcalgebra?
//
//   - Value-like trees – every transform returns a fresh tree, inputs
//     are never mutated
//   - Deterministic – fixed rule order, fixed iteration cap, stable
//     rendering
//   - Pure Go – no cgo, no numeric back end, no hidden deps
//
// Everything is organized under small focused subpackages:
//
//	core/     — Symbol, Index, IndexSet, Tensor, Operator model
//	expr/     — expression tree ADT and factory functions
//	simplify/ — the rewriting engine and its rule libraries
//	opalg/    — normal ordering, commutator algebra, BCH, Wick
//	contract/ — tensor contraction cost model and path optimizer
//	scope/    — nested name scopes and a unique-name generator
//	diag/     — two-severity failure reporting
//
// Quick taste:
//
//	x := expr.Symbol(core.NewSymbol("x"))
//	y := expr.Symbol(core.NewSymbol("y"))
//	s := simplify.New()
//	out := s.Simplify(expr.Add(expr.Multiply(x, y), expr.Zero()))
//	// out.String() == "x * y"
//
// Tensor values are never computed; only the symbolic index structure is
// manipulated. No parser is provided: trees are built through the expr
// factories and rendered with String().
package qcalgebra
