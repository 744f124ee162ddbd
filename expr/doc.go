// Package expr implements the qcalgebra expression tree: a strict,
// exclusively-owned tree of tagged nodes over the core domain model,
// built through factory functions and treated as an immutable value by
// every transform.
//
// Node variants: symbol/tensor/operator/operator-product leaves, the
// binary combinators (+ - * / ^), commutator and anticommutator, n-ary
// Sum with per-term coefficients, tensor Contraction, IndexSum,
// Derivative, Integral and function Call.
//
// Ownership and immutability:
//   - Factories deep-clone every argument, so no subtree is ever shared
//     between two parents and no caller alias can reach into a tree.
//   - Clone copies the whole subtree, leaf domain values included.
//   - Transforms (rules, the simplifier, Expand, Derivative) always
//     return freshly built trees; inputs are never mutated.
//   - Node arity is fixed by the factory signatures: a commutator cannot
//     be built with anything but two children.
//
// Structural identity:
//   - Equal is recursive structural equality over tag and children; leaf
//     nodes compare by domain-value equality.
//   - Hash combines the node tag with each child's hash through an
//     order-sensitive golden-ratio mix, so Equal(a, b) implies
//     a.Hash() == b.Hash() and permuting children changes the hash.
//
// String renders infix notation: an operand is parenthesized exactly
// when it is an Add or Subtract node embedded under another combinator.
// The output is a display format only; no parser reads it back.
package expr
