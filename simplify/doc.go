// Package simplify is the rule-driven rewriting engine over expression
// trees.
//
// A Simplifier holds rules grouped into categories. One simplification
// pass applies the categories in a fixed order (Algebraic,
// Distributive, Commutator, Tensor, Operator, Symmetry); each category
// runs as a single bottom-up traversal, and at every node the
// category's rules are tried in registration order, first match wins
// for that node. Passes repeat until the rendered form of the tree
// stops changing or the iteration cap (10 by default) is reached.
//
// A Rule is a pure function from a node to a replacement subtree; it
// returns (nil, false) when it does not apply and never errors. Rules
// see one node at a time with already-rewritten children, so they stay
// local: distributing a product, dropping an additive zero, expanding a
// commutator.
//
// New installs the default rule set. AddRule and RemoveRules tailor a
// Simplifier to a calculation; WithTrace records every rule firing into
// a capped log for inspection.
//
//	s := simplify.New(simplify.WithTrace())
//	out := s.Simplify(e)
//	for _, line := range s.Trace() { ... }
package simplify
