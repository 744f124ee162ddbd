// Package contract plans the pairwise evaluation order of a tensor
// contraction network.
//
// A network is a list of symbolic tensors; evaluating it means merging
// tensors two at a time until one remains. The order of the merges
// dominates the cost: contracting the wrong pair first can inflate the
// intermediate rank and with it every later step. Optimize searches for
// a cheap order and returns it as a Path of Steps.
//
// Two strategies back Optimize:
//   - exact subset dynamic programming over bitmasked tensor subsets
//     for networks of up to MaxExactTensors tensors, O(3ⁿ) in the
//     subset splits;
//   - a greedy cheapest-pair heuristic beyond that bound, O(n³) and
//     not guaranteed optimal.
//
// Costs are symbolic estimates: the product of the dimension ranges of
// the distinct index labels touched by a pairwise contraction. The
// intermediate produced by a merge carries the free indices of its
// operands, the labels appearing in exactly one of the two.
package contract
