package contract

import (
	"errors"
	"math"
	"math/bits"
	"sort"

	"github.com/katalvlaran/qcalgebra/core"
	"github.com/katalvlaran/qcalgebra/diag"
)

// ErrTooFewTensors is returned by Optimize when the network holds
// fewer than two tensors.
var ErrTooFewTensors = errors.New("contract: need at least two tensors")

// MaxExactTensors bounds the network size the exact subset DP handles;
// larger networks fall back to the greedy planner.
const MaxExactTensors = 12

// Step is one pairwise merge in an evaluation order. Left and Right
// name operands by id: inputs carry ids 0..n−1 in argument order, and
// each step's result gets the next free id (n, n+1, ...).
type Step struct {
	Left       int
	Right      int
	Contracted core.IndexSet
	Cost       float64
}

// Path is a full evaluation order: n−1 steps and their total cost.
type Path struct {
	Steps []Step
	Cost  float64
}

// planNode is a live operand during planning: its step id and the
// dimensions of its free index labels.
type planNode struct {
	id     int
	labels map[string]float64
}

// Optimize plans a pairwise contraction order for the network.
//
// Up to MaxExactTensors tensors it runs an exact dynamic program over
// bitmasked subsets: dp[mask] is the cheapest cost to reduce the subset
// mask to one intermediate, minimized over all splits of mask into two
// nonempty halves. Beyond that bound it falls back to greedily merging
// the cheapest pair.
//
// Time complexity: O(3ⁿ) exact, O(n³) greedy.
// Memory complexity: O(2ⁿ) exact, O(n²) greedy.
func Optimize(tensors []core.Tensor) (Path, error) {
	n := len(tensors)
	if n < 2 {
		return Path{}, diag.Userf("contract.Optimize", ErrTooFewTensors, "network holds %d tensors", n)
	}

	byLabel := make(map[string]core.Index)
	nodes := make([]planNode, n)
	for i, t := range tensors {
		labels := make(map[string]float64)
		ix := t.Indices()
		for j := 0; j < ix.Len(); j++ {
			idx := ix.At(j)
			if _, ok := byLabel[idx.Label()]; !ok {
				byLabel[idx.Label()] = idx
			}
			labels[idx.Label()] = float64(idx.Dimension())
		}
		nodes[i] = planNode{id: i, labels: labels}
	}

	if n <= MaxExactTensors {
		return optimizeExact(nodes, byLabel), nil
	}
	return optimizeGreedy(nodes, byLabel), nil
}

// optimizeExact fills dp[mask] for every subset of the inputs and
// reconstructs the optimal order from the recorded splits.
func optimizeExact(nodes []planNode, byLabel map[string]core.Index) Path {
	n := len(nodes)
	size := 1 << n

	dp := make([]float64, size)
	split := make([]int, size)
	labels := make([]map[string]float64, size)
	for mask := 1; mask < size; mask++ {
		dp[mask] = math.Inf(1)
		split[mask] = -1
	}
	for i, nd := range nodes {
		dp[1<<i] = 0
		labels[1<<i] = nd.labels
	}

	for mask := 1; mask < size; mask++ {
		if bits.OnesCount(uint(mask)) < 2 {
			continue
		}
		// enumerate splits once: keep the half containing the lowest bit
		low := mask & (-mask)
		for sub := (mask - 1) & mask; sub > 0; sub = (sub - 1) & mask {
			if sub&low == 0 {
				continue
			}
			rest := mask ^ sub
			if labels[sub] == nil || labels[rest] == nil {
				continue
			}
			cand := dp[sub] + dp[rest] + labelCost(labels[sub], labels[rest])
			if cand < dp[mask] {
				dp[mask] = cand
				split[mask] = sub
			}
		}
		best := split[mask]
		labels[mask] = mergeLabels(labels[best], labels[mask^best])
	}

	all := size - 1
	p := Path{Cost: dp[all]}
	nextID := n
	var emit func(mask int) int
	emit = func(mask int) int {
		if bits.OnesCount(uint(mask)) == 1 {
			return bits.TrailingZeros(uint(mask))
		}
		sub := split[mask]
		rest := mask ^ sub
		left := emit(sub)
		right := emit(rest)
		p.Steps = append(p.Steps, Step{
			Left:       left,
			Right:      right,
			Contracted: contractedSet(labels[sub], labels[rest], byLabel),
			Cost:       labelCost(labels[sub], labels[rest]),
		})
		id := nextID
		nextID++
		return id
	}
	emit(all)
	return p
}

// optimizeGreedy repeatedly merges the cheapest live pair.
func optimizeGreedy(nodes []planNode, byLabel map[string]core.Index) Path {
	live := append([]planNode(nil), nodes...)
	nextID := len(nodes)

	var p Path
	for len(live) > 1 {
		bi, bj := 0, 1
		bestCost := math.Inf(1)
		for i := 0; i < len(live); i++ {
			for j := i + 1; j < len(live); j++ {
				c := labelCost(live[i].labels, live[j].labels)
				if c < bestCost {
					bestCost, bi, bj = c, i, j
				}
			}
		}
		a, b := live[bi], live[bj]
		p.Steps = append(p.Steps, Step{
			Left:       a.id,
			Right:      b.id,
			Contracted: contractedSet(a.labels, b.labels, byLabel),
			Cost:       bestCost,
		})
		p.Cost += bestCost

		merged := planNode{id: nextID, labels: mergeLabels(a.labels, b.labels)}
		nextID++
		live = append(live[:bj], live[bj+1:]...)
		live[bi] = merged
	}
	return p
}

// contractedSet materializes the summed labels of a pairwise merge as
// an IndexSet, in deterministic label order.
func contractedSet(a, b map[string]float64, byLabel map[string]core.Index) core.IndexSet {
	shared := sharedLabels(a, b)
	sort.Strings(shared)
	out := core.NewIndexSet()
	for _, l := range shared {
		out.Add(byLabel[l])
	}
	return out
}
