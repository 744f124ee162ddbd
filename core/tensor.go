package core

import (
	"errors"
	"fmt"
)

// ErrBadPermutation indicates a transpose permutation that is not a
// bijection over the tensor rank.
var ErrBadPermutation = errors.New("core: bad index permutation")

// TensorKind tags the structural symmetry class of a tensor.
type TensorKind int

const (
	// TensorGeneral has no declared structure.
	TensorGeneral TensorKind = iota

	// TensorSymmetric is symmetric under index exchange.
	TensorSymmetric

	// TensorAntisymmetric changes sign under index exchange.
	TensorAntisymmetric

	// TensorHermitian equals its own hermitian conjugate.
	TensorHermitian

	// TensorUnitary has a hermitian conjugate equal to its inverse.
	TensorUnitary
)

// String returns the lowercase kind name.
func (k TensorKind) String() string {
	switch k {
	case TensorGeneral:
		return "general"
	case TensorSymmetric:
		return "symmetric"
	case TensorAntisymmetric:
		return "antisymmetric"
	case TensorHermitian:
		return "hermitian"
	case TensorUnitary:
		return "unitary"
	default:
		return "unknown"
	}
}

// KroneckerName is the symbol name reserved for Kronecker deltas; the
// delta-contraction rewrite rule recognizes tensors by this name.
const KroneckerName = "δ"

// Tensor is a symbol with an ordered index set and a symmetry class.
// Rank is derived from the index-set size; no numeric values are ever
// attached.
type Tensor struct {
	sym        *Symbol
	indices    IndexSet
	kind       TensorKind
	conjugated bool
	props      map[string]string
}

// TensorOption configures a Tensor at construction.
type TensorOption func(*Tensor)

// WithTensorKind overrides the default TensorGeneral kind.
func WithTensorKind(k TensorKind) TensorOption {
	return func(t *Tensor) { t.kind = k }
}

// WithTensorProperty attaches a string property to the tensor.
func WithTensorProperty(key, value string) TensorOption {
	return func(t *Tensor) { t.SetProperty(key, value) }
}

// NewTensor creates a tensor over a fresh variable symbol named name.
func NewTensor(name string, indices IndexSet, opts ...TensorOption) Tensor {
	return NewTensorSym(NewSymbol(name), indices, opts...)
}

// NewTensorSym creates a tensor over a clone of sym.
func NewTensorSym(sym *Symbol, indices IndexSet, opts ...TensorOption) Tensor {
	t := Tensor{sym: sym.Clone(), indices: indices.Clone(), kind: TensorGeneral}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Symbol returns the tensor's symbol.
func (t Tensor) Symbol() *Symbol { return t.sym }

// Name returns the tensor's symbol name.
func (t Tensor) Name() string { return t.sym.Name() }

// Indices returns the tensor's index set.
func (t Tensor) Indices() IndexSet { return t.indices }

// Kind returns the symmetry class.
func (t Tensor) Kind() TensorKind { return t.kind }

// Rank is the number of indices.
func (t Tensor) Rank() int { return t.indices.Len() }

// IsScalar reports rank 0.
func (t Tensor) IsScalar() bool { return t.Rank() == 0 }

// IsMatrix reports rank 2.
func (t Tensor) IsMatrix() bool { return t.Rank() == 2 }

// IsSymmetric reports kind == TensorSymmetric.
func (t Tensor) IsSymmetric() bool { return t.kind == TensorSymmetric }

// IsAntisymmetric reports kind == TensorAntisymmetric.
func (t Tensor) IsAntisymmetric() bool { return t.kind == TensorAntisymmetric }

// IsHermitian reports kind == TensorHermitian.
func (t Tensor) IsHermitian() bool { return t.kind == TensorHermitian }

// IsConjugated reports whether Conjugate has been applied an odd number
// of times.
func (t Tensor) IsConjugated() bool { return t.conjugated }

// SetProperty attaches (or overwrites) a string property.
func (t *Tensor) SetProperty(key, value string) {
	if t.props == nil {
		t.props = make(map[string]string)
	}
	t.props[key] = value
}

// Property returns the property value for key, or "" when absent.
func (t Tensor) Property(key string) string { return t.props[key] }

// HasProperty reports whether key is set.
func (t Tensor) HasProperty(key string) bool {
	_, ok := t.props[key]
	return ok
}

// SharesIndices reports whether the two tensors have any index in common.
func (t Tensor) SharesIndices(other Tensor) bool {
	return !t.CommonIndices(other).Empty()
}

// CommonIndices returns the indices shared with other, in t's order.
func (t Tensor) CommonIndices(other Tensor) IndexSet {
	return t.indices.Common(other.indices)
}

// CanContractWith reports whether a contraction with other is possible,
// i.e. at least one shared index exists.
func (t Tensor) CanContractWith(other Tensor) bool {
	return t.SharesIndices(other)
}

// Transpose reverses the index order.
func (t Tensor) Transpose() Tensor {
	n := t.indices.Len()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = n - 1 - i
	}
	out, _ := t.TransposePerm(perm)
	return out
}

// TransposePerm permutes the indices: position i of the result holds
// index perm[i] of the receiver. The permutation must be a bijection of
// [0, rank), else ErrBadPermutation.
func (t Tensor) TransposePerm(perm []int) (Tensor, error) {
	n := t.indices.Len()
	if len(perm) != n {
		return Tensor{}, fmt.Errorf("core: permutation length %d, want %d: %w", len(perm), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	permuted := IndexSet{}
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return Tensor{}, fmt.Errorf("core: permutation %v is not a bijection: %w", perm, ErrBadPermutation)
		}
		seen[p] = true
		permuted.Add(t.indices.At(p))
	}
	out := t.Clone()
	out.indices = permuted
	return out, nil
}

// Conjugate toggles complex conjugation on the symbol.
func (t Tensor) Conjugate() Tensor {
	out := t.Clone()
	out.conjugated = !out.conjugated
	return out
}

// HermitianConjugate conjugates and transposes. For a hermitian tensor
// the result is declared equal to the original by the symmetry rules.
func (t Tensor) HermitianConjugate() Tensor {
	return t.Conjugate().Transpose()
}

// Relabel returns a copy with every index labeled from renamed to
// its replacement; indices not named in the mapping are untouched.
func (t Tensor) Relabel(mapping map[string]string) Tensor {
	out := t.Clone()
	relabeled := IndexSet{}
	for _, ix := range out.indices.All() {
		if to, ok := mapping[ix.Label()]; ok {
			ix = ix.WithLabel(to)
		}
		relabeled.Add(ix)
	}
	out.indices = relabeled
	return out
}

// Equal compares symbol, indices (order included), kind and conjugation.
func (t Tensor) Equal(other Tensor) bool {
	return t.sym.Equal(other.sym) &&
		t.indices.Equal(other.indices) &&
		t.kind == other.kind &&
		t.conjugated == other.conjugated
}

// Less orders tensors by name, then rank.
func (t Tensor) Less(other Tensor) bool {
	if t.Name() != other.Name() {
		return t.Name() < other.Name()
	}
	return t.Rank() < other.Rank()
}

// Hash is consistent with Equal.
func (t Tensor) Hash() uint64 {
	h := t.sym.Hash()
	h = HashCombine(h, t.indices.Hash())
	h = HashCombine(h, HashUint(uint64(t.kind)))
	if t.conjugated {
		h = HashCombine(h, HashUint(1))
	}
	return h
}

// Clone deep-copies the tensor.
func (t Tensor) Clone() Tensor {
	c := t
	c.sym = t.sym.Clone()
	c.indices = t.indices.Clone()
	if t.props != nil {
		c.props = make(map[string]string, len(t.props))
		for k, v := range t.props {
			c.props[k] = v
		}
	}
	return c
}

// String renders "name[i,j]", with a trailing * when conjugated.
func (t Tensor) String() string {
	s := t.sym.String()
	if t.conjugated {
		s += "*"
	}
	if !t.indices.Empty() {
		s += "[" + t.indices.String() + "]"
	}
	return s
}

// Common quantum-chemistry tensor factories.

// OneElectronIntegral builds h[i,j].
func OneElectronIntegral(name string, i, j Index) Tensor {
	return NewTensor(name, NewIndexSet(i, j), WithTensorKind(TensorHermitian))
}

// TwoElectronIntegral builds g[i,j,k,l].
func TwoElectronIntegral(name string, i, j, k, l Index) Tensor {
	return NewTensor(name, NewIndexSet(i, j, k, l))
}

// AmplitudeSingles builds the t1 amplitude t[i,a].
func AmplitudeSingles(i, a Index) Tensor {
	return NewTensor("t1", NewIndexSet(i, a))
}

// AmplitudeDoubles builds the t2 amplitude t[i,j,a,b], antisymmetric in
// the occupied and virtual pairs.
func AmplitudeDoubles(i, j, a, b Index) Tensor {
	return NewTensor("t2", NewIndexSet(i, j, a, b), WithTensorKind(TensorAntisymmetric))
}

// DensityMatrix builds a one-particle density matrix name[p,q].
func DensityMatrix(name string, p, q Index) Tensor {
	return NewTensor(name, NewIndexSet(p, q), WithTensorKind(TensorHermitian))
}

// KroneckerDelta builds δ[i,j], the metric the delta-contraction rule
// looks for.
func KroneckerDelta(i, j Index) Tensor {
	return NewTensor(KroneckerName, NewIndexSet(i, j), WithTensorKind(TensorSymmetric))
}

// ZeroTensor builds the zero tensor over the given indices.
func ZeroTensor(indices IndexSet) Tensor {
	return NewTensorSym(NewScalar("0", 0), indices)
}
