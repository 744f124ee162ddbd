package core

import "strings"

// IndexKind classifies an orbital index.
type IndexKind int

const (
	// IndexOccupied labels occupied orbitals (i, j, k, ...).
	IndexOccupied IndexKind = iota

	// IndexVirtual labels virtual orbitals (a, b, c, ...).
	IndexVirtual

	// IndexGeneral labels general orbitals (p, q, r, ...), the default.
	IndexGeneral

	// IndexSpin labels spin indices (α, β).
	IndexSpin

	// IndexSpatial labels spatial orbital indices.
	IndexSpatial
)

// String returns the lowercase kind name.
func (k IndexKind) String() string {
	switch k {
	case IndexOccupied:
		return "occupied"
	case IndexVirtual:
		return "virtual"
	case IndexGeneral:
		return "general"
	case IndexSpin:
		return "spin"
	case IndexSpatial:
		return "spatial"
	default:
		return "unknown"
	}
}

// IndexSymmetry tags the permutation symmetry carried by an index.
type IndexSymmetry int

const (
	// SymNone marks an index with no declared symmetry.
	SymNone IndexSymmetry = iota

	// SymSymmetric marks an index symmetric under exchange.
	SymSymmetric

	// SymAntisymmetric marks an index antisymmetric under exchange.
	SymAntisymmetric
)

// DefaultRange is the dimension assumed for an index whose range was
// never set. It only feeds the contraction cost model; no numeric work
// depends on it.
const DefaultRange = 10

// Index is a tensor/operator index: a label, a kind, a half-open range
// [start, end) and a symmetry tag. The zero range (end <= start) means
// "range not declared".
type Index struct {
	label      string
	kind       IndexKind
	rangeStart int
	rangeEnd   int
	symmetry   IndexSymmetry
}

// IndexOption configures an Index at construction.
type IndexOption func(*Index)

// WithIndexKind overrides the default IndexGeneral kind.
func WithIndexKind(k IndexKind) IndexOption {
	return func(ix *Index) { ix.kind = k }
}

// WithRange declares the half-open range [start, end).
func WithRange(start, end int) IndexOption {
	return func(ix *Index) { ix.rangeStart, ix.rangeEnd = start, end }
}

// WithSymmetry declares the symmetry tag.
func WithSymmetry(s IndexSymmetry) IndexOption {
	return func(ix *Index) { ix.symmetry = s }
}

// NewIndex creates a general index with the given label.
func NewIndex(label string, opts ...IndexOption) Index {
	ix := Index{label: label, kind: IndexGeneral, rangeEnd: -1}
	for _, opt := range opts {
		opt(&ix)
	}
	return ix
}

// Convenience factories for the common index kinds.

// Occupied creates an occupied-orbital index.
func Occupied(label string, opts ...IndexOption) Index {
	return NewIndex(label, append([]IndexOption{WithIndexKind(IndexOccupied)}, opts...)...)
}

// Virtual creates a virtual-orbital index.
func Virtual(label string, opts ...IndexOption) Index {
	return NewIndex(label, append([]IndexOption{WithIndexKind(IndexVirtual)}, opts...)...)
}

// General creates a general-orbital index.
func General(label string, opts ...IndexOption) Index {
	return NewIndex(label, opts...)
}

// Spin creates a spin index.
func Spin(label string) Index {
	return NewIndex(label, WithIndexKind(IndexSpin))
}

// Spatial creates a spatial-orbital index.
func Spatial(label string, opts ...IndexOption) Index {
	return NewIndex(label, append([]IndexOption{WithIndexKind(IndexSpatial)}, opts...)...)
}

// Label returns the index label.
func (ix Index) Label() string { return ix.label }

// Kind returns the index kind.
func (ix Index) Kind() IndexKind { return ix.kind }

// RangeStart returns the inclusive range start.
func (ix Index) RangeStart() int { return ix.rangeStart }

// RangeEnd returns the exclusive range end, -1 when undeclared.
func (ix Index) RangeEnd() int { return ix.rangeEnd }

// Symmetry returns the symmetry tag.
func (ix Index) Symmetry() IndexSymmetry { return ix.symmetry }

// Dimension returns the declared range size, or DefaultRange when the
// range was never set.
func (ix Index) Dimension() int {
	if ix.rangeEnd > ix.rangeStart {
		return ix.rangeEnd - ix.rangeStart
	}
	return DefaultRange
}

// WithLabel returns a copy of the index under a new label. Relabeling is
// how dummy indices are renamed; every other attribute is preserved.
func (ix Index) WithLabel(label string) Index {
	ix.label = label
	return ix
}

// IsOccupied reports kind == IndexOccupied.
func (ix Index) IsOccupied() bool { return ix.kind == IndexOccupied }

// IsVirtual reports kind == IndexVirtual.
func (ix Index) IsVirtual() bool { return ix.kind == IndexVirtual }

// IsGeneral reports kind == IndexGeneral.
func (ix Index) IsGeneral() bool { return ix.kind == IndexGeneral }

// Equal compares label, kind, range and symmetry.
func (ix Index) Equal(other Index) bool { return ix == other }

// Less orders indices by label, then kind.
func (ix Index) Less(other Index) bool {
	if ix.label != other.label {
		return ix.label < other.label
	}
	return ix.kind < other.kind
}

// Hash is consistent with Equal.
func (ix Index) Hash() uint64 {
	h := HashString(ix.label)
	h = HashCombine(h, HashUint(uint64(ix.kind)))
	h = HashCombine(h, HashUint(uint64(ix.rangeStart)+1))
	h = HashCombine(h, HashUint(uint64(ix.rangeEnd)+1))
	h = HashCombine(h, HashUint(uint64(ix.symmetry)))
	return h
}

// String renders the label.
func (ix Index) String() string { return ix.label }

// IndexSet is an ordered collection of indices. Insertion order is
// significant: it drives contraction semantics and rendering.
type IndexSet struct {
	indices []Index
}

// NewIndexSet collects the given indices, preserving order.
func NewIndexSet(indices ...Index) IndexSet {
	s := IndexSet{}
	s.indices = append(s.indices, indices...)
	return s
}

// Labels builds an index set of general indices from bare labels.
func Labels(labels ...string) IndexSet {
	s := IndexSet{}
	for _, l := range labels {
		s.Add(NewIndex(l))
	}
	return s
}

// Add appends an index, keeping insertion order.
func (s *IndexSet) Add(ix Index) { s.indices = append(s.indices, ix) }

// Len returns the number of indices.
func (s IndexSet) Len() int { return len(s.indices) }

// Empty reports whether the set holds no indices.
func (s IndexSet) Empty() bool { return len(s.indices) == 0 }

// At returns the i-th index in insertion order.
func (s IndexSet) At(i int) Index { return s.indices[i] }

// All returns a copy of the indices in insertion order.
func (s IndexSet) All() []Index {
	out := make([]Index, len(s.indices))
	copy(out, s.indices)
	return out
}

// Contains reports whether ix (full equality) is in the set.
func (s IndexSet) Contains(ix Index) bool {
	for _, have := range s.indices {
		if have.Equal(ix) {
			return true
		}
	}
	return false
}

// ContainsLabel reports whether any index carries the given label.
func (s IndexSet) ContainsLabel(label string) bool {
	for _, have := range s.indices {
		if have.label == label {
			return true
		}
	}
	return false
}

// Union concatenates both sets, preserving order (duplicates kept:
// repeated labels are what Einstein summation looks for).
func (s IndexSet) Union(other IndexSet) IndexSet {
	out := IndexSet{indices: make([]Index, 0, len(s.indices)+len(other.indices))}
	out.indices = append(out.indices, s.indices...)
	out.indices = append(out.indices, other.indices...)
	return out
}

// Common returns the indices of s that also appear in other, in s's
// order.
func (s IndexSet) Common(other IndexSet) IndexSet {
	out := IndexSet{}
	for _, ix := range s.indices {
		if other.Contains(ix) {
			out.Add(ix)
		}
	}
	return out
}

// Unique returns the set with repeated labels removed, keeping the first
// occurrence of each label.
func (s IndexSet) Unique() IndexSet {
	out := IndexSet{}
	seen := make(map[string]bool, len(s.indices))
	for _, ix := range s.indices {
		if !seen[ix.label] {
			seen[ix.label] = true
			out.Add(ix)
		}
	}
	return out
}

// HasRepeated reports whether any label occurs more than once.
func (s IndexSet) HasRepeated() bool {
	seen := make(map[string]bool, len(s.indices))
	for _, ix := range s.indices {
		if seen[ix.label] {
			return true
		}
		seen[ix.label] = true
	}
	return false
}

// RepeatedLabels returns the labels that occur more than once, in first
// occurrence order.
func (s IndexSet) RepeatedLabels() []string {
	count := make(map[string]int, len(s.indices))
	for _, ix := range s.indices {
		count[ix.label]++
	}
	var out []string
	seen := make(map[string]bool)
	for _, ix := range s.indices {
		if count[ix.label] > 1 && !seen[ix.label] {
			seen[ix.label] = true
			out = append(out, ix.label)
		}
	}
	return out
}

// SymmetricPairs returns position pairs (i, j), i < j, whose indices both
// carry a non-None symmetry of the same flavor.
func (s IndexSet) SymmetricPairs() [][2]int {
	var out [][2]int
	for i := 0; i < len(s.indices); i++ {
		if s.indices[i].symmetry == SymNone {
			continue
		}
		for j := i + 1; j < len(s.indices); j++ {
			if s.indices[j].symmetry == s.indices[i].symmetry {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// LabelSet returns the distinct labels, in first occurrence order.
func (s IndexSet) LabelSet() []string {
	var out []string
	seen := make(map[string]bool, len(s.indices))
	for _, ix := range s.indices {
		if !seen[ix.label] {
			seen[ix.label] = true
			out = append(out, ix.label)
		}
	}
	return out
}

// Equal compares length and pairwise index equality, order included.
func (s IndexSet) Equal(other IndexSet) bool {
	if len(s.indices) != len(other.indices) {
		return false
	}
	for i := range s.indices {
		if !s.indices[i].Equal(other.indices[i]) {
			return false
		}
	}
	return true
}

// Hash is order-sensitive and consistent with Equal.
func (s IndexSet) Hash() uint64 {
	h := HashUint(uint64(len(s.indices)) + 1)
	for _, ix := range s.indices {
		h = HashCombine(h, ix.Hash())
	}
	return h
}

// Clone deep-copies the set.
func (s IndexSet) Clone() IndexSet {
	return IndexSet{indices: s.All()}
}

// String joins labels with commas: "i,j,a,b".
func (s IndexSet) String() string {
	labels := make([]string, len(s.indices))
	for i, ix := range s.indices {
		labels[i] = ix.label
	}
	return strings.Join(labels, ",")
}

// OccupiedSet builds a set of occupied indices from labels.
func OccupiedSet(labels ...string) IndexSet {
	s := IndexSet{}
	for _, l := range labels {
		s.Add(Occupied(l))
	}
	return s
}

// VirtualSet builds a set of virtual indices from labels.
func VirtualSet(labels ...string) IndexSet {
	s := IndexSet{}
	for _, l := range labels {
		s.Add(Virtual(l))
	}
	return s
}

// GeneralSet builds a set of general indices from labels.
func GeneralSet(labels ...string) IndexSet {
	return Labels(labels...)
}
