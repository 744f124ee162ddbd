package core_test

import (
	"testing"

	"github.com/katalvlaran/qcalgebra/core"
	"github.com/stretchr/testify/require"
)

func TestIndex_FactoriesAndKinds(t *testing.T) {
	i := core.Occupied("i")
	a := core.Virtual("a")
	p := core.General("p")

	require.True(t, i.IsOccupied())
	require.True(t, a.IsVirtual())
	require.True(t, p.IsGeneral())
	require.Equal(t, core.IndexSpin, core.Spin("α").Kind())
}

func TestIndex_RangeAndDimension(t *testing.T) {
	p := core.General("p", core.WithRange(0, 4))
	require.Equal(t, 0, p.RangeStart())
	require.Equal(t, 4, p.RangeEnd())
	require.Equal(t, 4, p.Dimension())

	// undeclared range falls back to the default dimension
	q := core.General("q")
	require.Equal(t, core.DefaultRange, q.Dimension())
}

func TestIndex_WithLabelPreservesAttributes(t *testing.T) {
	i := core.Occupied("i", core.WithRange(0, 6), core.WithSymmetry(core.SymAntisymmetric))
	j := i.WithLabel("j")

	require.Equal(t, "j", j.Label())
	require.Equal(t, core.IndexOccupied, j.Kind())
	require.Equal(t, 6, j.Dimension())
	require.Equal(t, core.SymAntisymmetric, j.Symmetry())
	require.Equal(t, "i", i.Label(), "receiver untouched")
}

func TestIndexSet_OrderSignificant(t *testing.T) {
	ij := core.NewIndexSet(core.Occupied("i"), core.Occupied("j"))
	ji := core.NewIndexSet(core.Occupied("j"), core.Occupied("i"))

	require.False(t, ij.Equal(ji))
	require.NotEqual(t, ij.Hash(), ji.Hash())
	require.Equal(t, "i,j", ij.String())
}

func TestIndexSet_CommonAndUnion(t *testing.T) {
	ab := core.NewIndexSet(core.Virtual("a"), core.Virtual("b"))
	bc := core.NewIndexSet(core.Virtual("b"), core.Virtual("c"))

	common := ab.Common(bc)
	require.Equal(t, 1, common.Len())
	require.Equal(t, "b", common.At(0).Label())

	union := ab.Union(bc)
	require.Equal(t, 4, union.Len())
	require.True(t, union.HasRepeated())
	require.Equal(t, []string{"b"}, union.RepeatedLabels())
	require.Equal(t, 3, union.Unique().Len())
}

func TestIndexSet_SymmetricPairs(t *testing.T) {
	s := core.NewIndexSet(
		core.Occupied("i", core.WithSymmetry(core.SymAntisymmetric)),
		core.Occupied("j", core.WithSymmetry(core.SymAntisymmetric)),
		core.Virtual("a"),
	)
	pairs := s.SymmetricPairs()
	require.Equal(t, [][2]int{{0, 1}}, pairs)
}

func TestIndexSet_CloneIndependent(t *testing.T) {
	s := core.Labels("p", "q")
	c := s.Clone()
	c.Add(core.General("r"))

	require.Equal(t, 2, s.Len())
	require.Equal(t, 3, c.Len())
}

func TestIndexSet_LabelHelpers(t *testing.T) {
	occ := core.OccupiedSet("i", "j")
	require.Equal(t, 2, occ.Len())
	require.True(t, occ.At(0).IsOccupied())
	require.True(t, occ.ContainsLabel("j"))
	require.False(t, occ.ContainsLabel("a"))
	require.Equal(t, []string{"i", "j"}, occ.LabelSet())
}
