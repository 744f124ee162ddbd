package core_test

import (
	"testing"

	"github.com/katalvlaran/qcalgebra/core"
	"github.com/stretchr/testify/require"
)

func TestTensor_RankAndKind(t *testing.T) {
	h := core.OneElectronIntegral("h", core.General("p"), core.General("q"))
	require.Equal(t, 2, h.Rank())
	require.True(t, h.IsMatrix())
	require.True(t, h.IsHermitian())
	require.Equal(t, "h[p,q]", h.String())

	s := core.NewTensor("E", core.NewIndexSet())
	require.True(t, s.IsScalar())
	require.Equal(t, "E", s.String())
}

func TestTensor_SharedAndCommonIndices(t *testing.T) {
	p, q, r := core.General("p"), core.General("q"), core.General("r")
	A := core.NewTensor("A", core.NewIndexSet(p, q))
	B := core.NewTensor("B", core.NewIndexSet(q, r))
	C := core.NewTensor("C", core.NewIndexSet(r))

	require.True(t, A.SharesIndices(B))
	require.True(t, A.CanContractWith(B))
	require.False(t, A.SharesIndices(C))

	common := A.CommonIndices(B)
	require.Equal(t, 1, common.Len())
	require.Equal(t, "q", common.At(0).Label())
}

func TestTensor_Transpose(t *testing.T) {
	g := core.TwoElectronIntegral("g", core.General("p"), core.General("q"), core.General("r"), core.General("s"))
	tr := g.Transpose()
	require.Equal(t, "g[s,r,q,p]", tr.String())
	require.Equal(t, "g[p,q,r,s]", g.String(), "receiver untouched")
}

func TestTensor_TransposePerm(t *testing.T) {
	A := core.NewTensor("A", core.Labels("p", "q", "r"))

	out, err := A.TransposePerm([]int{2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, "A[r,p,q]", out.String())

	_, err = A.TransposePerm([]int{0, 1})
	require.ErrorIs(t, err, core.ErrBadPermutation)

	_, err = A.TransposePerm([]int{0, 0, 1})
	require.ErrorIs(t, err, core.ErrBadPermutation)
}

func TestTensor_ConjugateAndHermitianConjugate(t *testing.T) {
	U := core.NewTensor("U", core.Labels("p", "q"), core.WithTensorKind(core.TensorUnitary))

	conj := U.Conjugate()
	require.True(t, conj.IsConjugated())
	require.Equal(t, "U*[p,q]", conj.String())
	require.False(t, U.IsConjugated())

	hc := U.HermitianConjugate()
	require.True(t, hc.IsConjugated())
	require.Equal(t, "U*[q,p]", hc.String())

	// conjugation is an involution
	require.True(t, conj.Conjugate().Equal(U))
}

func TestTensor_Relabel(t *testing.T) {
	A := core.NewTensor("A", core.Labels("p", "q"))
	out := A.Relabel(map[string]string{"q": "r"})
	require.Equal(t, "A[p,r]", out.String())
	require.Equal(t, "A[p,q]", A.String())
}

func TestTensor_EqualAndHash(t *testing.T) {
	a1 := core.NewTensor("A", core.Labels("p", "q"))
	a2 := core.NewTensor("A", core.Labels("p", "q"))
	b := core.NewTensor("A", core.Labels("q", "p"))

	require.True(t, a1.Equal(a2))
	require.Equal(t, a1.Hash(), a2.Hash())
	require.False(t, a1.Equal(b), "index order is part of identity")
}

func TestKroneckerDelta(t *testing.T) {
	d := core.KroneckerDelta(core.General("p"), core.General("q"))
	require.Equal(t, core.KroneckerName, d.Name())
	require.True(t, d.IsSymmetric())
	require.Equal(t, 2, d.Rank())
}
