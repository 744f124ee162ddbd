package core_test

import (
	"testing"

	"github.com/katalvlaran/qcalgebra/core"
	"github.com/stretchr/testify/require"
)

func TestSymbol_EqualityByNameAndKind(t *testing.T) {
	x := core.NewSymbol("x")
	x2 := core.NewSymbol("x")
	y := core.NewSymbol("y")

	require.True(t, x.Equal(x2))
	require.False(t, x.Equal(y))

	// same name, different kind
	xc := core.NewConstant("x")
	require.False(t, x.Equal(xc))

	// scalar payload does not participate in equality
	z0 := core.NewScalar("z", 0)
	z5 := core.NewScalar("z", 5)
	require.True(t, z0.Equal(z5))
}

func TestSymbol_HashConsistentWithEqual(t *testing.T) {
	a := core.NewScalar("0", 0.0)
	b := core.NewScalar("0", 0.0)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())

	c := core.NewSymbol("0")
	require.False(t, a.Equal(c))
	require.NotEqual(t, a.Hash(), c.Hash())
}

func TestSymbol_Ordering(t *testing.T) {
	a := core.NewSymbol("a")
	b := core.NewSymbol("b")
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))

	// tie on name breaks on kind
	as := core.NewScalar("a", 1)
	require.True(t, as.Less(a)) // SymbolScalar < SymbolVariable
}

func TestSymbol_CloneIsDeep(t *testing.T) {
	s := core.NewSymbol("h", core.WithProperty("origin", "fock"))
	c := s.Clone()
	c.SetProperty("origin", "bare")

	require.Equal(t, "fock", s.Property("origin"))
	require.Equal(t, "bare", c.Property("origin"))
	require.True(t, s.Equal(c))
}

func TestSymbol_Payloads(t *testing.T) {
	sc := core.NewScalar("c", 2.5)
	require.True(t, sc.IsScalar())
	require.Equal(t, 2.5, sc.Value())
	sc.SetValue(3)
	require.Equal(t, 3.0, sc.Value())

	z := core.NewComplex("z", 1, -2)
	require.True(t, z.IsComplex())
	require.Equal(t, 1.0, z.Real())
	require.Equal(t, -2.0, z.Imag())
}

func TestSymbol_StringMarkers(t *testing.T) {
	require.Equal(t, "x", core.NewSymbol("x").String())
	require.Equal(t, "0", core.NewScalar("0", 0).String())
	require.Equal(t, "ħᶜ", core.NewConstant("ħ").String())
	require.Equal(t, "zℂ", core.NewComplex("z", 0, 1).String())
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "2", core.FormatValue(2))
	require.Equal(t, "0.5", core.FormatValue(0.5))
	require.Equal(t, "-1", core.FormatValue(-1))
}
