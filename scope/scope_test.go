package scope_test

import (
	"testing"

	"github.com/katalvlaran/qcalgebra/scope"
	"github.com/stretchr/testify/require"
)

func TestMap_InnermostWins(t *testing.T) {
	m := scope.NewMap[string, int]()
	m.Insert("i", 1)

	m.Scope()
	m.Insert("i", 2)

	v, ok := m.Lookup("i")
	require.True(t, ok)
	require.Equal(t, 2, v)

	m.Unscope()
	v, ok = m.Lookup("i")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestMap_OuterVisibleFromInner(t *testing.T) {
	m := scope.NewMap[string, string]()
	m.Insert("h", "hamiltonian")
	m.Scope()

	v, ok := m.Lookup("h")
	require.True(t, ok)
	require.Equal(t, "hamiltonian", v)
	require.True(t, m.Contains("h"))
	require.False(t, m.Contains("t"))
}

func TestMap_RemoveNearest(t *testing.T) {
	m := scope.NewMap[string, int]()
	m.Insert("p", 1)
	m.Scope()
	m.Insert("p", 2)

	require.NoError(t, m.Remove("p"))
	v, ok := m.Lookup("p")
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.NoError(t, m.Remove("p"))
	require.ErrorIs(t, m.Remove("p"), scope.ErrNotInScope)
}

func TestMap_UnscopeDropsBindings(t *testing.T) {
	m := scope.NewMap[string, int]()
	m.Scope()
	m.Insert("tmp", 42)
	require.Equal(t, 2, m.Depth())

	m.Unscope()
	require.False(t, m.Contains("tmp"))
	require.Equal(t, 1, m.Depth())
}

func TestNameGenerator_Unique(t *testing.T) {
	g := scope.NewNameGenerator()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := g.Fresh("tmp")
		require.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}

func TestNameGenerator_FirstUseKeepsPrefix(t *testing.T) {
	g := scope.NewNameGenerator()
	require.Equal(t, "i", g.Fresh("i"))
	require.Equal(t, "i1", g.Fresh("i"))
	require.Equal(t, "i2", g.Fresh("i"))
}

func TestNameGenerator_Reserved(t *testing.T) {
	g := scope.NewNameGenerator("i", "i1")
	require.Equal(t, "i2", g.Fresh("i"))
}
