package opalg_test

import (
	"testing"

	"github.com/katalvlaran/qcalgebra/core"
	"github.com/katalvlaran/qcalgebra/opalg"
	"github.com/stretchr/testify/require"
)

func TestVacuumExpectation_OddLengthVanishes(t *testing.T) {
	p := core.General("p")
	require.Equal(t, 0.0, opalg.VacuumExpectation(core.NewProduct(core.Creation(p))))
	require.Equal(t, 0.0, opalg.VacuumExpectation(core.NewProduct(
		core.Annihilation(p), core.Creation(p), core.Creation(p),
	)))
}

func TestVacuumExpectation_EmptyProductIsCoefficient(t *testing.T) {
	p := core.NewProduct()
	p.SetCoefficient(3)
	require.Equal(t, 3.0, opalg.VacuumExpectation(p))
}

func TestVacuumExpectation_ElementaryContraction(t *testing.T) {
	p := core.General("p")
	q := core.General("q")

	// ⟨a_p a†_p⟩ = 1
	require.Equal(t, 1.0, opalg.VacuumExpectation(core.NewProduct(
		core.Annihilation(p), core.Creation(p),
	)))

	// ⟨a_p a†_q⟩ = δ_pq = 0 for distinct labels
	require.Equal(t, 0.0, opalg.VacuumExpectation(core.NewProduct(
		core.Annihilation(p), core.Creation(q),
	)))

	// wrong order annihilates the vacuum
	require.Equal(t, 0.0, opalg.VacuumExpectation(core.NewProduct(
		core.Creation(p), core.Annihilation(p),
	)))
}

func TestVacuumExpectation_NestedPairing(t *testing.T) {
	p := core.General("p")
	q := core.General("q")

	// ⟨a_p a_q a†_q a†_p⟩ = 1: the only surviving pairing is nested,
	// and its line crosses two fermionic operators
	require.Equal(t, 1.0, opalg.VacuumExpectation(core.NewProduct(
		core.Annihilation(p), core.Annihilation(q),
		core.Creation(q), core.Creation(p),
	)))
}

func TestVacuumExpectation_CrossingSign(t *testing.T) {
	p := core.General("p")
	q := core.General("q")

	// ⟨a_p a_q a†_p a†_q⟩ = −1: the pairing lines cross once
	require.Equal(t, -1.0, opalg.VacuumExpectation(core.NewProduct(
		core.Annihilation(p), core.Annihilation(q),
		core.Creation(p), core.Creation(q),
	)))

	// bosons carry no crossing sign
	require.Equal(t, 1.0, opalg.VacuumExpectation(core.NewProduct(
		core.Annihilation(p, core.WithAlgebra(core.Boson)),
		core.Annihilation(q, core.WithAlgebra(core.Boson)),
		core.Creation(p, core.WithAlgebra(core.Boson)),
		core.Creation(q, core.WithAlgebra(core.Boson)),
	)))
}

func TestVacuumExpectation_CoefficientScales(t *testing.T) {
	p := core.General("p")
	in := core.NewProduct(core.Annihilation(p), core.Creation(p))
	in.SetCoefficient(-2)
	require.Equal(t, -2.0, opalg.VacuumExpectation(in))
}

func TestVacuumExpectation_MixedAlgebrasNeverContract(t *testing.T) {
	p := core.General("p")
	require.Equal(t, 0.0, opalg.VacuumExpectation(core.NewProduct(
		core.Annihilation(p),
		core.Creation(p, core.WithAlgebra(core.Boson)),
	)))
}
