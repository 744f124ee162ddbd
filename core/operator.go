package core

import "strings"

// OperatorRole classifies a second-quantization operator.
type OperatorRole int

const (
	// RoleCreation is a creation operator a†.
	RoleCreation OperatorRole = iota

	// RoleAnnihilation is an annihilation operator a.
	RoleAnnihilation

	// RoleNumber is a number operator n = a†a.
	RoleNumber

	// RoleHamiltonian is a Hamiltonian operator.
	RoleHamiltonian

	// RoleDensity is a density operator.
	RoleDensity

	// RoleGeneral is an unclassified operator, the default.
	RoleGeneral

	// RoleComposite is a product-of-operators treated as one entity.
	RoleComposite
)

// String returns the lowercase role name.
func (r OperatorRole) String() string {
	switch r {
	case RoleCreation:
		return "creation"
	case RoleAnnihilation:
		return "annihilation"
	case RoleNumber:
		return "number"
	case RoleHamiltonian:
		return "hamiltonian"
	case RoleDensity:
		return "density"
	case RoleGeneral:
		return "general"
	case RoleComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Algebra tags the statistics an operator obeys.
type Algebra int

const (
	// Fermion operators anticommute among themselves.
	Fermion Algebra = iota

	// Boson operators commute among themselves.
	Boson

	// GeneralAlgebra operators carry no known relation; both
	// CommutesWith and AnticommutesWith report false for them.
	GeneralAlgebra
)

// String returns the lowercase algebra name.
func (a Algebra) String() string {
	switch a {
	case Fermion:
		return "fermion"
	case Boson:
		return "boson"
	case GeneralAlgebra:
		return "general"
	default:
		return "unknown"
	}
}

// Operator is a quantum-mechanical operator: a symbol, an index set, a
// role and an algebra tag.
type Operator struct {
	sym     *Symbol
	indices IndexSet
	role    OperatorRole
	algebra Algebra
	props   map[string]string
}

// OperatorOption configures an Operator at construction.
type OperatorOption func(*Operator)

// WithRole overrides the default RoleGeneral.
func WithRole(r OperatorRole) OperatorOption {
	return func(op *Operator) { op.role = r }
}

// WithAlgebra overrides the default GeneralAlgebra.
func WithAlgebra(a Algebra) OperatorOption {
	return func(op *Operator) { op.algebra = a }
}

// NewOperator creates an operator over a fresh variable symbol.
func NewOperator(name string, indices IndexSet, opts ...OperatorOption) Operator {
	return NewOperatorSym(NewSymbol(name), indices, opts...)
}

// NewOperatorSym creates an operator over a clone of sym.
func NewOperatorSym(sym *Symbol, indices IndexSet, opts ...OperatorOption) Operator {
	op := Operator{sym: sym.Clone(), indices: indices.Clone(), role: RoleGeneral, algebra: GeneralAlgebra}
	for _, opt := range opts {
		opt(&op)
	}
	return op
}

// Creation builds a fermionic creation operator a†[p].
func Creation(p Index, opts ...OperatorOption) Operator {
	base := []OperatorOption{WithRole(RoleCreation), WithAlgebra(Fermion)}
	return NewOperator("a", NewIndexSet(p), append(base, opts...)...)
}

// Annihilation builds a fermionic annihilation operator a[p].
func Annihilation(p Index, opts ...OperatorOption) Operator {
	base := []OperatorOption{WithRole(RoleAnnihilation), WithAlgebra(Fermion)}
	return NewOperator("a", NewIndexSet(p), append(base, opts...)...)
}

// Number builds a fermionic number operator n[p].
func Number(p Index, opts ...OperatorOption) Operator {
	base := []OperatorOption{WithRole(RoleNumber), WithAlgebra(Fermion)}
	return NewOperator("n", NewIndexSet(p), append(base, opts...)...)
}

// Symbol returns the operator's symbol.
func (op Operator) Symbol() *Symbol { return op.sym }

// Name returns the operator's symbol name.
func (op Operator) Name() string { return op.sym.Name() }

// Indices returns the operator's index set.
func (op Operator) Indices() IndexSet { return op.indices }

// Role returns the operator role.
func (op Operator) Role() OperatorRole { return op.role }

// Algebra returns the operator's statistics tag.
func (op Operator) Algebra() Algebra { return op.algebra }

// IsCreation reports role == RoleCreation.
func (op Operator) IsCreation() bool { return op.role == RoleCreation }

// IsAnnihilation reports role == RoleAnnihilation.
func (op Operator) IsAnnihilation() bool { return op.role == RoleAnnihilation }

// IsNumber reports role == RoleNumber.
func (op Operator) IsNumber() bool { return op.role == RoleNumber }

// IsFermionic reports algebra == Fermion.
func (op Operator) IsFermionic() bool { return op.algebra == Fermion }

// IsBosonic reports algebra == Boson.
func (op Operator) IsBosonic() bool { return op.algebra == Boson }

// SetProperty attaches (or overwrites) a string property.
func (op *Operator) SetProperty(key, value string) {
	if op.props == nil {
		op.props = make(map[string]string)
	}
	op.props[key] = value
}

// Property returns the property value for key, or "" when absent.
func (op Operator) Property(key string) string { return op.props[key] }

// HasProperty reports whether key is set.
func (op Operator) HasProperty(key string) bool {
	_, ok := op.props[key]
	return ok
}

// AnticommutesWith reports whether op and other anticommute: true iff
// both carry Fermion algebra. GeneralAlgebra operators carry no known
// relation and report false.
func (op Operator) AnticommutesWith(other Operator) bool {
	return op.algebra == Fermion && other.algebra == Fermion
}

// CommutesWith reports whether op and other commute: true iff both
// carry Boson algebra. GeneralAlgebra operators carry no known relation
// and report false.
func (op Operator) CommutesWith(other Operator) bool {
	return op.algebra == Boson && other.algebra == Boson
}

// Adjoint swaps creation and annihilation roles; every other role is
// its own adjoint here.
func (op Operator) Adjoint() Operator {
	out := op.Clone()
	switch op.role {
	case RoleCreation:
		out.role = RoleAnnihilation
	case RoleAnnihilation:
		out.role = RoleCreation
	}
	return out
}

// HermitianConjugate is the adjoint for single operators.
func (op Operator) HermitianConjugate() Operator { return op.Adjoint() }

// Equal compares symbol, indices, role and algebra.
func (op Operator) Equal(other Operator) bool {
	return op.sym.Equal(other.sym) &&
		op.indices.Equal(other.indices) &&
		op.role == other.role &&
		op.algebra == other.algebra
}

// Less orders operators by name, then role.
func (op Operator) Less(other Operator) bool {
	if op.Name() != other.Name() {
		return op.Name() < other.Name()
	}
	return op.role < other.role
}

// Hash is consistent with Equal.
func (op Operator) Hash() uint64 {
	h := op.sym.Hash()
	h = HashCombine(h, op.indices.Hash())
	h = HashCombine(h, HashUint(uint64(op.role)))
	h = HashCombine(h, HashUint(uint64(op.algebra)))
	return h
}

// Clone deep-copies the operator.
func (op Operator) Clone() Operator {
	c := op
	c.sym = op.sym.Clone()
	c.indices = op.indices.Clone()
	if op.props != nil {
		c.props = make(map[string]string, len(op.props))
		for k, v := range op.props {
			c.props[k] = v
		}
	}
	return c
}

// String renders "a†[p]" for creation operators, "a[p]" otherwise.
func (op Operator) String() string {
	s := op.sym.String()
	if op.role == RoleCreation {
		s += "†"
	}
	if !op.indices.Empty() {
		s += "[" + op.indices.String() + "]"
	}
	return s
}

// OperatorProduct is an ordered product of operators with a scalar
// coefficient and a normal-ordered flag. The empty product is the
// identity.
type OperatorProduct struct {
	ops           []Operator
	coeff         float64
	normalOrdered bool
}

// NewProduct builds a product of clones of the given operators with
// coefficient 1.
func NewProduct(ops ...Operator) OperatorProduct {
	p := OperatorProduct{coeff: 1}
	for _, op := range ops {
		p.ops = append(p.ops, op.Clone())
	}
	return p
}

// Operators returns a copy of the operator sequence.
func (p OperatorProduct) Operators() []Operator {
	out := make([]Operator, len(p.ops))
	for i, op := range p.ops {
		out[i] = op.Clone()
	}
	return out
}

// At returns the i-th operator.
func (p OperatorProduct) At(i int) Operator { return p.ops[i] }

// Len returns the number of operators in the product.
func (p OperatorProduct) Len() int { return len(p.ops) }

// Coefficient returns the scalar coefficient.
func (p OperatorProduct) Coefficient() float64 { return p.coeff }

// SetCoefficient replaces the scalar coefficient.
func (p *OperatorProduct) SetCoefficient(c float64) { p.coeff = c }

// IsNormalOrdered reports whether the product has been marked normal
// ordered.
func (p OperatorProduct) IsNormalOrdered() bool { return p.normalOrdered }

// SetNormalOrdered marks (or unmarks) the product as normal ordered.
func (p *OperatorProduct) SetNormalOrdered(ordered bool) { p.normalOrdered = ordered }

// Append adds an operator at the end of the product; any normal-ordered
// mark is dropped.
func (p *OperatorProduct) Append(op Operator) {
	p.ops = append(p.ops, op.Clone())
	p.normalOrdered = false
}

// Mul concatenates two products; coefficients multiply.
func (p OperatorProduct) Mul(other OperatorProduct) OperatorProduct {
	out := OperatorProduct{coeff: p.coeff * other.coeff}
	out.ops = append(out.ops, p.Operators()...)
	out.ops = append(out.ops, other.Operators()...)
	return out
}

// Scale multiplies the coefficient by factor.
func (p OperatorProduct) Scale(factor float64) OperatorProduct {
	out := p.Clone()
	out.coeff *= factor
	return out
}

// Equal compares coefficient and pairwise operator equality, order
// included. The normal-ordered mark is bookkeeping, not identity.
func (p OperatorProduct) Equal(other OperatorProduct) bool {
	if p.coeff != other.coeff || len(p.ops) != len(other.ops) {
		return false
	}
	for i := range p.ops {
		if !p.ops[i].Equal(other.ops[i]) {
			return false
		}
	}
	return true
}

// Hash is order-sensitive and consistent with Equal.
func (p OperatorProduct) Hash() uint64 {
	h := HashFloat(p.coeff)
	for _, op := range p.ops {
		h = HashCombine(h, op.Hash())
	}
	return h
}

// Clone deep-copies the product.
func (p OperatorProduct) Clone() OperatorProduct {
	return OperatorProduct{ops: p.Operators(), coeff: p.coeff, normalOrdered: p.normalOrdered}
}

// String renders "coeff * op1 op2 ...", omitting a coefficient of
// exactly 1; the empty product renders its coefficient alone.
func (p OperatorProduct) String() string {
	if len(p.ops) == 0 {
		return FormatValue(p.coeff)
	}
	parts := make([]string, len(p.ops))
	for i, op := range p.ops {
		parts[i] = op.String()
	}
	body := strings.Join(parts, " ")
	if p.coeff == 1 {
		return body
	}
	return FormatValue(p.coeff) + " * " + body
}

// SingleExcitation builds a†[a] a[i], the singles excitation from
// occupied i into virtual a.
func SingleExcitation(i, a Index) OperatorProduct {
	return NewProduct(Creation(a), Annihilation(i))
}

// DoubleExcitation builds a†[a] a†[b] a[j] a[i].
func DoubleExcitation(i, j, a, b Index) OperatorProduct {
	return NewProduct(Creation(a), Creation(b), Annihilation(j), Annihilation(i))
}
