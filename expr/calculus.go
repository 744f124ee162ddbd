package expr

import (
	"strings"

	"github.com/katalvlaran/qcalgebra/core"
)

// DerivativeExpr is an unevaluated partial derivative ∂/∂v of its child.
type DerivativeExpr struct {
	noDeriv
	child Expr
	v     *core.Symbol
}

// Deriv builds the unevaluated derivative of child with respect to v.
// (Evaluating a derivative symbolically is Expr.Derivative.)
func Deriv(child Expr, v *core.Symbol) *DerivativeExpr {
	return &DerivativeExpr{child: child.Clone(), v: v.Clone()}
}

// Child returns the differentiated expression.
func (e *DerivativeExpr) Child() Expr { return e.child }

// Var returns the differentiation variable.
func (e *DerivativeExpr) Var() *core.Symbol { return e.v }

func (e *DerivativeExpr) Kind() Kind       { return KindDerivative }
func (e *DerivativeExpr) Children() []Expr { return []Expr{e.child} }

func (e *DerivativeExpr) Clone() Expr {
	return &DerivativeExpr{child: e.child.Clone(), v: e.v.Clone()}
}

func (e *DerivativeExpr) String() string {
	return "∂/∂" + e.v.String() + "(" + e.child.String() + ")"
}

func (e *DerivativeExpr) Equal(other Expr) bool {
	o, ok := other.(*DerivativeExpr)
	return ok && e.v.Equal(o.v) && e.child.Equal(o.child)
}

func (e *DerivativeExpr) Hash() uint64 {
	h := kindHash(KindDerivative)
	h = core.HashCombine(h, e.v.Hash())
	h = core.HashCombine(h, e.child.Hash())
	return h
}

// IntegralExpr is an unevaluated integral of its child over v.
type IntegralExpr struct {
	noDeriv
	child Expr
	v     *core.Symbol
}

// Integral builds the unevaluated integral of child over v.
func Integral(child Expr, v *core.Symbol) *IntegralExpr {
	return &IntegralExpr{child: child.Clone(), v: v.Clone()}
}

// Child returns the integrand.
func (e *IntegralExpr) Child() Expr { return e.child }

// Var returns the integration variable.
func (e *IntegralExpr) Var() *core.Symbol { return e.v }

func (e *IntegralExpr) Kind() Kind       { return KindIntegral }
func (e *IntegralExpr) Children() []Expr { return []Expr{e.child} }

func (e *IntegralExpr) Clone() Expr {
	return &IntegralExpr{child: e.child.Clone(), v: e.v.Clone()}
}

func (e *IntegralExpr) String() string {
	return "∫(" + e.child.String() + ")d" + e.v.String()
}

func (e *IntegralExpr) Equal(other Expr) bool {
	o, ok := other.(*IntegralExpr)
	return ok && e.v.Equal(o.v) && e.child.Equal(o.child)
}

func (e *IntegralExpr) Hash() uint64 {
	h := kindHash(KindIntegral)
	h = core.HashCombine(h, e.v.Hash())
	h = core.HashCombine(h, e.child.Hash())
	return h
}

// CallExpr is a general named function applied to n arguments.
type CallExpr struct {
	noDeriv
	name string
	args []Expr
}

// Call builds name(args...).
func Call(name string, args ...Expr) *CallExpr {
	return &CallExpr{name: name, args: cloneAll(args)}
}

// Name returns the function name.
func (e *CallExpr) Name() string { return e.name }

func (e *CallExpr) Kind() Kind       { return KindCall }
func (e *CallExpr) Children() []Expr { return e.args }

func (e *CallExpr) Clone() Expr {
	return &CallExpr{name: e.name, args: cloneAll(e.args)}
}

func (e *CallExpr) String() string {
	parts := make([]string, len(e.args))
	for i, a := range e.args {
		parts[i] = a.String()
	}
	return e.name + "(" + strings.Join(parts, ", ") + ")"
}

func (e *CallExpr) Equal(other Expr) bool {
	o, ok := other.(*CallExpr)
	if !ok || e.name != o.name || len(e.args) != len(o.args) {
		return false
	}
	for i := range e.args {
		if !e.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

func (e *CallExpr) Hash() uint64 {
	h := kindHash(KindCall)
	h = core.HashCombine(h, core.HashString(e.name))
	for _, a := range e.args {
		h = core.HashCombine(h, a.Hash())
	}
	return h
}

// Constants.

// Zero returns the zero expression: a scalar leaf named "0" with value 0.
func Zero() Expr { return Symbol(core.NewScalar("0", 0.0)) }

// One returns the one expression: a scalar leaf named "1" with value 1.
func One() Expr { return Symbol(core.NewScalar("1", 1.0)) }

// Constant returns a scalar leaf whose name is the rendered value.
func Constant(value float64) Expr {
	return Symbol(core.NewScalar(core.FormatValue(value), value))
}
