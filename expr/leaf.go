package expr

import "github.com/katalvlaran/qcalgebra/core"

// SymbolExpr is a leaf holding a symbol.
type SymbolExpr struct {
	sym *core.Symbol
}

// Symbol creates a symbol leaf over a clone of sym.
func Symbol(sym *core.Symbol) *SymbolExpr {
	return &SymbolExpr{sym: sym.Clone()}
}

// Sym returns the captured symbol.
func (e *SymbolExpr) Sym() *core.Symbol { return e.sym }

func (e *SymbolExpr) Kind() Kind       { return KindSymbol }
func (e *SymbolExpr) Children() []Expr { return nil }
func (e *SymbolExpr) Clone() Expr      { return &SymbolExpr{sym: e.sym.Clone()} }
func (e *SymbolExpr) String() string   { return e.sym.String() }

func (e *SymbolExpr) Equal(other Expr) bool {
	o, ok := other.(*SymbolExpr)
	return ok && e.sym.Equal(o.sym)
}

func (e *SymbolExpr) Hash() uint64 { return e.sym.Hash() }

// Derivative is one when the leaf is the differentiation variable,
// zero otherwise.
func (e *SymbolExpr) Derivative(v *core.Symbol) Expr {
	if e.sym.Equal(v) {
		return One()
	}
	return Zero()
}

// TensorExpr is a leaf holding a tensor.
type TensorExpr struct {
	noDeriv
	tensor core.Tensor
}

// Tensor creates a tensor leaf over a clone of t.
func Tensor(t core.Tensor) *TensorExpr {
	return &TensorExpr{tensor: t.Clone()}
}

// Ten returns the captured tensor.
func (e *TensorExpr) Ten() core.Tensor { return e.tensor }

func (e *TensorExpr) Kind() Kind       { return KindTensor }
func (e *TensorExpr) Children() []Expr { return nil }
func (e *TensorExpr) Clone() Expr      { return &TensorExpr{tensor: e.tensor.Clone()} }
func (e *TensorExpr) String() string   { return e.tensor.String() }

func (e *TensorExpr) Equal(other Expr) bool {
	o, ok := other.(*TensorExpr)
	return ok && e.tensor.Equal(o.tensor)
}

func (e *TensorExpr) Hash() uint64 { return e.tensor.Hash() }

// OperatorExpr is a leaf holding a single operator.
type OperatorExpr struct {
	noDeriv
	op core.Operator
}

// Operator creates an operator leaf over a clone of op.
func Operator(op core.Operator) *OperatorExpr {
	return &OperatorExpr{op: op.Clone()}
}

// Op returns the captured operator.
func (e *OperatorExpr) Op() core.Operator { return e.op }

func (e *OperatorExpr) Kind() Kind       { return KindOperator }
func (e *OperatorExpr) Children() []Expr { return nil }
func (e *OperatorExpr) Clone() Expr      { return &OperatorExpr{op: e.op.Clone()} }
func (e *OperatorExpr) String() string   { return e.op.String() }

func (e *OperatorExpr) Equal(other Expr) bool {
	o, ok := other.(*OperatorExpr)
	return ok && e.op.Equal(o.op)
}

func (e *OperatorExpr) Hash() uint64 { return e.op.Hash() }

// ProductExpr is a leaf holding an operator product.
type ProductExpr struct {
	noDeriv
	product core.OperatorProduct
}

// Product creates an operator-product leaf over a clone of p.
func Product(p core.OperatorProduct) *ProductExpr {
	return &ProductExpr{product: p.Clone()}
}

// Prod returns the captured product.
func (e *ProductExpr) Prod() core.OperatorProduct { return e.product }

func (e *ProductExpr) Kind() Kind       { return KindProduct }
func (e *ProductExpr) Children() []Expr { return nil }
func (e *ProductExpr) Clone() Expr      { return &ProductExpr{product: e.product.Clone()} }
func (e *ProductExpr) String() string   { return e.product.String() }

func (e *ProductExpr) Equal(other Expr) bool {
	o, ok := other.(*ProductExpr)
	return ok && e.product.Equal(o.product)
}

func (e *ProductExpr) Hash() uint64 { return e.product.Hash() }
