package core

import "strconv"

// SymbolKind classifies a Symbol.
type SymbolKind int

const (
	// SymbolScalar is a named numeric scalar (carries a float64 value).
	SymbolScalar SymbolKind = iota

	// SymbolVariable is a free symbolic variable, the default kind.
	SymbolVariable

	// SymbolConstant is a named constant (ħ, π, ...).
	SymbolConstant

	// SymbolComplex is a named complex scalar (carries re/im parts).
	SymbolComplex
)

// String returns the lowercase kind name.
func (k SymbolKind) String() string {
	switch k {
	case SymbolScalar:
		return "scalar"
	case SymbolVariable:
		return "variable"
	case SymbolConstant:
		return "constant"
	case SymbolComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Symbol is a named symbolic entity. Equality and ordering are by
// (name, kind) only; the scalar/complex payload and the property bag do
// not participate.
type Symbol struct {
	name  string
	kind  SymbolKind
	value float64 // scalar payload, meaningful for SymbolScalar
	re    float64 // complex payload, meaningful for SymbolComplex
	im    float64
	props map[string]string
}

// SymbolOption configures a Symbol at construction.
type SymbolOption func(*Symbol)

// WithKind overrides the default SymbolVariable kind.
func WithKind(k SymbolKind) SymbolOption {
	return func(s *Symbol) { s.kind = k }
}

// WithProperty attaches a string property to the symbol.
func WithProperty(key, value string) SymbolOption {
	return func(s *Symbol) { s.SetProperty(key, value) }
}

// NewSymbol creates a variable symbol named name.
func NewSymbol(name string, opts ...SymbolOption) *Symbol {
	s := &Symbol{name: name, kind: SymbolVariable}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewScalar creates a scalar symbol holding value.
func NewScalar(name string, value float64) *Symbol {
	return &Symbol{name: name, kind: SymbolScalar, value: value}
}

// NewConstant creates a named constant symbol.
func NewConstant(name string) *Symbol {
	return &Symbol{name: name, kind: SymbolConstant}
}

// NewComplex creates a complex symbol holding re + im·i.
func NewComplex(name string, re, im float64) *Symbol {
	return &Symbol{name: name, kind: SymbolComplex, re: re, im: im}
}

// Name returns the symbol name.
func (s *Symbol) Name() string { return s.name }

// Kind returns the symbol kind.
func (s *Symbol) Kind() SymbolKind { return s.kind }

// IsScalar reports whether the symbol is a numeric scalar.
func (s *Symbol) IsScalar() bool { return s.kind == SymbolScalar }

// IsVariable reports whether the symbol is a free variable.
func (s *Symbol) IsVariable() bool { return s.kind == SymbolVariable }

// IsConstant reports whether the symbol is a named constant.
func (s *Symbol) IsConstant() bool { return s.kind == SymbolConstant }

// IsComplex reports whether the symbol is a complex scalar.
func (s *Symbol) IsComplex() bool { return s.kind == SymbolComplex }

// Value returns the scalar payload (0 unless the symbol is a scalar).
func (s *Symbol) Value() float64 { return s.value }

// SetValue replaces the scalar payload.
func (s *Symbol) SetValue(v float64) { s.value = v }

// Real returns the real part of a complex symbol.
func (s *Symbol) Real() float64 { return s.re }

// Imag returns the imaginary part of a complex symbol.
func (s *Symbol) Imag() float64 { return s.im }

// SetReal replaces the real part.
func (s *Symbol) SetReal(v float64) { s.re = v }

// SetImag replaces the imaginary part.
func (s *Symbol) SetImag(v float64) { s.im = v }

// SetProperty attaches (or overwrites) a string property.
func (s *Symbol) SetProperty(key, value string) {
	if s.props == nil {
		s.props = make(map[string]string)
	}
	s.props[key] = value
}

// Property returns the property value for key, or "" when absent.
func (s *Symbol) Property(key string) string { return s.props[key] }

// HasProperty reports whether key is set.
func (s *Symbol) HasProperty(key string) bool {
	_, ok := s.props[key]
	return ok
}

// Equal reports (name, kind) equality.
func (s *Symbol) Equal(other *Symbol) bool {
	return other != nil && s.name == other.name && s.kind == other.kind
}

// Less orders symbols by name, then kind.
func (s *Symbol) Less(other *Symbol) bool {
	if s.name != other.name {
		return s.name < other.name
	}
	return s.kind < other.kind
}

// Hash is consistent with Equal: equal symbols hash alike.
func (s *Symbol) Hash() uint64 {
	return HashCombine(HashString(s.name), HashUint(uint64(s.kind)))
}

// Clone returns a deep copy, property bag included.
func (s *Symbol) Clone() *Symbol {
	c := *s
	if s.props != nil {
		c.props = make(map[string]string, len(s.props))
		for k, v := range s.props {
			c.props[k] = v
		}
	}
	return &c
}

// String renders the symbol name, with a kind marker for constants (ᶜ)
// and complex scalars (ℂ).
func (s *Symbol) String() string {
	switch s.kind {
	case SymbolConstant:
		return s.name + "ᶜ"
	case SymbolComplex:
		return s.name + "ℂ"
	default:
		return s.name
	}
}

// FormatValue renders a float the way scalar names are minted: shortest
// representation that round-trips ("2", "0.5", "1e-05").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
