package scope

import "errors"

// ErrNotInScope indicates a key that is not bound in any live scope.
var ErrNotInScope = errors.New("scope: key not in scope")

// Map is a stack of nested scopes mapping K to V.
//
// Lookup walks scopes innermost-first; Insert always binds in the
// innermost scope. A fresh Map starts with one open scope.
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	scopes []map[K]V
}

// NewMap returns a Map with a single open scope.
func NewMap[K comparable, V any]() *Map[K, V] {
	m := &Map[K, V]{}
	m.Scope()
	return m
}

// Scope opens a new innermost scope.
func (m *Map[K, V]) Scope() {
	m.scopes = append(m.scopes, make(map[K]V))
}

// Unscope discards the innermost scope and every binding in it.
// Unscoping an empty Map is a no-op.
func (m *Map[K, V]) Unscope() {
	if len(m.scopes) > 0 {
		m.scopes = m.scopes[:len(m.scopes)-1]
	}
}

// Depth reports the number of open scopes.
func (m *Map[K, V]) Depth() int { return len(m.scopes) }

// Insert binds key to value in the innermost scope, shadowing any
// binding of key in outer scopes.
func (m *Map[K, V]) Insert(key K, value V) {
	if len(m.scopes) == 0 {
		m.Scope()
	}
	m.scopes[len(m.scopes)-1][key] = value
}

// Lookup resolves key against the innermost scope that binds it.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if v, ok := m.scopes[i][key]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is bound in any live scope.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Remove deletes key from the nearest scope that binds it, or returns
// ErrNotInScope.
func (m *Map[K, V]) Remove(key K) error {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if _, ok := m.scopes[i][key]; ok {
			delete(m.scopes[i], key)
			return nil
		}
	}
	return ErrNotInScope
}
