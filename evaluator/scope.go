package evaluator

import (
	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/hash"
)

type (
	basicScope struct {
		bindings *hash.StringHash
	}

	parentedScope struct {
		basicScope
		parent dsl.Scope
	}
)

// NewScope creates a new top level scope
func NewScope() dsl.Scope {
	return &basicScope{hash.NewStringHash(8)}
}

// NewParentedScope creates a scope that will override its parent. When a value isn't found in this
// scope, the search continues in the parent scope.
//
// All new or updated values will end up in this scope, i.e. no modifications are ever propagated to
// the parent scope.
func NewParentedScope(parent dsl.Scope) dsl.Scope {
	return &parentedScope{basicScope{hash.NewStringHash(4)}, parent}
}

func (s *basicScope) Get(name string) (dsl.Value, bool) {
	return s.bindings.Get(name)
}

func (s *basicScope) Set(name string, value dsl.Value) {
	s.bindings.Put(name, value)
}

func (s *basicScope) Derive() dsl.Scope {
	return NewParentedScope(s)
}

func (s *basicScope) Names() []string {
	return s.bindings.Keys()
}

func (s *parentedScope) Get(name string) (dsl.Value, bool) {
	if v, ok := s.bindings.Get(name); ok {
		return v, true
	}
	return s.parent.Get(name)
}

func (s *parentedScope) Derive() dsl.Scope {
	return NewParentedScope(s)
}
