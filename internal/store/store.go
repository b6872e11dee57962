// Package store holds the variables of one interpreter session.
package store

import (
	"github.com/podhmo/snol/internal/value"
)

// Variable is a named, typed value.
type Variable struct {
	Name  string
	Value value.Value
}

// Store is an insertion-ordered collection of variables keyed by name.
// It performs no name validation; callers check identifier syntax first.
// A Store is not safe for concurrent use.
type Store struct {
	vars []Variable
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Find returns the index of name, or false when it is not defined.
// Names are compared case-sensitively.
func (s *Store) Find(name string) (int, bool) {
	for i := range s.vars {
		if s.vars[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// Get returns the value bound to name.
func (s *Store) Get(name string) (value.Value, bool) {
	i, ok := s.Find(name)
	if !ok {
		return nil, false
	}
	return s.vars[i].Value, true
}

// Upsert overwrites the value (and type) of name in place, or appends a new
// variable when name is not yet defined. It reports whether a variable was created.
func (s *Store) Upsert(name string, v value.Value) bool {
	if i, ok := s.Find(name); ok {
		s.vars[i].Value = v
		return false
	}
	s.vars = append(s.vars, Variable{Name: name, Value: v})
	return true
}

// Len returns the number of defined variables.
func (s *Store) Len() int {
	return len(s.vars)
}

// Variables returns a copy of all variables in insertion order.
func (s *Store) Variables() []Variable {
	out := make([]Variable, len(s.vars))
	copy(out, s.vars)
	return out
}
