package automaton

import (
	"slices"
	"strings"
)

// State Identifies a state. States are compared and ordered as plain strings.
type State string

// Symbol Identifies an input letter, or the reserved Epsilon marker.
type Symbol string

// Epsilon The non-consuming symbol. It is never a member of a deterministic automaton's alphabet.
const Epsilon Symbol = "ε"

// StateSet A set of states. Iteration through Values is always in ascending order.
type StateSet struct {
	inner map[State]struct{}
}

func NewStateSet(states ...State) *StateSet {
	s := &StateSet{
		inner: make(map[State]struct{}, len(states)),
	}
	s.AddAll(states...)
	return s
}

// Add Adds a state, returns true if it was not present yet.
func (s *StateSet) Add(state State) bool {
	if _, ok := s.inner[state]; ok {
		return false
	}
	s.inner[state] = struct{}{}
	return true
}

func (s *StateSet) AddAll(states ...State) {
	for _, state := range states {
		s.inner[state] = struct{}{}
	}
}

// Union Adds every member of other.
func (s *StateSet) Union(other *StateSet) {
	if other == nil {
		return
	}
	for state := range other.inner {
		s.inner[state] = struct{}{}
	}
}

func (s *StateSet) Remove(state State) {
	delete(s.inner, state)
}

func (s *StateSet) Contains(state State) bool {
	if s == nil {
		return false
	}
	_, ok := s.inner[state]
	return ok
}

// Intersects Returns true if at least one state is a member of both sets.
func (s *StateSet) Intersects(other *StateSet) bool {
	if s == nil || other == nil {
		return false
	}
	small, large := s, other
	if small.Size() > large.Size() {
		small, large = large, small
	}
	for state := range small.inner {
		if large.Contains(state) {
			return true
		}
	}
	return false
}

func (s *StateSet) Size() int {
	if s == nil {
		return 0
	}
	return len(s.inner)
}

// Values Returns the members sorted ascending.
func (s *StateSet) Values() []State {
	if s == nil {
		return nil
	}
	values := make([]State, 0, len(s.inner))
	for state := range s.inner {
		values = append(values, state)
	}
	slices.Sort(values)
	return values
}

func (s *StateSet) Clone() *StateSet {
	c := &StateSet{
		inner: make(map[State]struct{}, s.Size()),
	}
	c.Union(s)
	return c
}

func (s *StateSet) Equals(other *StateSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	for state := range s.inner {
		if !other.Contains(state) {
			return false
		}
	}
	return true
}

// String Joins the sorted members with commas, the way destination cells are written.
func (s *StateSet) String() string {
	values := s.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}

// SymbolSet A set of input symbols, iterated in ascending order.
type SymbolSet struct {
	inner map[Symbol]struct{}
}

func NewSymbolSet(symbols ...Symbol) *SymbolSet {
	s := &SymbolSet{
		inner: make(map[Symbol]struct{}, len(symbols)),
	}
	for _, symbol := range symbols {
		s.inner[symbol] = struct{}{}
	}
	return s
}

func (s *SymbolSet) Add(symbol Symbol) {
	s.inner[symbol] = struct{}{}
}

func (s *SymbolSet) Contains(symbol Symbol) bool {
	if s == nil {
		return false
	}
	_, ok := s.inner[symbol]
	return ok
}

func (s *SymbolSet) Size() int {
	if s == nil {
		return 0
	}
	return len(s.inner)
}

// Without Returns a copy of the set with symbol removed.
func (s *SymbolSet) Without(symbol Symbol) *SymbolSet {
	c := NewSymbolSet()
	for k := range s.inner {
		if k != symbol {
			c.inner[k] = struct{}{}
		}
	}
	return c
}

// Values Returns the members sorted ascending.
func (s *SymbolSet) Values() []Symbol {
	if s == nil {
		return nil
	}
	values := make([]Symbol, 0, len(s.inner))
	for symbol := range s.inner {
		values = append(values, symbol)
	}
	slices.Sort(values)
	return values
}
