package automaton

import (
	"fmt"
	"maps"
	"strings"
)

// Automaton Represents a Moore-style automaton: transitions are labelled by input symbols, any state may
// be final and there is exactly one start state. Before determinization the alphabet may contain
// Epsilon and a (state, symbol) pair may lead to several states. After Determinize the alphabet has
// no Epsilon, every transition has a single destination and states are named S0, S1, ... with S0
// the start state.
type Automaton struct {
	inputs      *SymbolSet
	states      *StateSet
	transitions TransitionFunction
	startState  State
	finalStates *StateSet

	// composite state name -> original states, set by determinization only
	origin map[State][]State
}

// NewAutomaton Builds an automaton from already parsed data. Nothing is validated: startState and
// finalStates must be members of states and transitions must only reference members of states.
// Use Validate, or build through a Builder, to have that checked.
func NewAutomaton(inputs []Symbol, states []State, transitions TransitionFunction,
	startState State, finalStates ...State) *Automaton {

	if transitions == nil {
		transitions = make(TransitionFunction)
	}
	return &Automaton{
		inputs:      NewSymbolSet(inputs...),
		states:      NewStateSet(states...),
		transitions: transitions,
		startState:  startState,
		finalStates: NewStateSet(finalStates...),
	}
}

// IsFinalState Returns true if state is a final state.
func (a *Automaton) IsFinalState(state State) bool {
	return a.finalStates.Contains(state)
}

// IsDeterministic Returns true if the alphabet has no Epsilon and no (state, symbol) pair leads to more
// than one state.
func (a *Automaton) IsDeterministic() bool {
	if a.inputs.Contains(Epsilon) {
		return false
	}
	for _, bySymbol := range a.transitions {
		for _, t := range bySymbol {
			if t.Dest.Size() != 1 {
				return false
			}
		}
	}
	return true
}

// HasEpsilon Returns true if Epsilon is part of the declared alphabet.
func (a *Automaton) HasEpsilon() bool {
	return a.inputs.Contains(Epsilon)
}

// Inputs Returns the declared alphabet, sorted.
func (a *Automaton) Inputs() []Symbol {
	return a.inputs.Values()
}

// States Returns all states, sorted.
func (a *Automaton) States() []State {
	return a.states.Values()
}

func (a *Automaton) StartState() State {
	return a.startState
}

// FinalStates Returns the final states, sorted.
func (a *Automaton) FinalStates() []State {
	return a.finalStates.Values()
}

func (a *Automaton) NumStates() int {
	return a.states.Size()
}

// NumTransitions How many (state, symbol) pairs have a transition.
func (a *Automaton) NumTransitions() int {
	return a.transitions.Count()
}

// Next Returns the sorted destinations of the transition leaving state on symbol, or nil if there is none.
func (a *Automaton) Next(state State, symbol Symbol) []State {
	t := a.transitions.Get(state, symbol)
	if t == nil {
		return nil
	}
	return t.Dest.Values()
}

// Clone Returns a deep copy.
func (a *Automaton) Clone() *Automaton {
	return &Automaton{
		inputs:      NewSymbolSet(a.inputs.Values()...),
		states:      a.states.Clone(),
		transitions: a.transitions.clone(),
		startState:  a.startState,
		finalStates: a.finalStates.Clone(),
		origin:      maps.Clone(a.origin),
	}
}

// Validate Checks referential integrity: the start state and every final state, transition source and
// transition destination must be a member of the state set, every transition symbol must be declared
// and no transition may be empty.
func (a *Automaton) Validate() error {
	if !a.states.Contains(a.startState) {
		return fmt.Errorf("%w: start state %q is not a state", ErrMalformedAutomaton, a.startState)
	}
	for _, state := range a.finalStates.Values() {
		if !a.states.Contains(state) {
			return fmt.Errorf("%w: final state %q is not a state", ErrMalformedAutomaton, state)
		}
	}

	for source, bySymbol := range a.transitions {
		if !a.states.Contains(source) {
			return fmt.Errorf("%w: transition source %q is not a state", ErrMalformedAutomaton, source)
		}
		for symbol, t := range bySymbol {
			if !a.inputs.Contains(symbol) {
				return fmt.Errorf("%w: symbol %q of %s is not an input", ErrMalformedAutomaton, symbol, t)
			}
			if t.Dest.Size() == 0 {
				return fmt.Errorf("%w: transition %s -%s-> has no destination", ErrMalformedAutomaton, source, symbol)
			}
			for _, dest := range t.Dest.Values() {
				if !a.states.Contains(dest) {
					return fmt.Errorf("%w: destination %q of %s is not a state", ErrMalformedAutomaton, dest, t)
				}
			}
		}
	}
	return nil
}

func (a *Automaton) String() string {
	b := new(strings.Builder)
	fmt.Fprintf(b, "start: %s\n", a.startState)
	fmt.Fprintf(b, "final: {%s}\n", a.finalStates)
	for _, state := range a.states.Values() {
		for _, symbol := range a.inputs.Values() {
			if t := a.transitions.Get(state, symbol); t != nil {
				fmt.Fprintf(b, "  %s\n", t)
			}
		}
	}
	return b.String()
}
