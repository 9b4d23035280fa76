package automaton

import "fmt"

// Builder Collects states, symbols and transitions in any order and produces a validated Automaton.
// The first state added is the start state unless SetStart is called. Adding a transition declares its
// symbol as an input.
type Builder struct {
	inputs      *SymbolSet
	states      []State
	seen        *StateSet
	transitions TransitionFunction
	startState  State
	hasStart    bool
	finalStates *StateSet
	err         error
}

func NewBuilder() *Builder {
	return &Builder{
		inputs:      NewSymbolSet(),
		seen:        NewStateSet(),
		transitions: make(TransitionFunction),
		finalStates: NewStateSet(),
	}
}

// AddInput Declares symbols as part of the alphabet, even if no transition uses them.
func (b *Builder) AddInput(symbols ...Symbol) *Builder {
	for _, symbol := range symbols {
		b.inputs.Add(symbol)
	}
	return b
}

// AddState Declares a state. Adding an existing state again only updates its final flag when final is true.
func (b *Builder) AddState(state State, final bool) *Builder {
	if b.seen.Add(state) {
		b.states = append(b.states, state)
	}
	if final {
		b.finalStates.Add(state)
	}
	return b
}

// SetStart Sets the start state. The state must be added with AddState as well.
func (b *Builder) SetStart(state State) *Builder {
	b.startState = state
	b.hasStart = true
	return b
}

// AddTransition Adds dests to the transition leaving source on symbol.
func (b *Builder) AddTransition(source State, symbol Symbol, dests ...State) *Builder {
	if b.err != nil {
		return b
	}
	b.inputs.Add(symbol)
	if err := b.transitions.Add(source, symbol, dests...); err != nil {
		b.err = err
	}
	return b
}

// Build Returns the automaton, or the first error met while building or validating it.
func (b *Builder) Build() (*Automaton, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.states) == 0 {
		return nil, fmt.Errorf("%w: no states", ErrMalformedAutomaton)
	}

	start := b.startState
	if !b.hasStart {
		start = b.states[0]
	}

	a := &Automaton{
		inputs:      NewSymbolSet(b.inputs.Values()...),
		states:      NewStateSet(b.states...),
		transitions: b.transitions.clone(),
		startState:  start,
		finalStates: b.finalStates.Clone(),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
