package automaton

import "fmt"

// Transition Holds the destinations reached from Source on Symbol. More than one destination means
// the transition is nondeterministic. A transition never has an empty destination set.
type Transition struct {
	Source State
	Symbol Symbol
	Dest   *StateSet
}

// NewTransition Creates a transition, returns ErrMalformedAutomaton if dests is empty.
func NewTransition(source State, symbol Symbol, dests ...State) (*Transition, error) {
	if len(dests) == 0 {
		return nil, fmt.Errorf("%w: transition %s -%s-> has no destination", ErrMalformedAutomaton, source, symbol)
	}
	return &Transition{
		Source: source,
		Symbol: symbol,
		Dest:   NewStateSet(dests...),
	}, nil
}

func (t *Transition) String() string {
	return fmt.Sprintf("%s -%s-> {%s}", t.Source, t.Symbol, t.Dest)
}

// TransitionFunction Maps state -> symbol -> transition.
type TransitionFunction map[State]map[Symbol]*Transition

// Add Merges dests into the transition leaving source on symbol, creating it if needed.
func (f TransitionFunction) Add(source State, symbol Symbol, dests ...State) error {
	if t := f.Get(source, symbol); t != nil {
		t.Dest.AddAll(dests...)
		return nil
	}

	t, err := NewTransition(source, symbol, dests...)
	if err != nil {
		return err
	}

	bySymbol, ok := f[source]
	if !ok {
		bySymbol = make(map[Symbol]*Transition)
		f[source] = bySymbol
	}
	bySymbol[symbol] = t
	return nil
}

// Get Returns the transition leaving source on symbol, or nil.
func (f TransitionFunction) Get(source State, symbol Symbol) *Transition {
	bySymbol, ok := f[source]
	if !ok {
		return nil
	}
	return bySymbol[symbol]
}

// Count How many (state, symbol) entries the function holds.
func (f TransitionFunction) Count() int {
	n := 0
	for _, bySymbol := range f {
		n += len(bySymbol)
	}
	return n
}

func (f TransitionFunction) clone() TransitionFunction {
	c := make(TransitionFunction, len(f))
	for source, bySymbol := range f {
		m := make(map[Symbol]*Transition, len(bySymbol))
		for symbol, t := range bySymbol {
			m[symbol] = &Transition{
				Source: t.Source,
				Symbol: t.Symbol,
				Dest:   t.Dest.Clone(),
			}
		}
		c[source] = m
	}
	return c
}
