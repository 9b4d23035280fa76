package automaton

import "github.com/bits-and-blooms/bitset"

// Run Returns true if the automaton accepts s, reading every rune of s as one symbol.
func Run(a *Automaton, s string) bool {
	symbols := make([]Symbol, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, Symbol(string(r)))
	}
	return RunSymbols(a, symbols)
}

// RunSymbols Returns true if the automaton accepts the sequence of symbols. Nondeterministic automata are
// simulated on sets of states, following Epsilon transitions between symbols. Malformed automata accept
// nothing.
func RunSymbols(a *Automaton, symbols []Symbol) bool {
	index := newStateIndex(a.states)
	startID, ok := index.id(a.startState)
	if !ok {
		return false
	}
	closures, err := epsilonClosures(a, index)
	if err != nil {
		return false
	}

	current := bitset.New(index.len())
	current.InPlaceUnion(closures[startID])

	for _, symbol := range symbols {
		if symbol == Epsilon {
			return false
		}
		bits, err := move(a, index, closures, freeze(current), symbol)
		if err != nil || bits.None() {
			return false
		}
		current = augment(bits, closures)
	}

	return freeze(current).intersects(index, a.finalStates)
}
