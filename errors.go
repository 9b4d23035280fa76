package automaton

import "errors"

var (
	// ErrMalformedAutomaton The automaton references a state or symbol it does not declare, or has an
	// empty transition.
	ErrMalformedAutomaton = errors.New("malformed automaton")

	// ErrTooComplexToDeterminize Subset construction discovered more composite states than the work
	// limit allows.
	ErrTooComplexToDeterminize = errors.New("automaton too complex to determinize")
)
