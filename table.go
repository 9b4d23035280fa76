package automaton

import (
	"fmt"
	"slices"
)

// Table The column/row layout of an automaton: one column per state, one row per input symbol. The first
// column is the start state.
type Table struct {
	// States Column headers.
	States []State
	// Final Final[i] is true if States[i] is final. May be shorter than States; missing entries are false.
	Final []bool
	Rows  []Row
}

// Row The transitions of every state on one symbol. Cells[i] holds the destinations from States[i];
// an empty cell means no transition. May be shorter than States.
type Row struct {
	Symbol Symbol
	Cells  [][]State
}

// Export Returns the table of the automaton in its current, not necessarily deterministic, form. The start
// state is the first column and the other states follow in ascending order; rows are sorted by symbol.
func (a *Automaton) Export() *Table {
	states := a.states.Values()
	if i := slices.Index(states, a.startState); i > 0 {
		states = slices.Delete(states, i, i+1)
		states = slices.Insert(states, 0, a.startState)
	}

	t := &Table{
		States: states,
		Final:  make([]bool, len(states)),
	}
	for i, state := range states {
		t.Final[i] = a.IsFinalState(state)
	}

	for _, symbol := range a.inputs.Values() {
		row := Row{
			Symbol: symbol,
			Cells:  make([][]State, len(states)),
		}
		for i, state := range states {
			row.Cells[i] = a.Next(state, symbol)
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// FromTable Builds and validates the automaton described by t.
func FromTable(t *Table) (*Automaton, error) {
	if len(t.States) == 0 {
		return nil, fmt.Errorf("%w: table has no states", ErrMalformedAutomaton)
	}

	b := NewBuilder()
	for i, state := range t.States {
		b.AddState(state, i < len(t.Final) && t.Final[i])
	}
	b.SetStart(t.States[0])

	for _, row := range t.Rows {
		if len(row.Cells) > len(t.States) {
			return nil, fmt.Errorf("%w: row %q has %d cells for %d states",
				ErrMalformedAutomaton, row.Symbol, len(row.Cells), len(t.States))
		}
		b.AddInput(row.Symbol)
		for i, cell := range row.Cells {
			if len(cell) == 0 {
				continue
			}
			b.AddTransition(t.States[i], row.Symbol, cell...)
		}
	}

	return b.Build()
}
