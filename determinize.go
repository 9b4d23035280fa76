package automaton

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// CompositePrefix Prefix of the state names produced by determinization.
const CompositePrefix = "S"

type determinizeOptions struct {
	workLimit int
}

type DeterminizeOption func(*determinizeOptions)

// WithWorkLimit Fails with ErrTooComplexToDeterminize once more than limit composite states are
// discovered. Zero or a negative limit means no limit.
func WithWorkLimit(limit int) DeterminizeOption {
	return func(o *determinizeOptions) {
		o.workLimit = limit
	}
}

// Determinize Replaces the automaton with an equivalent deterministic one. Does nothing if Epsilon is not
// part of the alphabet, which is how an already deterministic automaton is recognized. On error the
// automaton is left untouched.
func (a *Automaton) Determinize(options ...DeterminizeOption) error {
	if !a.HasEpsilon() {
		return nil
	}

	d, err := DeterminizeAutomaton(a, options...)
	if err != nil {
		return err
	}
	*a = *d
	return nil
}

// DeterminizeAutomaton Returns a deterministic automaton accepting the same language as a, built by subset
// construction with epsilon elimination. a itself is not modified; if it has no Epsilon in its
// alphabet it is returned as is.
// Worst case complexity: exponential in number of states.
func DeterminizeAutomaton(a *Automaton, options ...DeterminizeOption) (*Automaton, error) {
	if !a.HasEpsilon() {
		return a, nil
	}

	opts := &determinizeOptions{}
	for _, fn := range options {
		fn(opts)
	}

	index := newStateIndex(a.states)
	startID, ok := index.id(a.startState)
	if !ok {
		return nil, fmt.Errorf("%w: start state %q is not a state", ErrMalformedAutomaton, a.startState)
	}

	closures, err := epsilonClosures(a, index)
	if err != nil {
		return nil, err
	}

	inputs := a.inputs.Without(Epsilon)
	symbols := inputs.Values()

	startBits := bitset.New(index.len())
	startBits.Set(startID)
	startBits.InPlaceUnion(closures[startID])
	start := freeze(startBits)

	// subset construction: composite state -> symbol -> composite state
	table := NewHashMap[map[Symbol]*compositeState](WithCapacity(16))
	table.Set(start, map[Symbol]*compositeState{})

	workList := make([]*compositeState, 0)
	workList = append(workList, start)

	for len(workList) > 0 {
		current := workList[0]
		workList = workList[1:]

		next := make(map[Symbol]*compositeState, len(symbols))
		for _, symbol := range symbols {
			bits, err := move(a, index, closures, current, symbol)
			if err != nil {
				return nil, err
			}
			if bits.None() {
				continue
			}

			dest := freeze(augment(bits, closures))
			if key, ok := table.Key(dest); ok {
				dest = key.(*compositeState)
			} else {
				if opts.workLimit > 0 && table.Size() >= opts.workLimit {
					return nil, fmt.Errorf("%w: more than %d states", ErrTooComplexToDeterminize, opts.workLimit)
				}
				table.Set(dest, map[Symbol]*compositeState{})
				workList = append(workList, dest)
			}
			next[symbol] = dest
		}

		table.Set(current, next)
	}

	return rebuild(a, index, table, start, inputs), nil
}

// move Collects every state reached on symbol from the closure of a member of current.
func move(a *Automaton, index *stateIndex, closures []*bitset.BitSet,
	current *compositeState, symbol Symbol) (*bitset.BitSet, error) {

	bits := bitset.New(index.len())
	for m, ok := current.bits.NextSet(0); ok; m, ok = current.bits.NextSet(m + 1) {
		closure := closures[m]
		for s, more := closure.NextSet(0); more; s, more = closure.NextSet(s + 1) {
			t := a.transitions.Get(index.state(s), symbol)
			if t == nil {
				continue
			}
			for dest := range t.Dest.inner {
				id, found := index.id(dest)
				if !found {
					return nil, fmt.Errorf("%w: destination %q of %s is not a state", ErrMalformedAutomaton, dest, t)
				}
				bits.Set(id)
			}
		}
	}
	return bits, nil
}

// augment Adds the epsilon-closure of every member that has one.
func augment(bits *bitset.BitSet, closures []*bitset.BitSet) *bitset.BitSet {
	out := bits.Clone()
	for n, ok := bits.NextSet(0); ok; n, ok = bits.NextSet(n + 1) {
		if closures[n].Count() > 1 {
			out.InPlaceUnion(closures[n])
		}
	}
	return out
}

// rebuild Names every composite state and builds the deterministic automaton. The start composite state
// is S0, the others are numbered in ascending order of their sorted member lists.
func rebuild(a *Automaton, index *stateIndex, table *HashMap[map[Symbol]*compositeState],
	start *compositeState, inputs *SymbolSet) *Automaton {

	composites := make([]*compositeState, 0, table.Size())
	for key := range table.Iterator() {
		c := key.(*compositeState)
		if c != start {
			composites = append(composites, c)
		}
	}
	slices.SortFunc(composites, func(x, y *compositeState) int {
		return x.compare(y)
	})
	composites = slices.Insert(composites, 0, start)

	names := make(map[*compositeState]State, len(composites))
	for i, c := range composites {
		names[c] = State(fmt.Sprintf("%s%d", CompositePrefix, i))
	}

	states := NewStateSet()
	finalStates := NewStateSet()
	transitions := make(TransitionFunction, len(composites))
	origin := make(map[State][]State, len(composites))

	for _, c := range composites {
		name := names[c]
		states.Add(name)
		origin[name] = c.members(index)
		if c.intersects(index, a.finalStates) {
			finalStates.Add(name)
		}

		next, _ := table.Get(c)
		bySymbol := make(map[Symbol]*Transition, len(next))
		for symbol, dest := range next {
			bySymbol[symbol] = &Transition{
				Source: name,
				Symbol: symbol,
				Dest:   NewStateSet(names[dest]),
			}
		}
		transitions[name] = bySymbol
	}

	return &Automaton{
		inputs:      inputs,
		states:      states,
		transitions: transitions,
		startState:  names[start],
		finalStates: finalStates,
		origin:      origin,
	}
}

// Composite Returns the original states a state produced by determinization stands for, sorted. Returns
// nil for automata that were not produced by determinization.
func (a *Automaton) Composite(state State) []State {
	if a.origin == nil {
		return nil
	}
	return slices.Clone(a.origin[state])
}
