package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// epsilonClosures Computes the transitive epsilon-closure of every state, indexed by state id. Each
// closure contains the state itself plus every state reachable through Epsilon transitions only,
// however many hops away.
func epsilonClosures(a *Automaton, index *stateIndex) ([]*bitset.BitSet, error) {
	n := index.len()
	closures := make([]*bitset.BitSet, n)

	workList := make([]uint, 0)
	for id := uint(0); id < n; id++ {
		closure := bitset.New(n)
		closure.Set(id)

		workList = append(workList[:0], id)
		for len(workList) > 0 {
			s := workList[len(workList)-1]
			workList = workList[:len(workList)-1]

			// closures of lower ids are complete, reuse them
			if s < id {
				closure.InPlaceUnion(closures[s])
				continue
			}

			t := a.transitions.Get(index.state(s), Epsilon)
			if t == nil {
				continue
			}
			for dest := range t.Dest.inner {
				destID, ok := index.id(dest)
				if !ok {
					return nil, fmt.Errorf("%w: epsilon destination %q of %q is not a state",
						ErrMalformedAutomaton, dest, index.state(s))
				}
				if !closure.Test(destID) {
					closure.Set(destID)
					workList = append(workList, destID)
				}
			}
		}

		closures[id] = closure
	}

	return closures, nil
}

// EpsilonClosure Returns state plus every state reachable from it through Epsilon transitions, sorted.
func (a *Automaton) EpsilonClosure(state State) ([]State, error) {
	index := newStateIndex(a.states)
	id, ok := index.id(state)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a state", ErrMalformedAutomaton, state)
	}
	closures, err := epsilonClosures(a, index)
	if err != nil {
		return nil, err
	}
	return freeze(closures[id]).members(index), nil
}
