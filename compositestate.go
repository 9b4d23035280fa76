package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// stateIndex Numbers the states of an automaton in ascending order so subsets can be stored as bitsets.
type stateIndex struct {
	states []State
	ids    map[State]uint
}

func newStateIndex(states *StateSet) *stateIndex {
	values := states.Values()
	ids := make(map[State]uint, len(values))
	for i, state := range values {
		ids[state] = uint(i)
	}
	return &stateIndex{
		states: values,
		ids:    ids,
	}
}

func (x *stateIndex) id(state State) (uint, bool) {
	id, ok := x.ids[state]
	return id, ok
}

func (x *stateIndex) state(id uint) State {
	return x.states[id]
}

func (x *stateIndex) len() uint {
	return uint(len(x.states))
}

var _ Hashable = &compositeState{}

// compositeState An immutable set of original states that stands for one state of the deterministic
// automaton. It is only created by freezing a bitset and must not be modified afterwards.
type compositeState struct {
	bits     *bitset.BitSet
	hashCode uint64
}

func freeze(bits *bitset.BitSet) *compositeState {
	return &compositeState{
		bits:     bits,
		hashCode: hashBits(bits),
	}
}

func (c *compositeState) Hash() uint64 {
	return c.hashCode
}

func (c *compositeState) Equals(other Hashable) bool {
	o, ok := other.(*compositeState)
	if !ok {
		return false
	}
	if c == nil || o == nil {
		return c == o
	}
	return c.hashCode == o.hashCode && c.bits.Equal(o.bits)
}

func (c *compositeState) Size() int {
	return int(c.bits.Count())
}

// members Returns the original states, in ascending order.
func (c *compositeState) members(index *stateIndex) []State {
	values := make([]State, 0, c.bits.Count())
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		values = append(values, index.state(i))
	}
	return values
}

// intersects Returns true if any member is in set.
func (c *compositeState) intersects(index *stateIndex, set *StateSet) bool {
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		if set.Contains(index.state(i)) {
			return true
		}
	}
	return false
}

// compare Orders composite states by lexicographic comparison of their sorted member lists. As the
// index is sorted, that is the comparison of the set bit positions.
func (c *compositeState) compare(other *compositeState) int {
	return slices.Compare(setBits(c.bits), setBits(other.bits))
}

func setBits(bits *bitset.BitSet) []uint {
	out := make([]uint, 0, bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		out = append(out, i)
	}
	return out
}
