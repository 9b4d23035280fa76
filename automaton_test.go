package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAutomaton(t *testing.T) {
	transitions := make(TransitionFunction)
	require.NoError(t, transitions.Add("A", "a", "B", "A"))

	a := NewAutomaton([]Symbol{"a"}, []State{"B", "A"}, transitions, "A", "B")
	assert.Equal(t, []State{"A", "B"}, a.States())
	assert.Equal(t, State("A"), a.StartState())
	assert.True(t, a.IsFinalState("B"))
	assert.False(t, a.IsFinalState("A"))
	assert.False(t, a.IsDeterministic())
	assert.False(t, a.HasEpsilon())
	assert.NoError(t, a.Validate())
	assert.Equal(t, "start: A\nfinal: {B}\n  A -a-> {A,B}\n", a.String())
}

func TestBuilder(t *testing.T) {
	t.Run("first state is start", func(t *testing.T) {
		a, err := NewBuilder().
			AddState("x", false).
			AddState("y", true).
			AddState("x", true).
			AddTransition("x", "0", "y").
			Build()
		require.NoError(t, err)
		assert.Equal(t, State("x"), a.StartState())
		assert.Equal(t, []State{"x", "y"}, a.FinalStates())
		assert.True(t, a.IsDeterministic())
	})

	t.Run("no states", func(t *testing.T) {
		_, err := NewBuilder().Build()
		assert.ErrorIs(t, err, ErrMalformedAutomaton)
	})

	t.Run("empty transition", func(t *testing.T) {
		_, err := NewBuilder().
			AddState("x", true).
			AddTransition("x", "a").
			AddTransition("x", "b", "x").
			Build()
		assert.ErrorIs(t, err, ErrMalformedAutomaton)
	})

	t.Run("undeclared start", func(t *testing.T) {
		_, err := NewBuilder().AddState("x", true).SetStart("y").Build()
		assert.ErrorIs(t, err, ErrMalformedAutomaton)
	})

	t.Run("builder reuse does not leak", func(t *testing.T) {
		b := NewBuilder().AddState("x", true).AddTransition("x", "a", "x")
		first, err := b.Build()
		require.NoError(t, err)

		b.AddState("y", false).AddTransition("x", "a", "y")
		assert.Equal(t, []State{"x"}, first.Next("x", "a"))
		assert.Equal(t, []State{"x"}, first.States())
	})
}

func TestValidate(t *testing.T) {
	valid := func() TransitionFunction {
		f := make(TransitionFunction)
		_ = f.Add("A", "a", "B")
		return f
	}

	tests := []struct {
		name string
		a    *Automaton
	}{
		{"start", NewAutomaton([]Symbol{"a"}, []State{"A", "B"}, valid(), "Z", "B")},
		{"final", NewAutomaton([]Symbol{"a"}, []State{"A", "B"}, valid(), "A", "Z")},
		{"symbol", NewAutomaton([]Symbol{"b"}, []State{"A", "B"}, valid(), "A", "B")},
		{"destination", NewAutomaton([]Symbol{"a"}, []State{"A"}, valid(), "A", "A")},
		{"source", func() *Automaton {
			f := valid()
			_ = f.Add("Q", "a", "A")
			return NewAutomaton([]Symbol{"a"}, []State{"A", "B"}, f, "A", "B")
		}()},
		{"empty", func() *Automaton {
			f := valid()
			f["A"]["a"].Dest = NewStateSet()
			return NewAutomaton([]Symbol{"a"}, []State{"A", "B"}, f, "A", "B")
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.a.Validate(), ErrMalformedAutomaton)
		})
	}
}

func TestClone(t *testing.T) {
	a := scenarioNFA(t)
	c := a.Clone()
	require.NoError(t, c.Determinize())

	assert.True(t, a.HasEpsilon())
	assert.Equal(t, []State{"A", "B", "C"}, a.States())
	assert.Equal(t, []State{"S0", "S1"}, c.States())

	d := c.Clone()
	assert.Equal(t, c.Composite("S0"), d.Composite("S0"))
}
