// Command nfa2dfa converts an automaton with ε transitions, stored as a semicolon separated table,
// into an equivalent deterministic automaton.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
