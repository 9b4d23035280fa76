package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	automaton "github.com/geange/determinize"
	"github.com/geange/determinize/tabular"
)

func newRootCommand(logOutput io.Writer) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "nfa2dfa [input] [output]",
		Short: "Convert a nondeterministic automaton into a deterministic one",
		Long: `nfa2dfa reads an automaton with epsilon (ε) transitions from a semicolon separated
table, converts it into an equivalent deterministic automaton by subset construction
and writes the result in the same format. States of the result are named S0, S1, ...
with S0 the start state. An input without ε transitions is copied unchanged.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, name := range []string{"input", "output"} {
				if i >= len(args) {
					break
				}
				if err := cmd.Flags().Set(name, args[i]); err != nil {
					return fmt.Errorf("set %s from argument: %w", name, err)
				}
			}

			cfg, err := loadConfig(viper.New(), cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			logger := log.NewWithOptions(logOutput, log.Options{
				Prefix: "nfa2dfa",
				Level:  log.WarnLevel,
			})
			if cfg.Verbose {
				logger.SetLevel(log.DebugLevel)
			}

			if err := run(cfg, logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Executed!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml, toml or json)")
	cmd.Flags().StringP("input", "i", "", "input automaton table")
	cmd.Flags().StringP("output", "o", "", "output automaton table")
	cmd.Flags().Int("work-limit", 0, "maximum number of deterministic states, 0 for no limit")
	cmd.Flags().BoolP("verbose", "v", false, "enable verbose output")

	return cmd
}

func run(cfg *Config, logger *log.Logger) error {
	a, err := tabular.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug("read automaton", "file", cfg.Input,
		"states", a.NumStates(), "transitions", a.NumTransitions(), "inputs", len(a.Inputs()))

	if !a.HasEpsilon() {
		logger.Info("no ε transitions, leaving automaton unchanged")
	}
	if err := a.Determinize(automaton.WithWorkLimit(cfg.WorkLimit)); err != nil {
		return err
	}
	for _, state := range a.States() {
		if composite := a.Composite(state); composite != nil {
			logger.Debug("state", "name", state, "composite", composite, "final", a.IsFinalState(state))
		}
	}
	logger.Debug("determinized", "states", a.NumStates(), "transitions", a.NumTransitions())

	if err := tabular.WriteFile(cfg.Output, a); err != nil {
		return err
	}
	logger.Debug("wrote automaton", "file", cfg.Output)
	return nil
}
