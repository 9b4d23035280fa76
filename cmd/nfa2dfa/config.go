package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "NFA2DFA"

var (
	errNoInput  = errors.New("no input file given")
	errNoOutput = errors.New("no output file given")
)

// Config Settings of one run. Flags win over environment variables, which win over the config file.
type Config struct {
	Input     string
	Output    string
	WorkLimit int
	Verbose   bool
}

// flagKeys config key -> flag name
var flagKeys = map[string]string{
	"input":      "input",
	"output":     "output",
	"work_limit": "work-limit",
	"verbose":    "verbose",
}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet, cfgFile string) (*Config, error) {
	v.SetDefault("work_limit", 0)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", cfgFile, err)
		}
	}

	return &Config{
		Input:     v.GetString("input"),
		Output:    v.GetString("output"),
		WorkLimit: v.GetInt("work_limit"),
		Verbose:   v.GetBool("verbose"),
	}, nil
}

func (c *Config) validate() error {
	if c.Input == "" {
		return errNoInput
	}
	if c.Output == "" {
		return errNoOutput
	}
	if c.WorkLimit < 0 {
		return fmt.Errorf("work limit must not be negative, got %d", c.WorkLimit)
	}
	return nil
}
