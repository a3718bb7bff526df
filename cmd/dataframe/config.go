// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/dataframe/base/fsx"
	"github.com/mattn/go-shellwords"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config has the settings for a run of the dataframe command.
// Settings are applied in order from [Config.Defaults], the
// config file if any, and then the command line flags.
type Config struct {
	// File is the comma-separated-values file to read.
	File string `toml:"file" yaml:"file"`

	// Head is the number of rows to print from the start of the table.
	Head int `toml:"head" yaml:"head"`

	// Seed is the random seed for the train / test split.
	// No seed is set if it is 0.
	Seed int64 `toml:"seed" yaml:"seed"`

	// Split is the fraction of rows used for training the regressor,
	// and the rest for testing it.
	Split float64 `toml:"split" yaml:"split"`

	// Dependent is the name of the dependent variable column.
	// No regression is run if it is empty.
	Dependent string `toml:"dependent" yaml:"dependent"`

	// Independent has the names of the independent variable columns,
	// separated by spaces. Names containing spaces can be quoted.
	Independent string `toml:"independent" yaml:"independent"`

	// Unbiased uses an unbiased shuffle for the split.
	Unbiased bool `toml:"unbiased" yaml:"unbiased"`

	// Verbose shows info messages.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// VeryVerbose shows debug messages.
	VeryVerbose bool `toml:"very_verbose" yaml:"very_verbose"`

	// Quiet only shows error messages.
	Quiet bool `toml:"quiet" yaml:"quiet"`
}

// Defaults sets the default settings.
func (cfg *Config) Defaults() {
	cfg.Head = 6
	cfg.Split = 0.8
}

// IndependentNames returns the names in [Config.Independent].
func (cfg *Config) IndependentNames() ([]string, error) {
	names, err := shellwords.Parse(cfg.Independent)
	if err != nil {
		return nil, fmt.Errorf("independent %q: %w", cfg.Independent, err)
	}
	return names, nil
}

// Open reads settings from the given TOML or YAML config file,
// as determined by its extension.
func (cfg *Config) Open(filename string) error {
	filename, err := fsx.ExpandHome(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("config file %q must have a .toml, .yaml or .yml extension", filename)
	}
	if err != nil {
		return fmt.Errorf("config file %q: %w", filename, err)
	}
	return nil
}

// parseArgs returns the config for the given command line arguments,
// which override the settings of any config file given with -config.
// The file to read can also be given as the only positional argument.
func parseArgs(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	cfg.Defaults()

	fl := flag.NewFlagSet("dataframe", flag.ContinueOnError)
	fl.SetOutput(output)
	fl.Usage = func() {
		fmt.Fprintf(output, "Dataframe reads a table from a CSV file, prints it, and fits a linear regression.\n")
		fmt.Fprintf(output, "Usage:\n\tdataframe [flags] [file.csv]\nFlags:\n")
		fl.PrintDefaults()
	}
	config := fl.String("config", "", "TOML or YAML config `file` with settings, which flags override")
	fl.StringVar(&cfg.File, "file", cfg.File, "CSV `file` to read")
	fl.IntVar(&cfg.Head, "head", cfg.Head, "number of rows to print")
	fl.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the split (0 for none)")
	fl.Float64Var(&cfg.Split, "split", cfg.Split, "fraction of rows used for training")
	fl.StringVar(&cfg.Dependent, "dependent", cfg.Dependent, "dependent variable column")
	fl.StringVar(&cfg.Independent, "independent", cfg.Independent, "space separated independent variable columns")
	fl.BoolVar(&cfg.Unbiased, "unbiased", cfg.Unbiased, "use an unbiased shuffle for the split")
	fl.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "show info messages")
	fl.BoolVar(&cfg.VeryVerbose, "vv", cfg.VeryVerbose, "show debug messages")
	fl.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "only show error messages")
	if err := fl.Parse(args); err != nil {
		return nil, err
	}

	if *config != "" {
		if err := cfg.Open(*config); err != nil {
			return nil, err
		}
		// flags given explicitly take precedence over the file
		if err := fl.Parse(args); err != nil {
			return nil, err
		}
	}
	switch fl.NArg() {
	case 0:
	case 1:
		cfg.File = fl.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one file argument, got %d", fl.NArg())
	}
	if cfg.File == "" {
		return nil, fmt.Errorf("no file given")
	}
	return cfg, nil
}
