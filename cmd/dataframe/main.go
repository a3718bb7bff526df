// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dataframe reads a table from a comma-separated-values file,
// prints a summary and the first rows, and optionally splits it into
// training and testing tables to fit and score a linear regression.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/dataframe/base/logx"
	"cogentcore.org/dataframe/stats/linreg"
	"cogentcore.org/dataframe/table"
)

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "dataframe:", err)
		os.Exit(2)
	}
	logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	logx.SetDefaultLogger()
	if err := run(cfg, os.Stdout); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// run does the work of the command for the given config,
// writing results to w.
func run(cfg *Config, w io.Writer) error {
	dt, err := table.ReadSource(table.FileSource(cfg.File))
	if err != nil {
		return err
	}
	slog.Info("read table", "file", cfg.File, "rows", dt.NumRows(), "columns", dt.NumColumns())
	fmt.Fprintln(w, dt.Info())
	head, err := dt.Head(cfg.Head)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, head)

	if cfg.Dependent == "" {
		return nil
	}
	indeps, err := cfg.IndependentNames()
	if err != nil {
		return err
	}
	if cfg.Seed != 0 {
		dt.SetSeed(cfg.Seed)
	}
	train, test, err := dt.SplitWith(cfg.Split, table.SplitOptions{Unbiased: cfg.Unbiased})
	if err != nil {
		return err
	}
	slog.Info("split table", "train", train.NumRows(), "test", test.NumRows())

	rg := linreg.New()
	if err := rg.Fit(train, cfg.Dependent, indeps...); err != nil {
		return err
	}
	fmt.Fprint(w, rg.String())
	r2, err := rg.Score(train)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Train R^2:\t%8.6g\n", r2)
	if r2, err = rg.Score(test); err != nil {
		slog.Warn("could not score test table", "err", err)
		return nil
	}
	fmt.Fprintf(w, "Test R^2:\t%8.6g\n", r2)
	return nil
}
