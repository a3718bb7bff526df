// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const advertising = "../../table/testdata/advertising.csv"

func writeFile(t *testing.T, name, text string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(text), 0o644))
	return fn
}

func TestDefaults(t *testing.T) {
	cfg, err := parseArgs([]string{"data.csv"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "data.csv", cfg.File)
	assert.Equal(t, 6, cfg.Head)
	assert.Equal(t, 0.8, cfg.Split)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestParseArgs(t *testing.T) {
	cfg, err := parseArgs([]string{"-head", "3", "-seed", "9", "-dependent", "Sales", "-independent", `TV "Radio Ads"`, "-v", "data.csv"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Head)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.True(t, cfg.Verbose)
	names, err := cfg.IndependentNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"TV", "Radio Ads"}, names)

	_, err = parseArgs(nil, &bytes.Buffer{})
	assert.Error(t, err)
	_, err = parseArgs([]string{"a.csv", "b.csv"}, &bytes.Buffer{})
	assert.Error(t, err)
	_, err = parseArgs([]string{"-h"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestConfigFiles(t *testing.T) {
	tf := writeFile(t, "run.toml", "file = \"ads.csv\"\nhead = 2\nsplit = 0.5\ndependent = \"Sales\"\nindependent = \"TV\"\n")
	cfg, err := parseArgs([]string{"-config", tf, "-head", "4"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "ads.csv", cfg.File)
	assert.Equal(t, 4, cfg.Head)
	assert.Equal(t, 0.5, cfg.Split)
	assert.Equal(t, "Sales", cfg.Dependent)

	yf := writeFile(t, "run.yaml", "file: ads.csv\nseed: 12\nunbiased: true\n")
	cfg, err = parseArgs([]string{"-config", yf}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), cfg.Seed)
	assert.True(t, cfg.Unbiased)
	assert.Equal(t, 6, cfg.Head)

	bad := writeFile(t, "run.ini", "file=ads.csv\n")
	_, err = parseArgs([]string{"-config", bad}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	cfg.File = advertising
	cfg.Head = 2
	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Contains(t, out.String(), "Dimension : [ 12, 4 ]")
	assert.Contains(t, out.String(), "230.1  |  37.8  |  69.2  |  22.1  |  \n")
	assert.NotContains(t, out.String(), "Regressor")

	cfg.Dependent = "Sales"
	cfg.Independent = "TV"
	cfg.Seed = 5
	out.Reset()
	require.NoError(t, run(cfg, &out))
	assert.Contains(t, out.String(), "Regressor: Sales ~ TV\n")
	assert.Contains(t, out.String(), "Train R^2:")
	assert.Contains(t, out.String(), "Test R^2:")

	cfg.Independent = "Weather"
	assert.Error(t, run(cfg, &out))

	cfg.File = "missing.csv"
	assert.Error(t, run(cfg, &out))
}
