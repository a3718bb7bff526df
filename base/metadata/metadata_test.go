// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData(t *testing.T) {
	var md Data
	md.SetName("advertising")
	md.SetDoc("sales by channel")
	md.SetFilename("testdata/advertising.csv")
	assert.Equal(t, "advertising", md.Name())
	assert.Equal(t, "sales by channel", md.Doc())
	assert.Equal(t, "testdata/advertising.csv", md.Filename())

	md.Set("precision", 4)
	p, err := Get[int](md, "precision")
	require.NoError(t, err)
	assert.Equal(t, 4, p)
	_, err = Get[string](md, "precision")
	assert.Error(t, err)
	_, err = Get[int](md, "missing")
	assert.Error(t, err)

	var empty Data
	assert.Equal(t, "", empty.Name())
}

func TestCopy(t *testing.T) {
	src := Data{"Name": "a", "tags": []string{"x", "y"}}
	var cp Data
	cp.Copy(src)
	cp.SetName("b")
	assert.Equal(t, "a", src.Name())

	cp.Copy(nil)
	assert.Equal(t, "b", cp.Name())
}

func TestCopyDeep(t *testing.T) {
	src := Data{
		"Name":   "a",
		"tags":   []string{"x", "y"},
		"counts": map[string]int{"x": 1},
		"none":   nil,
	}
	var cp Data
	require.NoError(t, cp.CopyDeep(src))
	assert.Equal(t, src, cp)

	cp["tags"].([]string)[0] = "z"
	cp["counts"].(map[string]int)["x"] = 2
	assert.Equal(t, "x", src["tags"].([]string)[0])
	assert.Equal(t, 1, src["counts"].(map[string]int)["x"])

	var nothing Data
	require.NoError(t, nothing.CopyDeep(nil))
	assert.Nil(t, nothing)
}
