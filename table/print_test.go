// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHead(t *testing.T) {
	dt := smallTable(t)
	hd, err := dt.Head(2)
	require.NoError(t, err)
	assert.Equal(t, "a  |  b  |  \n1  |  x  |  \n2  |  y  |  \n", hd)

	hd, err = dt.Head()
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(hd, "\n"))

	_, err = dt.Head(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	hd, err = advertising(t).Head()
	require.NoError(t, err)
	assert.Equal(t, 1+DefaultHeadRows, strings.Count(hd, "\n"))
}

func TestInfo(t *testing.T) {
	dt := smallTable(t)
	assert.Equal(t, "Table info:\nDimension : [ 3, 2 ]\n\nColumns:\n   a - Int16\n   b - String\n", dt.Info())
	assert.Equal(t, "Table info:\nDimension : [ 0, 0 ]\n\nColumns:\n", New().Info())
}

func TestString(t *testing.T) {
	dt := smallTable(t)
	assert.Equal(t, "a  |  b  |  \n1  |  x  |  \n2  |  y  |  \n3  |  z  |  \n", dt.String())

	lines := strings.Split(strings.TrimSuffix(advertising(t).String(), "\n"), "\n")
	require.Len(t, lines, 1+6+3+5)
	assert.Equal(t, "TV  |  Radio  |  Newspaper  |  Sales  |  ", lines[0])
	assert.Equal(t, "230.1  |  37.8  |  69.2  |  22.1  |  ", lines[1])
	assert.Equal(t, "8.7  |  48.9  |  75  |  7.2  |  ", lines[6])
	assert.Equal(t, strings.Repeat("       .", 4), lines[7])
	assert.Equal(t, "120.2  |  19.6  |  11.6  |  13.2  |  ", lines[10])
	assert.Equal(t, "214.7  |  24  |  4  |  17.4  |  ", lines[14])
}
