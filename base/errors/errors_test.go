// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBase = New("base")

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.Equal(t, errBase, Log(errBase))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 12, Log1(strconv.Atoi("12")))
	assert.Equal(t, 0, Log1(strconv.Atoi("x")))
}

func TestIgnore1(t *testing.T) {
	assert.Equal(t, 3, Ignore1(strconv.Atoi("3")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errBase) })
}

func TestReexports(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errBase)
	assert.True(t, Is(wrapped, errBase))
	assert.Equal(t, errBase, Unwrap(wrapped))
	assert.True(t, Is(Join(errBase, nil), errBase))
}

func TestMust1(t *testing.T) {
	assert.Equal(t, 5, Must1(strconv.Atoi("5")))
	assert.Panics(t, func() { Must1(strconv.Atoi("five")) })
}
