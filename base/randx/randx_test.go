// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func isPerm(t *testing.T, idx []int) {
	t.Helper()
	s := slices.Clone(idx)
	slices.Sort(s)
	assert.Equal(t, Sequential(len(idx)), s)
}

func TestSwapPermute(t *testing.T) {
	a := Sequential(50)
	b := Sequential(50)
	SwapPermute(a, NewSysRand(7))
	SwapPermute(b, NewSysRand(7))
	assert.Equal(t, a, b)
	assert.NotEqual(t, Sequential(50), a)
	isPerm(t, a)

	c := Sequential(50)
	SwapPermute(c, NewSysRand(8))
	assert.NotEqual(t, a, c)

	g := Sequential(20)
	SwapPermute(g, NewGlobalRand())
	isPerm(t, g)

	var empty []int
	SwapPermute(empty, NewSysRand(1))
	assert.Empty(t, empty)
}

func TestShufflePermute(t *testing.T) {
	a := Sequential(50)
	b := Sequential(50)
	ShufflePermute(a, NewSysRand(3))
	ShufflePermute(b, NewSysRand(3))
	assert.Equal(t, a, b)
	isPerm(t, a)
}

func TestNewRand(t *testing.T) {
	assert.Nil(t, NewRand(nil).Rand)
	seed := int64(42)
	r := NewRand(&seed)
	assert.NotNil(t, r.Rand)
	ref := NewSysRand(42)
	for range 10 {
		assert.Equal(t, ref.Intn(1000), r.Intn(1000))
	}
	n := NewGlobalRand().Intn(5)
	assert.True(t, n >= 0 && n < 5)
}
