// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"cogentcore.org/dataframe/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestStandardize(t *testing.T) {
	dt := advertising(t)
	dt.SetSeed(4)
	train, test, err := dt.Split(0.75)
	require.NoError(t, err)

	st, scs, err := train.Standardize("TV", "Radio")
	require.NoError(t, err)
	require.Len(t, scs, 2)
	assert.Equal(t, train.ColumnNames(), st.ColumnNames())
	assert.Equal(t, scalar.Float64, st.Column(0).Kind())
	assert.Equal(t, scalar.Float32, st.Column(2).Kind())
	assert.Equal(t, train.Column(2).String(), st.Column(2).String())

	tv, _, err := st.Column(0).Floats()
	require.NoError(t, err)
	mean, std := stat.PopMeanStdDev(tv, nil)
	assert.InDelta(t, 0, mean, 1e-9)
	assert.InDelta(t, 1, std, 1e-9)

	ts, err := test.Rescale(scs)
	require.NoError(t, err)
	raw, _, err := test.Column(0).Floats()
	require.NoError(t, err)
	got, _, err := ts.Column(0).Floats()
	require.NoError(t, err)
	assert.InDelta(t, (raw[0]-scs["TV"].Offset)/scs["TV"].Scale, got[0], 1e-12)
}

func TestNormalize(t *testing.T) {
	nm, scs, err := advertising(t).Normalize("Sales")
	require.NoError(t, err)
	sales, _, err := nm.Column(3).Floats()
	require.NoError(t, err)
	for _, s := range sales {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
	assert.InDelta(t, 4.8, scs["Sales"].Offset, 1e-5)

	_, _, err = advertising(t).Normalize()
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, _, err = advertising(t).Normalize("Profit")
	assert.ErrorIs(t, err, ErrUnknownColumn)
	_, _, err = smallTable(t).Standardize("b")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
