// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"

	"cogentcore.org/dataframe/base/randx"
)

// SplitOptions are options for [Table.SplitWith].
type SplitOptions struct {
	// Unbiased uses a Fisher-Yates shuffle of the rows, in which all
	// orders are equally likely, instead of the default swap of each
	// row with any other row (see [randx.SwapPermute]), which keeps
	// partitions reproducible with those made by earlier versions.
	Unbiased bool
}

// Split partitions the rows of the table into a training table with
// floor(fraction * NumRows) randomly chosen rows, and a testing table
// with the rest. Both have the same columns as this table.
// The rows are shuffled with the seed set by [Table.SetSeed], or
// with the global random source if none is set.
// fraction must be in (0, 1].
func (dt *Table) Split(fraction float64) (train, test *Table, err error) {
	return dt.SplitWith(fraction, SplitOptions{})
}

// SplitWith is [Table.Split] with the given options.
func (dt *Table) SplitWith(fraction float64, opts SplitOptions) (train, test *Table, err error) {
	if !(fraction > 0 && fraction <= 1) {
		return nil, nil, fmt.Errorf("table.Split: %w: fraction %g is not in (0, 1]", ErrInvalidArgument, fraction)
	}
	idxs := randx.Sequential(dt.rows)
	rnd := randx.NewRand(dt.seed)
	if opts.Unbiased {
		randx.ShufflePermute(idxs, rnd)
	} else {
		randx.SwapPermute(idxs, rnd)
	}
	ntrain := trainRows(fraction, dt.rows)
	train, err = dt.SelectRows(idxs[:ntrain]...)
	if err != nil {
		return nil, nil, err
	}
	test, err = dt.SelectRows(idxs[ntrain:]...)
	if err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

// trainRows returns floor(fraction * rows), where a product within
// rounding error of an integer counts as that integer, so that
// 0.29 * 100 is 29 and not 28.
func trainRows(fraction float64, rows int) int {
	x := fraction * float64(rows)
	if r := math.Round(x); math.Abs(x-r) <= 1e-9*math.Max(1, r) {
		return int(r)
	}
	return int(math.Floor(x))
}
