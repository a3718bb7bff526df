// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/dataframe/base/errors"
	"cogentcore.org/dataframe/column"
	"cogentcore.org/dataframe/scalar"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var (
	// ErrMalformedSource is returned when a source can not be read as
	// delimited text. [FromSource] degrades to an empty Table instead.
	ErrMalformedSource = errors.New("malformed source")

	// ErrMalformedRow is returned for a data row whose number of fields
	// differs from the number of header fields.
	ErrMalformedRow = errors.New("malformed row")

	// ErrUnparseableSchema is returned when the column kinds can not be
	// established from the first data row.
	ErrUnparseableSchema = errors.New("unparseable schema")

	// ErrUnknownColumn is returned when a requested column name does not exist.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrTypeMismatch is [scalar.ErrTypeMismatch].
	ErrTypeMismatch = scalar.ErrTypeMismatch

	// ErrOverflow is [column.ErrOverflow].
	ErrOverflow = column.ErrOverflow

	// ErrIndexOutOfRange is [column.ErrIndexOutOfRange].
	ErrIndexOutOfRange = column.ErrIndexOutOfRange

	// ErrInvalidRange is [column.ErrInvalidRange].
	ErrInvalidRange = column.ErrInvalidRange

	// ErrInvalidArgument is [column.ErrInvalidArgument].
	ErrInvalidArgument = column.ErrInvalidArgument
)

// suggestThreshold is the minimum similarity for a column name
// to be suggested in place of an unknown one.
const suggestThreshold = 0.5

// unknownColumn returns an error wrapping [ErrUnknownColumn] for
// the given name, suggesting the most similar existing column name.
func (dt *Table) unknownColumn(name string) error {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", 0.0
	for _, cl := range dt.columns {
		sim := strutil.Similarity(name, cl.Name(), lev)
		if sim > bestSim {
			best, bestSim = cl.Name(), sim
		}
	}
	if bestSim >= suggestThreshold {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownColumn, name, best)
	}
	return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}
