// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/dataframe/column"
)

// Select returns a new table with copies of the columns with the given
// names, in the given order. It returns an error wrapping [ErrUnknownColumn]
// for the first name that is not found.
func (dt *Table) Select(names ...string) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("table.Select: %w: no column names", ErrInvalidArgument)
	}
	cols := make([]*column.Column, len(names))
	for i, nm := range names {
		idx, err := dt.ColumnIndex(nm)
		if err != nil {
			return nil, fmt.Errorf("table.Select: %w", err)
		}
		cols[i] = dt.columns[idx].Clone()
	}
	return dt.newDerived(cols, dt.rows), nil
}

// SelectColumn returns a copy of the column with the given name.
// It is the single column version of [Table.Select].
func (dt *Table) SelectColumn(name string) (*column.Column, error) {
	cl, err := dt.ColumnByName(name)
	if err != nil {
		return nil, fmt.Errorf("table.SelectColumn: %w", err)
	}
	return cl.Clone(), nil
}

// Loc returns a new table with copies of the contiguous range of columns
// from the column named start through the column named end, inclusive.
// Names resolve to the first column with the name, and all columns in
// the positional range are included, whatever their names.
// It returns an error wrapping [ErrInvalidRange] if start comes after end.
func (dt *Table) Loc(start, end string) (*Table, error) {
	si, err := dt.ColumnIndex(start)
	if err != nil {
		return nil, fmt.Errorf("table.Loc: %w", err)
	}
	ei, err := dt.ColumnIndex(end)
	if err != nil {
		return nil, fmt.Errorf("table.Loc: %w", err)
	}
	if si > ei {
		return nil, fmt.Errorf("table.Loc: %w: column %q (%d) comes after column %q (%d)", ErrInvalidRange, start, si, end, ei)
	}
	cols := make([]*column.Column, 0, ei-si+1)
	for _, cl := range dt.columns[si : ei+1] {
		cols = append(cols, cl.Clone())
	}
	return dt.newDerived(cols, dt.rows), nil
}

// ILocCell returns the value at the given row and column index,
// as a column with one value.
func (dt *Table) ILocCell(row, col int) (*column.Column, error) {
	if row < 0 || row >= dt.rows || col < 0 || col >= len(dt.columns) {
		return nil, fmt.Errorf("table.ILocCell: %w: cell [%d, %d] is not in table of shape [%d, %d]", ErrIndexOutOfRange, row, col, dt.rows, len(dt.columns))
	}
	return dt.columns[col].Slice(row, row)
}

// ILoc returns a new table with the rectangular range of rows and
// columns from startRow, startCol through endRow, endCol, inclusive.
// It returns an error wrapping [ErrInvalidRange] if the range is empty
// or extends outside of the table.
func (dt *Table) ILoc(startRow, startCol, endRow, endCol int) (*Table, error) {
	switch {
	case startRow < 0 || startCol < 0:
		return nil, fmt.Errorf("table.ILoc: %w: negative start [%d, %d]", ErrInvalidRange, startRow, startCol)
	case startRow > endRow || startCol > endCol:
		return nil, fmt.Errorf("table.ILoc: %w: start [%d, %d] is after end [%d, %d]", ErrInvalidRange, startRow, startCol, endRow, endCol)
	case endRow >= dt.rows || endCol >= len(dt.columns):
		return nil, fmt.Errorf("table.ILoc: %w: end [%d, %d] is not in table of shape [%d, %d]", ErrInvalidRange, endRow, endCol, dt.rows, len(dt.columns))
	}
	cols := make([]*column.Column, 0, endCol-startCol+1)
	for _, cl := range dt.columns[startCol : endCol+1] {
		sl, err := cl.Slice(startRow, endRow)
		if err != nil {
			return nil, err
		}
		cols = append(cols, sl)
	}
	return dt.newDerived(cols, endRow-startRow+1), nil
}

// SelectRows returns a new table with copies of the rows at the given
// indexes, in the given order. Indexes may repeat.
func (dt *Table) SelectRows(idxs ...int) (*Table, error) {
	for _, ri := range idxs {
		if ri < 0 || ri >= dt.rows {
			return nil, fmt.Errorf("table.SelectRows: %w: row %d is not in [0..%d)", ErrIndexOutOfRange, ri, dt.rows)
		}
	}
	cols := make([]*column.Column, len(dt.columns))
	for ci, cl := range dt.columns {
		b, err := column.New(cl.Kind(), len(idxs), cl.Name())
		if err != nil {
			return nil, err
		}
		for _, ri := range idxs {
			if err := b.Append(cl.At(ri)); err != nil {
				return nil, err
			}
		}
		cols[ci] = b.Finish()
	}
	return dt.newDerived(cols, len(idxs)), nil
}
