// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"strings"
)

// CellSep separates the cells of a row in [Table.Head] and [Table.String].
const CellSep = "  |  "

// DefaultHeadRows is the number of rows shown by [Table.Head] by default.
const DefaultHeadRows = 6

// elideRows is the number of rows at and above which [Table.String]
// only shows the first and last rows.
const elideRows = 10

// Head returns the column names followed by the first n rows, with
// n defaulting to [DefaultHeadRows]. Fewer rows are shown if the table
// has fewer than n. It returns an error wrapping [ErrInvalidArgument]
// if n < 1.
func (dt *Table) Head(n ...int) (string, error) {
	nr := DefaultHeadRows
	if len(n) > 0 {
		nr = n[0]
	}
	if nr < 1 {
		return "", fmt.Errorf("table.Head: %w: number of rows %d must be positive", ErrInvalidArgument, nr)
	}
	nr = min(nr, dt.rows)
	var b strings.Builder
	dt.writeHeader(&b)
	for ri := range nr {
		dt.writeRow(&b, ri)
	}
	return b.String(), nil
}

// Info returns a summary of the shape of the table and the name
// and kind of each column.
func (dt *Table) Info() string {
	var b strings.Builder
	b.WriteString("Table info:\n")
	fmt.Fprintf(&b, "Dimension : [ %d, %d ]\n\nColumns:\n", dt.rows, len(dt.columns))
	for _, cl := range dt.columns {
		fmt.Fprintf(&b, "   %s - %v\n", cl.Name(), cl.Kind())
	}
	return b.String()
}

// String returns the column names followed by all rows. Tables with
// 10 or more rows show the first 6 and the last 5 rows, separated
// by three lines of dots.
func (dt *Table) String() string {
	var b strings.Builder
	dt.writeHeader(&b)
	if dt.rows < elideRows {
		for ri := range dt.rows {
			dt.writeRow(&b, ri)
		}
		return b.String()
	}
	for ri := range DefaultHeadRows {
		dt.writeRow(&b, ri)
	}
	dots := strings.Repeat("       .", len(dt.columns)) + "\n"
	b.WriteString(strings.Repeat(dots, 3))
	for ri := dt.rows - 5; ri < dt.rows; ri++ {
		dt.writeRow(&b, ri)
	}
	return b.String()
}

func (dt *Table) writeHeader(b *strings.Builder) {
	for _, cl := range dt.columns {
		b.WriteString(cl.Name())
		b.WriteString(CellSep)
	}
	b.WriteString("\n")
}

func (dt *Table) writeRow(b *strings.Builder, row int) {
	for _, cl := range dt.columns {
		b.WriteString(cl.At(row).String())
		b.WriteString(CellSep)
	}
	b.WriteString("\n")
}
