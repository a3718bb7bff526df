// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/dataframe/base/errors"
	"cogentcore.org/dataframe/base/metadata"
	"cogentcore.org/dataframe/column"
)

// Table is an ordered set of [column.Column]s that all have the same
// number of rows. The shape of a Table is fixed when it is made:
// selection, slicing and splitting operations return new Tables with
// their own copies of the column data, so results never share
// storage with the Table they came from.
type Table struct {
	// columns in display and position order.
	columns []*column.Column

	// rows is the common length of all columns.
	rows int

	// seed is the random seed used by [Table.Split], if set.
	seed *int64

	// Meta is misc metadata for the table. The standard keys,
	// with accessor methods on [metadata.Data], are:
	//	- Name string = name of table
	//	- Doc string = documentation, description
	//	- Filename string = file the table was read from
	Meta metadata.Data
}

// New returns a new empty Table, with zero rows and columns.
// Can pass an optional name which sets metadata.
func New(name ...string) *Table {
	dt := &Table{}
	if len(name) > 0 {
		dt.Meta.SetName(name[0])
	}
	return dt
}

// FromColumns returns a new Table with copies of the given columns,
// which must all have the same length.
func FromColumns(cols ...*column.Column) (*Table, error) {
	dt := New()
	for i, cl := range cols {
		if cl == nil {
			return nil, fmt.Errorf("table.FromColumns: %w: column %d is nil", ErrInvalidArgument, i)
		}
		if i > 0 && cl.Len() != dt.rows {
			return nil, fmt.Errorf("table.FromColumns: %w: column %q has %d rows, expected %d", ErrInvalidArgument, cl.Name(), cl.Len(), dt.rows)
		}
		dt.rows = cl.Len()
		dt.columns = append(dt.columns, cl.Clone())
	}
	return dt, nil
}

// newDerived returns a new Table from columns that were already copied
// from dt, carrying over the seed and metadata of dt.
func (dt *Table) newDerived(cols []*column.Column, rows int) *Table {
	nt := &Table{columns: cols, rows: rows}
	if dt.seed != nil {
		s := *dt.seed
		nt.seed = &s
	}
	nt.Meta.Copy(dt.Meta)
	return nt
}

// Clone returns a complete copy of this table, with its own copies
// of all columns, the same seed, and a deep copy of the metadata.
func (dt *Table) Clone() *Table {
	cols := make([]*column.Column, len(dt.columns))
	for i, cl := range dt.columns {
		cols[i] = cl.Clone()
	}
	cp := &Table{columns: cols, rows: dt.rows}
	if dt.seed != nil {
		s := *dt.seed
		cp.seed = &s
	}
	errors.Log(cp.Meta.CopyDeep(dt.Meta))
	return cp
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return dt.rows }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return len(dt.columns) }

// Shape returns the number of rows and columns.
func (dt *Table) Shape() (rows, cols int) {
	return dt.rows, len(dt.columns)
}

// Column returns the column at the given index, which must be valid.
// Columns are not modified after they are made, so the returned
// column can be used freely.
func (dt *Table) Column(idx int) *column.Column {
	return dt.columns[idx]
}

// ColumnName returns the name of the column at the given index.
func (dt *Table) ColumnName(idx int) string {
	return dt.columns[idx].Name()
}

// ColumnNames returns the names of all columns, in order.
func (dt *Table) ColumnNames() []string {
	nms := make([]string, len(dt.columns))
	for i, cl := range dt.columns {
		nms[i] = cl.Name()
	}
	return nms
}

// ColumnIndex returns the index of the first column with the given name,
// or an error wrapping [ErrUnknownColumn] if there is none.
func (dt *Table) ColumnIndex(name string) (int, error) {
	for i, cl := range dt.columns {
		if cl.Name() == name {
			return i, nil
		}
	}
	return -1, dt.unknownColumn(name)
}

// ColumnByName returns the first column with the given name,
// or an error wrapping [ErrUnknownColumn] if there is none.
func (dt *Table) ColumnByName(name string) (*column.Column, error) {
	idx, err := dt.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	return dt.columns[idx], nil
}

// SetSeed sets the random seed used by [Table.Split], which makes
// the partition deterministic.
func (dt *Table) SetSeed(seed int64) {
	dt.seed = &seed
}

// Seed returns the random seed, and false if none has been set.
func (dt *Table) Seed() (int64, bool) {
	if dt.seed == nil {
		return 0, false
	}
	return *dt.seed, true
}

// ClearSeed removes the random seed, so that [Table.Split]
// uses the global random source.
func (dt *Table) ClearSeed() {
	dt.seed = nil
}
