// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/dataframe/column"
)

// Scalings are column scalings by column name, as returned by
// [Table.Standardize] and [Table.Normalize] and applied by [Table.Rescale].
type Scalings map[string]column.Scaling

// Standardize returns a new table in which the named numeric columns are
// rescaled to zero mean and unit variance (see [column.Column.StandardScaling]),
// along with the scalings used, which can be applied to another table such as
// the testing table of a [Table.Split] with [Table.Rescale].
func (dt *Table) Standardize(names ...string) (*Table, Scalings, error) {
	return dt.fitScalings("table.Standardize", (*column.Column).StandardScaling, names)
}

// Normalize returns a new table in which the named numeric columns are
// rescaled to the range [0, 1] (see [column.Column.MinMaxScaling]),
// along with the scalings used, as in [Table.Standardize].
func (dt *Table) Normalize(names ...string) (*Table, Scalings, error) {
	return dt.fitScalings("table.Normalize", (*column.Column).MinMaxScaling, names)
}

func (dt *Table) fitScalings(fn string, fit func(*column.Column) (column.Scaling, error), names []string) (*Table, Scalings, error) {
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("%s: %w: no column names", fn, ErrInvalidArgument)
	}
	scs := make(Scalings, len(names))
	for _, nm := range names {
		cl, err := dt.ColumnByName(nm)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", fn, err)
		}
		scs[nm], err = fit(cl)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", fn, err)
		}
	}
	nt, err := dt.Rescale(scs)
	if err != nil {
		return nil, nil, err
	}
	return nt, scs, nil
}

// Rescale returns a new table in which the columns named in scs are
// rescaled with their scaling, as [scalar.Float64] columns.
// Other columns are copied unchanged.
func (dt *Table) Rescale(scs Scalings) (*Table, error) {
	idxs := make(map[int]column.Scaling, len(scs))
	for nm, sc := range scs {
		idx, err := dt.ColumnIndex(nm)
		if err != nil {
			return nil, fmt.Errorf("table.Rescale: %w", err)
		}
		idxs[idx] = sc
	}
	cols := make([]*column.Column, len(dt.columns))
	for ci, cl := range dt.columns {
		sc, ok := idxs[ci]
		if !ok {
			cols[ci] = cl.Clone()
			continue
		}
		var err error
		if cols[ci], err = cl.Rescale(sc); err != nil {
			return nil, fmt.Errorf("table.Rescale: %w", err)
		}
	}
	return dt.newDerived(cols, dt.rows), nil
}
