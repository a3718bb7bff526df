// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"

	"cogentcore.org/dataframe/scalar"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Scaling is a linear rescaling of values, to (x - Offset) / Scale.
// Fit one on a training column and apply it to other columns with
// [Column.Rescale], so that all are scaled the same way.
type Scaling struct {
	Offset float64
	Scale  float64
}

// present returns the non-null values of a numeric column.
func (cl *Column) present() ([]float64, error) {
	fs, ok, err := cl.Floats()
	if err != nil {
		return nil, err
	}
	vals := make([]float64, 0, len(fs))
	for i, f := range fs {
		if ok[i] {
			vals = append(vals, f)
		}
	}
	return vals, nil
}

// StandardScaling returns the [Scaling] to zero mean and unit variance
// of the non-null values, using the population standard deviation.
// A column with no spread only has its mean removed.
func (cl *Column) StandardScaling() (Scaling, error) {
	vals, err := cl.present()
	if err != nil {
		return Scaling{}, fmt.Errorf("column.StandardScaling: %w", err)
	}
	if len(vals) == 0 {
		return Scaling{Scale: 1}, nil
	}
	mean, std := stat.PopMeanStdDev(vals, nil)
	if std == 0 {
		std = 1
	}
	return Scaling{Offset: mean, Scale: std}, nil
}

// MinMaxScaling returns the [Scaling] of the non-null values to the
// range [0, 1]. A column with no spread only has its minimum removed.
func (cl *Column) MinMaxScaling() (Scaling, error) {
	vals, err := cl.present()
	if err != nil {
		return Scaling{}, fmt.Errorf("column.MinMaxScaling: %w", err)
	}
	if len(vals) == 0 {
		return Scaling{Scale: 1}, nil
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	if hi == lo {
		return Scaling{Offset: lo, Scale: 1}, nil
	}
	return Scaling{Offset: lo, Scale: hi - lo}, nil
}

// Rescale returns a new [scalar.Float64] column with the same name and
// the values rescaled by sc. Null values stay null.
func (cl *Column) Rescale(sc Scaling) (*Column, error) {
	if sc.Scale == 0 {
		return nil, fmt.Errorf("column.Rescale: %w: zero scale", ErrInvalidArgument)
	}
	fs, ok, err := cl.Floats()
	if err != nil {
		return nil, fmt.Errorf("column.Rescale: %w", err)
	}
	vals := make([]scalar.Value, len(fs))
	for i, f := range fs {
		if !ok[i] {
			vals[i] = scalar.Null(scalar.Float64)
			continue
		}
		vals[i] = scalar.NewFloat64((f - sc.Offset) / sc.Scale)
	}
	return FromValues(scalar.Float64, cl.name, vals...)
}

// Standardize returns the column rescaled by its [Column.StandardScaling].
func (cl *Column) Standardize() (*Column, error) {
	sc, err := cl.StandardScaling()
	if err != nil {
		return nil, err
	}
	return cl.Rescale(sc)
}

// Normalize returns the column rescaled by its [Column.MinMaxScaling].
func (cl *Column) Normalize() (*Column, error) {
	sc, err := cl.MinMaxScaling()
	if err != nil {
		return nil, err
	}
	return cl.Rescale(sc)
}
