// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column provides Column, a named, fixed-kind sequence of
// optional scalar values, and Builder, the fixed-capacity append-only
// writer that produces it.
package column

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/dataframe/scalar"
)

var (
	// ErrOverflow is returned when appending to a full [Builder].
	ErrOverflow = errors.New("column overflow")

	// ErrIndexOutOfRange is returned for an index outside of [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidRange is returned for an invalid start / end range.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidArgument is returned when an argument violates a precondition.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch is [scalar.ErrTypeMismatch], repeated here for convenience.
	ErrTypeMismatch = scalar.ErrTypeMismatch
)

// Column is a named sequence of optional scalar values that all
// have the same [scalar.Kind]. A Column is not modified after it
// is made by [Builder.Finish]; all operations on it return new
// Columns with their own storage.
type Column struct {
	name     string
	kind     scalar.Kind
	capacity int
	values   []scalar.Value
}

// FromValues returns a new full Column with the given values,
// which must all be of the given kind.
func FromValues(kind scalar.Kind, name string, values ...scalar.Value) (*Column, error) {
	b, err := New(kind, len(values), name)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := b.Append(v); err != nil {
			return nil, err
		}
	}
	return b.Finish(), nil
}

// Name returns the name of the column.
func (cl *Column) Name() string { return cl.name }

// Kind returns the kind of all values in the column.
func (cl *Column) Kind() scalar.Kind { return cl.kind }

// Len returns the number of values in the column.
func (cl *Column) Len() int { return len(cl.values) }

// Cap returns the number of slots that were reserved for the column.
func (cl *Column) Cap() int { return cl.capacity }

// Value returns the value at given index, which must be in [0, Len).
func (cl *Column) Value(i int) (scalar.Value, error) {
	if i < 0 || i >= len(cl.values) {
		return scalar.Value{}, fmt.Errorf("column.Value: %w: %d is not in [0..%d) for column %q", ErrIndexOutOfRange, i, len(cl.values), cl.name)
	}
	return cl.values[i], nil
}

// At returns the value at given index without error checking:
// it panics if i is out of range, like a slice index.
func (cl *Column) At(i int) scalar.Value { return cl.values[i] }

// Values returns a copy of the values in the column.
func (cl *Column) Values() []scalar.Value { return slices.Clone(cl.values) }

// Slice returns a new Column with the values from start to end,
// inclusive, which must both be valid indexes with start <= end.
func (cl *Column) Slice(start, end int) (*Column, error) {
	n := len(cl.values)
	if start < 0 || start > end || start >= n || end >= n {
		return nil, fmt.Errorf("column.Slice: %w: [%d..%d] for column %q of length %d", ErrInvalidRange, start, end, cl.name, n)
	}
	vals := slices.Clone(cl.values[start : end+1])
	return &Column{name: cl.name, kind: cl.kind, capacity: len(vals), values: vals}, nil
}

// Clone returns a deep copy of the column, with its own storage.
func (cl *Column) Clone() *Column {
	cp := *cl
	cp.values = slices.Clone(cl.values)
	return &cp
}

// Floats returns the numeric values of the column as float64s, along
// with a parallel mask that is false for null values. It returns an
// error wrapping [ErrTypeMismatch] for non-numeric columns.
func (cl *Column) Floats() ([]float64, []bool, error) {
	if !cl.kind.IsNumeric() {
		return nil, nil, fmt.Errorf("column.Floats: %w: column %q is %v, not numeric", ErrTypeMismatch, cl.name, cl.kind)
	}
	fs := make([]float64, len(cl.values))
	ok := make([]bool, len(cl.values))
	for i, v := range cl.values {
		fs[i], ok[i] = v.Float()
	}
	return fs, ok, nil
}

// String returns the values of the column as a bracketed list.
func (cl *Column) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for i, v := range cl.values {
		b.WriteString(v.String())
		b.WriteString(" ")
		if i < len(cl.values)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}
