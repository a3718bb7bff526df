// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"

	"cogentcore.org/dataframe/scalar"
)

// Builder fills the values of a new [Column] up to a capacity
// that is fixed when the Builder is made. Call [Builder.Finish]
// to obtain the Column.
type Builder struct {
	col *Column
}

// New returns a new [Builder] for a column of given kind, capacity and name.
func New(kind scalar.Kind, capacity int, name string) (*Builder, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("column.New: %w: negative capacity %d for column %q", ErrInvalidArgument, capacity, name)
	}
	return &Builder{col: &Column{
		name:     name,
		kind:     kind,
		capacity: capacity,
		values:   make([]scalar.Value, 0, capacity),
	}}, nil
}

// Name returns the name of the column being built.
func (b *Builder) Name() string { return b.col.name }

// Kind returns the kind of the column being built.
func (b *Builder) Kind() scalar.Kind { return b.col.kind }

// Len returns the number of values appended so far.
func (b *Builder) Len() int { return len(b.col.values) }

// Cap returns the fixed capacity.
func (b *Builder) Cap() int { return b.col.capacity }

// Append appends the given value, which must be of the column kind
// (null values included). It returns an error wrapping [ErrOverflow]
// if the column is already full.
func (b *Builder) Append(v scalar.Value) error {
	if b.col == nil {
		return fmt.Errorf("column.Builder.Append: %w: builder is already finished", ErrInvalidArgument)
	}
	if len(b.col.values) == b.col.capacity {
		return fmt.Errorf("column.Builder.Append: %w: column %q is full at %d values", ErrOverflow, b.col.name, b.col.capacity)
	}
	if err := scalar.Check(b.col.kind, v); err != nil {
		return fmt.Errorf("column.Builder.Append: column %q: %w", b.col.name, err)
	}
	b.col.values = append(b.col.values, v)
	return nil
}

// AppendString parses the given token as the column kind and appends it.
// An empty token is appended as a null value.
func (b *Builder) AppendString(str string) error {
	if b.col == nil {
		return fmt.Errorf("column.Builder.AppendString: %w: builder is already finished", ErrInvalidArgument)
	}
	v, err := scalar.Parse(b.col.kind, str)
	if err != nil {
		return fmt.Errorf("column.Builder.AppendString: column %q: %w", b.col.name, err)
	}
	return b.Append(v)
}

// Finish returns the built [Column]. The Builder can not be
// used after Finish.
func (b *Builder) Finish() *Column {
	cl := b.col
	b.col = nil
	return cl
}
