// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

//go:generate core generate

// Kind is the closed set of scalar data types that a column can hold.
// The kind of a column is fixed when the column is created.
type Kind int32 //enums:enum

const (
	// Date is a calendar date without a time of day, in ISO form (2006-01-02).
	Date Kind = iota

	// Float32 is a 32-bit floating point number.
	Float32

	// Float64 is a 64-bit floating point number.
	Float64

	// Int16 is a signed 16-bit integer.
	Int16

	// Int32 is a signed 32-bit integer.
	Int32

	// Int64 is a signed 64-bit integer.
	Int64

	// Bool is a true / false value.
	Bool

	// Char is a single unicode character.
	Char

	// String is arbitrary text, and the most general kind.
	String
)

// IsFloat returns true for the floating point kinds.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsInt returns true for the signed integer kinds.
func (k Kind) IsInt() bool {
	return k == Int16 || k == Int32 || k == Int64
}

// IsNumeric returns true for kinds that have a float64 representation.
func (k Kind) IsNumeric() bool {
	return k.IsFloat() || k.IsInt()
}
