// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// DateLayout is the layout used to parse and format [Date] values.
const DateLayout = time.DateOnly

// Value is a single optional scalar of a given [Kind].
// The zero Value is a null [Date]; use the constructors
// to make values of a specific kind.
type Value struct {
	kind  Kind
	valid bool

	// num holds float payloads, i holds integer, bool and char payloads.
	num float64
	i   int64
	str string
	t   time.Time
}

// Null returns an absent value of the given kind.
func Null(kind Kind) Value { return Value{kind: kind} }

// NewDate returns a [Date] value, truncated to the calendar day.
func NewDate(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: Date, valid: true, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewFloat32 returns a [Float32] value.
func NewFloat32(f float32) Value { return Value{kind: Float32, valid: true, num: float64(f)} }

// NewFloat64 returns a [Float64] value.
func NewFloat64(f float64) Value { return Value{kind: Float64, valid: true, num: f} }

// NewInt16 returns an [Int16] value.
func NewInt16(i int16) Value { return Value{kind: Int16, valid: true, i: int64(i)} }

// NewInt32 returns an [Int32] value.
func NewInt32(i int32) Value { return Value{kind: Int32, valid: true, i: int64(i)} }

// NewInt64 returns an [Int64] value.
func NewInt64(i int64) Value { return Value{kind: Int64, valid: true, i: i} }

// NewBool returns a [Bool] value.
func NewBool(b bool) Value {
	v := Value{kind: Bool, valid: true}
	if b {
		v.i = 1
	}
	return v
}

// NewChar returns a [Char] value.
func NewChar(r rune) Value { return Value{kind: Char, valid: true, i: int64(r)} }

// NewString returns a [String] value.
func NewString(s string) Value { return Value{kind: String, valid: true, str: s} }

// FromNumber converts the given number into a value of the given
// numeric kind, returning an error wrapping [ErrTypeMismatch] if the
// kind is not numeric or the number does not fit in it.
func FromNumber[T constraints.Integer | constraints.Float](kind Kind, n T) (Value, error) {
	f := float64(n)
	switch kind {
	case Float32:
		if math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("%w: %v overflows %v", ErrTypeMismatch, n, kind)
		}
		return NewFloat32(float32(n)), nil
	case Float64:
		return NewFloat64(f), nil
	case Int16, Int32, Int64:
		if f != math.Trunc(f) {
			return Value{}, fmt.Errorf("%w: %v is not an integer", ErrTypeMismatch, n)
		}
		lo, hi := intRange(kind)
		if f < lo || f > hi {
			return Value{}, fmt.Errorf("%w: %v overflows %v", ErrTypeMismatch, n, kind)
		}
		return Value{kind: kind, valid: true, i: int64(n)}, nil
	}
	return Value{}, fmt.Errorf("%w: %v is not a numeric kind", ErrTypeMismatch, kind)
}

func intRange(kind Kind) (lo, hi float64) {
	switch kind {
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Int32:
		return math.MinInt32, math.MaxInt32
	}
	return math.MinInt64, math.MaxInt64
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull returns true if the value is absent.
func (v Value) IsNull() bool { return !v.valid }

// Float returns the value as a float64 for numeric kinds.
// ok is false for null values and non-numeric kinds.
func (v Value) Float() (f float64, ok bool) {
	if !v.valid {
		return 0, false
	}
	switch {
	case v.kind.IsFloat():
		return v.num, true
	case v.kind.IsInt():
		return float64(v.i), true
	}
	return 0, false
}

// Int returns the value as an int64 for integer kinds.
// ok is false for null values and non-integer kinds.
func (v Value) Int() (i int64, ok bool) {
	if !v.valid || !v.kind.IsInt() {
		return 0, false
	}
	return v.i, true
}

// Time returns the [Date] payload.
func (v Value) Time() (t time.Time, ok bool) {
	return v.t, v.valid && v.kind == Date
}

// Bool returns the [Bool] payload.
func (v Value) Bool() (b bool, ok bool) {
	return v.i != 0, v.valid && v.kind == Bool
}

// Rune returns the [Char] payload.
func (v Value) Rune() (r rune, ok bool) {
	return rune(v.i), v.valid && v.kind == Char
}

// Str returns the [String] payload.
func (v Value) Str() (s string, ok bool) {
	return v.str, v.valid && v.kind == String
}

// Equal returns true if both values have the same kind and
// either are both null or hold the same payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.valid != o.valid {
		return false
	}
	if !v.valid {
		return true
	}
	switch v.kind {
	case Date:
		return v.t.Equal(o.t)
	case Float32, Float64:
		return v.num == o.num
	case String:
		return v.str == o.str
	}
	return v.i == o.i
}

// String returns the display form of the value; null values are "null".
func (v Value) String() string {
	if !v.valid {
		return "null"
	}
	switch v.kind {
	case Date:
		return v.t.Format(DateLayout)
	case Float32:
		return strconv.FormatFloat(v.num, 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case Int16, Int32, Int64:
		return strconv.FormatInt(v.i, 10)
	case Bool:
		return strconv.FormatBool(v.i != 0)
	case Char:
		return string(rune(v.i))
	}
	return v.str
}

// Token returns the delimited-text form of the value, which [Parse]
// reads back as the same value: null values are empty and floats
// always carry a decimal point.
func (v Value) Token() string {
	if !v.valid {
		return ""
	}
	if !v.kind.IsFloat() {
		return v.String()
	}
	bits := 64
	if v.kind == Float32 {
		bits = 32
	}
	s := strconv.FormatFloat(v.num, 'f', -1, bits)
	if math.IsInf(v.num, 0) || math.IsNaN(v.num) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
