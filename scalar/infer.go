// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar provides the typed optional scalar values stored
// in dataframe columns, and inference of their [Kind] from text.
package scalar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrTypeMismatch is returned when a token or value does not
// match the kind it is being converted or checked against.
var ErrTypeMismatch = errors.New("type mismatch")

// Infer returns the kind of the given token, trying in order:
// an ISO calendar date, a float (only if the token contains a
// decimal point), a 16, 32 or 64 bit integer, a case-insensitive
// "true" or "false", a single character, and finally a string.
// Infer is total: every token has a kind.
func Infer(str string) Kind {
	if _, err := time.Parse(DateLayout, str); err == nil {
		return Date
	}
	if strings.Contains(str, ".") {
		if _, err := strconv.ParseFloat(str, 32); err == nil {
			return Float32
		}
		if _, err := strconv.ParseFloat(str, 64); err == nil {
			return Float64
		}
	}
	if _, err := strconv.ParseInt(str, 10, 16); err == nil {
		return Int16
	}
	if _, err := strconv.ParseInt(str, 10, 32); err == nil {
		return Int32
	}
	if _, err := strconv.ParseInt(str, 10, 64); err == nil {
		return Int64
	}
	if isBool(str) {
		return Bool
	}
	if utf8.RuneCountInString(str) == 1 {
		return Char
	}
	return String
}

func isBool(str string) bool {
	return strings.EqualFold(str, "true") || strings.EqualFold(str, "false")
}

// Parse converts the given token to a value of the given kind.
// An empty token is a null value. A token that cannot be converted
// returns an error wrapping [ErrTypeMismatch].
func Parse(kind Kind, str string) (Value, error) {
	if str == "" {
		return Null(kind), nil
	}
	switch kind {
	case Date:
		t, err := time.Parse(DateLayout, str)
		if err != nil {
			return Value{}, mismatch(kind, str)
		}
		return NewDate(t), nil
	case Float32:
		f, err := strconv.ParseFloat(str, 32)
		if err != nil {
			return Value{}, mismatch(kind, str)
		}
		return NewFloat32(float32(f)), nil
	case Float64:
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return Value{}, mismatch(kind, str)
		}
		return NewFloat64(f), nil
	case Int16, Int32, Int64:
		bits := 64
		switch kind {
		case Int16:
			bits = 16
		case Int32:
			bits = 32
		}
		i, err := strconv.ParseInt(str, 10, bits)
		if err != nil {
			return Value{}, mismatch(kind, str)
		}
		return Value{kind: kind, valid: true, i: i}, nil
	case Bool:
		if !isBool(str) {
			return Value{}, mismatch(kind, str)
		}
		return NewBool(strings.EqualFold(str, "true")), nil
	case Char:
		if utf8.RuneCountInString(str) != 1 {
			return Value{}, mismatch(kind, str)
		}
		r, _ := utf8.DecodeRuneInString(str)
		return NewChar(r), nil
	case String:
		return NewString(str), nil
	}
	return Value{}, fmt.Errorf("scalar.Parse: invalid kind %v", kind)
}

func mismatch(kind Kind, str string) error {
	return fmt.Errorf("%w: %q is not a valid %v", ErrTypeMismatch, str, kind)
}

// Check returns an error wrapping [ErrTypeMismatch] if the
// given value is not of the given kind.
func Check(kind Kind, v Value) error {
	if v.kind != kind {
		return fmt.Errorf("%w: value of kind %v where %v is required", ErrTypeMismatch, v.kind, kind)
	}
	return nil
}
