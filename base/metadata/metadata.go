// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metadata provides a map of named any elements
// with generic support for type-safe Get and nil-safe Set.
// Metadata keys often function as optional fields in a struct,
// and therefore a CamelCase naming convention is typical.
// Provides default support for "Name", "Doc" and "Filename" standard keys.
package metadata

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/jinzhu/copier"
)

// Data is metadata as a map of named any elements
// with generic support for type-safe Get and nil-safe Set.
type Data map[string]any

func (md *Data) init() {
	if *md == nil {
		*md = make(map[string]any)
	}
}

// Set sets key to given value, ensuring that
// the map is created if not previously.
func (md *Data) Set(key string, value any) {
	md.init()
	(*md)[key] = value
}

// Get gets metadata value of given type.
// returns error if not present or item is a different type.
func Get[T any](md Data, key string) (T, error) {
	var z T
	x, ok := md[key]
	if !ok {
		return z, fmt.Errorf("key %q not found in metadata", key)
	}
	v, ok := x.(T)
	if !ok {
		return z, fmt.Errorf("key %q has a different type than expected %T: is %T", key, z, x)
	}
	return v, nil
}

// Copy does a shallow copy of metadata from source.
// Any pointer-based values will still point to the same
// underlying data as the source, but the two maps remain
// distinct.  It uses [maps.Copy].
func (md *Data) Copy(src Data) {
	if src == nil {
		return
	}
	md.init()
	maps.Copy(*md, src)
}

// CopyDeep copies metadata from source, also copying the
// values that pointers, slices and maps in the source refer to,
// so that nothing is shared with the source afterwards.
func (md *Data) CopyDeep(src Data) error {
	if src == nil {
		return nil
	}
	md.init()
	for k, v := range src {
		if v == nil {
			(*md)[k] = nil
			continue
		}
		cp, err := deepValue(v)
		if err != nil {
			return fmt.Errorf("metadata.CopyDeep: key %q: %w", k, err)
		}
		(*md)[k] = cp
	}
	return nil
}

// deepValue returns a copy of v that shares no maps,
// slices or struct contents with v.
func deepValue(v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Struct:
	default:
		return v, nil
	}
	cp := reflect.New(rv.Type())
	if err := copier.CopyWithOption(cp.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return cp.Elem().Interface(), nil
}
