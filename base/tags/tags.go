// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tags provides parsing of the space-separated key:"value"
// field tag format used to customize views, which is the same format
// as Go struct field tags.
package tags

import (
	"reflect"
	"strconv"
)

// Tags is a string of space-separated key:"value" pairs attached to a
// field, controlling how the field is viewed. The syntax and parsing
// rules are exactly those of [reflect.StructTag].
type Tags string

// Value returns the value for the given key, or an empty string
// if the key is not present.
func (t Tags) Value(key string) string {
	v, _ := reflect.StructTag(t).Lookup(key)
	return v
}

// Lookup returns the value for the given key, and whether
// the key was present at all.
func (t Tags) Lookup(key string) (string, bool) {
	return reflect.StructTag(t).Lookup(key)
}

// Has returns whether the given key is present with exactly
// the given value.
func (t Tags) Has(key, value string) bool {
	return t.Value(key) == value
}

// Float returns the value for the given key parsed as a float32.
// The bool result is false if the key is missing or the value
// does not parse; such tags are advisory and are ignored.
func (t Tags) Float(key string) (float32, bool) {
	v, ok := t.Lookup(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}
