// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides common interfaces for enums, which are
// represented in views with a choice control.
package enums

import (
	"fmt"
	"reflect"
)

// Enum is the interface that all enum types satisfy.
// Enum types must be convertible to strings and int64s,
// must be able to return a description of their value,
// must be able to report if they are valid, and must
// be able to return all possible enum values.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// IsValid returns whether the value is a
	// valid option for its enum type.
	IsValid() bool

	// Values returns all possible values this enum type has,
	// in their declared order. The conventional <TypeName>N
	// sentinel member, if declared, is included; use [Values]
	// to get the member list with the sentinel excluded.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy. Pointers to enum types must
// satisfy all of the methods of [Enum], and must also
// be settable from strings and int64s.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its
	// string representation, and returns an
	// error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// SentinelName returns the conventional name of the sentinel "count"
// member for the type of the given enum value: the type name with an
// N appended (e.g., Fruits -> FruitsN).
func SentinelName(e Enum) string {
	typ := reflect.TypeOf(e)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ.Name() + "N"
}

// Values returns all members of the given enum's type in declared
// order, excluding any member whose string representation equals the
// conventional [SentinelName].
func Values(e Enum) []Enum {
	sn := SentinelName(e)
	all := e.Values()
	vals := make([]Enum, 0, len(all))
	for _, v := range all {
		if v.String() == sn {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

// Names returns the string representations of all members of the
// given enum's type, in the same order as [Values], excluding
// the sentinel member.
func Names(e Enum) []string {
	vals := Values(e)
	nms := make([]string, len(vals))
	for i, v := range vals {
		nms[i] = v.String()
	}
	return nms
}

// Index returns the ordinal position of the given value among the
// non-sentinel members returned by [Values], or -1 if the value is
// not among them.
func Index(e Enum) int {
	for i, v := range Values(e) {
		if v.Int64() == e.Int64() {
			return i
		}
	}
	return -1
}

// SetFromIndex sets the given enum setter to the member at the given
// ordinal position among the non-sentinel members returned by
// [Values]. It returns an error if the index is out of range.
func SetFromIndex(es EnumSetter, i int) error {
	vals := Values(es)
	if i < 0 || i >= len(vals) {
		return fmt.Errorf("enums.SetFromIndex: index %d out of range for %T with %d values", i, es, len(vals))
	}
	es.SetInt64(vals[i].Int64())
	return nil
}
