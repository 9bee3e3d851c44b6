// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classview

import (
	"fmt"
	"reflect"

	"cogentcore.org/classview/base/reflectx"
	"cogentcore.org/classview/enums"
)

// Kinds is the closed set of value kinds a field can be classified
// into, each mapping to one control type. The classifier is an
// exhaustive match over this set, with [KindText] as the explicit
// default arm for anything not otherwise recognized.
type Kinds int32

const (
	// KindText is the fallback kind, edited with a free-text control.
	KindText Kinds = iota

	// KindBool is a boolean, edited with a toggle control.
	KindBool

	// KindNumber is an integer or real number, edited with a
	// numeric stepper control.
	KindNumber

	// KindEnum is a closed set of named constants implementing
	// [enums.Enum], edited with a choice control.
	KindEnum

	// KindClass is a nested viewable object, edited inline or
	// through a modal dialog.
	KindClass

	// KindsN is the number of valid kinds.
	KindsN
)

var kindsNames = []string{"Text", "Bool", "Number", "Enum", "Class", "KindsN"}

var kindsDescs = []string{
	"free-text fallback",
	"boolean toggle",
	"integer or real number",
	"closed set of named constants",
	"nested viewable object",
	"KindsN",
}

// String returns the name of the kind.
func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindsNames) {
		return fmt.Sprintf("Kinds(%d)", k)
	}
	return kindsNames[k]
}

// Int64 returns the kind as an int64.
func (k Kinds) Int64() int64 { return int64(k) }

// Desc returns the description of the kind.
func (k Kinds) Desc() string {
	if k < 0 || int(k) >= len(kindsDescs) {
		return k.String()
	}
	return kindsDescs[k]
}

// IsValid returns whether the kind is a valid option.
func (k Kinds) IsValid() bool { return k >= 0 && k < KindsN }

// Values returns all possible kinds.
func (k Kinds) Values() []enums.Enum {
	vals := make([]enums.Enum, KindsN+1)
	for i := range vals {
		vals[i] = Kinds(i)
	}
	return vals
}

// SetInt64 sets the kind from an int64.
func (k *Kinds) SetInt64(i int64) { *k = Kinds(i) }

// SetString sets the kind from its string name.
func (k *Kinds) SetString(s string) error {
	for i, nm := range kindsNames {
		if nm == s {
			*k = Kinds(i)
			return nil
		}
	}
	return fmt.Errorf("invalid Kinds name: %q", s)
}

// KindOf classifies the given field value, checking in order:
// enum, nested viewable, bool, number, with text as the default arm.
// First match wins. A nil nested viewable still classifies as
// [KindClass]; [ClassView.Config] is responsible for skipping it.
func KindOf(v any) Kinds {
	if _, ok := v.(enums.Enum); ok {
		return KindEnum
	}
	if _, ok := v.(Viewable); ok {
		return KindClass
	}
	if v == nil {
		return KindText
	}
	vk := reflectx.NonPointerValue(reflect.ValueOf(v)).Kind()
	switch {
	case vk == reflect.Bool:
		return KindBool
	case reflectx.KindIsNumber(vk):
		return KindNumber
	}
	return KindText
}
