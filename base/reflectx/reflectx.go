// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides robust conversions between the basic value
// kinds that editor controls traffic in (bool, integer, float, string).
// The conversions deliberately trade type safety for robustness: field
// values come from end-user edits, so string <-> number and similar
// common-sense conversions are supported. nil values return an error.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
)

// IsNil checks whether the given value is nil. The interface itself
// could be nil, or the value pointed to by the interface could be nil.
// This checks both, safely.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// KindIsNumber returns whether the given [reflect.Kind] is an integer
// or floating point number kind.
func KindIsNumber(vk reflect.Kind) bool {
	return (vk >= reflect.Int && vk <= reflect.Uintptr) || vk == reflect.Float32 || vk == reflect.Float64
}

// KindIsInt returns whether the given [reflect.Kind] is an integer
// kind (signed or unsigned).
func KindIsInt(vk reflect.Kind) bool {
	return vk >= reflect.Int && vk <= reflect.Uintptr
}

// ToBool robustly converts the given value to a bool.
func ToBool(v any) (bool, error) {
	if IsNil(v) {
		return false, fmt.Errorf("reflectx.ToBool: cannot convert nil value")
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	vk := rv.Kind()
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return rv.Int() != 0, nil
	case vk >= reflect.Uint && vk <= reflect.Uintptr:
		return rv.Uint() != 0, nil
	case vk == reflect.Bool:
		return rv.Bool(), nil
	case vk == reflect.Float32 || vk == reflect.Float64:
		return rv.Float() != 0, nil
	case vk == reflect.String:
		return strconv.ParseBool(rv.String())
	}
	return false, fmt.Errorf("reflectx.ToBool: cannot convert value %v of type %T", v, v)
}

// ToInt robustly converts the given value to an int64.
func ToInt(v any) (int64, error) {
	if IsNil(v) {
		return 0, fmt.Errorf("reflectx.ToInt: cannot convert nil value")
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	vk := rv.Kind()
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return rv.Int(), nil
	case vk >= reflect.Uint && vk <= reflect.Uintptr:
		return int64(rv.Uint()), nil
	case vk == reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case vk == reflect.Float32 || vk == reflect.Float64:
		return int64(rv.Float()), nil
	case vk == reflect.String:
		return strconv.ParseInt(rv.String(), 0, 64)
	}
	return 0, fmt.Errorf("reflectx.ToInt: cannot convert value %v of type %T", v, v)
}

// ToFloat robustly converts the given value to a float64.
func ToFloat(v any) (float64, error) {
	if IsNil(v) {
		return 0, fmt.Errorf("reflectx.ToFloat: cannot convert nil value")
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	vk := rv.Kind()
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return float64(rv.Int()), nil
	case vk >= reflect.Uint && vk <= reflect.Uintptr:
		return float64(rv.Uint()), nil
	case vk == reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case vk == reflect.Float32 || vk == reflect.Float64:
		return rv.Float(), nil
	case vk == reflect.String:
		return strconv.ParseFloat(rv.String(), 64)
	}
	return 0, fmt.Errorf("reflectx.ToFloat: cannot convert value %v of type %T", v, v)
}

// ToFloat32 robustly converts the given value to a float32.
func ToFloat32(v any) (float32, error) {
	f, err := ToFloat(v)
	return float32(f), err
}

// ToString robustly converts anything to a string. Because
// [fmt.Stringer] is so ubiquitous, and we fall back on %v formatting
// in the worst case, this always succeeds, so there is no error
// return value.
func ToString(v any) string {
	if IsNil(v) {
		return "nil"
	}
	if st, ok := v.(fmt.Stringer); ok {
		return st.String()
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	vk := rv.Kind()
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case vk >= reflect.Uint && vk <= reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case vk == reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case vk == reflect.Float32 || vk == reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'G', -1, 64)
	case vk == reflect.String:
		return rv.String()
	}
	return fmt.Sprintf("%v", v)
}
