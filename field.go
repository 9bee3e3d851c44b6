// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classview

import (
	"reflect"

	"cogentcore.org/classview/base/errors"
	"cogentcore.org/classview/base/reflectx"
	"cogentcore.org/classview/base/tags"
	"cogentcore.org/classview/enums"
)

// Field is one named, editable field of a viewable object: a pair of
// accessors plus advisory tag metadata. Fields are declared by the
// object, not discovered, so the object controls exactly what is
// editable and in what order.
type Field struct {

	// Name is the field name, unique within one schema.
	Name string

	// Tags is the advisory tag metadata controlling how the field
	// is viewed. It is never required.
	Tags tags.Tags

	// Get returns the current value of the field.
	Get func() any

	// Set assigns a committed value onto the field, converting it to
	// the field's type as needed. A nil Set makes the field read-only.
	Set func(v any) error
}

// Schema is the ordered list of fields of a viewable object.
// The declared order is the order fields are rendered in, and the
// order [Snapshot] captures them in.
type Schema []Field

// FieldByName returns the field with the given name,
// or nil if no such field is in the schema.
func (sc Schema) FieldByName(name string) *Field {
	for i := range sc {
		if sc[i].Name == name {
			return &sc[i]
		}
	}
	return nil
}

// Viewable is the interface for objects that can be rendered as an
// auto-generated form. ClassSchema returns the object's fields, with
// accessors reading and writing the live object.
type Viewable interface {
	ClassSchema() Schema
}

// NewField returns a [Field] whose accessors read and write through
// the given pointer. Committed values are converted to the pointer's
// element type using the robust [reflectx] conversions, so a numeric
// field accepts any numeric or textual representation of a number.
// If the pointer implements [Viewable], Get returns the pointer
// itself so that nested editing mutates the original object.
// If the pointer implements [enums.EnumSetter], Set resolves values
// through [enums.EnumSetter.SetInt64].
func NewField(name string, ptr any, tg tags.Tags) Field {
	return Field{
		Name: name,
		Tags: tg,
		Get: func() any {
			if vw, ok := ptr.(Viewable); ok {
				return vw
			}
			return reflect.ValueOf(ptr).Elem().Interface()
		},
		Set: func(v any) error {
			return setThroughPointer(ptr, v)
		},
	}
}

// setThroughPointer assigns v onto the element of the given pointer,
// converting it to the element's type.
func setThroughPointer(ptr, v any) error {
	if es, ok := ptr.(enums.EnumSetter); ok {
		i, err := reflectx.ToInt(v)
		if err != nil {
			return err
		}
		es.SetInt64(i)
		return nil
	}
	rv := reflect.ValueOf(ptr).Elem()
	vk := rv.Kind()
	switch {
	case vk == reflect.Bool:
		b, err := reflectx.ToBool(v)
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case vk >= reflect.Int && vk <= reflect.Int64:
		i, err := reflectx.ToInt(v)
		if err != nil {
			return err
		}
		rv.SetInt(i)
	case vk >= reflect.Uint && vk <= reflect.Uintptr:
		i, err := reflectx.ToInt(v)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(i))
	case vk == reflect.Float32 || vk == reflect.Float64:
		f, err := reflectx.ToFloat(v)
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	case vk == reflect.String:
		rv.SetString(reflectx.ToString(v))
	default:
		nv := reflect.ValueOf(v)
		if !nv.IsValid() || !nv.Type().AssignableTo(rv.Type()) {
			return errors.Errorf("classview.setThroughPointer: cannot assign value %v of type %T to field of type %s", v, v, rv.Type())
		}
		rv.Set(nv)
	}
	return nil
}
