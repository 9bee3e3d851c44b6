// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classview

import (
	"cogentcore.org/classview/base/errors"
	"cogentcore.org/classview/base/reflectx"
)

// FieldValues returns the current values of all gettable fields as a
// name-keyed map, suitable for persistence. Nested viewable fields
// become nested maps; nil nested fields are omitted.
func (sc Schema) FieldValues() map[string]any {
	m := make(map[string]any, len(sc))
	for i := range sc {
		fd := &sc[i]
		if fd.Get == nil {
			continue
		}
		v := fd.Get()
		if vw, ok := v.(Viewable); ok {
			if reflectx.IsNil(v) {
				continue
			}
			m[fd.Name] = vw.ClassSchema().FieldValues()
			continue
		}
		m[fd.Name] = v
	}
	return m
}

// SetFieldValues assigns the given name-keyed values onto the schema's
// fields through their setters, recursing into nested viewable fields
// for nested maps. Names missing from the map and fields without a
// setter are left untouched; one failing field does not stop the
// rest. The joined errors are returned.
func (sc Schema) SetFieldValues(m map[string]any) error {
	var errs []error
	for i := range sc {
		fd := &sc[i]
		v, ok := m[fd.Name]
		if !ok || fd.Get == nil {
			continue
		}
		cur := fd.Get()
		if vw, vok := cur.(Viewable); vok {
			if reflectx.IsNil(cur) {
				continue
			}
			if sub, sok := v.(map[string]any); sok {
				if err := vw.ClassSchema().SetFieldValues(sub); err != nil {
					errs = append(errs, err)
				}
			}
			continue
		}
		if fd.Set == nil {
			continue
		}
		if err := fd.Set(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
