// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classview

import (
	"reflect"

	"github.com/jinzhu/copier"

	"cogentcore.org/classview/base/errors"
)

// Snapshot captures the values of a schema's fields at one point in
// time, so they can be restored later. It is used to revert a nested
// object's edits when its editor dialog is canceled.
type Snapshot struct {
	schema Schema
	vals   []any
}

// NewSnapshot captures the current values of all gettable fields of
// the given schema. Composite values (structs, slices, maps) are
// deep-copied so later edits through the live object do not alter
// the snapshot.
func NewSnapshot(sch Schema) *Snapshot {
	sn := &Snapshot{schema: sch, vals: make([]any, len(sch))}
	for i := range sch {
		if sch[i].Get == nil {
			continue
		}
		sn.vals[i] = deepCopyValue(sch[i].Get())
	}
	return sn
}

// Restore writes the captured values back through the schema's
// setters. Fields without a setter are skipped, as are nested
// viewable fields, which revert through their own editor's snapshot.
// It returns the joined errors of any setters that failed; one
// failing field does not stop the rest from being restored.
func (sn *Snapshot) Restore() error {
	var errs []error
	for i := range sn.schema {
		fd := &sn.schema[i]
		if fd.Set == nil || fd.Get == nil {
			continue
		}
		if _, ok := sn.vals[i].(Viewable); ok {
			continue
		}
		if err := fd.Set(sn.vals[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// deepCopyValue returns a copy of the given value that shares no
// mutable state with it. Scalars are returned as is.
func deepCopyValue(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Map:
		nv := reflect.New(rv.Type())
		if err := copier.CopyWithOption(nv.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			errors.Log(err)
			return v
		}
		return nv.Elem().Interface()
	}
	return v
}
