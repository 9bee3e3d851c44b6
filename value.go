// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classview

import (
	"cogentcore.org/classview/toolkit"
)

// Value is the interface for the typed binding between one schema
// field and its editing control. Concrete values are made by
// [ClassView.Config] based on the classified [Kinds] of the field.
type Value interface {

	// AsValueBase returns the [ValueBase] of this value, giving
	// access to the binding fields shared by all value types.
	AsValueBase() *ValueBase

	// Kind returns the kind this value was classified as when it
	// was bound. The kind of a binding never changes; if the field's
	// value changes kind at runtime, Update diagnoses and skips it.
	Kind() Kinds

	// Control returns the editing control, nil before Config.
	Control() toolkit.Control

	// Config creates the editing control in the given frame and
	// wires the control's committed-change signal to the write-back
	// path. It is called exactly once per binding.
	Config(parent toolkit.Frame)

	// Update pushes the field's current value into the control.
	// It never fires the write-back path.
	Update()
}

// ValueBase is the base type for all [Value] implementations,
// holding the binding back to the owning view and field.
type ValueBase struct {

	// View is the view that owns this binding.
	View *ClassView

	// Index is the index of the bound field in the view's schema.
	Index int

	// Knd is the classified kind of the bound field.
	Knd Kinds

	// Gen is the view generation this binding was made in. A control
	// left over from before a rebuild has an older generation than
	// its view, and its write-back is a silent no-op.
	Gen int

	// ReadOnly is whether the bound field rejects edits, from the
	// inactive:"+" tag, a missing setter, or a read-only view. It is
	// propagated into nested views, so every control of an inactive
	// nested field rejects edits as well.
	ReadOnly bool

	// Ctrl is the editing control, set by Config.
	Ctrl toolkit.Control
}

func (vb *ValueBase) AsValueBase() *ValueBase  { return vb }
func (vb *ValueBase) Kind() Kinds              { return vb.Knd }
func (vb *ValueBase) Control() toolkit.Control { return vb.Ctrl }

// ViewField returns the bound schema field.
func (vb *ValueBase) ViewField() *Field {
	return &vb.View.Schema[vb.Index]
}

// ControlName returns the composite <formName>:<fieldName> identifier
// assigned to the control. It is for display and debugging only;
// nothing parses it.
func (vb *ValueBase) ControlName() string {
	return vb.View.Name + ":" + vb.ViewField().Name
}

// Stale returns whether this binding is from before its view's most
// recent Config, either directly or through a rebuilt ancestor view:
// a nested view orphaned by a parent rebuild is stale along with all
// of its bindings. Write-back from a stale binding must not act.
func (vb *ValueBase) Stale() bool {
	if vb.Gen != vb.View.gen {
		return true
	}
	if p := vb.View.parent; p != nil {
		return p.Stale()
	}
	return false
}

// CanWrite returns whether a committed change from the control should
// be written back: the binding must be current, editable, and the
// field must have a setter.
func (vb *ValueBase) CanWrite() bool {
	return !vb.Stale() && !vb.ReadOnly && vb.ViewField().Set != nil
}

// newValue returns the concrete [Value] for the field at the given
// schema index, classified as the given kind.
func newValue(cv *ClassView, idx int, knd Kinds) Value {
	vb := ValueBase{View: cv, Index: idx, Knd: knd, Gen: cv.gen}
	switch knd {
	case KindEnum:
		return &EnumValue{ValueBase: vb}
	case KindClass:
		if cv.Schema[idx].Tags.Has("view", "inline") {
			return &ClassInlineValue{ValueBase: vb}
		}
		return &ClassValue{ValueBase: vb}
	case KindBool:
		return &BoolValue{ValueBase: vb}
	case KindNumber:
		return &NumberValue{ValueBase: vb}
	default:
		return &TextValue{ValueBase: vb}
	}
}
