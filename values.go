// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classview

import (
	"log/slog"
	"reflect"

	"cogentcore.org/classview/base/errors"
	"cogentcore.org/classview/base/reflectx"
	"cogentcore.org/classview/base/strcase"
	"cogentcore.org/classview/enums"
	"cogentcore.org/classview/toolkit"
)

// TextValue presents a free-text control for any value without a more
// specific kind. The value is seeded with the field's textual
// rendering, and the raw committed text is written back. Uncommitted
// input signals are ignored; only entry completion commits.
type TextValue struct {
	ValueBase
	TextField toolkit.TextField
}

func (tv *TextValue) Config(parent toolkit.Frame) {
	tf := tv.View.TK.NewTextField(parent, tv.ControlName())
	tv.Ctrl = tf
	tv.TextField = tf
	if w, ok := tv.ViewField().Tags.Float("width"); ok {
		tf.SetWidth(w)
	}
	tf.OnChange(func() {
		if !tv.CanWrite() {
			return
		}
		errors.Log(tv.ViewField().Set(tf.Text()))
	})
}

func (tv *TextValue) Update() {
	tv.TextField.SetText(reflectx.ToString(tv.ViewField().Get()))
}

// BoolValue presents a toggle control for a boolean field.
type BoolValue struct {
	ValueBase
	Switch toolkit.Switch
}

func (bv *BoolValue) Config(parent toolkit.Frame) {
	sw := bv.View.TK.NewSwitch(parent, bv.ControlName())
	bv.Ctrl = sw
	bv.Switch = sw
	sw.OnChange(func() {
		if !bv.CanWrite() {
			return
		}
		errors.Log(bv.ViewField().Set(sw.IsChecked()))
	})
}

func (bv *BoolValue) Update() {
	b, err := reflectx.ToBool(bv.ViewField().Get())
	if errors.Log(err) != nil {
		return
	}
	bv.Switch.SetChecked(b)
}

// NumberValue presents a numeric stepper for an integer or real
// field. The min, max, step and format tags configure the control
// when present and parseable; integer fields default to a step of 1.
// The stepper carries values as float32, so integers beyond its
// 24-bit mantissa lose precision on the round trip (see
// [toolkit.Spinner]).
type NumberValue struct {
	ValueBase
	Spinner toolkit.Spinner

	// isInt is whether the field held an integer kind when bound,
	// which controls the written-back type.
	isInt bool
}

func (nv *NumberValue) Config(parent toolkit.Frame) {
	sp := nv.View.TK.NewSpinner(parent, nv.ControlName())
	nv.Ctrl = sp
	nv.Spinner = sp
	fd := nv.ViewField()
	nv.isInt = reflectx.KindIsInt(reflectx.NonPointerValue(reflect.ValueOf(fd.Get())).Kind())
	if nv.isInt {
		sp.SetStep(1)
	}
	if min, ok := fd.Tags.Float("min"); ok {
		sp.SetMin(min)
	}
	if max, ok := fd.Tags.Float("max"); ok {
		sp.SetMax(max)
	}
	if step, ok := fd.Tags.Float("step"); ok {
		sp.SetStep(step)
	}
	if format := fd.Tags.Value("format"); format != "" {
		sp.SetFormat(format)
	}
	sp.OnChange(func() {
		if !nv.CanWrite() {
			return
		}
		if nv.isInt {
			errors.Log(nv.ViewField().Set(int64(sp.Value())))
		} else {
			errors.Log(nv.ViewField().Set(float64(sp.Value())))
		}
	})
}

func (nv *NumberValue) Update() {
	f, err := reflectx.ToFloat32(nv.ViewField().Get())
	if errors.Log(err) != nil {
		return
	}
	nv.Spinner.SetValue(f)
}

// EnumValue presents a choice control for an [enums.Enum] field,
// populated with the names of all members except the conventional
// <TypeName>N sentinel count member. Selecting ordinal index i
// writes back the member at position i among the non-sentinel
// members.
type EnumValue struct {
	ValueBase
	Chooser toolkit.Chooser
}

func (ev *EnumValue) Config(parent toolkit.Frame) {
	ch := ev.View.TK.NewChooser(parent, ev.ControlName())
	ev.Ctrl = ch
	ev.Chooser = ch
	if e, ok := ev.ViewField().Get().(enums.Enum); ok {
		ch.SetItems(enums.Names(e))
	}
	ch.OnChange(func() {
		if !ev.CanWrite() {
			return
		}
		e, ok := ev.ViewField().Get().(enums.Enum)
		if !ok {
			return
		}
		vals := enums.Values(e)
		i := ch.CurrentIndex()
		if i < 0 || i >= len(vals) {
			return
		}
		errors.Log(ev.ViewField().Set(vals[i].Int64()))
	})
}

func (ev *EnumValue) Update() {
	e, ok := ev.ViewField().Get().(enums.Enum)
	if !ok {
		slog.Warn("classview: enum field no longer holds an enum value", "field", ev.ControlName())
		return
	}
	ev.Chooser.SetCurrentIndex(enums.Index(e))
}

// ClassValue presents an actuator control for a nested viewable
// field: activating it opens a modal editor dialog over the nested
// object's own schema. Cancel reverts the nested object's fields to
// a snapshot taken when the dialog opened.
type ClassValue struct {
	ValueBase
	Button toolkit.Button

	// Dialog is the open editor dialog, nil when closed. Activating
	// the control while the dialog is open raises it instead of
	// opening a second one.
	Dialog toolkit.Dialog

	// Child is the nested view shown in the dialog.
	Child *ClassView
}

func (cl *ClassValue) Config(parent toolkit.Frame) {
	bt := cl.View.TK.NewButton(parent, cl.ControlName())
	cl.Ctrl = bt
	cl.Button = bt
	bt.OnClick(func() {
		if cl.Stale() {
			return
		}
		cl.OpenDialog()
	})
}

func (cl *ClassValue) Update() {
	v := cl.ViewField().Get()
	if reflectx.IsNil(v) {
		cl.Button.SetText("nil")
		return
	}
	cl.Button.SetText("Edit " + strcase.ToSentence(cl.ViewField().Name))
	if cl.Child != nil && cl.Dialog != nil && cl.Dialog.IsOpen() {
		cl.Child.Update()
	}
}

// OpenDialog opens the modal editor dialog for the nested object,
// or raises it if it is already open.
func (cl *ClassValue) OpenDialog() {
	if cl.Dialog != nil && cl.Dialog.IsOpen() {
		cl.Dialog.Raise()
		return
	}
	fd := cl.ViewField()
	v := fd.Get()
	vw, ok := v.(Viewable)
	if !ok || reflectx.IsNil(v) {
		slog.Warn("classview: cannot edit nil object field", "field", cl.ControlName())
		return
	}
	sch := vw.ClassSchema()
	snap := NewSnapshot(sch)
	dlg := cl.View.TK.OpenDialog(toolkit.DialogOpts{
		Title:  strcase.ToSentence(fd.Name),
		Ok:     true,
		Cancel: true,
	}, func(accepted bool) {
		if !accepted {
			errors.Log(snap.Restore())
		}
		cl.Dialog = nil
		cl.Child = nil
		if !cl.Stale() {
			cl.View.Update()
		}
	})
	child := NewClassView(cl.View.TK, cl.ControlName(), sch)
	child.ReadOnly = cl.ReadOnly
	child.parent = &cl.ValueBase
	child.Config(dlg.Frame())
	cl.Dialog = dlg
	cl.Child = child
}

// ClassInlineValue embeds a nested viewable field as an inline form
// directly in the parent's layout, for fields tagged view:"inline".
type ClassInlineValue struct {
	ValueBase

	// Child is the embedded nested view.
	Child *ClassView
}

func (il *ClassInlineValue) Config(parent toolkit.Frame) {
	fd := il.ViewField()
	vw := fd.Get().(Viewable)
	child := NewClassView(il.View.TK, il.ControlName(), vw.ClassSchema())
	child.Inline = true
	child.ReadOnly = il.ReadOnly
	child.parent = &il.ValueBase
	child.Config(parent)
	il.Child = child
	il.Ctrl = child.Frame
}

func (il *ClassInlineValue) Update() {
	il.Child.Update()
}
