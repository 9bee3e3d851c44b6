// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classview generates editor forms for objects that declare
// an ordered schema of named fields. Each field is classified into a
// closed set of value kinds and bound to one editing control through
// an abstract toolkit boundary, so the same view code drives any
// backend. Config builds the form, Update pushes the object's current
// values into the controls, and committed control changes are written
// back onto the object.
package classview

import (
	"log/slog"

	"cogentcore.org/classview/base/reflectx"
	"cogentcore.org/classview/base/strcase"
	"cogentcore.org/classview/toolkit"
)

// ClassView is an auto-generated editor form over one viewable
// object's schema. All methods must be called on the backend's
// event-loop thread; no method is reentrant while a Config or Update
// on the same view is in progress.
type ClassView struct {

	// Name is the caller-assigned name of the view, unique among all
	// views sharing a [Registry]. It prefixes the composite
	// identifiers assigned to the view's controls.
	Name string

	// Schema is the ordered field list being edited. The declared
	// order is the render order. The view holds a back-reference
	// only; the object is owned by the application.
	Schema Schema

	// TK is the toolkit the view creates its controls through.
	TK toolkit.Toolkit

	// Frame is the container holding the generated controls,
	// created on the first Config.
	Frame toolkit.Frame

	// Values are the live field bindings in render order. Fields
	// skipped by Config (view:"-" or nil nested objects) have no
	// entry.
	Values []Value

	// Inline is a layout hint set on nested views embedded with
	// view:"inline": backends should lay the controls out in a
	// single compact row.
	Inline bool

	// ReadOnly renders every control in the view read-only, so no
	// edit is committed. Set before Config. It is inherited by the
	// nested views of inactive or setter-less object fields.
	ReadOnly bool

	// parent is the value binding that owns this view when it is
	// nested inside another view, nil for a top-level view. Staleness
	// checks follow it, so a parent rebuild orphans the whole nested
	// view.
	parent *ValueBase

	// gen counts Config calls. Bindings record the generation they
	// were made in, making write-back from controls that survived a
	// rebuild a silent no-op.
	gen int
}

// NewClassView returns a new [ClassView] with the given name, editing
// the given schema through the given toolkit. Call Config to build
// the form.
func NewClassView(tk toolkit.Toolkit, name string, sch Schema) *ClassView {
	return &ClassView{Name: name, Schema: sch, TK: tk}
}

// Config materializes one label and one editing control per schema
// field into the view's frame, replacing any prior content. It is
// idempotent: calling it again discards all previous controls and
// bindings and rebuilds from the schema as it is now, so fields
// added, removed or reordered since the last Config are covered.
//
// Fields tagged view:"-" are skipped entirely. A nested object field
// whose value is nil is skipped with a diagnostic; one bad field
// never aborts the rest of the form. Fields tagged inactive:"+" or
// lacking a setter are rendered read-only, down to every control of a
// nested object field's view. The desc tag becomes the control's
// tooltip.
//
// parent is the frame the view's own frame is created in on the first
// call; a nil parent makes a top-level form. Later calls ignore it.
func (cv *ClassView) Config(parent toolkit.Frame) {
	cv.gen++
	if cv.Frame == nil {
		cv.Frame = cv.TK.NewFrame(parent, cv.Name)
		cv.Frame.SetInline(cv.Inline)
	} else {
		cv.Frame.DeleteChildren()
	}
	cv.Values = nil
	for i := range cv.Schema {
		fd := &cv.Schema[i]
		if fd.Tags.Has("view", "-") {
			continue
		}
		if fd.Get == nil {
			slog.Warn("classview.Config: field has no getter", "view", cv.Name, "field", fd.Name)
			continue
		}
		knd := KindOf(fd.Get())
		if knd == KindClass && reflectx.IsNil(fd.Get()) {
			slog.Warn("classview.Config: skipping nil object field", "view", cv.Name, "field", fd.Name)
			continue
		}
		lbl := cv.TK.NewText(cv.Frame, cv.Name+":"+fd.Name+"-label")
		lbl.SetText(strcase.ToSentence(fd.Name))
		val := newValue(cv, i, knd)
		vb := val.AsValueBase()
		vb.ReadOnly = cv.ReadOnly || fd.Tags.Has("inactive", "+") || fd.Set == nil
		val.Config(cv.Frame)
		if desc := fd.Tags.Value("desc"); desc != "" {
			lbl.SetTooltip(desc)
			val.Control().SetTooltip(desc)
		}
		if vb.ReadOnly {
			val.Control().SetReadOnly(true)
		}
		val.Update()
		cv.Values = append(cv.Values, val)
	}
}

// Update re-synchronizes the already-built controls to the object's
// current field values without rebuilding the tree. Fields not bound
// by the last Config are ignored until the next Config. Update is the
// read path of the binding: it never fires the write-back path.
//
// A bound field whose value has changed kind since it was bound is
// diagnosed and skipped; the rest of the form still refreshes.
func (cv *ClassView) Update() {
	for _, val := range cv.Values {
		fd := val.AsValueBase().ViewField()
		if knd := KindOf(fd.Get()); knd != val.Kind() {
			slog.Warn("classview.Update: field value kind changed, skipping refresh",
				"view", cv.Name, "field", fd.Name, "was", val.Kind(), "now", knd)
			continue
		}
		val.Update()
	}
}
