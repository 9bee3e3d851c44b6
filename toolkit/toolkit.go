// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package toolkit defines the boundary to the host GUI toolkit as a
// set of opaque control handle interfaces. Views create controls only
// through a [Toolkit], so the same view code drives any backend
// (terminal, headless, or a full GUI). Each control type exposes
// exactly one committed-change signal, which is the only signal the
// write-back path acts on.
package toolkit

// Control is the base interface for all control handles.
type Control interface {
	// Name returns the caller-assigned name of the control. For
	// controls owned by a view this is the composite
	// formName:fieldName identifier. It is for display and
	// debugging; nothing parses it.
	Name() string

	// SetTooltip sets the tooltip text shown for the control.
	SetTooltip(tip string)

	// Tooltip returns the tooltip text.
	Tooltip() string

	// SetReadOnly sets whether the control rejects edits.
	// A read-only control still displays its value.
	SetReadOnly(ro bool)

	// IsReadOnly returns whether the control rejects edits.
	IsReadOnly() bool
}

// Frame is a container of controls. Its contents are owned by the
// frame; discarding the children discards the controls in it.
type Frame interface {
	Control

	// DeleteChildren removes all controls from the frame.
	DeleteChildren()

	// SetInline sets a layout hint that the frame's controls should
	// be laid out in a single compact row. Backends may ignore it.
	SetInline(inline bool)

	// IsInline returns the inline layout hint.
	IsInline() bool
}

// Text is a non-editable text label.
type Text interface {
	Control

	// SetText sets the displayed text.
	SetText(text string)

	// Text returns the displayed text.
	Text() string
}

// TextField is a free-text editing control.
type TextField interface {
	Control

	// SetText sets the displayed text without firing any signals.
	SetText(text string)

	// Text returns the current text.
	Text() string

	// SetWidth sets a display width hint in character units.
	SetWidth(ch float32)

	// OnInput registers a function called on every uncommitted edit.
	// Input signals never commit a value.
	OnInput(fn func())

	// OnChange registers a function called when an edit is
	// committed (entry completed), the one terminal signal.
	OnChange(fn func())
}

// Spinner is a numeric stepper control. Values traffic in float32,
// so integer fields beyond its 24-bit mantissa (about 16.7 million)
// do not round-trip exactly; fields needing the full int64 range
// should use a free-text control instead.
type Spinner interface {
	Control

	// SetValue sets the displayed value without firing any signals.
	// The value is clamped to the configured bounds.
	SetValue(v float32)

	// Value returns the current value.
	Value() float32

	// SetMin sets the minimum allowed value.
	SetMin(min float32)

	// SetMax sets the maximum allowed value.
	SetMax(max float32)

	// SetStep sets the increment applied per step action.
	SetStep(step float32)

	// SetFormat sets the printf-style display format.
	SetFormat(format string)

	// OnChange registers a function called when the value is
	// committed, the one terminal signal.
	OnChange(fn func())
}

// Switch is a boolean toggle control.
type Switch interface {
	Control

	// SetChecked sets the toggle state without firing any signals.
	SetChecked(on bool)

	// IsChecked returns the toggle state.
	IsChecked() bool

	// OnChange registers a function called when the user toggles
	// the switch, the one terminal signal.
	OnChange(fn func())
}

// Chooser is a choice control selecting one item from a closed list.
type Chooser interface {
	Control

	// SetItems sets the list of selectable items.
	SetItems(items []string)

	// Items returns the list of selectable items.
	Items() []string

	// SetCurrentIndex sets the selected item by index without
	// firing any signals.
	SetCurrentIndex(i int)

	// CurrentIndex returns the index of the selected item,
	// or -1 if nothing is selected.
	CurrentIndex() int

	// OnChange registers a function called when a selection is
	// made, the one terminal signal.
	OnChange(fn func())
}

// Button is an actuator control.
type Button interface {
	Control

	// SetText sets the button label.
	SetText(text string)

	// Text returns the button label.
	Text() string

	// OnClick registers a function called when the button is
	// activated, the one terminal signal.
	OnClick(fn func())
}

// DialogOpts holds options for a modal editor dialog.
type DialogOpts struct {

	// Title is the dialog title text.
	Title string

	// Ok adds an Ok (accept) action to the dialog.
	Ok bool

	// Cancel adds a Cancel (reject) action to the dialog.
	Cancel bool
}

// Dialog is a handle to an open modal editor dialog.
type Dialog interface {

	// Frame returns the content frame of the dialog, into which the
	// caller builds the dialog contents.
	Frame() Frame

	// Raise brings an already open dialog to the front.
	Raise()

	// IsOpen returns whether the dialog is still open.
	IsOpen() bool

	// Close closes the dialog. accepted is true when closing via
	// the Ok action.
	Close(accepted bool)
}

// Toolkit creates controls and dialogs. All methods must be called
// from the single event-loop thread of the backend; no control
// operation blocks.
type Toolkit interface {

	// NewFrame returns a new container frame. A nil parent makes a
	// top-level frame.
	NewFrame(parent Frame, name string) Frame

	// NewText returns a new text label in the given frame.
	NewText(parent Frame, name string) Text

	// NewTextField returns a new free-text control in the given frame.
	NewTextField(parent Frame, name string) TextField

	// NewSpinner returns a new numeric stepper in the given frame.
	NewSpinner(parent Frame, name string) Spinner

	// NewSwitch returns a new boolean toggle in the given frame.
	NewSwitch(parent Frame, name string) Switch

	// NewChooser returns a new choice control in the given frame.
	NewChooser(parent Frame, name string) Chooser

	// NewButton returns a new actuator control in the given frame.
	NewButton(parent Frame, name string) Button

	// OpenDialog opens a modal editor dialog anchored to the
	// toolkit's viewport. onClose, if non-nil, is called when the
	// dialog closes, with accepted true for the Ok action.
	OpenDialog(opts DialogOpts, onClose func(accepted bool)) Dialog
}
