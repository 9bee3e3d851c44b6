// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless implements [toolkit.Toolkit] with in-memory
// controls and no rendering. Controls record their state and fire
// their committed-change callbacks from the *Action methods, which
// play the role of user edits. It is the backend used by tests and
// is also usable for scripting forms without a display.
package headless

import (
	"github.com/chewxy/math32"

	"cogentcore.org/classview/toolkit"
)

// Toolkit is the headless [toolkit.Toolkit].
type Toolkit struct {

	// Frames are the top-level frames made with a nil parent,
	// in creation order.
	Frames []*Frame

	// Dialogs are all dialogs ever opened, in open order,
	// including closed ones.
	Dialogs []*Dialog
}

// New returns a new headless [Toolkit].
func New() *Toolkit {
	return &Toolkit{}
}

// ControlBase is the base implementation shared by all headless
// controls.
type ControlBase struct {
	Nm       string
	Tip      string
	ReadOnly bool
}

func (cb *ControlBase) Name() string           { return cb.Nm }
func (cb *ControlBase) SetTooltip(tip string)  { cb.Tip = tip }
func (cb *ControlBase) Tooltip() string        { return cb.Tip }
func (cb *ControlBase) SetReadOnly(ro bool)    { cb.ReadOnly = ro }
func (cb *ControlBase) IsReadOnly() bool       { return cb.ReadOnly }

// Frame is a headless container control.
type Frame struct {
	ControlBase

	// Children are the controls in the frame, in creation order.
	Children []toolkit.Control

	// Inline is the row-layout hint, recorded but not acted on.
	Inline bool
}

func (f *Frame) DeleteChildren()         { f.Children = nil }
func (f *Frame) SetInline(inline bool)   { f.Inline = inline }
func (f *Frame) IsInline() bool          { return f.Inline }

// Text is a headless text label.
type Text struct {
	ControlBase
	Txt string
}

func (t *Text) SetText(text string) { t.Txt = text }
func (t *Text) Text() string        { return t.Txt }

// TextField is a headless free-text control.
type TextField struct {
	ControlBase
	Txt   string
	Width float32

	inputFns  []func()
	changeFns []func()
}

func (tf *TextField) SetText(text string)   { tf.Txt = text }
func (tf *TextField) Text() string          { return tf.Txt }
func (tf *TextField) SetWidth(ch float32)   { tf.Width = ch }
func (tf *TextField) OnInput(fn func())     { tf.inputFns = append(tf.inputFns, fn) }
func (tf *TextField) OnChange(fn func())    { tf.changeFns = append(tf.changeFns, fn) }

// InputText plays an uncommitted edit: the text is updated and input
// callbacks fire, but nothing is committed.
func (tf *TextField) InputText(text string) {
	if tf.ReadOnly {
		return
	}
	tf.Txt = text
	for _, fn := range tf.inputFns {
		fn()
	}
}

// SetTextAction plays a committed edit (entry completed).
func (tf *TextField) SetTextAction(text string) {
	if tf.ReadOnly {
		return
	}
	tf.Txt = text
	for _, fn := range tf.changeFns {
		fn()
	}
}

// Spinner is a headless numeric stepper.
type Spinner struct {
	ControlBase
	Val    float32
	Min    float32
	Max    float32
	Step   float32
	Format string

	HasMin bool
	HasMax bool

	changeFns []func()
}

func (s *Spinner) Value() float32 { return s.Val }

func (s *Spinner) SetValue(v float32) { s.Val = s.clamp(v) }

func (s *Spinner) SetMin(min float32) {
	s.Min = min
	s.HasMin = true
}

func (s *Spinner) SetMax(max float32) {
	s.Max = max
	s.HasMax = true
}

func (s *Spinner) SetStep(step float32)     { s.Step = step }
func (s *Spinner) SetFormat(format string)  { s.Format = format }
func (s *Spinner) OnChange(fn func())       { s.changeFns = append(s.changeFns, fn) }

func (s *Spinner) clamp(v float32) float32 {
	if s.HasMin {
		v = math32.Max(v, s.Min)
	}
	if s.HasMax {
		v = math32.Min(v, s.Max)
	}
	return v
}

// SetValueAction plays a committed user edit of the value.
func (s *Spinner) SetValueAction(v float32) {
	if s.ReadOnly {
		return
	}
	s.Val = s.clamp(v)
	for _, fn := range s.changeFns {
		fn()
	}
}

// IncrValue plays the given number of step actions (negative for
// decrement), committing the result.
func (s *Spinner) IncrValue(steps float32) {
	step := s.Step
	if step == 0 {
		step = 1
	}
	s.SetValueAction(s.Val + steps*step)
}

// Switch is a headless boolean toggle.
type Switch struct {
	ControlBase
	Checked bool

	changeFns []func()
}

func (sw *Switch) SetChecked(on bool) { sw.Checked = on }
func (sw *Switch) IsChecked() bool    { return sw.Checked }
func (sw *Switch) OnChange(fn func()) { sw.changeFns = append(sw.changeFns, fn) }

// Toggle plays a committed user toggle.
func (sw *Switch) Toggle() {
	if sw.ReadOnly {
		return
	}
	sw.Checked = !sw.Checked
	for _, fn := range sw.changeFns {
		fn()
	}
}

// Chooser is a headless choice control.
type Chooser struct {
	ControlBase
	Itms    []string
	Current int

	changeFns []func()
}

func (c *Chooser) SetItems(items []string) {
	c.Itms = items
	if c.Current >= len(items) {
		c.Current = -1
	}
}

func (c *Chooser) Items() []string        { return c.Itms }
func (c *Chooser) SetCurrentIndex(i int)  { c.Current = i }
func (c *Chooser) CurrentIndex() int      { return c.Current }
func (c *Chooser) OnChange(fn func())     { c.changeFns = append(c.changeFns, fn) }

// SelectIndex plays a committed user selection of the given item.
func (c *Chooser) SelectIndex(i int) {
	if c.ReadOnly || i < 0 || i >= len(c.Itms) {
		return
	}
	c.Current = i
	for _, fn := range c.changeFns {
		fn()
	}
}

// Button is a headless actuator control.
type Button struct {
	ControlBase
	Txt string

	clickFns []func()
}

func (b *Button) SetText(text string) { b.Txt = text }
func (b *Button) Text() string        { return b.Txt }
func (b *Button) OnClick(fn func())   { b.clickFns = append(b.clickFns, fn) }

// Click plays a user activation of the button.
func (b *Button) Click() {
	if b.ReadOnly {
		return
	}
	for _, fn := range b.clickFns {
		fn()
	}
}

// Dialog is a headless modal dialog.
type Dialog struct {
	Opts    toolkit.DialogOpts
	Content *Frame
	Open    bool

	// Accepted records how the dialog was closed.
	Accepted bool

	onClose func(accepted bool)
}

func (d *Dialog) Frame() toolkit.Frame { return d.Content }
func (d *Dialog) Raise()               {}
func (d *Dialog) IsOpen() bool         { return d.Open }

func (d *Dialog) Close(accepted bool) {
	if !d.Open {
		return
	}
	d.Open = false
	d.Accepted = accepted
	if d.onClose != nil {
		d.onClose(accepted)
	}
}

func (tk *Toolkit) addChild(parent toolkit.Frame, c toolkit.Control) {
	if parent != nil {
		pf := parent.(*Frame)
		pf.Children = append(pf.Children, c)
	}
}

func (tk *Toolkit) NewFrame(parent toolkit.Frame, name string) toolkit.Frame {
	f := &Frame{ControlBase: ControlBase{Nm: name}}
	if parent == nil {
		tk.Frames = append(tk.Frames, f)
	} else {
		tk.addChild(parent, f)
	}
	return f
}

func (tk *Toolkit) NewText(parent toolkit.Frame, name string) toolkit.Text {
	t := &Text{ControlBase: ControlBase{Nm: name}}
	tk.addChild(parent, t)
	return t
}

func (tk *Toolkit) NewTextField(parent toolkit.Frame, name string) toolkit.TextField {
	tf := &TextField{ControlBase: ControlBase{Nm: name}}
	tk.addChild(parent, tf)
	return tf
}

func (tk *Toolkit) NewSpinner(parent toolkit.Frame, name string) toolkit.Spinner {
	s := &Spinner{ControlBase: ControlBase{Nm: name}, Step: 1}
	tk.addChild(parent, s)
	return s
}

func (tk *Toolkit) NewSwitch(parent toolkit.Frame, name string) toolkit.Switch {
	sw := &Switch{ControlBase: ControlBase{Nm: name}}
	tk.addChild(parent, sw)
	return sw
}

func (tk *Toolkit) NewChooser(parent toolkit.Frame, name string) toolkit.Chooser {
	c := &Chooser{ControlBase: ControlBase{Nm: name}, Current: -1}
	tk.addChild(parent, c)
	return c
}

func (tk *Toolkit) NewButton(parent toolkit.Frame, name string) toolkit.Button {
	b := &Button{ControlBase: ControlBase{Nm: name}}
	tk.addChild(parent, b)
	return b
}

func (tk *Toolkit) OpenDialog(opts toolkit.DialogOpts, onClose func(accepted bool)) toolkit.Dialog {
	d := &Dialog{
		Opts:    opts,
		Content: &Frame{ControlBase: ControlBase{Nm: "dialog-" + opts.Title}},
		Open:    true,
		onClose: onClose,
	}
	tk.Dialogs = append(tk.Dialogs, d)
	return d
}
