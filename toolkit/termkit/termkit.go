// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termkit implements [toolkit.Toolkit] for the terminal,
// rendering controls with lipgloss and running them in a bubbletea
// event loop. Fields are focusable rows; tab moves focus, and each
// control commits on its single canonical key action.
package termkit

import (
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chewxy/math32"

	"cogentcore.org/classview/toolkit"
)

// Toolkit is the terminal [toolkit.Toolkit]. Create controls, then
// call [Toolkit.Run] to start the event loop.
type Toolkit struct {

	// Frames are the top-level frames, rendered in creation order.
	Frames []*Frame

	// Dialogs is the stack of open modal dialogs; the last entry
	// is rendered on top and receives all input.
	Dialogs []*Dialog
}

// New returns a new terminal [Toolkit].
func New() *Toolkit {
	return &Toolkit{}
}

// control is the state shared by all terminal controls.
type control struct {
	name     string
	tooltip  string
	readOnly bool
	focused  bool
}

func (c *control) Name() string          { return c.name }
func (c *control) SetTooltip(tip string) { c.tooltip = tip }
func (c *control) Tooltip() string       { return c.tooltip }
func (c *control) SetReadOnly(ro bool)   { c.readOnly = ro }
func (c *control) IsReadOnly() bool      { return c.readOnly }
func (c *control) setFocused(f bool)     { c.focused = f }

func (c *control) style() func(...string) string {
	switch {
	case c.readOnly:
		return Styles.ReadOnly.Render
	case c.focused:
		return Styles.Focused.Render
	}
	return Styles.Normal.Render
}

// focusable is a control that takes keyboard focus.
type focusable interface {
	toolkit.Control
	setFocused(f bool)
	handleKey(msg tea.KeyMsg) tea.Cmd
	view() string
}

// Frame is a terminal container control.
type Frame struct {
	control
	Children []toolkit.Control
	Inline   bool
}

func (f *Frame) DeleteChildren()       { f.Children = nil }
func (f *Frame) SetInline(inline bool) { f.Inline = inline }
func (f *Frame) IsInline() bool        { return f.Inline }

// Text is a terminal text label.
type Text struct {
	control
	text string
}

func (t *Text) SetText(text string) { t.text = text }
func (t *Text) Text() string        { return t.text }

// TextField is a terminal free-text control wrapping a
// bubbles textinput. Enter commits; typing fires input signals only.
type TextField struct {
	control
	input     textinput.Model
	inputFns  []func()
	changeFns []func()
}

func (tf *TextField) SetText(text string) { tf.input.SetValue(text) }
func (tf *TextField) Text() string        { return tf.input.Value() }
func (tf *TextField) SetWidth(ch float32) { tf.input.Width = int(ch) }
func (tf *TextField) OnInput(fn func())   { tf.inputFns = append(tf.inputFns, fn) }
func (tf *TextField) OnChange(fn func())  { tf.changeFns = append(tf.changeFns, fn) }

func (tf *TextField) setFocused(f bool) {
	tf.focused = f
	if f {
		tf.input.Focus()
	} else {
		tf.input.Blur()
	}
}

func (tf *TextField) handleKey(msg tea.KeyMsg) tea.Cmd {
	if tf.readOnly {
		return nil
	}
	if msg.String() == "enter" {
		for _, fn := range tf.changeFns {
			fn()
		}
		return nil
	}
	was := tf.input.Value()
	var cmd tea.Cmd
	tf.input, cmd = tf.input.Update(msg)
	if tf.input.Value() != was {
		for _, fn := range tf.inputFns {
			fn()
		}
	}
	return cmd
}

func (tf *TextField) view() string {
	return tf.input.View()
}

// Spinner is a terminal numeric stepper. Up/down and +/- step the
// value; each step commits.
type Spinner struct {
	control
	value  float32
	min    float32
	max    float32
	step   float32
	format string
	hasMin bool
	hasMax bool

	changeFns []func()
}

func (s *Spinner) Value() float32        { return s.value }
func (s *Spinner) SetValue(v float32)    { s.value = s.clamp(v) }
func (s *Spinner) SetStep(step float32)  { s.step = step }
func (s *Spinner) SetFormat(fm string)   { s.format = fm }
func (s *Spinner) OnChange(fn func())    { s.changeFns = append(s.changeFns, fn) }

func (s *Spinner) SetMin(min float32) {
	s.min = min
	s.hasMin = true
}

func (s *Spinner) SetMax(max float32) {
	s.max = max
	s.hasMax = true
}

func (s *Spinner) clamp(v float32) float32 {
	if s.hasMin {
		v = math32.Max(v, s.min)
	}
	if s.hasMax {
		v = math32.Min(v, s.max)
	}
	return v
}

func (s *Spinner) incr(steps float32) {
	step := s.step
	if step == 0 {
		step = 1
	}
	s.value = s.clamp(s.value + steps*step)
	for _, fn := range s.changeFns {
		fn()
	}
}

func (s *Spinner) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.readOnly {
		return nil
	}
	switch msg.String() {
	case "up", "+", "=":
		s.incr(1)
	case "down", "-":
		s.incr(-1)
	}
	return nil
}

func (s *Spinner) view() string {
	format := s.format
	if format == "" {
		format = "%g"
	}
	return s.style()("◂ " + fmt.Sprintf(format, s.value) + " ▸")
}

// Switch is a terminal boolean toggle. Space or enter toggles and
// commits.
type Switch struct {
	control
	checked   bool
	changeFns []func()
}

func (sw *Switch) SetChecked(on bool) { sw.checked = on }
func (sw *Switch) IsChecked() bool    { return sw.checked }
func (sw *Switch) OnChange(fn func()) { sw.changeFns = append(sw.changeFns, fn) }

func (sw *Switch) handleKey(msg tea.KeyMsg) tea.Cmd {
	if sw.readOnly {
		return nil
	}
	switch msg.String() {
	case " ", "space", "enter":
		sw.checked = !sw.checked
		for _, fn := range sw.changeFns {
			fn()
		}
	}
	return nil
}

func (sw *Switch) view() string {
	if sw.checked {
		return sw.style()("[x]")
	}
	return sw.style()("[ ]")
}

// Chooser is a terminal choice control. Left/right cycle through the
// items; typing letters jumps to the best-matching item by string
// similarity; each selection commits.
type Chooser struct {
	control
	items     []string
	current   int
	filter    string
	changeFns []func()
}

func (c *Chooser) Items() []string       { return c.items }
func (c *Chooser) SetCurrentIndex(i int) { c.current = i }
func (c *Chooser) CurrentIndex() int     { return c.current }
func (c *Chooser) OnChange(fn func())    { c.changeFns = append(c.changeFns, fn) }

func (c *Chooser) SetItems(items []string) {
	c.items = items
	if c.current >= len(items) {
		c.current = -1
	}
}

func (c *Chooser) commit(i int) {
	c.current = i
	for _, fn := range c.changeFns {
		fn()
	}
}

func (c *Chooser) handleKey(msg tea.KeyMsg) tea.Cmd {
	if c.readOnly || len(c.items) == 0 {
		return nil
	}
	switch msg.String() {
	case "right":
		c.filter = ""
		c.commit((c.current + 1) % len(c.items))
	case "left":
		c.filter = ""
		c.commit((c.current + len(c.items) - 1) % len(c.items))
	case "backspace":
		c.filter = ""
	default:
		if msg.Type == tea.KeyRunes {
			c.filter += string(msg.Runes)
			if i := c.bestMatch(c.filter); i >= 0 {
				c.commit(i)
			}
		}
	}
	return nil
}

// bestMatch returns the index of the item most similar to the typed
// filter, or -1 when nothing scores.
func (c *Chooser) bestMatch(filter string) int {
	jw := metrics.NewJaroWinkler()
	best := -1
	var bestScore float64
	for i, item := range c.items {
		score := strutil.Similarity(strings.ToLower(item), strings.ToLower(filter), jw)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

func (c *Chooser) view() string {
	cur := "(none)"
	if c.current >= 0 && c.current < len(c.items) {
		cur = c.items[c.current]
	}
	return c.style()("◂ " + cur + " ▸")
}

// Button is a terminal actuator control. Enter or space activates.
type Button struct {
	control
	text     string
	clickFns []func()
}

func (b *Button) SetText(text string) { b.text = text }
func (b *Button) Text() string        { return b.text }
func (b *Button) OnClick(fn func())   { b.clickFns = append(b.clickFns, fn) }

func (b *Button) handleKey(msg tea.KeyMsg) tea.Cmd {
	if b.readOnly {
		return nil
	}
	switch msg.String() {
	case "enter", " ", "space":
		for _, fn := range b.clickFns {
			fn()
		}
	}
	return nil
}

func (b *Button) view() string {
	return b.style()("< " + b.text + " >")
}

// Dialog is a terminal modal dialog, rendered as an overlay box on
// top of the form. Esc cancels, ctrl+s accepts.
type Dialog struct {
	opts    toolkit.DialogOpts
	content *Frame
	open    bool
	onClose func(accepted bool)
	tk      *Toolkit
}

func (d *Dialog) Frame() toolkit.Frame { return d.content }
func (d *Dialog) IsOpen() bool         { return d.open }

// Raise moves the dialog to the top of the dialog stack.
func (d *Dialog) Raise() {
	if !d.open {
		return
	}
	for i, od := range d.tk.Dialogs {
		if od == d {
			d.tk.Dialogs = append(append(d.tk.Dialogs[:i:i], d.tk.Dialogs[i+1:]...), d)
			return
		}
	}
}

func (d *Dialog) Close(accepted bool) {
	if !d.open {
		return
	}
	d.open = false
	for i, od := range d.tk.Dialogs {
		if od == d {
			d.tk.Dialogs = append(d.tk.Dialogs[:i:i], d.tk.Dialogs[i+1:]...)
			break
		}
	}
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
	f := &Frame{control: control{name: name}}
	if parent == nil {
		tk.Frames = append(tk.Frames, f)
	} else {
		tk.addChild(parent, f)
	}
	return f
}

func (tk *Toolkit) NewText(parent toolkit.Frame, name string) toolkit.Text {
	t := &Text{control: control{name: name}}
	tk.addChild(parent, t)
	return t
}

func (tk *Toolkit) NewTextField(parent toolkit.Frame, name string) toolkit.TextField {
	tf := &TextField{control: control{name: name}, input: textinput.New()}
	tk.addChild(parent, tf)
	return tf
}

func (tk *Toolkit) NewSpinner(parent toolkit.Frame, name string) toolkit.Spinner {
	s := &Spinner{control: control{name: name}, step: 1}
	tk.addChild(parent, s)
	return s
}

func (tk *Toolkit) NewSwitch(parent toolkit.Frame, name string) toolkit.Switch {
	sw := &Switch{control: control{name: name}}
	tk.addChild(parent, sw)
	return sw
}

func (tk *Toolkit) NewChooser(parent toolkit.Frame, name string) toolkit.Chooser {
	c := &Chooser{control: control{name: name}, current: -1}
	tk.addChild(parent, c)
	return c
}

func (tk *Toolkit) NewButton(parent toolkit.Frame, name string) toolkit.Button {
	b := &Button{control: control{name: name}}
	tk.addChild(parent, b)
	return b
}

func (tk *Toolkit) OpenDialog(opts toolkit.DialogOpts, onClose func(accepted bool)) toolkit.Dialog {
	d := &Dialog{
		opts:    opts,
		content: &Frame{control: control{name: "dialog-" + opts.Title}},
		open:    true,
		onClose: onClose,
		tk:      tk,
	}
	tk.Dialogs = append(tk.Dialogs, d)
	return d
}
