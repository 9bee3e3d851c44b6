// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/classview/enums"
	"cogentcore.org/classview/toolkit/headless"
)

// Moods is a test enum with a MoodsN sentinel count member.
type Moods int32

const (
	Happy Moods = iota
	Sad
	Excited
	MoodsN
)

var moodsNames = []string{"Happy", "Sad", "Excited", "MoodsN"}

func (m Moods) String() string {
	if m < 0 || int(m) >= len(moodsNames) {
		return fmt.Sprintf("Moods(%d)", m)
	}
	return moodsNames[m]
}

func (m Moods) Int64() int64      { return int64(m) }
func (m Moods) Desc() string      { return m.String() }
func (m Moods) IsValid() bool     { return m >= 0 && m < MoodsN }
func (m *Moods) SetInt64(i int64) { *m = Moods(i) }

func (m Moods) Values() []enums.Enum {
	vals := make([]enums.Enum, MoodsN+1)
	for i := range vals {
		vals[i] = Moods(i)
	}
	return vals
}

func (m *Moods) SetString(s string) error {
	for i, nm := range moodsNames {
		if nm == s {
			*m = Moods(i)
			return nil
		}
	}
	return fmt.Errorf("invalid Moods name: %q", s)
}

type address struct {
	Street string
	Zip    int
}

func (a *address) ClassSchema() Schema {
	return Schema{
		NewField("Street", &a.Street, ""),
		NewField("Zip", &a.Zip, ""),
	}
}

type person struct {
	Name   string
	Age    int
	Rating float32
	Mood   Moods
	Active bool
	Home   *address
}

func (p *person) ClassSchema() Schema {
	return Schema{
		NewField("Name", &p.Name, `width:"40" desc:"full name"`),
		NewField("Age", &p.Age, `min:"0" max:"150"`),
		NewField("Rating", &p.Rating, `step:"0.5" format:"%.1f"`),
		NewField("Mood", &p.Mood, ""),
		NewField("Active", &p.Active, ""),
		NewField("Home", &p.Home, ""),
	}
}

func newTestView(t *testing.T, sch Schema) (*headless.Toolkit, *ClassView) {
	t.Helper()
	tk := headless.New()
	cv := NewClassView(tk, "test", sch)
	cv.Config(nil)
	return tk, cv
}

func TestConfigOrder(t *testing.T) {
	count := 3
	active := true
	label := "hi"
	sch := Schema{
		NewField("count", &count, ""),
		NewField("active", &active, ""),
		NewField("label", &label, ""),
	}
	_, cv := newTestView(t, sch)

	require.Len(t, cv.Values, 3)
	assert.Equal(t, KindNumber, cv.Values[0].Kind())
	assert.Equal(t, KindBool, cv.Values[1].Kind())
	assert.Equal(t, KindText, cv.Values[2].Kind())

	// one label and one control per field, in field order
	fr := cv.Frame.(*headless.Frame)
	require.Len(t, fr.Children, 6)
	assert.Equal(t, "Count", fr.Children[0].(*headless.Text).Text())
	assert.Equal(t, "test:count", fr.Children[1].Name())
	assert.Equal(t, "test:label", fr.Children[5].Name())

	sp := cv.Values[0].Control().(*headless.Spinner)
	assert.Equal(t, float32(3), sp.Value())
	assert.True(t, cv.Values[1].Control().(*headless.Switch).IsChecked())
	assert.Equal(t, "hi", cv.Values[2].Control().(*headless.TextField).Text())
}

func TestUpdateNoWriteBack(t *testing.T) {
	count := 3
	sets := 0
	fd := NewField("count", &count, "")
	baseSet := fd.Set
	fd.Set = func(v any) error {
		sets++
		return baseSet(v)
	}
	_, cv := newTestView(t, Schema{fd})

	count = 7
	cv.Update()
	assert.Equal(t, float32(7), cv.Values[0].Control().(*headless.Spinner).Value())
	assert.Equal(t, 0, sets)
}

func TestWriteBackText(t *testing.T) {
	p := &person{Name: "Gopher", Age: 30, Mood: Sad, Home: &address{}}
	_, cv := newTestView(t, p.ClassSchema())

	tf := cv.Values[0].Control().(*headless.TextField)
	tf.SetTextAction("bye")
	assert.Equal(t, "bye", p.Name)
	assert.Equal(t, 30, p.Age)
	assert.Equal(t, Sad, p.Mood)

	// uncommitted input does not commit
	tf.InputText("partial")
	assert.Equal(t, "bye", p.Name)
}

func TestWriteBackNumberRoundTrip(t *testing.T) {
	p := &person{Age: 30, Home: &address{}}
	_, cv := newTestView(t, p.ClassSchema())

	sp := cv.Values[1].Control().(*headless.Spinner)
	sp.SetValueAction(42)
	assert.Equal(t, 42, p.Age)
	cv.Update()
	assert.Equal(t, float32(42), sp.Value())

	rsp := cv.Values[2].Control().(*headless.Spinner)
	rsp.SetValueAction(2.5)
	assert.Equal(t, float32(2.5), p.Rating)
	cv.Update()
	assert.Equal(t, float32(2.5), rsp.Value())
}

func TestNumberTags(t *testing.T) {
	n := 5
	sch := Schema{NewField("n", &n, `min:"0" max:"10" step:"2"`)}
	_, cv := newTestView(t, sch)

	sp := cv.Values[0].Control().(*headless.Spinner)
	assert.Equal(t, float32(0), sp.Min)
	assert.Equal(t, float32(10), sp.Max)
	assert.Equal(t, float32(2), sp.Step)

	sp.SetValueAction(50)
	assert.Equal(t, 10, n)
	sp.IncrValue(-1)
	assert.Equal(t, 8, n)
}

func TestEnumRoundTrip(t *testing.T) {
	p := &person{Mood: Happy, Home: &address{}}
	_, cv := newTestView(t, p.ClassSchema())

	ch := cv.Values[3].Control().(*headless.Chooser)
	assert.Equal(t, []string{"Happy", "Sad", "Excited"}, ch.Items())
	assert.Equal(t, 0, ch.CurrentIndex())

	ch.SelectIndex(2)
	assert.Equal(t, Excited, p.Mood)

	p.Mood = Sad
	cv.Update()
	assert.Equal(t, 1, ch.CurrentIndex())
}

func TestViewTagSkipAndInactive(t *testing.T) {
	secret := "hidden"
	id := 7
	name := "x"
	sch := Schema{
		NewField("secret", &secret, `view:"-"`),
		NewField("id", &id, `inactive:"+"`),
		NewField("name", &name, ""),
	}
	_, cv := newTestView(t, sch)

	require.Len(t, cv.Values, 2)
	sp := cv.Values[0].Control().(*headless.Spinner)
	assert.True(t, sp.IsReadOnly())
	sp.SetValueAction(9)
	assert.Equal(t, 7, id)
}

func TestNilNestedSkipped(t *testing.T) {
	p := &person{Name: "Gopher"} // Home is nil
	_, cv := newTestView(t, p.ClassSchema())

	require.Len(t, cv.Values, 5)
	names := make([]string, len(cv.Values))
	for i, val := range cv.Values {
		names[i] = val.AsValueBase().ViewField().Name
	}
	assert.Equal(t, []string{"Name", "Age", "Rating", "Mood", "Active"}, names)
}

func TestStaleWriteBackNoOp(t *testing.T) {
	p := &person{Name: "Gopher", Home: &address{}}
	_, cv := newTestView(t, p.ClassSchema())

	old := cv.Values[0].Control().(*headless.TextField)
	cv.Config(nil)
	old.SetTextAction("stale")
	assert.Equal(t, "Gopher", p.Name)

	cur := cv.Values[0].Control().(*headless.TextField)
	cur.SetTextAction("fresh")
	assert.Equal(t, "fresh", p.Name)
}

func TestConfigIdempotent(t *testing.T) {
	p := &person{Home: &address{}}
	_, cv := newTestView(t, p.ClassSchema())
	n := len(cv.Frame.(*headless.Frame).Children)
	cv.Config(nil)
	assert.Len(t, cv.Frame.(*headless.Frame).Children, n)
	assert.Len(t, cv.Values, 6)
}

func TestTooltipAndWidth(t *testing.T) {
	p := &person{Home: &address{}}
	_, cv := newTestView(t, p.ClassSchema())

	tf := cv.Values[0].Control().(*headless.TextField)
	assert.Equal(t, "full name", tf.Tooltip())
	assert.Equal(t, float32(40), tf.Width)
}

func TestInlineNested(t *testing.T) {
	type outer struct {
		Home *address
	}
	o := &outer{Home: &address{Street: "Main"}}
	sch := Schema{NewField("Home", &o.Home, `view:"inline"`)}
	_, cv := newTestView(t, sch)

	require.Len(t, cv.Values, 1)
	il, ok := cv.Values[0].(*ClassInlineValue)
	require.True(t, ok)
	assert.True(t, il.Child.Inline)
	assert.True(t, il.Child.Frame.IsInline())

	st := il.Child.Values[0].Control().(*headless.TextField)
	assert.Equal(t, "Main", st.Text())
	st.SetTextAction("Elm")
	assert.Equal(t, "Elm", o.Home.Street)

	o.Home.Zip = 12345
	cv.Update()
	assert.Equal(t, float32(12345), il.Child.Values[1].Control().(*headless.Spinner).Value())
}

func TestInlineInactiveReadOnly(t *testing.T) {
	ad := &address{Street: "Main", Zip: 1}
	sch := Schema{NewField("Home", &ad, `view:"inline" inactive:"+"`)}
	_, cv := newTestView(t, sch)

	il := cv.Values[0].(*ClassInlineValue)
	assert.True(t, il.Child.ReadOnly)

	st := il.Child.Values[0].Control().(*headless.TextField)
	assert.True(t, st.IsReadOnly())
	st.SetTextAction("Elm")
	assert.Equal(t, "Main", ad.Street)

	zp := il.Child.Values[1].Control().(*headless.Spinner)
	assert.True(t, zp.IsReadOnly())
	zp.SetValueAction(99)
	assert.Equal(t, 1, ad.Zip)
}

func TestStaleInlineChildNoOp(t *testing.T) {
	ad := &address{Street: "Main"}
	sch := Schema{NewField("Home", &ad, `view:"inline"`)}
	_, cv := newTestView(t, sch)

	// a rebuild of the parent orphans the whole inline child view
	old := cv.Values[0].(*ClassInlineValue).Child.Values[0].Control().(*headless.TextField)
	cv.Config(nil)
	old.SetTextAction("stale")
	assert.Equal(t, "Main", ad.Street)

	cur := cv.Values[0].(*ClassInlineValue).Child.Values[0].Control().(*headless.TextField)
	cur.SetTextAction("Elm")
	assert.Equal(t, "Elm", ad.Street)
}

func TestStaleDialogChildNoOp(t *testing.T) {
	p := &person{Home: &address{Street: "Main"}}
	_, cv := newTestView(t, p.ClassSchema())

	clv := cv.Values[5].(*ClassValue)
	clv.Button.(*headless.Button).Click()
	st := clv.Child.Values[0].Control().(*headless.TextField)

	cv.Config(nil)
	st.SetTextAction("stale")
	assert.Equal(t, "Main", p.Home.Street)
}

func TestDialogEditAccept(t *testing.T) {
	p := &person{Home: &address{Street: "Main", Zip: 1}}
	tk, cv := newTestView(t, p.ClassSchema())

	clv, ok := cv.Values[5].(*ClassValue)
	require.True(t, ok)
	clv.Button.(*headless.Button).Click()
	require.Len(t, tk.Dialogs, 1)
	dlg := tk.Dialogs[0]
	require.True(t, dlg.IsOpen())

	st := clv.Child.Values[0].Control().(*headless.TextField)
	st.SetTextAction("Elm")
	assert.Equal(t, "Elm", p.Home.Street)

	dlg.Close(true)
	assert.Equal(t, "Elm", p.Home.Street)
	assert.Nil(t, clv.Dialog)
}

func TestDialogEditCancelReverts(t *testing.T) {
	p := &person{Home: &address{Street: "Main", Zip: 1}}
	tk, cv := newTestView(t, p.ClassSchema())

	clv := cv.Values[5].(*ClassValue)
	clv.Button.(*headless.Button).Click()
	dlg := tk.Dialogs[0]

	clv.Child.Values[0].Control().(*headless.TextField).SetTextAction("Elm")
	clv.Child.Values[1].Control().(*headless.Spinner).SetValueAction(99)
	assert.Equal(t, "Elm", p.Home.Street)
	assert.Equal(t, 99, p.Home.Zip)

	dlg.Close(false)
	assert.Equal(t, "Main", p.Home.Street)
	assert.Equal(t, 1, p.Home.Zip)
}

func TestDialogRaiseWhileOpen(t *testing.T) {
	p := &person{Home: &address{}}
	tk, cv := newTestView(t, p.ClassSchema())

	clv := cv.Values[5].(*ClassValue)
	clv.Button.(*headless.Button).Click()
	clv.Button.(*headless.Button).Click()
	assert.Len(t, tk.Dialogs, 1)
}

func TestKindChangedOnUpdate(t *testing.T) {
	var v any = 3
	sch := Schema{{
		Name: "v",
		Get:  func() any { return v },
		Set:  func(nv any) error { v = nv; return nil },
	}}
	_, cv := newTestView(t, sch)

	sp := cv.Values[0].Control().(*headless.Spinner)
	assert.Equal(t, float32(3), sp.Value())

	// kind changed at runtime: diagnosed, refresh skipped, no panic
	v = "oops"
	cv.Update()
	assert.Equal(t, float32(3), sp.Value())
}
