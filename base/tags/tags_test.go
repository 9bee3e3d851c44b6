// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	tg := Tags(`min:"0" max:"10" step:"2" desc:"the count"`)
	assert.Equal(t, "0", tg.Value("min"))
	assert.Equal(t, "10", tg.Value("max"))
	assert.Equal(t, "the count", tg.Value("desc"))
	assert.Equal(t, "", tg.Value("format"))
}

func TestLookup(t *testing.T) {
	tg := Tags(`view:"-" width:""`)
	v, ok := tg.Lookup("view")
	assert.True(t, ok)
	assert.Equal(t, "-", v)
	v, ok = tg.Lookup("width")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	_, ok = tg.Lookup("inactive")
	assert.False(t, ok)
}

func TestHas(t *testing.T) {
	tg := Tags(`view:"inline" inactive:"+"`)
	assert.True(t, tg.Has("view", "inline"))
	assert.True(t, tg.Has("inactive", "+"))
	assert.False(t, tg.Has("view", "-"))
}

func TestFloat(t *testing.T) {
	tg := Tags(`min:"1.5" max:"nope"`)
	f, ok := tg.Float("min")
	assert.True(t, ok)
	assert.Equal(t, float32(1.5), f)
	_, ok = tg.Float("max")
	assert.False(t, ok)
	_, ok = tg.Float("step")
	assert.False(t, ok)
}
