// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/classview/toolkit/headless"
)

func TestRegistry(t *testing.T) {
	tk := headless.New()
	rg := NewRegistry()

	a := NewClassView(tk, "a", nil)
	b := NewClassView(tk, "b", nil)
	rg.Add(a)
	rg.Add(b)

	got, ok := rg.Lookup("a")
	assert.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, []string{"a", "b"}, rg.Names())

	// missing names are an expected condition, not an error
	got, ok = rg.Lookup("nope")
	assert.False(t, ok)
	assert.Nil(t, got)

	// re-adding under the same name replaces
	a2 := NewClassView(tk, "a", nil)
	rg.Add(a2)
	got, _ = rg.Lookup("a")
	assert.Same(t, a2, got)
	assert.Equal(t, 2, rg.Len())

	assert.True(t, rg.Remove("a"))
	assert.False(t, rg.Remove("a"))
	assert.Equal(t, []string{"b"}, rg.Names())
}
