// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAdd(t *testing.T) {
	kl := New[string, int]()
	kl.Set("a", 1)
	kl.Set("b", 2)
	assert.NoError(t, kl.Add("c", 3))
	assert.Error(t, kl.Add("a", 4))
	assert.Equal(t, 3, kl.Len())
	assert.Equal(t, []string{"a", "b", "c"}, kl.Keys)

	kl.Set("b", 20) // replace keeps position
	assert.Equal(t, 20, kl.At("b"))
	assert.Equal(t, 1, kl.IndexByKey("b"))
	assert.Equal(t, 3, kl.Len())
}

func TestAtTry(t *testing.T) {
	kl := New[string, string]()
	kl.Set("x", "y")
	v, ok := kl.AtTry("x")
	assert.True(t, ok)
	assert.Equal(t, "y", v)
	_, ok = kl.AtTry("z")
	assert.False(t, ok)
	assert.Equal(t, "", kl.At("z"))
	assert.Equal(t, -1, kl.IndexByKey("z"))
}

func TestDeleteReset(t *testing.T) {
	kl := New[string, int]()
	kl.Set("a", 1)
	kl.Set("b", 2)
	kl.Set("c", 3)
	assert.True(t, kl.DeleteByKey("b"))
	assert.False(t, kl.DeleteByKey("b"))
	assert.Equal(t, []string{"a", "c"}, kl.Keys)
	assert.Equal(t, 3, kl.At("c")) // indexes regenerated
	kl.Reset()
	assert.Equal(t, 0, kl.Len())
}
