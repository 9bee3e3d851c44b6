// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState struct {
	Name  string
	Count int
	Home  map[string]any
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "state.toml")
	st := &testState{Name: "hi", Count: 3, Home: map[string]any{"Zip": int64(12345)}}
	require.NoError(t, Save(st, fn))

	got := &testState{}
	require.NoError(t, Open(got, fn))
	assert.Equal(t, st, got)
}

func TestOpenMissing(t *testing.T) {
	st := &testState{}
	assert.Error(t, Open(st, filepath.Join(t.TempDir(), "nope.toml")))
}
