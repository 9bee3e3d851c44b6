// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotRestore(t *testing.T) {
	ad := &address{Street: "Main", Zip: 1}
	sn := NewSnapshot(ad.ClassSchema())

	ad.Street = "Elm"
	ad.Zip = 99
	assert.NoError(t, sn.Restore())
	assert.Equal(t, "Main", ad.Street)
	assert.Equal(t, 1, ad.Zip)
}

func TestSnapshotDeepCopiesComposites(t *testing.T) {
	vals := []int{1, 2, 3}
	sch := Schema{NewField("vals", &vals, "")}
	sn := NewSnapshot(sch)

	vals[0] = 99
	assert.NoError(t, sn.Restore())
	assert.Equal(t, []int{1, 2, 3}, vals)
}

func TestSnapshotReadOnlyFieldSkipped(t *testing.T) {
	n := 1
	fd := NewField("n", &n, "")
	fd.Set = nil
	sn := NewSnapshot(Schema{fd})

	n = 2
	assert.NoError(t, sn.Restore())
	assert.Equal(t, 2, n)
}
