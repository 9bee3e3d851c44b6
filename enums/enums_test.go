// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fruits is a test enum following the standard conventions,
// with a FruitsN sentinel count member.
type Fruits int32

const (
	Apple Fruits = iota
	Orange
	Peach
	FruitsN
)

var fruitsNames = []string{"Apple", "Orange", "Peach", "FruitsN"}

func (f Fruits) String() string {
	if f < 0 || int(f) >= len(fruitsNames) {
		return fmt.Sprintf("Fruits(%d)", f)
	}
	return fruitsNames[f]
}

func (f Fruits) Int64() int64 { return int64(f) }

func (f Fruits) Desc() string { return f.String() }

func (f Fruits) IsValid() bool { return f >= 0 && f < FruitsN }

func (f Fruits) Values() []Enum {
	vals := make([]Enum, FruitsN+1)
	for i := range vals {
		vals[i] = Fruits(i)
	}
	return vals
}

func (f *Fruits) SetInt64(i int64) { *f = Fruits(i) }

func (f *Fruits) SetString(s string) error {
	for i, nm := range fruitsNames {
		if nm == s {
			*f = Fruits(i)
			return nil
		}
	}
	return fmt.Errorf("invalid Fruits name: %q", s)
}

func TestSentinelName(t *testing.T) {
	assert.Equal(t, "FruitsN", SentinelName(Orange))
	f := Apple
	assert.Equal(t, "FruitsN", SentinelName(&f))
}

func TestValuesNames(t *testing.T) {
	assert.Equal(t, []string{"Apple", "Orange", "Peach"}, Names(Apple))
	vals := Values(Peach)
	assert.Len(t, vals, 3)
	assert.Equal(t, int64(2), vals[2].Int64())
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(Apple))
	assert.Equal(t, 2, Index(Peach))
	assert.Equal(t, -1, Index(FruitsN))
}

func TestSetFromIndex(t *testing.T) {
	f := Apple
	assert.NoError(t, SetFromIndex(&f, 1))
	assert.Equal(t, Orange, f)
	assert.Error(t, SetFromIndex(&f, 3))
	assert.Error(t, SetFromIndex(&f, -1))
	assert.Equal(t, Orange, f)
}
