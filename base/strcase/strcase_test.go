// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"Give", "Up", "Sum"}, Words("GiveUpSum"))
	assert.Equal(t, []string{"HTTP", "Server"}, Words("HTTPServer"))
	assert.Equal(t, []string{"count"}, Words("count"))
}

func TestToSentence(t *testing.T) {
	assert.Equal(t, "Min give up sum", ToSentence("MinGiveUpSum"))
	assert.Equal(t, "Likes go", ToSentence("LikesGo"))
	assert.Equal(t, "Count", ToSentence("count"))
	assert.Equal(t, "HTTP server", ToSentence("HTTPServer"))
	assert.Equal(t, "Age", ToSentence("Age"))
}
