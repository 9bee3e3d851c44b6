// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strcase provides the string case transformations needed to
// turn CamelCase field names into user-friendly control labels.
// Acronyms in the input are preserved.
package strcase

import (
	"strings"
	"unicode"
)

// Words splits a CamelCase string into its constituent words.
// Runs of upper case letters are treated as acronyms and kept
// together, with a final upper case letter followed by a lower case
// letter starting a new word (e.g., "HTTPServer" -> "HTTP", "Server").
func Words(s string) []string {
	var words []string
	runes := []rune(s)
	n := len(runes)
	start := 0
	for i := 1; i < n; i++ {
		prev := runes[i-1]
		cur := runes[i]
		boundary := false
		if unicode.IsUpper(cur) && !unicode.IsUpper(prev) && prev != ' ' {
			boundary = true
		}
		if unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < n && unicode.IsLower(runes[i+1]) {
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < n {
		words = append(words, string(runes[start:]))
	}
	return words
}

// isAcronym returns whether the given word is entirely upper case
// and more than one letter long.
func isAcronym(w string) bool {
	if len(w) < 2 {
		return false
	}
	for _, r := range w {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// ToSentence returns words in Sentence case (lower case words with
// spaces, with the first word capitalized). Acronyms stay upper case.
func ToSentence(s string) string {
	words := Words(s)
	for i, w := range words {
		if isAcronym(w) {
			continue
		}
		lw := strings.ToLower(w)
		if i == 0 {
			r := []rune(lw)
			r[0] = unicode.ToUpper(r[0])
			lw = string(r)
		}
		words[i] = lw
	}
	return strings.Join(words, " ")
}
