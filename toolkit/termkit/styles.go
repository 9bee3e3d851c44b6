// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termkit

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the terminal controls.
const (
	ColorAccent  = "86"  // titles, focused controls
	ColorCommit  = "205" // committed/selected values
	ColorDanger  = "196" // errors
	ColorMuted   = "241" // labels, hints
	ColorText    = "252" // normal text
	ColorWarning = "208" // read-only markers
)

// Styles contains the shared style definitions used by all controls.
var Styles = struct {

	// Title is for form and dialog titles.
	Title lipgloss.Style

	// Label is for the field labels next to controls.
	Label lipgloss.Style

	// Focused is for the currently focused control.
	Focused lipgloss.Style

	// Normal is for unfocused controls.
	Normal lipgloss.Style

	// ReadOnly is for controls that reject edits.
	ReadOnly lipgloss.Style

	// Box is the standard form box with a rounded border.
	Box lipgloss.Style

	// Dialog is the modal dialog box.
	Dialog lipgloss.Style

	// Hint is for the key help line.
	Hint lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	ReadOnly: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
	Dialog: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorCommit)).
		Padding(1, 2).
		Margin(1),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
