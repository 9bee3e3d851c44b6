// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termkit

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cogentcore.org/classview/toolkit"
)

// Model is the bubbletea model driving a [Toolkit]'s controls. All
// control callbacks fire synchronously inside Update, on the event
// loop goroutine, so one committed change is fully processed before
// the next key is handled.
type Model struct {
	tk    *Toolkit
	focus int
	width int

	// Title is rendered above the form.
	Title string
}

// NewModel returns a [Model] driving the given toolkit's controls.
func NewModel(tk *Toolkit) *Model {
	m := &Model{tk: tk}
	m.setFocus(0)
	return m
}

// Run builds a [Model] for the toolkit and runs it in a bubbletea
// program until the user quits.
func (tk *Toolkit) Run(title string) error {
	m := NewModel(tk)
	m.Title = title
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init implements [tea.Model].
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// surface returns the frames receiving input: the topmost open
// dialog's content if any dialog is open, else the top-level frames.
func (m *Model) surface() []*Frame {
	if n := len(m.tk.Dialogs); n > 0 {
		return []*Frame{m.tk.Dialogs[n-1].content}
	}
	return m.tk.Frames
}

// focusables returns the focusable controls of the active surface in
// render order.
func (m *Model) focusables() []focusable {
	var fs []focusable
	for _, fr := range m.surface() {
		fs = append(fs, collectFocusables(fr)...)
	}
	return fs
}

func collectFocusables(fr *Frame) []focusable {
	var fs []focusable
	for _, ch := range fr.Children {
		if sub, ok := ch.(*Frame); ok {
			fs = append(fs, collectFocusables(sub)...)
			continue
		}
		if fc, ok := ch.(focusable); ok {
			fs = append(fs, fc)
		}
	}
	return fs
}

// setFocus moves focus to the focusable at index i, wrapping around.
func (m *Model) setFocus(i int) {
	fs := m.focusables()
	if len(fs) == 0 {
		m.focus = 0
		return
	}
	m.focus = ((i % len(fs)) + len(fs)) % len(fs)
	for j, fc := range fs {
		fc.setFocused(j == m.focus)
	}
}

// Update implements [tea.Model].
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if n := len(m.tk.Dialogs); n > 0 {
			m.tk.Dialogs[n-1].Close(false)
			m.setFocus(0)
			return m, nil
		}
		return m, tea.Quit
	case "ctrl+s":
		if n := len(m.tk.Dialogs); n > 0 {
			m.tk.Dialogs[n-1].Close(true)
			m.setFocus(0)
			return m, nil
		}
		return m, nil
	case "tab":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab":
		m.setFocus(m.focus - 1)
		return m, nil
	}
	fs := m.focusables()
	if m.focus >= len(fs) {
		m.setFocus(0)
		fs = m.focusables()
	}
	if len(fs) == 0 {
		return m, nil
	}
	cmd := fs[m.focus].handleKey(msg)
	// a key can open or close a dialog; refocus onto the new surface
	m.setFocus(m.focus)
	return m, cmd
}

// View implements [tea.Model].
func (m *Model) View() string {
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(Styles.Title.Render(m.Title) + "\n")
	}
	var frames []string
	for _, fr := range m.tk.Frames {
		frames = append(frames, frameView(fr))
	}
	b.WriteString(Styles.Box.Render(strings.Join(frames, "\n")))
	if n := len(m.tk.Dialogs); n > 0 {
		dlg := m.tk.Dialogs[n-1]
		content := Styles.Title.Render(dlg.opts.Title) + "\n\n" + frameView(dlg.content)
		var keys []string
		if dlg.opts.Ok {
			keys = append(keys, "ctrl+s: ok")
		}
		if dlg.opts.Cancel {
			keys = append(keys, "esc: cancel")
		}
		content += "\n\n" + Styles.Hint.Render(strings.Join(keys, "  "))
		b.WriteString("\n" + Styles.Dialog.Render(content))
	}
	b.WriteString("\n" + Styles.Hint.Render("tab: next field  esc: quit"))
	return b.String()
}

// frameView renders one frame's controls. A label directly followed
// by a control shares its row; inline frames render as a single row.
func frameView(fr *Frame) string {
	var rows []string
	for i := 0; i < len(fr.Children); i++ {
		ch := fr.Children[i]
		if txt, ok := ch.(*Text); ok && i+1 < len(fr.Children) {
			if _, next := fr.Children[i+1].(*Text); !next {
				rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
					Styles.Label.Render(txt.Text()+": "), controlView(fr.Children[i+1])))
				i++
				continue
			}
		}
		rows = append(rows, controlView(ch))
	}
	if fr.Inline {
		return strings.Join(rows, "  ")
	}
	return strings.Join(rows, "\n")
}

func controlView(ch toolkit.Control) string {
	switch c := ch.(type) {
	case *Frame:
		return frameView(c)
	case *Text:
		return Styles.Label.Render(c.Text())
	case focusable:
		return c.view()
	}
	return ""
}
