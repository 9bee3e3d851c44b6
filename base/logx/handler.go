// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] whose level is determined by
// [UserLevel] and whose output is colored by level via termenv.
type Handler struct {
	mu sync.Mutex
	w  io.Writer

	// attrs and groups accumulated via WithAttrs/WithGroup.
	attrs  []slog.Attr
	groups []string
}

// NewHandler makes a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to [os.Stderr]. It is called automatically by the demo
// program and can be called by any app using this library.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// levelColor returns the termenv color for the given level.
func levelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSIBlue
	default:
		return termenv.ANSIWhite
	}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	lvl := termenv.String(r.Level.String()).Foreground(levelColor(r.Level)).Bold()
	b.WriteString(lvl.String())
	b.WriteString(" " + r.Message)
	prefix := strings.Join(h.groups, ".")
	writeAttr := func(a slog.Attr) bool {
		if a.Equal(slog.Attr{}) {
			return true
		}
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		b.WriteString(" " + termenv.String(key).Faint().String() + "=" + fmt.Sprintf("%v", a.Value.Any()))
		return true
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(writeAttr)
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &Handler{w: h.w, groups: h.groups}
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := &Handler{w: h.w, attrs: h.attrs}
	nh.groups = append(append([]string{}, h.groups...), name)
	return nh
}
