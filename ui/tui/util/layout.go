// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"cmp"

	tea "github.com/charmbracelet/bubbletea"
)

// Size is the area last assigned to a model through tea.WindowSizeMsg.
type Size struct {
	Width  int
	Height int
}

// Update takes over the size from a tea.WindowSizeMsg and reports whether
// msg was one.
func (s *Size) Update(msg tea.Msg) bool {
	size, ok := msg.(tea.WindowSizeMsg)
	if ok {
		s.Width, s.Height = size.Width, size.Height
	}
	return ok
}

// Capped is the size to hand to a child that must not grow wider than
// maxWidth, such as a form or a dialog.
func (s Size) Capped(maxWidth int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  Clamp(0, s.Width, maxWidth),
		Height: s.Height,
	}
}

func Clamp[T cmp.Ordered](_min, _wanted, _max T) T {
	return min(max(_min, _wanted), _max)
}
