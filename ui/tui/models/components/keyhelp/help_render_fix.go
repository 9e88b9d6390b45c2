// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders key help that respects the available width.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders bindings on one line. Unlike help.Model it drops
// disabled bindings before placing separators and always keeps the
// ellipsis inside the width.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	bindings = slices.DeleteFunc(slices.Clone(bindings), func(kb key.Binding) bool {
		return !kb.Enabled()
	})
	if len(bindings) == 0 {
		return ""
	}

	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	items := make([]string, 0, len(bindings))
	for i, kb := range bindings {
		var sep string
		if i > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	var b strings.Builder
	fit(m, items, func(s string) { b.WriteString(s) })
	return b.String()
}

// FullHelpView renders one column per group of enabled bindings.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}
		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}
	if len(cols) == 0 {
		return ""
	}

	var result []string
	fit(m, cols, func(s string) { result = append(result, s) })
	return lipgloss.JoinHorizontal(lipgloss.Top, result...)
}

// fit emits items while they fit into m.Width, replacing the rest with the
// ellipsis when there is room for it.
func fit(m help.Model, items []string, emit func(string)) {
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailWidth := lipgloss.Width(tail)

	var used int
	for i, item := range items {
		w := lipgloss.Width(item)
		last := i == len(items)-1
		switch {
		case m.Width <= 0:
			emit(item)
		case !last && used+w+tailWidth <= m.Width, last && used+w <= m.Width:
			used += w
			emit(item)
		default:
			if used+tailWidth <= m.Width {
				emit(tail)
			}
			return
		}
	}
}
