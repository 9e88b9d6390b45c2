// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package header renders the logo line on top of the TUI.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cardform/cardform/ui/tui/util"
)

const logo string = "" +
	"┌─┐┌─┐┬─┐┌┬┐┌─┐┌─┐┬─┐┌┬┐\n" +
	"│  ├─┤├┬┘ ││├┤ │ │├┬┘│││\n" +
	"└─┘┴ ┴┴└──┴┘└  └─┘┴└─┴ ┴"

const logoCompact string = "💳 cardform"

type Model struct {
	size util.Size
}

func New() *Model {
	return &Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			m.logo(),
		))
}

// logo picks the large logo when the window is wide and tall enough.
func (m Model) logo() string {
	if m.size.Height > lipgloss.Height(logo) && m.size.Width >= lipgloss.Width(logo) {
		return logo
	}
	return logoCompact
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

var _ util.Model = (*Model)(nil)
