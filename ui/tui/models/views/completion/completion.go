// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package completion is the popup shown once the card was accepted.
package completion

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cardform/cardform/internal/i18n"
	"github.com/cardform/cardform/ui/tui/models/components/popup"
	"github.com/cardform/cardform/ui/tui/models/helpers/form"
	forminput "github.com/cardform/cardform/ui/tui/models/helpers/form/input"
	"github.com/cardform/cardform/ui/tui/styles"
	"github.com/cardform/cardform/ui/tui/util"
)

const dialogWidth = 36

type Model struct {
	form *form.Form[struct{}]
	size util.Size
}

// New returns the popup. Confirming closes it; the opener decides what
// happens next through the popup close callback.
func New() *Model {
	return &Model{
		form: form.New(
			form.WithInput[struct{}]("ok", forminput.NewButton(i18n.T("tui.completion.ok"), form.ActionSubmit)),
			form.WithOnSubmit(func(struct{}, error) tea.Cmd {
				return popup.Close()
			}),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return m.form.Update(m.size.Capped(dialogWidth))
	}
	return m.form.Update(msg)
}

func (m Model) View() string {
	return styles.Dialog.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Title.Render(i18n.T("tui.completion.title")),
		"",
		i18n.T("tui.completion.body"),
		"",
		m.form.View(),
	))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
