// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root assembles the full screen: header, checkout (behind the
// popup injector) and footer.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardform/cardform/buildvars"
	"github.com/cardform/cardform/core/form"
	"github.com/cardform/cardform/internal/config"
	"github.com/cardform/cardform/internal/i18n"
	"github.com/cardform/cardform/ui/tui/models/components/header"
	"github.com/cardform/cardform/ui/tui/models/components/popup"
	"github.com/cardform/cardform/ui/tui/models/components/stack"
	windowtitle "github.com/cardform/cardform/ui/tui/models/helpers/title"
	"github.com/cardform/cardform/ui/tui/models/views/checkout"
	"github.com/cardform/cardform/ui/tui/models/views/footer"
	"github.com/cardform/cardform/ui/tui/util"
)

// relayoutMsg makes the stack recompute item sizes after the footer grew
// or shrank.
type relayoutMsg struct{}

type Model struct {
	stack        *stack.Model
	footer       *util.Model
	titleHandler *windowtitle.TitleHandler
	keyMap       KeyMap
}

func New(state *form.State, cfg config.Config) *Model {
	keyMap := NewBaseKeyMap()
	_footer := util.ModelPointer(footer.New(keyMap))

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(util.ModelPointer(header.New()), header.SizeConfig),
			stack.WithItem(
				util.ModelPointer(popup.NewInjector(
					util.ModelPointer(checkout.New(state, cfg)),
				)),
				stack.VariableSize(1)),
			stack.WithItem(_footer, footer.SizeConfig),
		),
		footer:       _footer,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", i18n.T("tui.title"), buildvars.VersionOrDefault("dev")), " | "),
		keyMap:       keyMap,
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
			return m, m.stack.Update(relayoutMsg{})
		}

		return m, m.stack.Update(msg)
	}
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
