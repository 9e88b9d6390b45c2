// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup overlays modal views on top of a child view.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cardform/cardform/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

// Injector owns a child view and a stack of popups. Key presses only reach
// the topmost popup; every other message reaches the child too, so timers
// in the child keep running behind a popup.
type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child: child,
	}
}

func (m Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	case tea.KeyMsg:
		return (*m.activeModel()).Update(msg)
	}

	if len(m.popups) > 0 {
		return tea.Batch(
			(*m.activeModel()).Update(msg),
			(*m.child).Update(msg),
		)
	}
	return (*m.child).Update(msg)
}

// IsOpen reports whether a popup is shown.
func (m *Injector) IsOpen() bool {
	return len(m.popups) > 0
}

func (m Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

// overlay centers v2 on top of v1.
func overlay(v1, v2 string) string {
	v1Width, v1Height := lipgloss.Size(v1)
	v2 = lipgloss.NewStyle().MaxWidth(v1Width).MaxHeight(v1Height).Render(v2)
	v2Width, v2Height := lipgloss.Size(v2)

	offsetLeft := (v1Width - v2Width) / 2
	offsetTop := (v1Height - v2Height) / 2

	v1Lines := strings.Split(v1, "\n")
	v2Lines := strings.Split(v2, "\n")

	for i := range v2Lines {
		line := v1Lines[i+offsetTop]
		left := ansi.Truncate(line, offsetLeft, "")
		left += strings.Repeat(" ", max(offsetLeft-ansi.StringWidth(left), 0))
		right := ansi.TruncateLeft(line, offsetLeft+v2Width, "")
		v1Lines[i+offsetTop] = left + v2Lines[i] + right
	}

	return strings.Join(v1Lines, "\n")
}

func (m Injector) View() string {
	childView := (*m.child).View()
	if len(m.popups) == 0 {
		return childView
	}

	popupView := lipgloss.
		NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		Margin(0, 1).
		Render((*m.activeModel()).View())

	// dim the child behind the popup
	childView = lipgloss.
		NewStyle().
		Foreground(lipgloss.AdaptiveColor{
			Light: "#DDDADA",
			Dark:  "#3C3C3C",
		}).
		Render(ansi.Strip(childView))

	return overlay(childView, popupView)
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

var _ util.Model = (*Injector)(nil)

func (m *Injector) open(p popup) tea.Cmd {
	m.Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		(*p.model).Init(),
		m.focusActiveModel(),
		(*p.model).Update(m.popupSize()),
	)
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}
	m.Blur()
	var onCloseCmd tea.Cmd
	if p := m.popups[len(m.popups)-1]; p.onClose != nil {
		onCloseCmd = p.onClose(p.model)
	}
	m.popups = m.popups[:len(m.popups)-1]
	return tea.Batch(
		m.focusActiveModel(),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}
