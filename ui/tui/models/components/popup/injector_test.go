// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/cardform/cardform/ui/tui/util"
)

type probe struct {
	view    string
	keys    int
	other   int
	focused bool
	size    util.Size
}

func (p *probe) Init() tea.Cmd { return nil }
func (p *probe) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case tea.WindowSizeMsg:
		p.size.Update(msg)
	case tea.KeyMsg:
		p.keys++
	default:
		p.other++
	}
	return nil
}
func (p *probe) View() string                  { return p.view }
func (p *probe) Focus() (tea.Cmd, help.KeyMap) { p.focused = true; return nil, nil }
func (p *probe) Blur()                         { p.focused = false }

type tick struct{}

func TestInjector_OpenRoutesKeysToPopup(t *testing.T) {
	child := &probe{view: strings.Repeat(strings.Repeat(".", 20)+"\n", 5) + strings.Repeat(".", 20)}
	p := &probe{view: "hi"}
	m := NewInjector(util.ModelPointer(child))
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 6})
	child.focused = true

	var closed bool
	m.Update(OpenWithCallback(util.ModelPointer(p), func(*util.Model) tea.Cmd {
		closed = true
		return nil
	})())
	if !m.IsOpen() || child.focused || !p.focused {
		t.Fatalf("expected popup focused, child blurred")
	}
	if p.size.Width != 14 || p.size.Height != 4 {
		t.Fatalf("unexpected popup size %+v", p.size)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tick{})
	if p.keys != 1 || child.keys != 0 {
		t.Fatalf("keys must only reach the popup: popup=%d child=%d", p.keys, child.keys)
	}
	if p.other != 1 || child.other != 1 {
		t.Fatalf("other msgs must reach both: popup=%d child=%d", p.other, child.other)
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "hi") {
		t.Fatalf("popup not rendered: %q", view)
	}
	if len(strings.Split(view, "\n")) != 6 {
		t.Fatalf("overlay changed height: %q", view)
	}

	m.Update(Close()())
	if m.IsOpen() || !closed || !child.focused {
		t.Fatalf("expected popup closed and child focused again")
	}
}
