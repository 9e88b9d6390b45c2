// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package root

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/cardform/cardform/core/form"
	"github.com/cardform/cardform/internal/config"
	"github.com/cardform/cardform/internal/i18n"
	"github.com/cardform/cardform/ui/tui/models/views/footer"
	"github.com/cardform/cardform/ui/tui/util"
)

func newRoot(t *testing.T) (*Model, *form.State) {
	t.Helper()
	i18n.Init("en")
	state := form.New()
	m := New(state, config.Default())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	_, keyMap := m.stack.Focus()
	m.Update(util.AnnounceKeyMapMsg{KeyMap: keyMap})
	return m, state
}

func TestRoot_RendersScreen(t *testing.T) {
	m, _ := newRoot(t)
	view := ansi.Strip(m.View())
	for _, want := range []string{"Generate Credit Card", "Name on Card", "Card Number", "Submit", "ctrl+c exit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("screen misses %q:\n%s", want, view)
		}
	}
}

func TestRoot_KeysReachCheckout(t *testing.T) {
	m, state := newRoot(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Jane")})
	if got := state.Field(form.Name).Text; got != "Jane" {
		t.Fatalf("expected name typed into the form, got %q", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c should quit")
	}
}

func TestRoot_HelpTogglesFooter(t *testing.T) {
	m, _ := newRoot(t)
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if !(*m.footer).(*footer.Model).Expanded() {
		t.Fatalf("f1 should expand the footer help")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if (*m.footer).(*footer.Model).Expanded() {
		t.Fatalf("f1 should collapse the footer help again")
	}
}
