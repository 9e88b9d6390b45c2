// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/cardform/cardform/ui/tui/models/helpers/form"
)

func TestText_CursorAndError(t *testing.T) {
	in := NewText("Card Number", "0000")
	in.Focus()
	in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4111")})
	if in.Get() != "4111" || in.Position() != 4 {
		t.Fatalf("got %q at %d", in.Get(), in.Position())
	}

	in.Set("4111 1")
	in.SetCursor(6)
	if in.Position() != 6 {
		t.Fatalf("cursor not moved: %d", in.Position())
	}

	in.Error = "Card number must be 16 digits."
	view := ansi.Strip(in.View(40))
	if !strings.Contains(view, "Card Number") || !strings.Contains(view, "must be 16 digits") {
		t.Fatalf("unexpected view %q", view)
	}

	if _, action := in.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNext {
		t.Fatalf("enter should advance, got %v", action)
	}

	in.Reset()
	if in.Get() != "" || in.Error != "" {
		t.Fatalf("reset left %q %q", in.Get(), in.Error)
	}
}

func TestButton_Action(t *testing.T) {
	b := NewButton("Submit", form.ActionSubmit)
	if _, keyMap := b.Focus(); keyMap == nil {
		t.Fatalf("enabled button should announce its key")
	}
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionSubmit {
		t.Fatalf("expected submit, got %v", action)
	}
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}); action != form.ActionSubmit {
		t.Fatalf("space should press too, got %v", action)
	}

	b.Disabled = true
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNone {
		t.Fatalf("disabled button pressed")
	}
	if !strings.Contains(ansi.Strip(b.View(20)), "Submit") {
		t.Fatalf("label missing")
	}
	if b.Get() != nil {
		t.Fatalf("buttons carry no value")
	}
}
