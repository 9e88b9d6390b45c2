// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardform/cardform/ui/tui/models/helpers/form"
	forminput "github.com/cardform/cardform/ui/tui/models/helpers/form/input"
)

type person struct {
	First string `mapstructure:"first"`
	Last  string `mapstructure:"last"`
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newPersonForm(opts ...form.NewOpt[person]) *form.Form[person] {
	base := []form.NewOpt[person]{
		form.WithInput[person]("first", forminput.NewText("First", "")),
		form.WithInlineInput[person]("last", forminput.NewText("Last", "")),
		form.WithInput[person]("ok", forminput.NewButton("OK", form.ActionSubmit)),
	}
	f := form.New(append(base, opts...)...)
	f.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	f.Focus()
	return f
}

func TestForm_Navigation(t *testing.T) {
	f := newPersonForm()
	if f.ActiveID() != "first" {
		t.Fatalf("expected first input active, got %q", f.ActiveID())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.ActiveID() != "last" {
		t.Fatalf("tab: got %q", f.ActiveID())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if f.ActiveID() != "ok" {
		t.Fatalf("enter on text should advance, got %q", f.ActiveID())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	if f.ActiveID() != "first" {
		t.Fatalf("expected wrap around, got %q", f.ActiveID())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.ActiveID() != "ok" {
		t.Fatalf("shift+tab should wrap backwards, got %q", f.ActiveID())
	}
}

func TestForm_OnChangeAndFocusChange(t *testing.T) {
	var changes []string
	var focused []string
	f := newPersonForm(
		form.WithOnChange[person](func(id string, value any) tea.Cmd {
			changes = append(changes, id+"="+value.(string))
			return nil
		}),
		form.WithOnFocusChange[person](func(id string) tea.Cmd {
			focused = append(focused, id)
			return nil
		}),
	)

	f.Update(keyRunes("a"))
	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	f.Update(tea.KeyMsg{Type: tea.KeyTab})

	if len(changes) != 1 || changes[0] != "first=a" {
		t.Fatalf("unexpected changes %v", changes)
	}
	if len(focused) != 1 || focused[0] != "last" {
		t.Fatalf("unexpected focus changes %v", focused)
	}
}

func TestForm_GetSetAndSubmit(t *testing.T) {
	var submitted person
	f := newPersonForm(form.WithOnSubmit(func(p person, err error) tea.Cmd {
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		submitted = p
		return nil
	}))

	if err := f.Set(person{First: "John", Last: "Doe"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := f.Get()
	if err != nil || got != (person{First: "John", Last: "Doe"}) {
		t.Fatalf("get: %+v %v", got, err)
	}

	f.FocusID("ok")
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if submitted.First != "John" || submitted.Last != "Doe" {
		t.Fatalf("submit: %+v", submitted)
	}
}

func TestForm_PressAndDisabledButton(t *testing.T) {
	var pressed []string
	generate := forminput.NewButton("Generate", form.ActionPress)
	f := form.New(
		form.WithInput[person]("generate", generate),
		form.WithInput[person]("first", forminput.NewText("First", "")),
		form.WithOnPress[person](func(id string) tea.Cmd {
			pressed = append(pressed, id)
			return nil
		}),
	)
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	generate.Disabled = true
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(pressed) != 1 || pressed[0] != "generate" {
		t.Fatalf("unexpected presses %v", pressed)
	}
}

func TestForm_ResetAndActive(t *testing.T) {
	f := newPersonForm(form.WithActive[person]("last"))
	if f.ActiveID() != "last" {
		t.Fatalf("expected last active, got %q", f.ActiveID())
	}
	f.SetValue("first", "Jane")
	f.Input("first").(*forminput.Text).Error = "bad"
	f.FocusID("ok")

	f.Reset()

	if f.ActiveID() != "last" {
		t.Fatalf("reset should return to the start input, got %q", f.ActiveID())
	}
	text := f.Input("first").(*forminput.Text)
	if text.Get() != "" || text.Error != "" {
		t.Fatalf("input not cleared: %q %q", text.Get(), text.Error)
	}
	if f.Input("missing") != nil {
		t.Fatalf("expected nil for unknown id")
	}
}

func TestForm_BlurredIgnoresKeys(t *testing.T) {
	f := newPersonForm()
	f.Blur()
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Update(keyRunes("x"))
	if f.ActiveID() != "first" || f.Input("first").Get() != "" {
		t.Fatalf("blurred form must ignore keys")
	}
}
