// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type testKeyMap []key.Binding

func (k testKeyMap) ShortHelp() []key.Binding  { return k }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestMergeKeyMaps(t *testing.T) {
	a := testKeyMap{key.NewBinding(key.WithKeys("a"))}
	b := testKeyMap{key.NewBinding(key.WithKeys("b")), key.NewBinding(key.WithKeys("c"))}

	merged := MergeKeyMaps(a, nil, b)
	if got := len(merged.ShortHelp()); got != 3 {
		t.Fatalf("expected 3 short bindings, got %d", got)
	}
	if got := len(merged.FullHelp()); got != 2 {
		t.Fatalf("expected 2 groups, got %d", got)
	}
}

func TestAnnounceKeyMapCmd(t *testing.T) {
	var km help.KeyMap = testKeyMap{}
	msg := AnnounceKeyMapCmd(km)()
	if _, ok := msg.(AnnounceKeyMapMsg); !ok {
		t.Fatalf("unexpected msg %T", msg)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(0, -3, 5) != 0 || Clamp(0, 9, 5) != 5 || Clamp(0, 3, 5) != 3 {
		t.Fatalf("clamp out of range")
	}
}

func TestSize_Update(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatalf("key msg must not resize")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("window size msg must resize")
	}
	if s.Width != 80 || s.Height != 24 {
		t.Fatalf("unexpected size %+v", s)
	}
}

func TestSize_Capped(t *testing.T) {
	s := Size{Width: 80, Height: 24}
	if got := s.Capped(60); got != (tea.WindowSizeMsg{Width: 60, Height: 24}) {
		t.Fatalf("expected width capped to 60, got %+v", got)
	}
	if got := s.Capped(100); got != (tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("narrower size must pass through, got %+v", got)
	}
}
