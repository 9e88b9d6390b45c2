// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package checkout

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/cardform/cardform/internal/i18n"
)

type KeyMap struct {
	Reset key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Reset}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Reset}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func NewKeyMap() KeyMap {
	return KeyMap{
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", i18n.T("tui.key.reset")),
		),
	}
}
