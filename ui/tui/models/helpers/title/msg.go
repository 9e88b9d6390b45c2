// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set replaces the suffix after the base title. An empty title shows the
// base alone.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
