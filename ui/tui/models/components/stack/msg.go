// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package stack

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardform/cardform/ui/tui/util"
	"github.com/cardform/cardform/util/slicest"
)

// MsgFilter may rewrite or drop (return nil) a message before it reaches an
// item.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, filters []MsgFilter) tea.Msg {
	return slicest.ReduceD(filters, msg, func(filter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return filter(model, msg)
	})
}
