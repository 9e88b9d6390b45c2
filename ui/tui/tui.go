// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardform/cardform/core/form"
	"github.com/cardform/cardform/internal/config"
	"github.com/cardform/cardform/internal/logging"
	"github.com/cardform/cardform/ui/tui/models/views/root"
)

// Run shows the form until the user quits.
func Run(cfg config.Config) error {
	state := form.New(form.WithLuhn(cfg.Validation.Luhn))
	defer form.LogEvents(state)()

	logging.Debugf("starting tui (luhn=%t, flip=%t)", cfg.Validation.Luhn, cfg.Preview.Flip)
	_, err := tea.NewProgram(
		root.New(state, cfg),
		tea.WithAltScreen(),
	).Run()
	return err
}
