// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Command maintest starts the TUI with default settings, skipping config
// files and flags.
package main

import (
	"fmt"
	"os"

	"github.com/cardform/cardform/internal/config"
	"github.com/cardform/cardform/internal/i18n"
	tui "github.com/cardform/cardform/ui/tui"
)

func main() {
	cfg := config.Default()
	i18n.Init(cfg.Language)
	if err := tui.Run(cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
