// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package header

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cardform/cardform/ui/tui/models/components/stack"
	"github.com/cardform/cardform/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate gives the large logo room on tall terminals, one line on
// medium ones and hides the header on very small ones.
func (s *sizeConfig) Calculate(_ util.Model, _ int, totalSize int) int {
	switch {
	case totalSize >= 30+lipgloss.Height(logo):
		return lipgloss.Height(logo) + 1
	case totalSize >= 24:
		return 2
	}
	return 0
}
