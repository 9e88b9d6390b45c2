// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package stack

import (
	"math"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardform/cardform/ui/tui/util"
	"github.com/cardform/cardform/util/slicest"
)

// SizeConfig decides how much of the stack's main axis an item gets. Items
// with a lower priority are sized first.
type SizeConfig interface {
	Priority() int
	Calculate(model util.Model, remainingSize int, totalSize int) int
}

type staticSize struct {
	Size int
}

type variableSize struct {
	Weight      int
	totalWeight int
}

func StaticSize(size int) SizeConfig     { return &staticSize{Size: size} }
func VariableSize(weight int) SizeConfig { return &variableSize{Weight: weight} }

func (sc *staticSize) Priority() int   { return 0 }
func (sc *variableSize) Priority() int { return math.MaxInt }

func (sc *staticSize) Calculate(_ util.Model, _ int, _ int) int {
	return sc.Size
}

func (sc *variableSize) Calculate(_ util.Model, remainingSize int, _ int) int {
	if sc.totalWeight == 0 {
		return remainingSize
	}
	// remainingSize * (Weight / totalWeight) without float rounding
	return (remainingSize * sc.Weight) / sc.totalWeight
}

func (s *Model) calculateItemSizes() {
	totalSize := s.size.Width
	if s.Orientation == Vertical {
		totalSize = s.size.Height
	}
	remainingSize := totalSize - (s.Gap * (len(s.items) - 1))

	sortedItems := make([]*Item, len(s.items))
	for i := range s.items {
		sortedItems[i] = &s.items[i]
	}
	slices.SortStableFunc(sortedItems, func(a, b *Item) int {
		return a.SizeConfig.Priority() - b.SizeConfig.Priority()
	})

	totalWeight := slicest.Reduce(s.items, func(item Item, total int) int {
		if sc, ok := item.SizeConfig.(*variableSize); ok {
			return total + sc.Weight
		}
		return total
	})

	for _, item := range sortedItems {
		sc, variable := item.SizeConfig.(*variableSize)
		if variable {
			sc.totalWeight = totalWeight
		}

		size := max(min(item.SizeConfig.Calculate(*item.Model, remainingSize, totalSize), remainingSize), 0)

		if variable {
			totalWeight -= sc.Weight
		}
		remainingSize -= size
		item.oldSize = item.size
		item.size = size
	}
}

func (s *Model) updateResizedItems(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	for _, item := range s.items {
		if !force && item.size == item.oldSize {
			continue
		}
		msg := tea.WindowSizeMsg{Width: item.size, Height: s.size.Height}
		if s.Orientation == Vertical {
			msg = tea.WindowSizeMsg{Width: s.size.Width, Height: item.size}
		}
		cmds = append(cmds, (*item.Model).Update(msg))
	}
	return cmds
}
