// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package styles holds the lipgloss palette shared by the TUI views.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cardform/cardform/core/card"
)

const (
	ColorSubtle    = lipgloss.Color("240") // muted gray
	ColorHighlight = lipgloss.Color("81")  // teal
	ColorSpecial   = lipgloss.Color("208") // orange
	ColorError     = lipgloss.Color("196")
	ColorSuccess   = lipgloss.Color("40")
	ColorWhite     = lipgloss.Color("231")
	ColorIndigo    = lipgloss.Color("61")
	ColorChip      = lipgloss.Color("178") // gold
	ColorStripe    = lipgloss.Color("236")
)

var brandColors = map[card.Brand]lipgloss.Color{
	card.Visa:       lipgloss.Color("27"),  // blue
	card.Mastercard: lipgloss.Color("208"), // orange
	card.Amex:       lipgloss.Color("37"),  // cyan
	card.DinersClub: lipgloss.Color("94"),  // brown
	card.Discover:   lipgloss.Color("91"),  // purple
}

// BrandColor is the card face background for b.
func BrandColor(b card.Brand) lipgloss.Color {
	if c, ok := brandColors[b]; ok {
		return c
	}
	return lipgloss.Color("250")
}

var (
	Help    = lipgloss.NewStyle().Foreground(ColorSubtle)
	Error   = lipgloss.NewStyle().Foreground(ColorError)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Special = lipgloss.NewStyle().Foreground(ColorSpecial)

	Title = lipgloss.NewStyle().
		Foreground(ColorHighlight).
		Bold(true)

	Label        = lipgloss.NewStyle().Foreground(ColorSubtle)
	FocusedLabel = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	Submitting = lipgloss.NewStyle().
			Foreground(ColorIndigo).
			Bold(true)

	Button = lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSubtle)

	FocusedButton = Button.
			BorderForeground(ColorHighlight).
			Foreground(ColorHighlight).
			Bold(true)

	DisabledButton = Button.
			Foreground(ColorSubtle).
			Strikethrough(true)

	Dialog = lipgloss.NewStyle().
		Padding(0, 2).
		Align(lipgloss.Center)
)

// BrandForeground keeps text readable on BrandColor(b).
func BrandForeground(b card.Brand) lipgloss.Color {
	if _, ok := brandColors[b]; ok {
		return ColorWhite
	}
	return lipgloss.Color("235")
}
