// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cardpreview draws the card as it is typed, front or back, and
// animates turning it over.
package cardpreview

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cardform/cardform/core/card"
	"github.com/cardform/cardform/core/form"
	"github.com/cardform/cardform/internal/i18n"
	"github.com/cardform/cardform/ui/tui/styles"
	"github.com/cardform/cardform/ui/tui/util"
)

const (
	// Width and Height include the border.
	Width  = 40
	Height = 9

	innerWidth = Width - 4 // border and padding

	// each half of a flip takes halfFrames * frameInterval
	halfFrames    = 3
	frameInterval = 50 * time.Millisecond
)

type frameMsg struct {
	seq int
}

type Model struct {
	brand      card.Brand
	digits     string
	expiration string
	cvv        string
	name       string

	flipEnabled bool
	back        bool // side currently drawn
	target      bool // side the card turns to
	frame       int
	seq         int
}

// New returns a preview showing the front. With flip disabled SetFlipped
// is ignored.
func New(flip bool) *Model {
	return &Model{flipEnabled: flip}
}

// Sync copies the field texts shown on the card.
func (m *Model) Sync(s form.Snapshot) {
	m.brand = s.Brand
	m.digits = card.StripNonDigits(s.Fields[form.CardNumber].Text)
	m.expiration = card.StripNonDigits(s.Fields[form.Expiration].Text)
	m.cvv = s.Fields[form.CVV].Text
	m.name = s.Fields[form.Name].Text
}

// SetFlipped turns the card to its back (true) or front. A running flip is
// cancelled.
func (m *Model) SetFlipped(back bool) tea.Cmd {
	if !m.flipEnabled || back == m.target {
		return nil
	}
	m.target = back
	m.seq++
	if m.back == back {
		// turned around before the half way point
		m.frame = 0
		return nil
	}
	m.frame = 0
	return m.tick()
}

// Flipped reports the side the card shows once any flip finished.
func (m *Model) Flipped() bool {
	return m.target
}

func (m *Model) Animating() bool {
	return m.frame > 0 || m.back != m.target
}

func (m *Model) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	fm, ok := msg.(frameMsg)
	if !ok || fm.seq != m.seq {
		return nil
	}
	m.frame++
	if m.frame == halfFrames {
		m.back = m.target
	}
	if m.frame >= 2*halfFrames {
		m.frame = 0
		return nil
	}
	return m.tick()
}

// scale is the visible share of the card width, shrinking to zero at the
// half way point of a flip.
func (m Model) scale() float64 {
	switch {
	case m.frame == 0:
		return 1
	case m.frame <= halfFrames:
		return float64(halfFrames-m.frame) / halfFrames
	default:
		return float64(m.frame-halfFrames) / halfFrames
	}
}

func (m Model) View() string {
	face := m.front()
	if m.back {
		face = m.backside()
	}

	visible := int(float64(Width)*m.scale() + 0.5)
	if visible >= Width {
		return face
	}
	left := (Width - visible) / 2
	lines := strings.Split(face, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(Width, lipgloss.Center, ansi.TruncateLeft(ansi.Truncate(line, left+visible, ""), left, ""))
	}
	return strings.Join(lines, "\n")
}

func (m Model) box(bg, fg lipgloss.Color, lines []string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorSubtle).
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Width(Width - 2).
		Height(Height - 2).
		Render(strings.Join(lines, "\n"))
}

func (m Model) front() string {
	bg, fg := styles.BrandColor(m.brand), styles.BrandForeground(m.brand)
	base := lipgloss.NewStyle().Background(bg).Foreground(fg)
	chip := lipgloss.NewStyle().Background(bg).Foreground(styles.ColorChip)

	brandLabel := ""
	if m.brand != card.Unknown {
		brandLabel = m.brand.DisplayName()
	}
	name := base.Bold(true).Render(ansi.Truncate(m.name, innerWidth-lipgloss.Width(brandLabel)-1, "…"))

	lines := []string{
		chip.Render("▐▀▀▀▌"),
		chip.Render("▐▄▄▄▌"),
		"",
		alignRight(base, base.Render(card.RedactNumber(m.digits))),
		alignRight(base, base.Render(i18n.T("tui.preview.valid_thru", card.PreviewExpiration(m.expiration)))),
		"",
		spread(base, name, base.Bold(true).Render(brandLabel)),
	}
	return m.box(bg, fg, lines)
}

func (m Model) backside() string {
	bg, fg := styles.ColorWhite, lipgloss.Color("235")
	base := lipgloss.NewStyle().Background(bg).Foreground(fg)
	stripe := lipgloss.NewStyle().Background(lipgloss.Color("0"))
	signature := lipgloss.NewStyle().Background(styles.ColorSubtle)

	cvvBox := base.Bold(true).Width(6).Align(lipgloss.Center).Render(m.cvv)
	lines := []string{
		"",
		stripe.Render(strings.Repeat(" ", innerWidth)),
		"",
		signature.Render(strings.Repeat(" ", innerWidth-lipgloss.Width(cvvBox))) + cvvBox,
		base.Faint(true).Render(i18n.T("tui.preview.back")),
	}
	return m.box(bg, fg, lines)
}

func alignRight(base lipgloss.Style, s string) string {
	return base.Render(strings.Repeat(" ", max(innerWidth-lipgloss.Width(s), 0))) + s
}

func spread(base lipgloss.Style, left, right string) string {
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + base.Render(strings.Repeat(" ", gap)) + right
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

var _ util.Model = (*Model)(nil)
