// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cardreader simulates the terminal reading a submitted card: a row
// of lights turns green one by one, then DoneMsg is sent.
package cardreader

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cardform/cardform/internal/config"
	"github.com/cardform/cardform/internal/i18n"
	"github.com/cardform/cardform/ui/tui/styles"
	"github.com/cardform/cardform/ui/tui/util"
)

// DoneMsg is sent once every light is on.
type DoneMsg struct{}

type stepMsg struct {
	run   int
	light int
}

type Model struct {
	initialDelay time.Duration
	interval     time.Duration
	steps        int

	run     int
	lit     int
	running bool
	done    bool
}

func New(cfg config.ReaderConfig) *Model {
	return &Model{
		initialDelay: cfg.InitialDelay,
		interval:     cfg.Interval,
		steps:        max(cfg.Steps, 1),
	}
}

// Start begins a new run. Ticks of an earlier run are ignored from now on.
func (m *Model) Start() tea.Cmd {
	m.run++
	m.lit, m.running, m.done = 0, true, false
	return m.schedule(m.initialDelay, 0)
}

// Reset turns every light off and cancels a running read.
func (m *Model) Reset() {
	m.run++
	m.lit, m.running, m.done = 0, false, false
}

func (m *Model) Running() bool { return m.running }

// Lit is the number of lights that are on.
func (m *Model) Lit() int { return m.lit }

func (m *Model) schedule(d time.Duration, light int) tea.Cmd {
	run := m.run
	return tea.Tick(d, func(time.Time) tea.Msg {
		return stepMsg{run: run, light: light}
	})
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	step, ok := msg.(stepMsg)
	if !ok || step.run != m.run || !m.running {
		return nil
	}
	m.lit = step.light
	if m.lit >= m.steps {
		m.running, m.done = false, true
		return func() tea.Msg { return DoneMsg{} }
	}
	return m.schedule(m.interval, m.lit+1)
}

func (m Model) View() string {
	lights := make([]string, m.steps)
	for i := range lights {
		if i < m.lit {
			lights[i] = styles.Success.Render("●")
		} else {
			lights[i] = styles.Help.Render("○")
		}
	}

	status := i18n.T("tui.reader.idle")
	switch {
	case m.done:
		status = styles.Success.Render(i18n.T("tui.reader.done"))
	case m.running:
		status = styles.Submitting.Render(i18n.T("tui.reader.reading"))
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		strings.Join(lights, " "),
		status,
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

var _ util.Model = (*Model)(nil)
