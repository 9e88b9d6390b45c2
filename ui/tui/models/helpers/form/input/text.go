// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cardform/cardform/internal/i18n"
	"github.com/cardform/cardform/ui/tui/models/helpers/form"
	"github.com/cardform/cardform/ui/tui/styles"
)

// Text is a single line input with a label above and an error line below.
type Text struct {
	Label       string
	Placeholder string
	// Error is shown below the input when not empty.
	Error  string
	KeyMap TextKeyMap

	input   textinput.Model
	focused bool
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

func NewText(label, placeholder string) *Text {
	input := textinput.New()
	input.Prompt = ""
	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("tui.key.next")),
			),
		},
		input: input,
	}
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

func (t *Text) Focused() bool {
	return t.focused
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
	t.input.SetCursor(0)
	t.Error = ""
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

// Position is the cursor offset in runes.
func (t *Text) Position() int {
	return t.input.Position()
}

func (t *Text) SetCursor(pos int) {
	t.input.SetCursor(pos)
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	label := styles.Label.Render(t.Label)
	if t.focused {
		label = styles.FocusedLabel.Render(t.Label)
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorSubtle)
	if t.focused {
		border = border.BorderForeground(styles.ColorHighlight)
	}

	// border plus one cell for the cursor
	t.input.Width = max(width-4, 1)
	t.input.Placeholder = t.Placeholder

	errorLine := " "
	if t.Error != "" {
		errorStyle := styles.Error
		if width > 0 {
			errorStyle = errorStyle.MaxWidth(width)
		}
		errorLine = errorStyle.Render(t.Error)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		label,
		border.Width(max(width-2, 1)).Render(t.input.View()),
		errorLine,
	)
}

var _ form.FormInput = (*Text)(nil)
