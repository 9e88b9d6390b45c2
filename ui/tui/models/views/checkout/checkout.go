// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package checkout is the card entry screen: the live card preview, the
// four inputs, the generate and submit buttons and the simulated card
// reader that runs after submit.
package checkout

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cardform/cardform/core/card"
	"github.com/cardform/cardform/core/form"
	"github.com/cardform/cardform/internal/config"
	"github.com/cardform/cardform/internal/i18n"
	"github.com/cardform/cardform/internal/logging"
	"github.com/cardform/cardform/ui/tui/models/components/popup"
	uiform "github.com/cardform/cardform/ui/tui/models/helpers/form"
	forminput "github.com/cardform/cardform/ui/tui/models/helpers/form/input"
	windowtitle "github.com/cardform/cardform/ui/tui/models/helpers/title"
	"github.com/cardform/cardform/ui/tui/models/views/cardpreview"
	"github.com/cardform/cardform/ui/tui/models/views/cardreader"
	"github.com/cardform/cardform/ui/tui/models/views/completion"
	"github.com/cardform/cardform/ui/tui/styles"
	"github.com/cardform/cardform/ui/tui/util"
)

const (
	idGenerate   = "generate"
	idName       = "name"
	idNumber     = "number"
	idCVV        = "cvv"
	idExpiration = "expiration"
	idSubmit     = "submit"

	maxFormWidth = 60
)

var kindByID = map[string]form.Kind{
	idNumber:     form.CardNumber,
	idExpiration: form.Expiration,
	idCVV:        form.CVV,
	idName:       form.Name,
}

type fields struct {
	Number     string `mapstructure:"number"`
	Expiration string `mapstructure:"expiration"`
	CVV        string `mapstructure:"cvv"`
	Name       string `mapstructure:"name"`
}

type Model struct {
	state   *form.State
	form    *uiform.Form[fields]
	inputs  map[form.Kind]*forminput.Text
	submit  *forminput.Button
	preview *cardpreview.Model
	reader  *cardreader.Model
	keyMap  KeyMap

	brand   card.Brand
	focused bool
	size    util.Size
}

// New builds the screen on top of state. The view keeps itself in sync
// through a state subscription.
func New(state *form.State, cfg config.Config) *Model {
	m := &Model{
		state:   state,
		inputs:  make(map[form.Kind]*forminput.Text, len(form.Kinds())),
		submit:  forminput.NewButton(i18n.T("tui.button.submit"), uiform.ActionSubmit),
		preview: cardpreview.New(cfg.Preview.Flip),
		reader:  cardreader.New(cfg.Reader),
		keyMap:  NewKeyMap(),
		brand:   state.Brand(),
	}
	for _, kind := range form.Kinds() {
		m.inputs[kind] = forminput.NewText(form.Label(kind), form.Placeholder(kind))
	}

	m.form = uiform.New(
		uiform.WithInput[fields](idGenerate, forminput.NewButton(i18n.T("tui.button.generate"), uiform.ActionPress)),
		uiform.WithInput[fields](idName, m.inputs[form.Name]),
		uiform.WithInput[fields](idNumber, m.inputs[form.CardNumber]),
		uiform.WithInput[fields](idCVV, m.inputs[form.CVV]),
		uiform.WithInlineInput[fields](idExpiration, m.inputs[form.Expiration]),
		uiform.WithInput[fields](idSubmit, m.submit),
		uiform.WithActive[fields](idName),
		uiform.WithKeyMap[fields](m.keyMap),
		uiform.WithOnChange[fields](m.onChange),
		uiform.WithOnPress[fields](m.onPress),
		uiform.WithOnFocusChange[fields](m.onFocusChange),
		uiform.WithOnSubmit(m.onSubmit),
	)

	state.Subscribe(m.onEvent)
	m.syncAll()
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return m.form.Update(m.size.Capped(maxFormWidth))
	}

	switch msg := msg.(type) {
	case cardreader.DoneMsg:
		return m.complete()
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Reset) {
			return m.Reset()
		}
		if m.state.IsSubmitting() {
			return nil
		}
		return m.form.Update(msg)
	}

	return tea.Batch(
		m.preview.Update(msg),
		m.reader.Update(msg),
		m.form.Update(msg),
	)
}

func (m Model) View() string {
	width := max(m.size.Width, cardpreview.Width)

	body := m.form.View()
	if m.state.IsSubmitting() {
		body = lipgloss.JoinVertical(
			lipgloss.Center,
			m.reader.View(),
			"",
			styles.Submitting.Render(i18n.T("tui.submitting")),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, m.preview.View()),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, body),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	if m.state.IsSubmitting() {
		return nil, m.keyMap
	}
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.focused = false
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Reset clears the form, stops the reader and focuses the name input.
func (m *Model) Reset() tea.Cmd {
	m.state.Reset()
	m.reader.Reset()
	cmds := []tea.Cmd{
		m.preview.SetFlipped(false),
		m.form.Reset(),
	}
	if m.focused && !m.form.Focused() {
		cmd, keyMap := m.form.Focus()
		cmds = append(cmds, cmd, util.AnnounceKeyMapCmd(keyMap))
	}
	return tea.Batch(append(cmds, m.refresh())...)
}

// onChange runs a keystroke through the form state and writes the masked
// text back into the input.
func (m *Model) onChange(id string, value any) tea.Cmd {
	kind, ok := kindByID[id]
	if !ok {
		return nil
	}
	raw, _ := value.(string)
	input := m.inputs[kind]
	pos := input.Position()

	upd := m.state.UpdateField(kind, raw)
	input.Set(upd.Text)
	input.SetCursor(cursorPosition(kind, raw, pos, upd))
	return m.refresh()
}

func (m *Model) onPress(id string) tea.Cmd {
	if id != idGenerate {
		return nil
	}
	m.state.GenerateRandomCard()
	m.state.ValidateAll()
	return tea.Batch(m.refresh(), m.form.FocusID(idExpiration))
}

func (m *Model) onFocusChange(id string) tea.Cmd {
	return m.preview.SetFlipped(id == idCVV)
}

func (m *Model) onSubmit(data fields, err error) tea.Cmd {
	if err != nil {
		logging.Errorf("reading form: %v", err)
		return nil
	}
	m.state.ValidateAll()
	if m.state.IsFormInvalid() || !m.state.Submit() {
		return m.refresh()
	}
	logging.Infof("submitting card %s", card.RedactNumber(card.StripNonDigits(data.Number)))

	m.form.Blur()
	return tea.Batch(
		m.refresh(),
		m.preview.SetFlipped(false),
		m.reader.Start(),
		util.AnnounceKeyMapCmd(m.keyMap),
	)
}

// complete ends the submission once the reader is done.
func (m *Model) complete() tea.Cmd {
	if !m.state.Complete() {
		return nil
	}
	return popup.OpenWithCallback(util.ModelPointer(completion.New()), func(*util.Model) tea.Cmd {
		return m.Reset()
	})
}

// onEvent mirrors state changes into the inputs.
func (m *Model) onEvent(e form.Event) {
	switch e := e.(type) {
	case form.FieldEvent:
		input := m.inputs[e.Kind]
		if input.Get() != e.Text {
			input.Set(e.Text)
		}
		input.Error = form.Message(e.Kind, e.Error, e.Brand)
	case form.ResetEvent:
		for _, input := range m.inputs {
			input.Reset()
		}
	}
}

func (m *Model) syncAll() {
	for _, kind := range form.Kinds() {
		f := m.state.Field(kind)
		m.inputs[kind].Set(f.Text)
		m.inputs[kind].Error = m.state.ErrorMessage(kind)
	}
}

// refresh updates everything derived from the whole form. The window
// title follows the detected brand.
func (m *Model) refresh() tea.Cmd {
	m.submit.Disabled = m.state.IsFormInvalid() || m.state.IsSubmitting()
	m.preview.Sync(m.state.Snapshot())

	if brand := m.state.Brand(); brand != m.brand {
		m.brand = brand
		if brand == card.Unknown {
			return windowtitle.Set("")
		}
		return windowtitle.Set(brand.DisplayName())
	}
	return nil
}
