// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form arranges inputs in rows, moves focus between them and maps
// their values onto a struct T through mapstructure tags.
package form

import (
	"reflect"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"

	"github.com/cardform/cardform/ui/tui/util"
	"github.com/cardform/cardform/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	// Get returns nil for inputs without a value, such as buttons.
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	OnPress          func(id string) tea.Cmd
	OnChange         func(id string, value any) tea.Cmd
	OnFocusChange    func(id string) tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	rows        []formRow
	activeIndex int
	startIndex  int
	focused     bool
	keyMap      KeyMap
	baseKeyMap  help.KeyMap
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f *Form[T]) Update(msg tea.Msg) tea.Cmd {
	if f.size.Update(msg) {
		return nil
	}
	if !f.focused || len(f.items) == 0 {
		return nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.keyMap.Next):
			return f.changeActiveIndex(1)
		case key.Matches(kmsg, f.keyMap.Prev):
			return f.changeActiveIndex(-1)
		}
	}

	return f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			width := f.size.Width / max(len(row.items), 1)
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row.items, func(itemIndex int) string {
					return lipgloss.NewStyle().
						Width(width).
						Render(f.items[itemIndex].input.View(width))
				})...,
			)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, f.mergedKeyMap(nil)
	}
	cmd, inputKeyMap := f.items[f.activeIndex].input.Focus()
	return cmd, f.mergedKeyMap(inputKeyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Model
var _ util.Model = (*Form[any])(nil)

// Focused reports whether the form receives keys.
func (f *Form[T]) Focused() bool {
	return f.focused
}

// Reset clears every input and moves back to the first active input.
func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.FocusID(f.idAt(f.startIndex))
}

func (f *Form[T]) Submit() tea.Cmd {
	if f.OnSubmit == nil {
		return nil
	}
	var resetCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	return tea.Batch(
		resetCmd,
		f.OnSubmit(data, err),
	)
}

// ActiveID is the id of the input that receives keys.
func (f *Form[T]) ActiveID() string {
	return f.idAt(f.activeIndex)
}

// Input returns the input registered under id, or nil.
func (f *Form[T]) Input(id string) FormInput {
	if i := f.indexOf(id); i >= 0 {
		return f.items[i].input
	}
	return nil
}

// SetValue replaces the value of a single input without calling OnChange.
func (f *Form[T]) SetValue(id string, value any) {
	if input := f.Input(id); input != nil {
		input.Set(value)
	}
}

// FocusID makes id the active input.
func (f *Form[T]) FocusID(id string) tea.Cmd {
	i := f.indexOf(id)
	if i < 0 {
		return nil
	}
	return f.changeActiveIndex(i - f.activeIndex)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var (
		updateCmd tea.Cmd
		actionCmd tea.Cmd
		changeCmd tea.Cmd
		action    Action
	)

	active := f.items[f.activeIndex]
	before := active.input.Get()
	updateCmd, action = active.input.Update(msg)

	if f.OnChange != nil {
		if after := active.input.Get(); !reflect.DeepEqual(before, after) {
			changeCmd = f.OnChange(active.id, after)
		}
	}

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionPress:
		if f.OnPress != nil {
			actionCmd = f.OnPress(active.id)
		}
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	}

	return tea.Batch(updateCmd, changeCmd, actionCmd)
}

// changeActiveIndex moves the active input by delta, wrapping around. The
// new key map is announced while the form is focused.
func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	delta = delta % len(f.items)
	if delta == 0 {
		return nil
	}

	old := f.activeIndex
	f.activeIndex = (f.activeIndex + delta + len(f.items)) % len(f.items)

	var focusChangeCmd tea.Cmd
	if f.OnFocusChange != nil {
		focusChangeCmd = f.OnFocusChange(f.ActiveID())
	}
	if !f.focused {
		return focusChangeCmd
	}

	f.items[old].input.Blur()
	cmd, keyMap := f.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap), focusChangeCmd)
}

func (f *Form[T]) mergedKeyMap(inputKeyMap help.KeyMap) help.KeyMap {
	return util.MergeKeyMaps(inputKeyMap, f.keyMap, f.baseKeyMap)
}

func (f *Form[T]) addItem(id string, input FormInput) {
	f.items = append(f.items, formItem{id: id, input: input})
	row := &f.rows[len(f.rows)-1]
	row.items = append(row.items, len(f.items)-1)
}

func (f *Form[T]) indexOf(id string) int {
	for i, item := range f.items {
		if item.id == id {
			return i
		}
	}
	return -1
}

func (f *Form[T]) idAt(i int) string {
	if i < 0 || i >= len(f.items) {
		return ""
	}
	return f.items[i].id
}

// Get decodes the values of all inputs into T.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if value := item.input.Get(); value != nil {
			values[item.id] = value
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

// Set distributes data over the inputs with a matching id.
func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
