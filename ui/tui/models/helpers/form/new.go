// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) *Form[T] {
	form := Form[T]{
		keyMap: NewKeyMap(),
	}
	for _, opt := range opts {
		opt(&form)
	}
	if form.activeIndex >= len(form.items) {
		form.activeIndex = 0
	}
	return &form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

// WithOnPress is called with the id of a pressed button.
func WithOnPress[T any](fn func(id string) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnPress = fn
	}
}

// WithOnChange is called after an input changed its value.
func WithOnChange[T any](fn func(id string, value any) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnChange = fn
	}
}

// WithOnFocusChange is called with the id of the newly active input.
func WithOnFocusChange[T any](fn func(id string) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnFocusChange = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// WithKeyMap adds bindings of the owning view to every announcement.
func WithKeyMap[T any](keyMap help.KeyMap) NewOpt[T] {
	return func(form *Form[T]) {
		form.baseKeyMap = keyMap
	}
}

// WithInput adds input on a new row.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.rows = append(form.rows, formRow{})
		form.addItem(id, input)
	}
}

// WithInlineInput adds input to the current row.
func WithInlineInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		if len(form.rows) == 0 {
			form.rows = append(form.rows, formRow{})
		}
		form.addItem(id, input)
	}
}

// WithActive selects the input focused first. Use it after the inputs.
func WithActive[T any](id string) NewOpt[T] {
	return func(form *Form[T]) {
		if i := form.indexOf(id); i >= 0 {
			form.activeIndex = i
			form.startIndex = i
		}
	}
}
