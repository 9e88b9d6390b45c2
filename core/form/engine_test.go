// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cardform/cardform/core/card"
)

type engineFixture struct {
	fields map[Kind]FieldState
	sunk   []FieldResult
}

func newEngineFixture() (*engineFixture, *Engine) {
	f := &engineFixture{fields: make(map[Kind]FieldState)}
	e := newEngine(Options{}, ClockFunc(func() time.Time { return testNow }),
		func(k Kind) FieldState { return f.fields[k] },
		func(r FieldResult) {
			st := f.fields[r.Kind]
			st.Error = r.Error
			f.fields[r.Kind] = st
			f.sunk = append(f.sunk, r)
		})
	return f, e
}

func TestEngine_TextChangedRunsDependents(t *testing.T) {
	f, e := newEngineFixture()
	f.fields[CardNumber] = FieldState{Text: "4111"}
	f.fields[CVV] = FieldState{Text: "12", Error: NotEnoughDigits}

	got := e.TextChanged(CardNumber, card.Visa)
	assert.Equal(t, []FieldResult{
		{Kind: CardNumber, Error: NotEnoughDigits},
		{Kind: CVV, Error: NotEnoughDigits},
	}, got)
	assert.Equal(t, got, f.sunk)
}

func TestEngine_BrandChangedSkipsInitial(t *testing.T) {
	f, e := newEngineFixture()
	f.fields[CardNumber] = FieldState{Text: "3714 496353 98431", Error: NotEnoughDigits}
	f.fields[CVV] = FieldState{Text: "123"}

	got := e.BrandChanged(card.Amex)
	assert.Equal(t, []FieldResult{{Kind: CardNumber, Error: NoError}}, got)
	assert.Equal(t, Initial, f.fields[CVV].Error)
}

func TestEngine_BrandChangedSkipsValidated(t *testing.T) {
	f, e := newEngineFixture()
	f.fields[CardNumber] = FieldState{Text: "37", Error: NotEnoughDigits}
	f.fields[CVV] = FieldState{Text: "123", Error: NoError}

	got := e.BrandChanged(card.Amex, CardNumber)
	assert.Equal(t, []FieldResult{{Kind: CVV, Error: NotEnoughDigits}}, got)
	assert.Equal(t, got, f.sunk)
}

func TestEngine_Reset(t *testing.T) {
	f, e := newEngineFixture()
	for _, kind := range Kinds() {
		f.fields[kind] = FieldState{Text: "x", Error: Required}
	}

	e.Reset()
	assert.Len(t, f.sunk, 4)
	for _, kind := range Kinds() {
		assert.Equal(t, Initial, f.fields[kind].Error)
	}
}
