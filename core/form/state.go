// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"math/rand/v2"
	"slices"

	"github.com/cardform/cardform/core/card"
)

// State aggregates the four fields and the submission lifecycle.
//
// Invariants: complete only becomes true while submitting; Reset clears all
// fields and both flags before any subscriber is notified.
type State struct {
	fields     [kindCount]FieldState
	brand      card.Brand
	submitting bool
	complete   bool

	clock   Clock
	random  card.Random
	options Options
	engine  *Engine

	subscribers []subscriber
	nextSubID   int
	pending     []Event
}

type subscriber struct {
	id int
	fn func(Event)
}

// Update is the outcome of UpdateField.
type Update struct {
	Kind     Kind
	Text     string
	Accepted bool
	// Brand is the brand after the update; BrandChanged is set when a card
	// number keystroke switched it.
	Brand        card.Brand
	BrandChanged bool
	// Results holds the validation outcome of Kind and of every dependent
	// field that was revalidated.
	Results []FieldResult
}

// Snapshot is a read-only copy of the form.
type Snapshot struct {
	Fields     map[Kind]FieldState
	Brand      card.Brand
	Submitting bool
	Complete   bool
}

type Option func(*State)

// WithClock sets the date source used for expiration checks.
func WithClock(c Clock) Option {
	return func(s *State) { s.clock = c }
}

// WithRandom sets the randomness used by GenerateRandomCard.
func WithRandom(r card.Random) Option {
	return func(s *State) { s.random = r }
}

// WithLuhn enables the checksum rule for full-length card numbers.
func WithLuhn(enabled bool) Option {
	return func(s *State) { s.options.Luhn = enabled }
}

// New returns an empty form. Without options it uses the system clock and a
// randomly seeded generator.
func New(opts ...Option) *State {
	s := &State{
		clock: SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.random == nil {
		s.random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.engine = newEngine(s.options, s.clock, s.Field, s.applyResult)
	return s
}

// Subscribe registers fn for every event. The returned func unsubscribes.
func (s *State) Subscribe(fn func(Event)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

// UpdateField masks text for kind, stores it and validates the field and
// its dependents. A rejected keystroke keeps the previous text and skips
// validation.
func (s *State) UpdateField(kind Kind, text string) Update {
	previous := s.fields[kind].Text
	next, ok := ApplyInput(kind, previous, text, s.brand)

	update := Update{Kind: kind, Text: previous, Brand: s.brand}
	if !ok {
		return update
	}

	s.fields[kind].Text = next
	update.Text, update.Accepted = next, true

	if kind == CardNumber {
		if brand := card.DetectBrand(card.StripNonDigits(next)); brand != s.brand {
			s.brand = brand
			update.Brand, update.BrandChanged = brand, true
		}
	}
	cvvShortened := kind == CardNumber && s.retruncateCVV()

	if update.BrandChanged {
		update.Results = append(
			[]FieldResult{s.engine.validate(kind, s.brand)},
			s.engine.BrandChanged(s.brand, kind)...,
		)
	} else {
		update.Results = s.engine.TextChanged(kind, s.brand)
	}
	s.queueFields(update.Results...)
	if cvvShortened && s.fields[CVV].Error == Initial {
		// not revalidated, but the text still changed
		s.queueFields(FieldResult{Kind: CVV, Error: Initial})
	}
	s.flush()
	return update
}

// GenerateRandomCard fills every field with a random, well formed demo card.
// Field errors are left untouched; call ValidateAll to refresh them.
func (s *State) GenerateRandomCard() card.Card {
	c := card.Generate(s.random, s.clock.Now())

	s.fields[CardNumber].Text = c.Number
	s.fields[Expiration].Text = c.Expiration
	s.fields[CVV].Text = c.CVV
	s.fields[Name].Text = c.Name
	s.brand = c.Brand

	for _, kind := range Kinds() {
		s.queueFields(FieldResult{Kind: kind, Error: s.fields[kind].Error})
	}
	s.flush()
	return c
}

// ValidateAll validates all four fields, including those still Initial.
func (s *State) ValidateAll() []FieldResult {
	results := s.engine.ValidateAll(s.brand)
	s.queueFields(results...)
	s.flush()
	return results
}

// Submit starts the submission. It reports false when a submission is
// already running.
func (s *State) Submit() bool {
	if s.submitting {
		return false
	}
	s.submitting = true
	s.queue(SubmissionEvent{Submitting: true})
	s.flush()
	return true
}

// Complete marks the running submission as accepted. Calling it while not
// submitting (or twice) is a no-op that reports false.
func (s *State) Complete() bool {
	if !s.submitting || s.complete {
		return false
	}
	s.complete = true
	s.queue(SubmissionEvent{Submitting: true, Complete: true})
	s.flush()
	return true
}

// Reset clears every field back to empty/Initial and ends any submission.
// Subscribers receive a single ResetEvent once everything is cleared.
func (s *State) Reset() {
	s.pending = nil
	s.engine.Reset()
	s.fields = [kindCount]FieldState{}
	s.brand = card.Unknown
	s.submitting, s.complete = false, false
	s.pending = []Event{ResetEvent{}}
	s.flush()
}

// Field returns the state of one field.
func (s *State) Field(kind Kind) FieldState {
	return s.fields[kind]
}

// Brand is the brand detected from the current card number.
func (s *State) Brand() card.Brand { return s.brand }

func (s *State) IsSubmitting() bool { return s.submitting }

func (s *State) IsComplete() bool { return s.complete }

// AllFieldsEmpty is true when any field is empty. This is an OR across the
// fields, kept from the original form: one blank field counts as empty.
func (s *State) AllFieldsEmpty() bool {
	for _, f := range s.fields {
		if f.Text == "" {
			return true
		}
	}
	return false
}

// IsFormInvalid is true when AllFieldsEmpty holds or any field carries an
// error.
func (s *State) IsFormInvalid() bool {
	if s.AllFieldsEmpty() {
		return true
	}
	for _, f := range s.fields {
		if f.Error.IsError() {
			return true
		}
	}
	return false
}

// ErrorMessage is the localized message for the field's current error, or
// "" when there is nothing to show.
func (s *State) ErrorMessage(kind Kind) string {
	return Message(kind, s.fields[kind].Error, s.brand)
}

func (s *State) Snapshot() Snapshot {
	fields := make(map[Kind]FieldState, kindCount)
	for _, kind := range Kinds() {
		fields[kind] = s.fields[kind]
	}
	return Snapshot{
		Fields:     fields,
		Brand:      s.brand,
		Submitting: s.submitting,
		Complete:   s.complete,
	}
}

// applyResult is the engine sink, the only writer of FieldState.Error.
func (s *State) applyResult(r FieldResult) {
	s.fields[r.Kind].Error = r.Error
}

// retruncateCVV shortens the CVV when the brand now allows fewer digits.
func (s *State) retruncateCVV() bool {
	cvv := s.fields[CVV].Text
	next, _ := ApplyInput(CVV, cvv, cvv, s.brand)
	if next == cvv {
		return false
	}
	s.fields[CVV].Text = next
	return true
}

func (s *State) queueFields(results ...FieldResult) {
	for _, r := range results {
		s.queue(FieldEvent{
			Kind:  r.Kind,
			Text:  s.fields[r.Kind].Text,
			Error: s.fields[r.Kind].Error,
			Brand: s.brand,
		})
	}
}

func (s *State) queue(e Event) {
	s.pending = append(s.pending, e)
}

func (s *State) flush() {
	events := s.pending
	s.pending = nil
	for _, e := range events {
		for _, sub := range slices.Clone(s.subscribers) {
			sub.fn(e)
		}
	}
}
