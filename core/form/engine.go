// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"slices"

	"github.com/cardform/cardform/core/card"
)

// dependents lists the fields whose rules read another field. CVV length
// follows the brand detected from the card number.
var dependents = map[Kind][]Kind{
	CardNumber: {CVV},
}

// brandBound are the fields whose rules depend on the brand.
var brandBound = []Kind{CardNumber, CVV}

// Engine runs the per-field validation state machine:
//
//	Initial -> NoError | error    on TextChanged
//	any     -> NoError | error    on TextChanged / BrandChanged (non-initial only)
//	any     -> Initial            on Reset
//
// The engine reads field text through lookup and writes every outcome
// through sink; it never stores field state itself.
type Engine struct {
	options Options
	clock   Clock
	lookup  func(Kind) FieldState
	sink    func(FieldResult)
}

func newEngine(options Options, clock Clock, lookup func(Kind) FieldState, sink func(FieldResult)) *Engine {
	return &Engine{
		options: options,
		clock:   clock,
		lookup:  lookup,
		sink:    sink,
	}
}

// TextChanged validates kind and then every dependent field that has left
// Initial.
func (e *Engine) TextChanged(kind Kind, brand card.Brand) []FieldResult {
	results := []FieldResult{e.validate(kind, brand)}
	for _, dep := range dependents[kind] {
		if e.lookup(dep).Error != Initial {
			results = append(results, e.validate(dep, brand))
		}
	}
	return results
}

// BrandChanged revalidates the brand-bound fields without new text. Kinds in
// skip were validated by the caller already.
func (e *Engine) BrandChanged(brand card.Brand, skip ...Kind) []FieldResult {
	var results []FieldResult
	for _, kind := range brandBound {
		if slices.Contains(skip, kind) {
			continue
		}
		if e.lookup(kind).Error != Initial {
			results = append(results, e.validate(kind, brand))
		}
	}
	return results
}

// ValidateAll validates every field regardless of its current state.
func (e *Engine) ValidateAll(brand card.Brand) []FieldResult {
	results := make([]FieldResult, 0, kindCount)
	for _, kind := range Kinds() {
		results = append(results, e.validate(kind, brand))
	}
	return results
}

// Reset forces every field back to Initial.
func (e *Engine) Reset() {
	for _, kind := range Kinds() {
		e.sink(FieldResult{Kind: kind, Error: Initial})
	}
}

func (e *Engine) validate(kind Kind, brand card.Brand) FieldResult {
	result := FieldResult{
		Kind:  kind,
		Error: ValidateField(kind, e.lookup(kind).Text, brand, e.clock.Now(), e.options),
	}
	e.sink(result)
	return result
}
