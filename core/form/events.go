// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import "github.com/cardform/cardform/core/card"

// Event is pushed to subscribers after a State operation completed.
type Event interface {
	isEvent()
}

// FieldEvent reports the new text and validation outcome of a field.
type FieldEvent struct {
	Kind  Kind
	Text  string
	Error FieldError
	Brand card.Brand
}

// SubmissionEvent reports a submission lifecycle transition.
type SubmissionEvent struct {
	Submitting bool
	Complete   bool
}

// ResetEvent is sent once after the whole form was cleared.
type ResetEvent struct{}

func (FieldEvent) isEvent()      {}
func (SubmissionEvent) isEvent() {}
func (ResetEvent) isEvent()      {}
