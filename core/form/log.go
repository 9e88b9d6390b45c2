// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"github.com/cardform/cardform/core/card"
	"github.com/cardform/cardform/internal/logging"
)

// LogEvents subscribes a debug logger to s. Card numbers are logged
// redacted and CVVs masked.
func LogEvents(s *State) func() {
	return s.Subscribe(func(e Event) {
		switch e := e.(type) {
		case FieldEvent:
			logging.Debugf("field %s changed: text=%q error=%s brand=%s", e.Kind, loggableText(e.Kind, e.Text), e.Error, e.Brand)
		case SubmissionEvent:
			logging.Debugf("submission: submitting=%t complete=%t", e.Submitting, e.Complete)
		case ResetEvent:
			logging.Debugf("form reset")
		}
	})
}

func loggableText(kind Kind, text string) string {
	switch kind {
	case CardNumber:
		return card.RedactNumber(card.StripNonDigits(text))
	case CVV:
		return card.MaskCVV(text)
	}
	return text
}
