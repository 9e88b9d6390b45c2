// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"strings"
	"unicode/utf8"

	"github.com/cardform/cardform/core/card"
)

// ApplyInput masks a keystroke for kind. previous is the text currently in
// the field, incoming the raw text after the keystroke. It returns the text
// to store, or previous and false when the input is rejected.
func ApplyInput(kind Kind, previous, incoming string, brand card.Brand) (string, bool) {
	switch kind {
	case CardNumber:
		digits := card.StripNonDigits(incoming)
		if card.Exceeds(digits) {
			return previous, false
		}
		return card.FormatNumber(digits, card.DetectBrand(digits)), true

	case Expiration:
		// deleting the auto-inserted slash also drops the last month digit
		if len(incoming) < len(previous) && strings.Contains(previous, "/") && !strings.Contains(incoming, "/") {
			digits := card.StripNonDigits(previous)
			return digits[:max(len(digits)-1, 0)], true
		}
		return card.FormatExpiration(card.StripNonDigits(incoming)), true

	case CVV:
		digits := card.StripNonDigits(incoming)
		return digits[:min(len(digits), card.CVVLength(brand))], true

	case Name:
		if utf8.RuneCountInString(incoming) > NameMaxLength {
			return previous, false
		}
		return incoming, true
	}
	return previous, false
}
