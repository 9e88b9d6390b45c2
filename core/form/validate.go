// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cardform/cardform/core/card"
)

const (
	NameMinLength = 2
	NameMaxLength = 36
)

// Options tune the validation rules.
type Options struct {
	// Luhn makes a full-length card number failing the checksum an
	// InvalidNumber.
	Luhn bool
}

// Clock is the date source for expiration checks.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// ValidateField classifies the trimmed text of one field. brand is the brand
// detected from the current card number; it bounds card number and CVV
// lengths. NoError is returned for a valid field, never Initial.
func ValidateField(kind Kind, text string, brand card.Brand, now time.Time, opts Options) FieldError {
	text = strings.TrimSpace(text)
	if text == "" {
		return Required
	}

	switch kind {
	case CardNumber:
		digits := card.StripNonDigits(text)
		if len(digits) < card.MaxDigits(brand) {
			return NotEnoughDigits
		}
		if opts.Luhn && !card.LuhnValid(digits) {
			return InvalidNumber
		}
	case Expiration:
		switch card.ValidateExpiration(card.StripNonDigits(text), now) {
		case card.ExpirationIncomplete:
			return NotEnoughDigits
		case card.ExpirationInvalidMonth:
			return DateInvalid
		case card.ExpirationExpired:
			return DateExpired
		}
	case CVV:
		if len(card.StripNonDigits(text)) < card.CVVLength(brand) {
			return NotEnoughDigits
		}
	case Name:
		n := utf8.RuneCountInString(text)
		if n < NameMinLength {
			return NotEnoughDigits
		}
		if n > NameMaxLength {
			return NameTooLong
		}
	}
	return NoError
}

// ValidateText classifies text that never went through ApplyInput, such as a
// command line flag. Digits beyond what the field holds count as
// NotEnoughDigits; when ValidateField finds another error too, Precedence
// decides.
func ValidateText(kind Kind, text string, brand card.Brand, now time.Time, opts Options) FieldError {
	digits := card.StripNonDigits(text)
	overflow := NoError
	switch kind {
	case CardNumber:
		if len(digits) > card.MaxDigits(brand) {
			overflow = NotEnoughDigits
		}
	case CVV:
		if len(digits) > card.CVVLength(brand) {
			overflow = NotEnoughDigits
		}
	case Expiration:
		if len(digits) > 4 {
			overflow = NotEnoughDigits
		}
	}
	return mostSevere(overflow, ValidateField(kind, text, brand, now, opts))
}
