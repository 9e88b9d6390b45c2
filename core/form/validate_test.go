// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cardform/cardform/core/card"
)

var testNow = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

func TestValidateField(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		text  string
		brand card.Brand
		want  FieldError
	}{
		{"number empty", CardNumber, "", card.Unknown, Required},
		{"number blank", CardNumber, "   ", card.Unknown, Required},
		{"number short", CardNumber, "4111", card.Visa, NotEnoughDigits},
		{"number visa", CardNumber, "4111 5678 9012 3456", card.Visa, NoError},
		{"number amex", CardNumber, "3714 496353 98431", card.Amex, NoError},
		{"number diners", CardNumber, "3056 930902 5904", card.DinersClub, NoError},
		{"number amex length as visa", CardNumber, "3714 496353 98431", card.Visa, NotEnoughDigits},

		{"expiry empty", Expiration, "", card.Unknown, Required},
		{"expiry incomplete", Expiration, "12/", card.Unknown, NotEnoughDigits},
		{"expiry month 13", Expiration, "13/30", card.Unknown, DateInvalid},
		{"expiry month 00", Expiration, "00/30", card.Unknown, DateInvalid},
		{"expiry last month", Expiration, "09/26", card.Unknown, DateExpired},
		{"expiry last year", Expiration, "12/25", card.Unknown, DateExpired},
		{"expiry this month", Expiration, "10/26", card.Unknown, NoError},
		{"expiry future", Expiration, "01/30", card.Unknown, NoError},

		{"cvv empty", CVV, "", card.Visa, Required},
		{"cvv short", CVV, "12", card.Visa, NotEnoughDigits},
		{"cvv visa", CVV, "123", card.Visa, NoError},
		{"cvv amex short", CVV, "123", card.Amex, NotEnoughDigits},
		{"cvv amex", CVV, "1234", card.Amex, NoError},

		{"name empty", Name, "", card.Unknown, Required},
		{"name one rune", Name, "A", card.Unknown, NotEnoughDigits},
		{"name trimmed", Name, " A ", card.Unknown, NotEnoughDigits},
		{"name ok", Name, "John Doe", card.Unknown, NoError},
		{"name max", Name, strings.Repeat("x", NameMaxLength), card.Unknown, NoError},
		{"name too long", Name, strings.Repeat("x", NameMaxLength+1), card.Unknown, NameTooLong},
		{"name multibyte", Name, "Jörg Müller", card.Unknown, NoError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateField(tt.kind, tt.text, tt.brand, testNow, Options{}))
		})
	}
}

func TestValidateField_Luhn(t *testing.T) {
	opts := Options{Luhn: true}

	assert.Equal(t, InvalidNumber, ValidateField(CardNumber, "4111 5678 9012 3456", card.Visa, testNow, opts))
	assert.Equal(t, NoError, ValidateField(CardNumber, "4111 1111 1111 1111", card.Visa, testNow, opts))
	// length is checked before the checksum
	assert.Equal(t, NotEnoughDigits, ValidateField(CardNumber, "4111", card.Visa, testNow, opts))
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		text  string
		brand card.Brand
		want  FieldError
	}{
		{"number 17 digits", CardNumber, "41115678901234567", card.Visa, NotEnoughDigits},
		{"number full", CardNumber, "4111567890123456", card.Visa, NoError},
		{"cvv 5 digits", CVV, "12345", card.Visa, NotEnoughDigits},
		{"cvv amex", CVV, "1234", card.Amex, NoError},
		{"expiration 5 digits", Expiration, "12/301", card.Unknown, NotEnoughDigits},
		{"name 37", Name, strings.Repeat("A", 37), card.Unknown, NameTooLong},
		{"name empty", Name, "", card.Unknown, Required},
		// overflow ranks before the invalid month
		{"expiration 5 digits bad month", Expiration, "13/301", card.Unknown, NotEnoughDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateText(tt.kind, tt.text, tt.brand, testNow, Options{}))
		})
	}
}

func TestFieldError_Precedence(t *testing.T) {
	ordered := []FieldError{Required, NotEnoughDigits, DateInvalid, DateExpired, InvalidNumber, NameTooLong}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1].Precedence(), ordered[i].Precedence(), "%s before %s", ordered[i-1], ordered[i])
	}
	assert.Greater(t, NoError.Precedence(), NameTooLong.Precedence())
	assert.Equal(t, Initial.Precedence(), NoError.Precedence())

	assert.False(t, Initial.IsError())
	assert.False(t, NoError.IsError())
	for _, e := range ordered {
		assert.True(t, e.IsError(), e.String())
	}
}

func TestMostSevere(t *testing.T) {
	assert.Equal(t, NoError, mostSevere())
	assert.Equal(t, NoError, mostSevere(NoError, Initial))
	assert.Equal(t, Required, mostSevere(NameTooLong, Required, NoError))
	assert.Equal(t, NotEnoughDigits, mostSevere(DateInvalid, NotEnoughDigits))
}
