// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardform/cardform/core/card"
)

func TestApplyInput(t *testing.T) {
	tests := []struct {
		name         string
		kind         Kind
		previous     string
		incoming     string
		brand        card.Brand
		want         string
		wantAccepted bool
	}{
		{"number strips letters", CardNumber, "", "4111abc5", card.Unknown, "4111 5", true},
		{"number groups visa", CardNumber, "", "4111567890123456", card.Unknown, "4111 5678 9012 3456", true},
		{"number groups amex", CardNumber, "", "378282246310005", card.Unknown, "3782 822463 10005", true},
		{"number amex overflow", CardNumber, "3782 822463 10005", "3782822463100051", card.Amex, "3782 822463 10005", false},
		{"number visa overflow", CardNumber, "4111 5678 9012 3456", "41115678901234567", card.Visa, "4111 5678 9012 3456", false},
		{"number cleared", CardNumber, "4", "", card.Visa, "", true},

		{"expiry first digit", Expiration, "", "1", card.Unknown, "1", true},
		{"expiry month complete", Expiration, "1", "12", card.Unknown, "12/", true},
		{"expiry delete slash", Expiration, "12/", "12", card.Unknown, "1", true},
		{"expiry year", Expiration, "12/3", "12/34", card.Unknown, "12/34", true},
		{"expiry capped", Expiration, "12/34", "12/345", card.Unknown, "12/34", true},
		{"expiry letters", Expiration, "", "ab", card.Unknown, "", true},

		{"cvv visa truncated", CVV, "123", "12345", card.Visa, "123", true},
		{"cvv amex truncated", CVV, "1234", "12345", card.Amex, "1234", true},
		{"cvv digits only", CVV, "", "1a2", card.Visa, "12", true},

		{"name accepted", Name, "", "Jörg", card.Unknown, "Jörg", true},
		{"name too long", Name, strings.Repeat("x", NameMaxLength), strings.Repeat("x", NameMaxLength+1), card.Unknown, strings.Repeat("x", NameMaxLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ApplyInput(tt.kind, tt.previous, tt.incoming, tt.brand)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantAccepted, ok)
		})
	}
}
