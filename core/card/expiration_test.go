// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
}

func TestValidateExpiration(t *testing.T) {
	cases := []struct {
		name   string
		digits string
		now    time.Time
		want   ExpirationStatus
	}{
		{"empty", "", date(2024, time.March), ExpirationIncomplete},
		{"one digit", "1", date(2024, time.March), ExpirationIncomplete},
		{"three digits", "012", date(2024, time.March), ExpirationIncomplete},
		{"month thirteen", "1324", date(2024, time.March), ExpirationInvalidMonth},
		{"month zero", "0030", date(2024, time.March), ExpirationInvalidMonth},
		{"before jan 2024", "0124", date(2023, time.December), ExpirationValid},
		{"same month", "0124", date(2024, time.January), ExpirationValid},
		{"after jan 2024", "0124", date(2024, time.February), ExpirationExpired},
		{"previous year", "1223", date(2024, time.January), ExpirationExpired},
		{"future year", "0130", date(2026, time.October), ExpirationValid},
		{"extra digits ignored", "122699", date(2026, time.October), ExpirationValid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateExpiration(tc.digits, tc.now))
		})
	}
}

func TestParseExpiration(t *testing.T) {
	month, year, ok := ParseExpiration("0927")
	assert.True(t, ok)
	assert.Equal(t, 9, month)
	assert.Equal(t, 27, year)

	_, _, ok = ParseExpiration("092")
	assert.False(t, ok)
}
