// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBrand(t *testing.T) {
	cases := []struct {
		digits string
		want   Brand
	}{
		{"", Unknown},
		{"4", Visa},
		{"4111567890123456", Visa},
		{"5", Unknown},
		{"51", Mastercard},
		{"5599", Mastercard},
		{"56", Unknown},
		{"34", Amex},
		{"341111111111111", Amex},
		{"37", Amex},
		{"30", DinersClub},
		{"36", DinersClub},
		{"38", DinersClub},
		{"6011", Discover},
		{"601111111111111", Discover},
		{"601", Unknown},
		{"65", Discover},
		{"99", Unknown},
		{"0", Unknown},
	}

	for _, tc := range cases {
		t.Run(tc.digits, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectBrand(tc.digits))
		})
	}
}

func TestDetectBrand_Deterministic(t *testing.T) {
	for _, digits := range []string{"4", "3411", "6011", "650000", "12345"} {
		first := DetectBrand(digits)
		for i := 0; i < 5; i++ {
			require.Equal(t, first, DetectBrand(digits))
		}
	}
}

func TestStripNonDigits(t *testing.T) {
	assert.Equal(t, "4111567890123456", StripNonDigits("4111 5678-9012 3456"))
	assert.Equal(t, "", StripNonDigits("abc /"))
	assert.Equal(t, "1224", StripNonDigits("12/24"))
}

func TestParseBrand(t *testing.T) {
	for _, b := range append(Brands(), Unknown) {
		got, err := ParseBrand(strings.ToUpper(b.String()))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}

	_, err := ParseBrand("maestro")
	require.Error(t, err)
}

func TestBrand_TextRoundTrip(t *testing.T) {
	text, err := DinersClub.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "dinersClub", string(text))

	var b Brand
	require.NoError(t, b.UnmarshalText([]byte("amex")))
	assert.Equal(t, Amex, b)
	assert.Error(t, b.UnmarshalText([]byte("nope")))
}
