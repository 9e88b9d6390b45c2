// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package card

import (
	"fmt"
	"strings"
	"time"
)

// DemoName is the cardholder printed on generated cards.
const DemoName = "John Doe"

// maxExpiryYears bounds how far ahead generated cards expire.
const maxExpiryYears = 5

// Random is the randomness the generator needs. *math/rand/v2.Rand satisfies
// it; tests inject a fixed sequence.
type Random interface {
	IntN(n int) int
}

// Card is a generated set of field values, already formatted the way the
// form displays them.
type Card struct {
	Brand      Brand  `mapstructure:"brand" yaml:"brand"`
	Number     string `mapstructure:"number" yaml:"number"`
	Name       string `mapstructure:"name" yaml:"name"`
	Expiration string `mapstructure:"expiration" yaml:"expiration"`
	CVV        string `mapstructure:"cvv" yaml:"cvv"`
}

var brandPrefixes = map[Brand][]string{
	Visa:       {"4"},
	Mastercard: {"51", "52", "53", "54", "55"},
	Amex:       {"34", "37"},
	DinersClub: {"30", "36", "38"},
	Discover:   {"6011", "65"},
}

// Generate builds a random demo card of a random known brand. It does not
// validate anything; the values are merely well formed.
func Generate(r Random, now time.Time) Card {
	brands := Brands()
	return GenerateBrand(r, brands[r.IntN(len(brands))], now)
}

// GenerateBrand builds a random demo card for b. Unknown is treated as Visa.
func GenerateBrand(r Random, b Brand, now time.Time) Card {
	if b == Unknown {
		b = Visa
	}
	return Card{
		Brand:      b,
		Number:     FormatNumber(randomNumber(r, b), b),
		Name:       DemoName,
		Expiration: randomExpiration(r, now),
		CVV:        randomDigits(r, CVVLength(b), true),
	}
}

// randomNumber fills the brand's length after a known prefix and finishes
// with a Luhn check digit.
func randomNumber(r Random, b Brand) string {
	prefixes := brandPrefixes[b]
	prefix := prefixes[r.IntN(len(prefixes))]

	payload := prefix + randomDigits(r, MaxDigits(b)-len(prefix)-1, false)
	return payload + string(LuhnCheckDigit(payload))
}

// randomExpiration picks a year in [current, current+5], capped at 99, and a
// month that is not in the past for the current year.
func randomExpiration(r Random, now time.Time) string {
	currentYear2 := now.Year() % 100
	currentMonth := int(now.Month())

	// two digit years end at 99
	year2 := min(currentYear2+r.IntN(maxExpiryYears+1), 99)
	var month int
	if year2 == currentYear2 {
		month = currentMonth + r.IntN(13-currentMonth)
	} else {
		month = 1 + r.IntN(12)
	}
	return fmt.Sprintf("%02d/%02d", month, year2)
}

func randomDigits(r Random, n int, nonZeroLead bool) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		if i == 0 && nonZeroLead {
			b.WriteByte(byte('1' + r.IntN(9)))
			continue
		}
		b.WriteByte(byte('0' + r.IntN(10)))
	}
	return b.String()
}
