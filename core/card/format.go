// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package card

import "strings"

const (
	previewSlots = 16
	redactedSlot = '#'
	missingSlot  = '-'
)

// MaxDigits is the number of digits a full number of the brand carries.
// Unknown falls back to 16.
func MaxDigits(b Brand) int {
	switch b {
	case Amex:
		return 15
	case DinersClub:
		return 14
	default:
		return 16
	}
}

// CVVLength is 4 for American Express and 3 for everything else.
func CVVLength(b Brand) int {
	if b == Amex {
		return 4
	}
	return 3
}

// FormatNumber groups digits for display. American Express and Diners Club
// break before index 4 and 10 (4-6-5 and 4-6-4), everything else every four
// digits. Only the digits given are formatted; there is no padding and never
// a trailing space.
func FormatNumber(digits string, b Brand) string {
	var out strings.Builder
	out.Grow(len(digits) + len(digits)/4)

	for i, r := range digits {
		if i > 0 && breaksBefore(i, b) {
			out.WriteByte(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func breaksBefore(i int, b Brand) bool {
	switch b {
	case Amex, DinersClub:
		return i == 4 || i == 10
	default:
		return i%4 == 0
	}
}

// Exceeds reports whether digits carry more digits than the brand detected
// from them allows. Input handlers keep the previous text in that case.
func Exceeds(digits string) bool {
	return len(digits) > MaxDigits(DetectBrand(digits))
}

// RedactNumber renders the preview shown on the card face: sixteen slots,
// the first four and the last four (slots 12-15) show typed digits and the
// rest stay hidden, grouped 4-4-4-4.
func RedactNumber(digits string) string {
	slots := []byte(strings.Repeat(string(redactedSlot), previewSlots))
	for i := 0; i < min(len(digits), previewSlots); i++ {
		if i < 4 || i >= 12 {
			slots[i] = digits[i]
		}
	}
	return FormatNumber(string(slots), Visa)
}

// PreviewExpiration renders MM/YY with '-' for positions not typed yet.
func PreviewExpiration(digits string) string {
	slots := []byte(strings.Repeat(string(missingSlot), 4))
	copy(slots, digits[:min(len(digits), 4)])
	return string(slots[:2]) + "/" + string(slots[2:])
}

// FormatExpiration inserts the slash once the month is complete:
// "1" -> "1", "12" -> "12/", "1226" -> "12/26". Extra digits are dropped.
func FormatExpiration(digits string) string {
	digits = digits[:min(len(digits), 4)]
	if len(digits) < 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// MaskCVV replaces every CVV digit with '*' for logs and summaries.
func MaskCVV(cvv string) string {
	return strings.Repeat("*", len(StripNonDigits(cvv)))
}
