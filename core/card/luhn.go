// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package card

// LuhnValid reports whether digits pass the mod 10 checksum. Empty input is
// not valid.
func LuhnValid(digits string) bool {
	if digits == "" {
		return false
	}
	return luhnSum(digits, false)%10 == 0
}

// LuhnCheckDigit returns the digit that makes payload+digit pass LuhnValid.
func LuhnCheckDigit(payload string) byte {
	sum := luhnSum(payload, true)
	return byte('0' + (10-sum%10)%10)
}

// luhnSum walks right to left; doubleFirst is set when the rightmost digit
// is followed by a check digit that is not part of digits yet.
func luhnSum(digits string, doubleFirst bool) int {
	sum := 0
	double := doubleFirst
	for i := len(digits) - 1; i >= 0; i-- {
		n := int(digits[i] - '0')
		if n < 0 || n > 9 {
			return 1
		}
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum
}
