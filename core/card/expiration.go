// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package card

import (
	"strconv"
	"time"
)

// ExpirationStatus is the outcome of checking an MM/YY digit pair.
type ExpirationStatus uint8

const (
	ExpirationValid ExpirationStatus = iota
	ExpirationIncomplete
	ExpirationInvalidMonth
	ExpirationExpired
)

func (s ExpirationStatus) String() string {
	switch s {
	case ExpirationValid:
		return "valid"
	case ExpirationIncomplete:
		return "incomplete"
	case ExpirationInvalidMonth:
		return "invalid month"
	case ExpirationExpired:
		return "expired"
	}
	return "unknown"
}

// ParseExpiration reads MMYY from the first four digits. ok is false when
// fewer than four digits are present; the month is not range checked.
func ParseExpiration(digits string) (month, year2 int, ok bool) {
	if len(digits) < 4 {
		return 0, 0, false
	}
	month, errM := strconv.Atoi(digits[:2])
	year2, errY := strconv.Atoi(digits[2:4])
	if errM != nil || errY != nil {
		return 0, 0, false
	}
	return month, year2, true
}

// ValidateExpiration classifies MMYY digits against now. Years are compared
// as two digits only, so there is no century disambiguation.
func ValidateExpiration(digits string, now time.Time) ExpirationStatus {
	month, year2, ok := ParseExpiration(digits)
	if !ok {
		return ExpirationIncomplete
	}
	if month < 1 || month > 12 {
		return ExpirationInvalidMonth
	}

	currentYear2 := now.Year() % 100
	currentMonth := int(now.Month())
	if year2 < currentYear2 || (year2 == currentYear2 && month < currentMonth) {
		return ExpirationExpired
	}
	return ExpirationValid
}
