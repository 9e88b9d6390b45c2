// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package card

import (
	"fmt"
	"strings"
)

// Brand is the card network derived from the leading digits of a number.
// It is never stored on its own; callers recompute it from the digits.
type Brand uint8

const (
	Unknown Brand = iota
	Visa
	Mastercard
	Amex
	DinersClub
	Discover
)

var brandNames = map[Brand]string{
	Unknown:    "unknown",
	Visa:       "visa",
	Mastercard: "mastercard",
	Amex:       "amex",
	DinersClub: "dinersClub",
	Discover:   "discover",
}

var brandDisplayNames = map[Brand]string{
	Unknown:    "Card",
	Visa:       "VISA",
	Mastercard: "Mastercard",
	Amex:       "American Express",
	DinersClub: "Diners Club",
	Discover:   "Discover",
}

func (b Brand) String() string {
	if name, ok := brandNames[b]; ok {
		return name
	}
	return brandNames[Unknown]
}

// DisplayName is the label printed on the card preview.
func (b Brand) DisplayName() string {
	if name, ok := brandDisplayNames[b]; ok {
		return name
	}
	return brandDisplayNames[Unknown]
}

// Brands lists the known networks, without Unknown.
func Brands() []Brand {
	return []Brand{Visa, Mastercard, Amex, DinersClub, Discover}
}

// ParseBrand maps a brand identifier (case-insensitive) back to a Brand.
func ParseBrand(s string) (Brand, error) {
	s = strings.TrimSpace(s)
	for b, name := range brandNames {
		if strings.EqualFold(name, s) {
			return b, nil
		}
	}
	return Unknown, fmt.Errorf("unknown card brand %q", s)
}

// DetectBrand classifies a digit-only string. Callers strip separators
// first. The first matching rule wins.
func DetectBrand(digits string) Brand {
	switch {
	case digits == "":
		return Unknown
	case digits[0] == '4':
		return Visa
	}

	if len(digits) < 2 {
		return Unknown
	}

	switch digits[:2] {
	case "51", "52", "53", "54", "55":
		return Mastercard
	case "34", "37":
		return Amex
	case "30", "36", "38":
		return DinersClub
	case "65":
		return Discover
	}

	if strings.HasPrefix(digits, "6011") {
		return Discover
	}
	return Unknown
}

// StripNonDigits drops everything but ASCII digits.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// MarshalText encodes the brand identifier, used by the YAML output of the
// generate command.
func (b Brand) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Brand) UnmarshalText(text []byte) error {
	parsed, err := ParseBrand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
