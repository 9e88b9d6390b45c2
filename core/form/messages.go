// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"github.com/cardform/cardform/core/card"
	"github.com/cardform/cardform/internal/i18n"
)

var fieldLabelIDs = map[Kind]string{
	CardNumber: "form.field.card_number",
	Expiration: "form.field.expiration",
	CVV:        "form.field.cvv",
	Name:       "form.field.name",
}

var fieldPlaceholderIDs = map[Kind]string{
	CardNumber: "form.placeholder.card_number",
	Expiration: "form.placeholder.expiration",
	CVV:        "form.placeholder.cvv",
	Name:       "form.placeholder.name",
}

// Label is the localized field name.
func Label(kind Kind) string {
	return i18n.T(fieldLabelIDs[kind])
}

// Placeholder is the localized hint shown in an empty input.
func Placeholder(kind Kind) string {
	return i18n.T(fieldPlaceholderIDs[kind])
}

// Message renders err for kind. The digit counts follow brand, so an
// American Express number asks for 15 digits and a 4 digit CVV.
func Message(kind Kind, err FieldError, brand card.Brand) string {
	switch err {
	case Initial, NoError:
		return ""
	case Required:
		return i18n.T("form.error.required", map[string]any{"Field": Label(kind)})
	case NotEnoughDigits:
		switch kind {
		case CardNumber:
			return i18n.T("form.error.card_number_digits", map[string]any{"Count": card.MaxDigits(brand)})
		case CVV:
			return i18n.T("form.error.cvv_digits", map[string]any{"Count": card.CVVLength(brand)})
		case Expiration:
			return i18n.T("form.error.expiration_digits")
		case Name:
			return i18n.T("form.error.name_too_short", map[string]any{"Count": NameMinLength})
		}
	case DateInvalid:
		return i18n.T("form.error.date_invalid")
	case DateExpired:
		return i18n.T("form.error.date_expired")
	case InvalidNumber:
		return i18n.T("form.error.invalid_number")
	case NameTooLong:
		return i18n.T("form.error.name_too_long", map[string]any{"Count": NameMaxLength})
	}
	return i18n.T("form.error.unknown")
}
