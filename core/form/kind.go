// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package form

// Kind identifies one of the four form fields.
type Kind uint8

const (
	CardNumber Kind = iota
	Expiration
	CVV
	Name

	kindCount = int(Name) + 1
)

// Kinds returns every field kind in display order of the original form.
func Kinds() []Kind {
	return []Kind{CardNumber, Expiration, CVV, Name}
}

func (k Kind) String() string {
	switch k {
	case CardNumber:
		return "cardNumber"
	case Expiration:
		return "expiration"
	case CVV:
		return "cvv"
	case Name:
		return "name"
	}
	return "unknown"
}

// FieldError is the validation outcome of a field. Initial means the field
// was never validated (or was reset) and is distinct from NoError. The error
// values are declared in precedence order.
type FieldError uint8

const (
	Initial FieldError = iota
	NoError
	Required
	NotEnoughDigits
	DateInvalid
	DateExpired
	InvalidNumber
	NameTooLong
)

// IsError is true for every outcome except Initial and NoError.
func (e FieldError) IsError() bool {
	return e > NoError
}

// Precedence ranks errors, lower wins. Initial and NoError rank after all
// errors.
func (e FieldError) Precedence() int {
	if !e.IsError() {
		return int(NameTooLong) + 1
	}
	return int(e - Required)
}

// mostSevere returns the error ranked first by Precedence, or NoError when
// none of errs is an error.
func mostSevere(errs ...FieldError) FieldError {
	worst := NoError
	for _, e := range errs {
		if e.Precedence() < worst.Precedence() {
			worst = e
		}
	}
	return worst
}

func (e FieldError) String() string {
	switch e {
	case Initial:
		return "initial"
	case NoError:
		return "none"
	case Required:
		return "required"
	case NotEnoughDigits:
		return "notEnoughDigits"
	case DateInvalid:
		return "dateInvalid"
	case DateExpired:
		return "dateExpired"
	case InvalidNumber:
		return "invalidNumber"
	case NameTooLong:
		return "nameTooLong"
	}
	return "unknown"
}

// FieldState is the text and validation outcome of one field. The zero
// value is the reset state.
type FieldState struct {
	Text  string
	Error FieldError
}

// FieldResult reports the outcome of validating one field.
type FieldResult struct {
	Kind  Kind
	Error FieldError
}
