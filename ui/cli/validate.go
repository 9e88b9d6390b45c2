// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardform/cardform/core/card"
	"github.com/cardform/cardform/core/form"
	"github.com/cardform/cardform/internal/i18n"
)

var errInvalidForm = errors.New("form is invalid")

func newValidateCmd() *cobra.Command {
	values := make(map[form.Kind]*string, len(form.Kinds()))

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate card details without the TUI",
		Long: `Runs the same input masking and validation as the form and prints the
outcome per field. Exits non-zero when the form is invalid.`,
		Example: `  cardform validate --number 4111567890123456 --expiry 12/30 --cvv 123 --name "John Doe"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := make(map[form.Kind]string, len(values))
			for kind, v := range values {
				texts[kind] = *v
			}
			return runValidate(cmd, texts)
		},
	}

	values[form.CardNumber] = cmd.Flags().String("number", "", "Card number")
	values[form.Expiration] = cmd.Flags().String("expiry", "", "Expiration date (MM/YY)")
	values[form.CVV] = cmd.Flags().String("cvv", "", "Card verification value")
	values[form.Name] = cmd.Flags().String("name", "", "Name on card")
	return cmd
}

func runValidate(cmd *cobra.Command, texts map[form.Kind]string) error {
	opts := form.Options{Luhn: appConfig.Validation.Luhn}
	state := form.New(
		form.WithLuhn(opts.Luhn),
		form.WithClock(form.ClockFunc(now)),
	)
	defer form.LogEvents(state)()

	// Kinds() starts with the card number so the brand is known before the
	// CVV is masked.
	for _, kind := range form.Kinds() {
		state.UpdateField(kind, texts[kind])
	}
	state.ValidateAll()

	brand := state.Brand()
	if !verbatim(form.CardNumber, texts[form.CardNumber], state.Field(form.CardNumber).Text) {
		brand = card.DetectBrand(card.StripNonDigits(texts[form.CardNumber]))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, i18n.T("cli.validate.brand", brand.DisplayName()))

	invalid := state.IsFormInvalid()
	for _, kind := range form.Kinds() {
		f := state.Field(kind)
		// the mask dropped input, so judge what was passed instead
		if raw := texts[kind]; !verbatim(kind, raw, f.Text) {
			f = form.FieldState{Text: raw, Error: form.ValidateText(kind, raw, brand, now(), opts)}
		}
		status := "ok"
		if f.Error.IsError() {
			invalid = true
			status = form.Message(kind, f.Error, brand)
		}
		fmt.Fprintf(out, "%-20s %-20q %s\n", form.Label(kind)+":", f.Text, status)
	}

	if invalid {
		fmt.Fprintln(out, i18n.T("cli.validate.invalid"))
		return errInvalidForm
	}
	fmt.Fprintln(out, i18n.T("cli.validate.ok"))
	return nil
}

// verbatim reports whether masked still carries everything raw did.
func verbatim(kind form.Kind, raw, masked string) bool {
	if kind == form.Name {
		return raw == masked
	}
	return card.StripNonDigits(raw) == card.StripNonDigits(masked)
}
