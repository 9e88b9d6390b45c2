// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/atotto/clipboard"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/cardform/cardform/core/card"
	"github.com/cardform/cardform/internal/i18n"
	"github.com/cardform/cardform/internal/logging"
)

// Replaced in tests.
var (
	newRandom = func() card.Random {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now            = time.Now
	writeClipboard = clipboard.WriteAll
)

type generateOptions struct {
	count  int
	brand  string
	output string
	copy   bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random demo cards",
		Long: `Generates well formed demo cards: a known brand prefix, the brand's
digit count with a valid Luhn check digit, a non-expired MM/YY date and a
CVV of the brand's length. None of these are real cards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of cards to generate")
	cmd.Flags().StringVarP(&opts.brand, "brand", "b", "", "Card brand (visa, mastercard, amex, dinersClub, discover); random when empty")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text or yaml")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the first card number to the clipboard")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", opts.count)
	}
	if opts.output != "text" && opts.output != "yaml" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	brand := card.Unknown
	if opts.brand != "" {
		b, err := card.ParseBrand(opts.brand)
		if err != nil {
			return err
		}
		brand = b
	}

	r, t := newRandom(), now()
	cards := make([]card.Card, 0, opts.count)
	for range opts.count {
		if brand == card.Unknown {
			cards = append(cards, card.Generate(r, t))
		} else {
			cards = append(cards, card.GenerateBrand(r, brand, t))
		}
	}
	logging.Debugf("generated %d demo card(s)", len(cards))

	out := cmd.OutOrStdout()
	switch opts.output {
	case "yaml":
		data, err := yaml.Marshal(cards)
		if err != nil {
			return fmt.Errorf("encode cards: %w", err)
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	default:
		for _, c := range cards {
			fmt.Fprintf(out, "%-16s %-19s  %s  %-4s  %s\n", c.Brand.DisplayName(), c.Number, c.Expiration, c.CVV, c.Name)
		}
	}

	if opts.copy {
		if err := writeClipboard(card.StripNonDigits(cards[0].Number)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.generate.copied"))
	}
	return nil
}
