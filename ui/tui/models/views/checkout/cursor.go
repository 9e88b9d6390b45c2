// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package checkout

import (
	"unicode/utf8"

	"github.com/cardform/cardform/core/form"
)

// cursorPosition moves the cursor from raw, the text right after the
// keystroke, onto the masked text the form stored. Digit fields keep the
// cursor behind the same number of digits; the name keeps its offset.
func cursorPosition(kind form.Kind, raw string, pos int, upd form.Update) int {
	masked := []rune(upd.Text)
	if !upd.Accepted {
		// the rejected keystroke inserted the surplus runes before pos
		surplus := utf8.RuneCountInString(raw) - len(masked)
		return min(max(pos-surplus, 0), len(masked))
	}
	if kind == form.Name {
		return min(pos, len(masked))
	}

	rawRunes := []rune(raw)
	before := countDigits(rawRunes[:min(pos, len(rawRunes))])
	if before >= countDigits(masked) {
		return len(masked)
	}

	seen := 0
	for i, r := range masked {
		if seen == before {
			return i
		}
		if isDigit(r) {
			seen++
		}
	}
	return len(masked)
}

func countDigits(runes []rune) int {
	n := 0
	for _, r := range runes {
		if isDigit(r) {
			n++
		}
	}
	return n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
