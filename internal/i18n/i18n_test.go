// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}

	langs := Languages()
	if len(langs) != 2 || langs[0] != "de" || langs[1] != "en" {
		t.Fatalf("unexpected languages: %v", langs)
	}
}

func TestInit_UnknownFallsBackToEnglish(t *testing.T) {
	Init("xx")
	if GetLang() != "en" {
		t.Fatalf("expected fallback to 'en', got %q", GetLang())
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("tui.button.submit"); got != "Submit" {
		t.Fatalf("expected 'Submit', got %q", got)
	}

	got := T("form.error.card_number_digits", map[string]any{"Count": 16})
	if got != "Card number must be 16 digits." {
		t.Fatalf("unexpected template translation: %q", got)
	}

	got = T("tui.preview.valid_thru", "12/30")
	if got != "Valid thru 12/30" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected unknown id to be returned as-is, got %q", got)
	}

	SetLang("de")
	defer SetLang("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("tui.button.submit"); got != "Absenden" {
		t.Fatalf("expected German 'Absenden', got %q", got)
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	Init("en")
	en := messageIDs(t, "locales/en.yaml")
	de := messageIDs(t, "locales/de.yaml")
	for id := range en {
		if _, ok := de[id]; !ok {
			t.Fatalf("message %q missing from de catalog", id)
		}
	}
	for id := range de {
		if _, ok := en[id]; !ok {
			t.Fatalf("message %q missing from en catalog", id)
		}
	}
}

func messageIDs(t *testing.T, name string) map[string]struct{} {
	t.Helper()
	data, err := localeFS.ReadFile(name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	mf, err := bundle.ParseMessageFileBytes(data, name)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	ids := make(map[string]struct{}, len(mf.Messages))
	for _, m := range mf.Messages {
		ids[m.ID] = struct{}{}
	}
	return ids
}
