// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated strings of the form: labels,
// placeholders, error messages and TUI texts. It uses go-i18n over YAML
// catalogs embedded from the 'locales' directory.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
	available map[string]string
)

// Init loads every embedded catalog and selects lang. Unknown languages
// fall back to English.
func Init(l string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	available = make(map[string]string)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			continue
		}
		mf, err := bundle.ParseMessageFileBytes(data, f.Name())
		if err != nil {
			continue
		}
		code := strings.TrimSuffix(f.Name(), path.Ext(f.Name()))
		available[code] = displayName(mf.Messages, code)
	}

	if _, ok := available[l]; !ok {
		l = "en"
	}
	lang = l
	localizer = i18n.NewLocalizer(bundle, l)
}

func displayName(messages []*i18n.Message, fallback string) string {
	for _, m := range messages {
		if m.ID == "language.name" {
			return m.Other
		}
	}
	return fallback
}

// T translates messageID. A single map argument is passed as template data
// ({{.Field}}); any other arguments are applied fmt-style to the result.
// Unknown IDs come back unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil || msg == "" {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang switches the active language.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the active language code.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return lang
}

// GetAvailableLocales maps language codes to their display names.
func GetAvailableLocales() map[string]string {
	if localizer == nil {
		Init("en")
	}
	return maps.Clone(available)
}

// Languages lists the available language codes, sorted.
func Languages() []string {
	return slices.Sorted(maps.Keys(GetAvailableLocales()))
}
