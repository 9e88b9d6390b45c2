// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the translation catalogs against the source: every
// i18n.T key must exist in the English catalog, every other catalog must
// carry exactly the English keys, and keys nobody references are reported
// as orphans.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

var (
	// i18n.T("some.key", ...)
	callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	// literals that look like keys, e.g. values of an id table
	literalRe = regexp.MustCompile(`"([a-z_]+\.[a-z\._]+)"`)
)

type report struct {
	// Undefined keys are passed to i18n.T but missing from the primary catalog.
	Undefined []string
	// Orphaned keys are in the primary catalog but never referenced.
	Orphaned []string
	// Missing and Extra are keyed by catalog file name.
	Missing map[string][]string
	Extra   map[string][]string
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0 || len(r.Extra) > 0
}

func main() {
	r, err := lint(".")
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root string) (report, error) {
	r := report{
		Missing: make(map[string][]string),
		Extra:   make(map[string][]string),
	}

	called, referenced, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scanning sources: %w", err)
	}

	dir := filepath.Join(root, localesDir)
	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	for key := range called {
		if _, ok := primary[key]; !ok {
			r.Undefined = append(r.Undefined, key)
		}
	}
	for key := range primary {
		_, isCalled := called[key]
		_, isReferenced := referenced[key]
		if !isCalled && !isReferenced {
			r.Orphaned = append(r.Orphaned, key)
		}
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		name := filepath.Base(file)
		if name == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", name, err)
		}
		if missing := difference(primary, keys); len(missing) > 0 {
			r.Missing[name] = missing
		}
		if extra := difference(keys, primary); len(extra) > 0 {
			r.Extra[name] = extra
		}
	}

	slices.Sort(r.Undefined)
	slices.Sort(r.Orphaned)
	return r, nil
}

func printReport(w io.Writer, r report) {
	section := func(title string, keys []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  ✨ None found.")
		}
		for _, key := range keys {
			fmt.Fprintf(w, "  - %s\n", key)
		}
	}

	section("Undefined keys (used in code, missing from "+primaryLocale+")", r.Undefined)
	section("Orphaned keys (in "+primaryLocale+", never used)", r.Orphaned)
	for _, name := range sortedKeys(r.Missing) {
		section("Missing in "+name, r.Missing[name])
	}
	for _, name := range sortedKeys(r.Extra) {
		section("Unknown in "+name, r.Extra[name])
	}

	switch {
	case r.failed():
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
}

// findUsedKeys scans all non-test .go files outside tools/. called holds
// i18n.T keys, referenced every other key shaped literal.
func findUsedKeys(root string) (called, referenced map[string]struct{}, err error) {
	called = make(map[string]struct{})
	referenced = make(map[string]struct{})

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && (d.Name() == "tools" || strings.HasPrefix(d.Name(), "_")) {
			return filepath.SkipDir
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range callRe.FindAllStringSubmatch(string(content), -1) {
			called[match[1]] = struct{}{}
		}
		for _, match := range literalRe.FindAllStringSubmatch(string(content), -1) {
			referenced[match[1]] = struct{}{}
		}
		return nil
	})
	return called, referenced, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot separated keys. Flat catalogs
// pass through unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

// difference lists the keys of a that b lacks, sorted.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	slices.Sort(out)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
