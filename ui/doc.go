// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of cardform.
//
// ui/cli holds the cobra commands, ui/tui the bubbletea form. Both call into
// core/form and never duplicate its rules.
package ui
