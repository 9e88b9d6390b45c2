// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the terminal card form. Views live under models/ and
// only present state owned by core/form.
package tui
