// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form holds the state of the card entry form: the four fields, their
// validation state machine and the submission lifecycle. It is UI-agnostic;
// the terminal UI and the CLI drive it through State and read projections
// back. Changes are pushed to subscribers as Events after each operation has
// finished, so a subscriber never sees a half-applied update.
//
// State has a single owner and is not safe for concurrent use.
package form
