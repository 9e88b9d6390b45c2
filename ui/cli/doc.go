// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for cardform using Cobra.
// It wires configuration, localisation and logging, then either starts the
// TUI or runs one of the non-interactive commands. CLI code stays thin and
// delegates every card rule to `core/card` and `core/form`.
package cli
