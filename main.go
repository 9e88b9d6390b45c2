// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for cardform.
//
// Usage:
//
//	go run . [flags]
//	./cardform [flags]
//
// This launches the cardform CLI. See --help for options.
package main

import (
	"os"

	"github.com/cardform/cardform/ui/cli"
)

func main() {
	// cobra already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
