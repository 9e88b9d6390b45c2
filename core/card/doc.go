// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package card holds the pure card-number rules used by the form: brand
// detection from the number prefix, per-brand digit and CVV lengths, digit
// grouping, preview masking, expiration checks and random demo cards.
// Nothing in here keeps state or touches I/O; callers pass digits in and get
// values back.
package card
