// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"slices"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Fatalf("unexpected map result: %v", got)
	}
	if got := Map([]int(nil), strconv.Itoa); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestMapI(t *testing.T) {
	got := MapI([]string{"a", "b"}, func(i int, s string) string { return s + strconv.Itoa(i) })
	if !slices.Equal(got, []string{"a0", "b1"}) {
		t.Fatalf("unexpected mapi result: %v", got)
	}
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3, 4}, func(v, acc int) int { return acc + v })
	if sum != 10 {
		t.Fatalf("expected 10, got %d", sum)
	}
	joined := ReduceD([]string{"b", "c"}, "a", func(v, acc string) string { return acc + v })
	if joined != "abc" {
		t.Fatalf("expected abc, got %q", joined)
	}
}
