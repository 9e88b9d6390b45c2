// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer swaps L with a buffer-backed logger and
// restores it afterwards.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetup_LevelFiltersDebug(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	var buf bytes.Buffer
	if _, err := Setup("warn", "", &buf); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	Infof("quiet")
	Warnf("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("missing warn output: %s", out)
	}
}

func TestSetup_File(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	path := filepath.Join(t.TempDir(), "cardform.log")
	closer, err := Setup("debug", path, nil)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	Debugf("to file %d", 42)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "to file 42") {
		t.Fatalf("log file missing message: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    clog.Level
		wantErr bool
	}{
		{"", clog.InfoLevel, false},
		{"debug", clog.DebugLevel, false},
		{"WARN", clog.WarnLevel, false},
		{"error", clog.ErrorLevel, false},
		{"loud", clog.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err=%v, wantErr=%v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
