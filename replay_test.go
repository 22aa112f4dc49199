package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "gesture.star")
	if err := os.WriteFile(filename, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestReplayDrag(t *testing.T) {
	filename := writeScript(t, `
key("Space", "down")
pointer(100, 100, "down")
pointer(150, 130, "move")
pointer(160, 130, "move")
pointer(160, 130, "up")
key("Space", "up")
`)
	var out bytes.Buffer
	if err := Replay(&out, DefaultConfig(), filename, false); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	report := out.String()
	for _, want := range []string{
		"events:      6",
		"redraws:     2",
		"offset:      (60.000000, 30.000000)",
		"scale:       1.000000",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestReplayWheelVerbose(t *testing.T) {
	filename := writeScript(t, `
resize(640, 480)
wheel(200, 200, -1)
pointer(10, 10, "down", button="secondary")
`)
	var out bytes.Buffer
	if err := Replay(&out, DefaultConfig(), filename, true); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	report := out.String()
	for _, want := range []string{
		"resize 640x480",
		"wheel -1 at (200,200)",
		"offset=(-20.000, -20.000) scale=1.100000 (default suppressed)",
		"pointer secondary down (10,10)",
		"surface:     640x480",
		"redraws:     2",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestReplayMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := Replay(&out, DefaultConfig(), filepath.Join(t.TempDir(), "missing.star"), false)
	if err == nil {
		t.Fatal("Replay succeeded on a missing file")
	}
}

func TestReplayScriptError(t *testing.T) {
	filename := writeScript(t, `touch([(1, 2, 3)])`)
	var out bytes.Buffer
	if err := Replay(&out, DefaultConfig(), filename, false); err == nil {
		t.Fatal("Replay succeeded on an invalid script")
	}
}
