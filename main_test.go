package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPrintsFatalErrors(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tmp := t.TempDir()
	os.Args = []string{"ecc", "link",
		"--src", filepath.Join(tmp, "nope"),
		"--dest", filepath.Join(tmp, "dest"),
		"--claude-json", filepath.Join(tmp, "claude.json"),
		"--no-prompt"}

	var stderr bytes.Buffer
	if code := run(&stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	out := stderr.String()
	if !strings.Contains(out, "Error:") {
		t.Errorf("fatal error not surfaced on stderr: %q", out)
	}
	if !strings.Contains(out, "does not exist") {
		t.Errorf("error detail missing from stderr: %q", out)
	}
}

func TestRunSuccessExitCode(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"ecc", "version", "--short"}

	var stderr bytes.Buffer
	if code := run(&stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %q", code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", stderr.String())
	}
}
