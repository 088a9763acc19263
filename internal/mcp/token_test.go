package mcp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAutoFillTokenReplacesPlaceholder(t *testing.T) {
	orig := lookupToken
	lookupToken = func() string { return "ghp_test123" }
	t.Cleanup(func() { lookupToken = orig })

	path := filepath.Join(t.TempDir(), "claude.json")
	content := `{"mcpServers": {"github": {"env": {"GITHUB_PERSONAL_ACCESS_TOKEN": "YOUR_GITHUB_PAT_HERE"}}, "other": {"env": {"TOKEN": "YOUR_GITHUB_PAT_HERE"}}}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := AutoFillToken(path, &buf); err != nil {
		t.Fatalf("AutoFillToken: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), GHTokenPlaceholder) {
		t.Error("placeholder still present after auto-fill")
	}
	if strings.Count(string(raw), "ghp_test123") != 2 {
		t.Errorf("expected every occurrence replaced:\n%s", raw)
	}
	if !strings.Contains(buf.String(), "Auto-filled") {
		t.Errorf("expected confirmation notice, got %q", buf.String())
	}
}

func TestAutoFillTokenHelperUnavailable(t *testing.T) {
	orig := lookupToken
	lookupToken = func() string { return "" }
	t.Cleanup(func() { lookupToken = orig })

	path := filepath.Join(t.TempDir(), "claude.json")
	content := `{"token": "YOUR_GITHUB_PAT_HERE"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := AutoFillToken(path, &buf); err != nil {
		t.Fatalf("AutoFillToken: %v", err)
	}

	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), GHTokenPlaceholder) {
		t.Error("placeholder should be left in place")
	}
	if !strings.Contains(buf.String(), "TIP:") {
		t.Errorf("expected tip, got %q", buf.String())
	}
}

func TestAutoFillTokenNoPlaceholder(t *testing.T) {
	orig := lookupToken
	called := false
	lookupToken = func() string { called = true; return "ghp_x" }
	t.Cleanup(func() { lookupToken = orig })

	path := filepath.Join(t.TempDir(), "claude.json")
	if err := os.WriteFile(path, []byte(`{"token": "real-value"}`), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := AutoFillToken(path, &buf); err != nil {
		t.Fatalf("AutoFillToken: %v", err)
	}
	if called {
		t.Error("helper invoked although no placeholder present")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
