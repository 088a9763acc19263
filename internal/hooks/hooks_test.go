package hooks

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecc-labs/ecc/internal/jsondoc"
)

const hooksTemplate = `{
  "hooks": {
    "PreToolUse": [
      {
        "matcher": "*",
        "hooks": [
          {"type": "command", "command": "node \"${CLAUDE_PLUGIN_ROOT}/scripts/test.js\""}
        ]
      }
    ]
  }
}`

// makeSource creates a source tree containing hooks/hooks.json.
func makeSource(t *testing.T, template string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "repo")
	if err := os.MkdirAll(filepath.Join(src, "hooks"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "hooks", "hooks.json"), []byte(template), 0644); err != nil {
		t.Fatal(err)
	}
	return src
}

func TestMergeResolvesPluginRootPlaceholder(t *testing.T) {
	src := makeSource(t, hooksTemplate)
	dest := t.TempDir()

	var buf bytes.Buffer
	if err := MergeIntoSettings(src, dest, &buf); err != nil {
		t.Fatalf("MergeIntoSettings: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dest, "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), PluginRootPlaceholder) {
		t.Error("placeholder survived the merge")
	}
	if !strings.Contains(string(raw), src) {
		t.Errorf("source path %q missing from settings:\n%s", src, raw)
	}
}

func TestMergePreservesExistingSettings(t *testing.T) {
	src := makeSource(t, hooksTemplate)
	dest := t.TempDir()
	existing := `{"customKey": "preserved", "hooks": {"Stop": [{"old": true}]}}`
	if err := os.WriteFile(filepath.Join(dest, "settings.json"), []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := MergeIntoSettings(src, dest, &buf); err != nil {
		t.Fatalf("MergeIntoSettings: %v", err)
	}

	settings, err := jsondoc.Read(filepath.Join(dest, "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	if got := jsondoc.StringAt(settings, "customKey"); got != "preserved" {
		t.Errorf("customKey = %q, want %q", got, "preserved")
	}
	hooksObj, ok := jsondoc.ChildObject(settings, "hooks")
	if !ok {
		t.Fatal("hooks key missing")
	}
	if _, ok := hooksObj.Get("PreToolUse"); !ok {
		t.Error("PreToolUse missing after merge")
	}
	if _, ok := hooksObj.Get("Stop"); !ok {
		t.Error("pre-existing Stop hook lost in merge")
	}
}

func TestMergeBacksUpSettings(t *testing.T) {
	src := makeSource(t, hooksTemplate)
	dest := t.TempDir()
	orig := `{"existing": true}`
	if err := os.WriteFile(filepath.Join(dest, "settings.json"), []byte(orig), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := MergeIntoSettings(src, dest, &buf); err != nil {
		t.Fatalf("MergeIntoSettings: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "settings.json.bak"))
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(data) != orig {
		t.Errorf("backup = %q, want %q", string(data), orig)
	}
}

func TestMergeSkipsWhenTemplateMissing(t *testing.T) {
	src := filepath.Join(t.TempDir(), "repo")
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatal(err)
	}
	dest := t.TempDir()

	var buf bytes.Buffer
	if err := MergeIntoSettings(src, dest, &buf); err != nil {
		t.Fatalf("MergeIntoSettings: %v", err)
	}
	if !strings.Contains(buf.String(), "Skipping hooks merge") {
		t.Errorf("expected skip notice, got %q", buf.String())
	}
	if _, err := os.Stat(filepath.Join(dest, "settings.json")); !os.IsNotExist(err) {
		t.Error("settings.json created despite missing template")
	}
}

func TestMergeMalformedTemplateFails(t *testing.T) {
	src := makeSource(t, `{broken`)
	dest := t.TempDir()

	var buf bytes.Buffer
	if err := MergeIntoSettings(src, dest, &buf); err == nil {
		t.Fatal("expected parse error")
	}
}
