// Package hooks merges the source hooks template into the destination
// settings document.
package hooks

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ecc-labs/ecc/internal/jsondoc"
	"github.com/ecc-labs/ecc/internal/schema"
	"github.com/ecc-labs/ecc/internal/source"
)

// PluginRootPlaceholder is the sentinel replaced with the absolute source
// root. The substitution is textual over the raw template, performed before
// JSON parsing, so every occurrence is replaced regardless of nesting depth.
const PluginRootPlaceholder = "${CLAUDE_PLUGIN_ROOT}"

// SettingsFile is the name of the settings document in the destination tree.
const SettingsFile = "settings.json"

// MergeIntoSettings resolves the plugin-root placeholder in the source hooks
// template and deep-merges the result into destDir's settings.json. Unrelated
// top-level settings keys are preserved. A missing template is a notice, not
// an error; malformed JSON is fatal.
func MergeIntoSettings(srcRoot, destDir string, w io.Writer) error {
	hooksPath := source.HooksFile(srcRoot)
	raw, err := os.ReadFile(hooksPath)
	if os.IsNotExist(err) {
		fmt.Fprintln(w, "  Skipping hooks merge: hooks/hooks.json not found")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", hooksPath, err)
	}

	fmt.Fprintf(w, "\n=== Merging hooks into %s ===\n", SettingsFile)

	warnShape(raw, w)

	resolved := bytes.ReplaceAll(raw, []byte(PluginRootPlaceholder), []byte(srcRoot))
	hooksDoc, err := jsondoc.Parse(resolved, hooksPath)
	if err != nil {
		return err
	}

	settingsPath := filepath.Join(destDir, SettingsFile)
	if _, err := jsondoc.Backup(settingsPath, w); err != nil {
		return err
	}
	existing, err := jsondoc.Read(settingsPath)
	if err != nil {
		return err
	}

	merged := jsondoc.Merge(existing, hooksDoc)
	if err := jsondoc.Write(settingsPath, merged); err != nil {
		return err
	}
	fmt.Fprintf(w, "  Merged hooks into: %s\n", settingsPath)
	return nil
}

// warnShape reports hooks template shape problems without failing the merge.
func warnShape(raw []byte, w io.Writer) {
	result, err := schema.ValidateHooks(raw)
	if err != nil || result.Valid {
		return
	}
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "  Warning: hooks.json%s: %s\n", issue.Path, issue.Message)
	}
}
