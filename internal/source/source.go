// Package source locates and describes the read-only configuration source
// tree: the checkout of everything-claude-code that supplies the linked
// directories and the hooks/MCP JSON templates.
package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ecc-labs/ecc/internal/branding"
)

// Dirs is the fixed set of directory names linked into the destination.
var Dirs = []string{"agents", "commands", "contexts", "plugins", "rules", "skills"}

// markerDir marks a directory as the source-tree root during auto-detection.
const markerDir = "hooks"

// HooksFile returns the path of the hooks template inside root.
func HooksFile(root string) string {
	return filepath.Join(root, "hooks", "hooks.json")
}

// MCPFile returns the path of the MCP servers template inside root.
func MCPFile(root string) string {
	return filepath.Join(root, "mcp-configs", "mcp-servers.json")
}

// Detect locates the source tree automatically. The ECC_SOURCE environment
// variable wins when set; otherwise the search walks upward from the
// executable's resolved location until a directory containing hooks/ is
// found. Failure is a configuration error and aborts before any mutation.
func Detect() (string, error) {
	if v := os.Getenv(branding.EnvVar("SOURCE")); v != "" {
		return Resolve(v)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	root, ok := findMarkerRoot(filepath.Dir(exe))
	if !ok {
		return "", fmt.Errorf(
			"cannot auto-detect source directory (searched upward from %s): pass --src explicitly",
			filepath.Dir(exe))
	}
	return root, nil
}

// Resolve validates an explicitly supplied source path and returns it in
// absolute form.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving source path %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("source directory %s does not exist", abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("source path %s is not a directory", abs)
	}
	return abs, nil
}

// findMarkerRoot walks upward from start looking for a directory that
// contains the marker subdirectory.
func findMarkerRoot(start string) (string, bool) {
	dir := start
	for {
		if info, err := os.Stat(filepath.Join(dir, markerDir)); err == nil && info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
