// Package linker replaces a fixed set of destination directories with
// symlinks into the source tree. Symlinking keeps the destination in sync
// with source edits without re-running the tool; only real directories get a
// .bak backup, since a symlink holds no original content.
package linker

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/ecc-labs/ecc/internal/platform"
	"github.com/ecc-labs/ecc/internal/source"
)

// Link describes one symlink present at the destination, resolved to its
// target.
type Link struct {
	Name   string
	Target string
}

// LinkDirectories symlinks each allow-listed source subdirectory into
// destDir, writing progress to w. A missing source subdirectory is skipped
// with a warning. An existing symlink at the destination is removed
// unconditionally; an existing real directory is renamed to <name>.bak,
// destroying any stale backup of the same name first (last backup wins, no
// chaining).
func LinkDirectories(srcRoot, destDir string, w io.Writer) error {
	if !platform.IsSymlinkSupported() {
		return fmt.Errorf("symlinks are not supported on this system (on Windows, enable Developer Mode)")
	}

	fmt.Fprintln(w, "=== Linking directories ===")
	for _, name := range source.Dirs {
		srcPath := filepath.Join(srcRoot, name)
		destPath := filepath.Join(destDir, name)

		if info, err := os.Stat(srcPath); err != nil || !info.IsDir() {
			fmt.Fprintf(w, "  Warning: Source not found, skipping: %s\n", srcPath)
			continue
		}

		if platform.IsSymlink(destPath) {
			fmt.Fprintf(w, "  Removing existing symlink: %s\n", destPath)
			if err := os.Remove(destPath); err != nil {
				return fmt.Errorf("removing symlink %s: %w", destPath, err)
			}
		} else if info, err := os.Stat(destPath); err == nil && info.IsDir() {
			bak := destPath + ".bak"
			fmt.Fprintf(w, "  Backing up existing directory: %s -> %s\n", destPath, bak)
			if err := os.RemoveAll(bak); err != nil {
				return fmt.Errorf("removing stale backup %s: %w", bak, err)
			}
			if err := os.Rename(destPath, bak); err != nil {
				return fmt.Errorf("backing up %s: %w", destPath, err)
			}
		}

		fmt.Fprintf(w, "  Linking: %s -> %s\n", srcPath, destPath)
		if err := platform.CreateSymlink(srcPath, destPath); err != nil {
			return fmt.Errorf("linking %s: %w", destPath, err)
		}
	}
	return nil
}

// Links enumerates the symlinks present at destDir, sorted by name and
// resolved to their targets.
func Links(destDir string) ([]Link, error) {
	entries, err := os.ReadDir(destDir)
	if err != nil {
		return nil, fmt.Errorf("reading destination %s: %w", destDir, err)
	}

	var links []Link
	for _, entry := range entries {
		path := filepath.Join(destDir, entry.Name())
		if !platform.IsSymlink(path) {
			continue
		}
		target, err := platform.ReadSymlinkTarget(path)
		if err != nil {
			continue
		}
		links = append(links, Link{Name: entry.Name(), Target: target})
	}

	sort.Slice(links, func(i, j int) bool { return links[i].Name < links[j].Name })
	return links, nil
}
