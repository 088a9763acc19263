package jsondoc

import (
	"fmt"
	"io"
	"os"
)

// Backup copies the regular file at path to path + ".bak", preserving file
// mode and timestamps, and returns the backup location. If path does not
// exist (or is not a regular file) nothing happens and "" is returned.
// Called before every in-place rewrite so the pre-merge state is recoverable.
func Backup(path string, w io.Writer) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", nil
	}

	bak := path + ".bak"

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s for backup: %w", path, err)
	}
	if err := os.WriteFile(bak, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", bak, err)
	}
	// Carry timestamps over so the backup mirrors the original's metadata.
	if err := os.Chtimes(bak, info.ModTime(), info.ModTime()); err != nil {
		return "", fmt.Errorf("preserving timestamps on %s: %w", bak, err)
	}

	fmt.Fprintf(w, "  Backed up: %s -> %s\n", path, bak)
	return bak, nil
}
