// Package platform wraps the symlink operations the linker depends on.
// Directory symlinks have no copy fallback on Windows (unlike single files,
// a copied directory would immediately drift from its source), so Windows
// without developer mode reports symlinks as unsupported instead.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// CreateSymlink creates a symbolic link at link pointing to target.
func CreateSymlink(target, link string) error {
	return os.Symlink(target, link)
}

// ReadSymlinkTarget returns the fully resolved target of the symlink at path.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		return resolved, nil
	}
	return target, nil
}

// IsSymlink reports whether path is a symbolic link (even a dangling one).
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// IsSymlinkSupported returns true if the current platform supports native
// symlinks. On Windows this attempts a test symlink to check developer mode.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	tmpDir := os.TempDir()
	link := filepath.Join(tmpDir, ".ecc-symlink-test")
	defer os.Remove(link)

	return os.Symlink(tmpDir, link) == nil
}
