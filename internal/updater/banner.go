package updater

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ecc-labs/ecc/internal/branding"
)

// CheckAndPrintBanner checks the version cache and prints an update banner
// if a newer version is available. It never blocks; a stale cache is
// refreshed by a background goroutine for the next invocation.
func (u *Updater) CheckAndPrintBanner(w io.Writer, configDir string) {
	cache := loadOrReset(configDir)

	if cache != nil && cache.UpdateAvailable {
		PrintUpdateBanner(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if IsCacheStale(cache, DefaultCacheMaxAge) {
		go u.refreshCache(configDir)
	}
}

// loadOrReset reads the version cache, deleting the file if it is
// unreadable so a later refresh can rewrite it. A corrupt cache (for
// example from an interrupted save) is treated the same as no cache.
func loadOrReset(configDir string) *VersionCache {
	cache, err := LoadCache(configDir)
	if err != nil {
		_ = os.Remove(filepath.Join(configDir, cacheFileName))
		return nil
	}
	return cache
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    See https://github.com/%s/releases\n\n", branding.GitHubRepo())
}

// refreshCache fetches the latest version and updates the cache file.
// Runs in a background goroutine and never fails loudly.
func (u *Updater) refreshCache(configDir string) {
	release, err := u.CheckLatestVersion()
	if err != nil {
		return
	}

	available, err := IsUpdateAvailable(u.currentVersion, release.Version)
	if err != nil {
		return
	}

	cache := &VersionCache{
		LatestVersion:   release.Version,
		CurrentVersion:  u.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	}

	// Silently ignore save errors.
	_ = SaveCache(configDir, cache)
}
