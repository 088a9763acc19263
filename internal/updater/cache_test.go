package updater

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCacheMissing(t *testing.T) {
	cache, err := LoadCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache != nil {
		t.Error("expected nil cache for missing file")
	}
}

func TestSaveAndLoadCache(t *testing.T) {
	tmp := t.TempDir()

	original := &VersionCache{
		LatestVersion:   "1.2.0",
		CurrentVersion:  "1.1.0",
		CheckedAt:       time.Now().Truncate(time.Second),
		UpdateAvailable: true,
	}
	if err := SaveCache(tmp, original); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	loaded, err := LoadCache(tmp)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if loaded.LatestVersion != "1.2.0" {
		t.Errorf("LatestVersion = %q, want %q", loaded.LatestVersion, "1.2.0")
	}
	if loaded.CurrentVersion != "1.1.0" {
		t.Errorf("CurrentVersion = %q, want %q", loaded.CurrentVersion, "1.1.0")
	}
	if !loaded.UpdateAvailable {
		t.Error("UpdateAvailable should be true")
	}
}

func TestLoadOrResetDeletesCorruptCache(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, cacheFileName)
	// A truncated save leaves unparseable JSON behind.
	if err := os.WriteFile(path, []byte(`{"latest_version": "1.`), 0644); err != nil {
		t.Fatal(err)
	}

	if cache := loadOrReset(tmp); cache != nil {
		t.Errorf("expected nil cache for corrupt file, got %+v", cache)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt cache file not removed")
	}

	// The next save succeeds and the cache is readable again.
	if err := SaveCache(tmp, &VersionCache{LatestVersion: "1.2.0", CheckedAt: time.Now()}); err != nil {
		t.Fatalf("SaveCache after reset: %v", err)
	}
	cache := loadOrReset(tmp)
	if cache == nil || cache.LatestVersion != "1.2.0" {
		t.Errorf("cache not restored after reset: %+v", cache)
	}
}

func TestIsCacheStale(t *testing.T) {
	if !IsCacheStale(nil, time.Hour) {
		t.Error("nil cache should be stale")
	}

	fresh := &VersionCache{CheckedAt: time.Now()}
	if IsCacheStale(fresh, time.Hour) {
		t.Error("fresh cache reported stale")
	}

	old := &VersionCache{CheckedAt: time.Now().Add(-2 * time.Hour)}
	if !IsCacheStale(old, time.Hour) {
		t.Error("old cache not reported stale")
	}
}
