package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateSymlink(t *testing.T) {
	tmp := t.TempDir()

	target := filepath.Join(tmp, "target")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "file.md"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(tmp, "link")
	if err := CreateSymlink(target, link); err != nil {
		t.Fatalf("CreateSymlink failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(link, "file.md"))
	if err != nil {
		t.Fatalf("reading through link: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("content through link = %q, want %q", string(data), "hello")
	}
}

func TestIsSymlink(t *testing.T) {
	tmp := t.TempDir()

	real := filepath.Join(tmp, "real")
	if err := os.Mkdir(real, 0755); err != nil {
		t.Fatal(err)
	}
	if IsSymlink(real) {
		t.Error("real directory reported as symlink")
	}

	link := filepath.Join(tmp, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Fatal(err)
	}
	if !IsSymlink(link) {
		t.Error("symlink not reported as symlink")
	}

	// Dangling links still count.
	dangling := filepath.Join(tmp, "dangling")
	if err := os.Symlink(filepath.Join(tmp, "gone"), dangling); err != nil {
		t.Fatal(err)
	}
	if !IsSymlink(dangling) {
		t.Error("dangling symlink not reported as symlink")
	}
}

func TestReadSymlinkTarget(t *testing.T) {
	tmp := t.TempDir()

	target := filepath.Join(tmp, "target")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSymlinkTarget(link)
	if err != nil {
		t.Fatalf("ReadSymlinkTarget failed: %v", err)
	}
	want, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("target = %q, want %q", got, want)
	}
}

func TestReadSymlinkTargetRelative(t *testing.T) {
	tmp := t.TempDir()

	if err := os.Mkdir(filepath.Join(tmp, "target"), 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "link")
	if err := os.Symlink("target", link); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSymlinkTarget(link)
	if err != nil {
		t.Fatalf("ReadSymlinkTarget failed: %v", err)
	}
	want, err := filepath.EvalSymlinks(filepath.Join(tmp, "target"))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("target = %q, want %q", got, want)
	}
}
