package safeio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanUserPath(t *testing.T) {
	if _, err := CleanUserPath("../etc/passwd"); err == nil {
		t.Error("expected traversal rejection")
	}
	if _, err := CleanUserPath("a/b/../../../c"); err == nil {
		t.Error("expected traversal rejection after cleaning")
	}
	got, err := CleanUserPath("a//b/./c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a/b/c" {
		t.Errorf("CleanUserPath = %q", got)
	}
}

func TestReadFileContained(t *testing.T) {
	base := t.TempDir()
	inside := filepath.Join(base, "sub", "file.txt")
	if err := os.MkdirAll(filepath.Dir(inside), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(inside, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFileContained(base, inside)
	if err != nil || string(data) != "data" {
		t.Errorf("contained read failed: %v", err)
	}

	outside := filepath.Join(t.TempDir(), "escape.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFileContained(base, outside); err == nil {
		t.Error("expected containment violation")
	}
}

func TestWriteFilePreservePerms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.con")
	if err := os.WriteFile(path, []byte("v1"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := WriteFilePreservePerms(path, []byte("v2")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode()&0o777 != 0o600 {
		t.Errorf("mode not preserved: %v", st.Mode())
	}

	data, _ := os.ReadFile(path)
	if string(data) != "v2" {
		t.Errorf("content not written: %q", data)
	}

	// Fresh file falls back to the default mode
	fresh := filepath.Join(t.TempDir(), "new.con")
	if err := WriteFilePreservePerms(fresh, []byte("x")); err != nil {
		t.Fatal(err)
	}
}
