package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestMemoryFileSystem_CreateVisibleAfterClose(t *testing.T) {
	m := NewMemoryFileSystem()

	w, err := m.Create("plots/fig.png")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("abc")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if m.Exists("plots/fig.png") {
		t.Error("file should not exist before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := m.ReadFile("plots/./fig.png")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("data = %q, want %q", data, "abc")
	}
	if got := m.Files("plots"); len(got) != 1 || got[0] != "plots/fig.png" {
		t.Errorf("Files = %v", got)
	}
}

func TestMemoryFileSystem_MkdirAllAndRemove(t *testing.T) {
	m := NewMemoryFileSystem()
	if err := m.MkdirAll("a/b/c", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	for _, dir := range []string{"a", "a/b", "a/b/c"} {
		if !m.Exists(dir) {
			t.Errorf("expected %s to exist", dir)
		}
	}

	if err := m.Remove("a/b/c"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if m.Exists("a/b/c") {
		t.Error("a/b/c should be gone")
	}

	err := m.Remove("missing")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Remove(missing) = %v, want ErrNotExist", err)
	}
	if _, err := m.ReadFile("missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) = %v, want ErrNotExist", err)
	}
}

func TestOSFileSystem(t *testing.T) {
	var osfs OSFileSystem
	dir := filepath.Join(t.TempDir(), "nested")
	if err := osfs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	path := filepath.Join(dir, "out.svg")
	w, err := osfs.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("<svg/>")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if !osfs.Exists(path) {
		t.Fatal("expected file to exist")
	}
	data, err := osfs.ReadFile(path)
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
	if err := osfs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if osfs.Exists(path) {
		t.Error("expected file to be removed")
	}
}
