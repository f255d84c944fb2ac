package mmap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	content := []byte("ພາສາລາວ")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	b, err := Mmap(f, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(b, content) {
		t.Errorf("got %v, expected %v", b, content)
	}
	if err := Madvise(b); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Munmap(b); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMmapEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	b, err := Mmap(f, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != 0 {
		t.Errorf("got %v, expected empty", len(b))
	}
	if err := Munmap(b); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
