// SPDX-License-Identifier: GPL-3.0-only

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"receipt.png", "receipt.png"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\windows\\system32", "system32"},
		{"my photo (1).jpg", "my_photo__1_.jpg"},
		{"रसीद.pdf", "____.pdf"},
		{"...", "file"},
		{"", "file"},
		{"/absolute/path/file.txt", "file.txt"},
	}

	for _, tt := range tests {
		got := SanitizeFilename(tt.in)
		if got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if strings.ContainsAny(got, "/\\") {
			t.Errorf("SanitizeFilename(%q) = %q contains a path separator", tt.in, got)
		}
	}
}

func TestSaveWritesContent(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	handle, err := Save(strings.NewReader("evidence bytes"), "c7", "receipt.png")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(handle, "c7_") || !strings.HasSuffix(handle, "_receipt.png") {
		t.Errorf("Unexpected handle format: %s", handle)
	}

	data, err := os.ReadFile(filepath.Join(Dir(), handle))
	if err != nil {
		t.Fatalf("Stored file missing: %v", err)
	}
	if string(data) != "evidence bytes" {
		t.Errorf("Stored content = %q, want %q", data, "evidence bytes")
	}
}

func TestSaveCollidingNamesDoNotOverwrite(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	h1, err := Save(strings.NewReader("first"), "u1", "photo.jpg")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	h2, err := Save(strings.NewReader("second"), "u2", "photo.jpg")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("Expected distinct handles for colliding names, got %s twice", h1)
	}

	d1, _ := os.ReadFile(filepath.Join(Dir(), h1))
	d2, _ := os.ReadFile(filepath.Join(Dir(), h2))
	if string(d1) != "first" || string(d2) != "second" {
		t.Error("Colliding uploads overwrote each other")
	}
}

func TestResolveRejectsTraversal(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	for _, handle := range []string{"../secret", "..", "a/../../b", ".hidden", "/etc/passwd"} {
		if _, err := Resolve(handle); err == nil {
			t.Errorf("Resolve(%q) should fail", handle)
		}
	}

	handle, err := Save(strings.NewReader("x"), "u1", "ok.txt")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := Resolve(handle); err != nil {
		t.Errorf("Resolve(%q) should succeed: %v", handle, err)
	}
}

func TestRemove(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	handle, err := Save(strings.NewReader("x"), "u1", "gone.txt")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Remove(handle); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(Dir(), handle)); !os.IsNotExist(err) {
		t.Error("File should be gone after Remove")
	}
}
