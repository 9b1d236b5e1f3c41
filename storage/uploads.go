// SPDX-License-Identifier: GPL-3.0-only

package storage

import (
	"casedesk-server/commons"
	"casedesk-server/crypto"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the flat directory holding both account photos and case
// evidence files.
func Dir() string {
	return commons.GetEnv("UPLOAD_DIR", "uploads")
}

func EnsureDir() error {
	return os.MkdirAll(Dir(), 0o755)
}

// SanitizeFilename reduces a client-declared filename to a filesystem-safe
// form: the base name only, with anything outside [A-Za-z0-9._-] replaced
// by underscores. Returns "file" when nothing safe remains.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	sanitized := strings.TrimLeft(b.String(), ".")
	if sanitized == "" {
		return "file"
	}
	return sanitized
}

// Save writes the upload under a generated key and returns the key as the
// handle to persist. The key is ownerPrefix + random suffix + the sanitized
// declared name, so unrelated uploads with colliding names never overwrite
// each other and the original name stays readable in the handle.
func Save(src io.Reader, ownerPrefix, declaredName string) (string, error) {
	if err := EnsureDir(); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	suffix, err := crypto.GenerateRandomString("", 4, "hex")
	if err != nil {
		return "", fmt.Errorf("failed to generate file key: %w", err)
	}
	handle := fmt.Sprintf("%s_%s_%s", ownerPrefix, suffix, SanitizeFilename(declaredName))

	dst, err := os.Create(filepath.Join(Dir(), handle))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	commons.Logger.Debugf("Stored upload %s", handle)
	return handle, nil
}

// SaveMultipart stores a multipart form file and returns its handle.
func SaveMultipart(fh *multipart.FileHeader, ownerPrefix string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()
	return Save(src, ownerPrefix, fh.Filename)
}

// Remove deletes a stored file. Used to clean up after a failed write of
// the owning row.
func Remove(handle string) error {
	path, err := Resolve(handle)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Resolve maps a handle to an absolute path and rejects anything that
// escapes the upload directory.
func Resolve(handle string) (string, error) {
	cleanName := filepath.Clean(handle)
	if cleanName != filepath.Base(cleanName) || strings.HasPrefix(cleanName, ".") {
		return "", fmt.Errorf("invalid file handle: %s", handle)
	}

	absDir, err := filepath.Abs(Dir())
	if err != nil {
		return "", fmt.Errorf("unable to resolve upload directory: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(absDir, cleanName))
	if err != nil {
		return "", fmt.Errorf("invalid file handle: %s", handle)
	}
	if !strings.HasPrefix(absPath, absDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid file handle: %s", handle)
	}
	return absPath, nil
}
