package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ReadImageFile reads an image from disk and returns its raw bytes
// together with the MIME type inferred from the file extension.
//
// The bytes are not decoded or validated here; the upstream API is the
// authority on whether it can use them.
func ReadImageFile(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image file: %w", err)
	}
	return data, MIMETypeForPath(path), nil
}

// SavedImage describes an image persisted by SaveBase64.
type SavedImage struct {
	// Path is the location the image was written to.
	Path string `json:"path"`

	// SizeBytes is the decoded payload size on disk.
	SizeBytes int `json:"size_bytes"`

	// Width and Height are the decoded pixel dimensions. Both are zero
	// when the payload is in a format this process cannot decode (e.g.
	// WebP); the file is still written in full.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// SaveBase64 decodes a base64 image payload and writes it to path,
// creating parent directories as needed. Creating a directory that
// already exists is not an error, so concurrent saves into the same
// directory are safe.
func SaveBase64(path, b64 string) (*SavedImage, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write image file: %w", err)
	}

	saved := &SavedImage{
		Path:      path,
		SizeBytes: len(raw),
	}

	// Best-effort dimension probe for the save report.
	if img, err := imaging.Decode(bytes.NewReader(raw)); err == nil {
		bounds := img.Bounds()
		saved.Width = bounds.Dx()
		saved.Height = bounds.Dy()
	}

	return saved, nil
}
