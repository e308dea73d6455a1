// Package snapshot writes captured frames to disk.
package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Save encodes img as <dir>/<name>.<format> and returns the path written.
// Only png is supported. An existing file is overwritten.
func Save(dir, name, format string, img image.Image) (string, error) {
	format = strings.ToLower(format)
	if format != "png" {
		return "", fmt.Errorf("unsupported image format %q", format)
	}
	if name == "" {
		return "", fmt.Errorf("empty file name")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode %s: %w", format, err)
	}

	path := filepath.Join(dir, name+"."+format)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return path, nil
}
