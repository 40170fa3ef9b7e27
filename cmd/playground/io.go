package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"

	intImage "github.com/gogpu/playground/internal/image"
	"github.com/gogpu/playground/remap"
)

// readSource reads a PNG file or a text file holding a data URI and returns
// the source as a data URI.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if filetype.IsImage(data) {
		return remap.DataURI(data), nil
	}
	return string(data), nil
}

// writeURI decodes a PNG data URI and saves the image to path. A payload
// that does not decode as a PNG is rejected before anything is written.
func writeURI(path, uri string) error {
	data, err := remap.ParseDataURI(uri)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	buf, err := intImage.DecodePNGBytes(data)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return buf.SavePNG(path)
}
