// Package filex contains small helpers for reading local files selected for
// upload and encoding them into the transport representation the record
// store expects.
package filex

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
)

// ReadAsBase64 reads the file at path and returns its base name together
// with the base64-encoded contents.
func ReadAsBase64(path string) (name string, data string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return filepath.Base(path), base64.StdEncoding.EncodeToString(b), nil
}
