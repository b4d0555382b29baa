package asset

import (
	"fmt"
	"os"
)

// Load reads and decodes the asset at path. The format follows the
// file extension.
func Load(path string) (*Asset, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	a, err := Open(data, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return a, nil
}

// Save encodes a in the format matching path's extension and writes it.
func Save(path string, a *Asset) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := a.Encode(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ValidateFile checks the document at path against the schema and the
// format version, then decodes it fully.
func ValidateFile(path string) (Header, error) {
	a, err := Load(path)
	if err != nil {
		return Header{}, err
	}
	return a.Header, nil
}
