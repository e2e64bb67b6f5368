// Package textenc resolves the configured text encoding and wraps file I/O
// with the matching decode/encode transforms. Source documents and rendered
// pages always pass through here so the encoding setting applies uniformly.
package textenc

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Resolve maps an encoding name (IANA/WHATWG label, e.g. "utf-8",
// "windows-1252") to a transform. UTF-8 resolves to the identity transform.
func Resolve(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return enc, nil
}

// ReadFile reads a file and decodes it from enc into UTF-8.
func ReadFile(path string, enc encoding.Encoding) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return decoded, nil
}

// WriteFile encodes UTF-8 data into enc and writes it as a single contiguous
// replace. Existing content is truncated, never appended to in place.
func WriteFile(path string, data []byte, enc encoding.Encoding) error {
	encoded, err := enc.NewEncoder().Bytes(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, encoded, 0o644)
}
