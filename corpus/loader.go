// Package corpus loads fixture files: JSON arrays of test cases,
// optionally brotli-compressed.
package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"

	"parintest/types"
)

// Load reads one fixture file. Files with a ".br" suffix are treated as
// brotli-compressed JSON.
func Load(path string) ([]types.Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".br") {
		r = brotli.NewReader(f)
	}

	var fixtures []types.Fixture
	if err := json.NewDecoder(r).Decode(&fixtures); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return fixtures, nil
}
