package surface

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a JSON or YAML descriptor. source is only used in errors.
func Parse(data []byte, source string) (Descriptor, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	var doc Descriptor
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Descriptor{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return Descriptor{}, fmt.Errorf("surface: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}

	if err := doc.Validate(); err != nil {
		return Descriptor{}, fmt.Errorf("surface: %s: %w", source, err)
	}
	return doc, nil
}

// LoadFile reads and parses a descriptor from disk.
func LoadFile(path string) (Descriptor, error) {
	return NewFetcher().Load(context.Background(), SourceFromFile(path))
}

// LoadFS reads and parses a descriptor from fsys.
func LoadFS(fsys fs.FS, path string) (Descriptor, error) {
	if fsys == nil {
		return Descriptor{}, fmt.Errorf("surface: filesystem is nil")
	}
	return NewFetcher(WithFileSystem(fsys)).Load(context.Background(), SourceFromFS(path))
}

// IsDescriptorFile reports whether path has a supported extension.
func IsDescriptorFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
