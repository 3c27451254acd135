package tree

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a tree file.
type Format string

const (
	// FormatYAML encodes trees as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON encodes trees as indented JSON.
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from the file extension.
// Anything that is not .json is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads a tree from path.
func Load(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return List{}, err
	}
	return Decode(data, FormatFromPath(path))
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (List, error) {
	var l List
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &l); err != nil {
			return List{}, fmt.Errorf("failed to parse tree: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &l); err != nil {
			return List{}, fmt.Errorf("failed to parse tree: %w", err)
		}
	}
	return l, nil
}

// Encode serializes l in the given format.
func Encode(l List, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tree: %w", err)
		}
		return append(data, '\n'), nil
	default:
		data, err := yaml.Marshal(l)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tree: %w", err)
		}
		return data, nil
	}
}

// Save writes l to path, creating parent directories as needed.
// The file is written to a temporary sibling first and renamed into place.
func Save(path string, l List) error {
	data, err := Encode(l, FormatFromPath(path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write tree: %w", err)
	}
	return nil
}
