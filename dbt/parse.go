package dbt

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a dbt schema file from raw bytes and checks its structure.
// Models and columns keep the order they have in the file.
func Parse(data []byte) (*SchemaFile, error) {
	var file SchemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode schema file: %w", err)
	}

	if file.Models == nil {
		return nil, fmt.Errorf("schema file has no models key")
	}
	for i, model := range file.Models {
		if model.Name == "" {
			return nil, fmt.Errorf("model %d has no name", i)
		}
		for j, col := range model.Columns {
			if col.Name == "" {
				return nil, fmt.Errorf("model %s: column %d has no name", model.Name, j)
			}
		}
	}

	slog.Debug("parsed dbt schema file", "version", file.Version, "models", len(file.Models))
	return &file, nil
}

// Load reads and parses the dbt schema file at path.
func Load(path string) (*SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file, nil
}
