package dbt

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SchemaFile is the top level of a dbt schema file (schema.yml).
type SchemaFile struct {
	Version int     `yaml:"version"`
	Models  []Model `yaml:"models"`
}

// Model is one dbt model, a table in DDL terms. PrimaryKey holds the raw
// primary_key value, a single column name or a comma-separated list for
// composite keys.
type Model struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	PrimaryKey  string   `yaml:"primary_key"`
	Columns     []Column `yaml:"columns"`
}

// Column is one entry of a model's columns list.
type Column struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Tests       []Test `yaml:"tests"`
}

// Relationship is the argument block of a dbt relationships test.
type Relationship struct {
	To    string `yaml:"to"`
	Field string `yaml:"field"`
}

// Test is a single entry of a column's tests list. dbt spells a test either
// as a bare name or as a one-key mapping from name to arguments; both forms
// decode into the same struct. Relationships is nil for every other test.
type Test struct {
	Name          string
	Relationships *Relationship
}

func (t *Test) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		t.Name = value.Value
		return nil
	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: test entry must have exactly one key", value.Line)
		}
		t.Name = value.Content[0].Value
		if t.Name == "relationships" {
			var rel Relationship
			if err := value.Content[1].Decode(&rel); err != nil {
				return fmt.Errorf("line %d: invalid relationships test: %w", value.Line, err)
			}
			t.Relationships = &rel
		}
		return nil
	default:
		return fmt.Errorf("line %d: test entry must be a name or a one-key mapping", value.Line)
	}
}
