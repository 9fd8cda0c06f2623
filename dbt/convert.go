package dbt

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/soply/dbt-schema-to-ddl/ddl"
)

var refPattern = regexp.MustCompile(`^ref\(\s*'([^']+)'\s*\)$`)

// ParseRef extracts the model name from a dbt ref() expression such as
// ref('customers'). Other target spellings (source(), raw relation names,
// two-argument package refs) are rejected.
func ParseRef(to string) (string, error) {
	match := refPattern.FindStringSubmatch(strings.TrimSpace(to))
	if match == nil {
		return "", fmt.Errorf("unsupported relationships target %q: expected ref('<model>')", to)
	}
	return match[1], nil
}

// Tables converts the parsed models into the schema description consumed by
// the DDL generator. Model order, column order and test order are preserved,
// so generation stays byte-stable. Tests other than not_null, unique and
// relationships are ignored.
func (f *SchemaFile) Tables() ([]ddl.Table, error) {
	tables := make([]ddl.Table, 0, len(f.Models))

	for _, model := range f.Models {
		table := ddl.Table{
			Name:        model.Name,
			Description: model.Description,
			PrimaryKey:  splitPrimaryKey(model.PrimaryKey),
		}

		for _, col := range model.Columns {
			column := ddl.Column{Name: col.Name}
			for _, test := range col.Tests {
				switch test.Name {
				case "not_null":
					column.NotNull = true
				case "unique":
					column.Unique = true
				case "relationships":
					if test.Relationships == nil {
						return nil, fmt.Errorf("model %s: column %s: relationships test has no arguments", model.Name, col.Name)
					}
					refTable, err := ParseRef(test.Relationships.To)
					if err != nil {
						return nil, fmt.Errorf("model %s: column %s: %w", model.Name, col.Name, err)
					}
					if test.Relationships.Field == "" {
						return nil, fmt.Errorf("model %s: column %s: relationships test has no field", model.Name, col.Name)
					}
					table.ForeignKeys = append(table.ForeignKeys, ddl.ForeignKey{
						Column:    col.Name,
						RefTable:  refTable,
						RefColumn: test.Relationships.Field,
					})
				default:
					slog.Debug("ignoring unsupported test", "model", model.Name, "column", col.Name, "test", test.Name)
				}
			}
			table.Columns = append(table.Columns, column)
		}

		tables = append(tables, table)
	}

	return tables, nil
}

// splitPrimaryKey turns the raw primary_key value into an ordered column
// list. Composite keys are comma-separated in the file.
func splitPrimaryKey(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	columns := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			columns = append(columns, part)
		}
	}
	return columns
}
