package ddl

import "fmt"

// Table describes one table of the target schema: its columns in declaration
// order, an optional primary key, and its outgoing foreign keys.
type Table struct {
	Name        string
	Description string
	PrimaryKey  []string
	Columns     []Column
	ForeignKeys []ForeignKey
}

// Column describes a single column and the constraints requested for it.
type Column struct {
	Name    string
	NotNull bool
	Unique  bool
}

// ForeignKey describes a single-column reference to another table in the
// same schema.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// HasColumn reports whether the table declares a column with the given name.
func (t Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col.Name == name {
			return true
		}
	}
	return false
}

// InPrimaryKey reports whether the column is part of the table's primary key.
func (t Table) InPrimaryKey(column string) bool {
	for _, pk := range t.PrimaryKey {
		if pk == column {
			return true
		}
	}
	return false
}

// UniqueConstraintName returns the deterministic name used for a
// single-column uniqueness constraint.
func UniqueConstraintName(schema, table, column string) string {
	return fmt.Sprintf("unique_%s_%s_%s", schema, table, column)
}

// ForeignKeyName returns the deterministic name used for a single-column
// foreign key constraint.
func ForeignKeyName(schema, table, column, refTable, refColumn string) string {
	return fmt.Sprintf("fk_%s_%s_%s_%s_%s", schema, table, column, refTable, refColumn)
}
