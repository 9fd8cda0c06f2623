package ddl

import (
	"fmt"
	"log/slog"
	"strings"
)

// Banner text, trailing spaces included, is part of the stable output format.
const (
	constraintsBanner = "-- Adding primary_key, non_null, uniqueness ddl statements \n\n"
	foreignKeysBanner = "-- Adding foreign key ddl statements \n\n"
)

// Generate renders the constraint DDL for all tables in two phases: primary
// keys, NOT NULL and uniqueness first, then foreign keys once every table has
// been processed. Tables are emitted in input order and the output is
// byte-stable for a given input. Validation runs before anything is rendered,
// so no partial text is ever returned.
func Generate(schema string, tables []Table) (string, error) {
	if err := Validate(schema, tables); err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(constraintsBanner)
	for _, table := range tables {
		sb.WriteString(fmt.Sprintf("-- Processing table %s\n\n", table.Name))
		if len(table.PrimaryKey) > 0 {
			sb.WriteString(primaryKeyStatement(schema, table) + "\n")
		}
		for _, col := range table.Columns {
			if col.NotNull {
				sb.WriteString(notNullStatement(schema, table.Name, col.Name) + "\n")
			}
		}
		for _, col := range table.Columns {
			if col.Unique {
				sb.WriteString(uniqueStatement(schema, table.Name, col.Name) + "\n")
			}
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString(foreignKeysBanner)
	for _, table := range tables {
		if len(table.ForeignKeys) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("-- Processing table %s\n\n", table.Name))
		for _, fk := range table.ForeignKeys {
			sb.WriteString(foreignKeyStatement(schema, table.Name, fk) + "\n")
		}
		sb.WriteString("\n\n")
	}

	slog.Debug("generated ddl", "schema", schema, "tables", len(tables))
	return sb.String(), nil
}

func primaryKeyStatement(schema string, table Table) string {
	return fmt.Sprintf("ALTER TABLE %s.%s ADD PRIMARY KEY (%s);",
		schema, table.Name, strings.Join(table.PrimaryKey, ", "))
}

func notNullStatement(schema, table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s.%s ALTER COLUMN %s SET NOT NULL;",
		schema, table, column)
}

func uniqueStatement(schema, table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s.%s ADD CONSTRAINT %s UNIQUE (%s);",
		schema, table, UniqueConstraintName(schema, table, column), column)
}

func foreignKeyStatement(schema, table string, fk ForeignKey) string {
	return fmt.Sprintf("ALTER TABLE %s.%s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s.%s (%s);",
		schema, table, ForeignKeyName(schema, table, fk.Column, fk.RefTable, fk.RefColumn),
		fk.Column, schema, fk.RefTable, fk.RefColumn)
}

// FormatSchemaInfo formats the schema description and the constraints that
// generation would produce as human-readable text.
func FormatSchemaInfo(schema string, tables []Table) string {
	var sb strings.Builder

	for _, table := range tables {
		if table.Description != "" {
			sb.WriteString(fmt.Sprintf("Table: %s.%s (%s)\n", schema, table.Name, table.Description))
		} else {
			sb.WriteString(fmt.Sprintf("Table: %s.%s\n", schema, table.Name))
		}

		sb.WriteString("Columns:\n")
		for _, col := range table.Columns {
			nullable := "NULL"
			if col.NotNull {
				nullable = "NOT NULL"
			}
			unique := ""
			if col.Unique {
				unique = " UNIQUE"
			}
			pk := ""
			if table.InPrimaryKey(col.Name) {
				pk = " (PRIMARY KEY)"
			}
			sb.WriteString(fmt.Sprintf("  - %s %s%s%s\n", col.Name, nullable, unique, pk))
		}

		if len(table.ForeignKeys) > 0 {
			sb.WriteString("Foreign keys:\n")
			for _, fk := range table.ForeignKeys {
				sb.WriteString(fmt.Sprintf("  - %s on (%s) -> %s.%s (%s)\n",
					ForeignKeyName(schema, table.Name, fk.Column, fk.RefTable, fk.RefColumn),
					fk.Column, schema, fk.RefTable, fk.RefColumn))
			}
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
