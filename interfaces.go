package main

import (
	"github.com/soply/dbt-schema-to-ddl/dbt"
	"github.com/soply/dbt-schema-to-ddl/ddl"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// SchemaLoader handles reading dbt schema files
type SchemaLoader interface {
	// LoadSchema reads and parses the dbt schema file at path
	LoadSchema(path string) (*dbt.SchemaFile, error)
}

// DDLGenerator handles turning a schema description into DDL text
type DDLGenerator interface {
	// Generate renders the two-phase constraint DDL for the target schema
	Generate(schemaName string, tables []ddl.Table) (string, error)
	// FormatInfo renders the schema description as human-readable text
	FormatInfo(schemaName string, tables []ddl.Table) string
}

// OutputWriter handles persisting generated DDL text
type OutputWriter interface {
	// WriteDDL writes the text to path, "-" selects stdout
	WriteDDL(path, text string) error
}
