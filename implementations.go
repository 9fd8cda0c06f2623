package main

import (
	"fmt"
	"os"

	"github.com/soply/dbt-schema-to-ddl/dbt"
	"github.com/soply/dbt-schema-to-ddl/ddl"
)

type FileSchemaLoader struct{}

func NewFileSchemaLoader() SchemaLoader {
	return &FileSchemaLoader{}
}

func (l *FileSchemaLoader) LoadSchema(path string) (*dbt.SchemaFile, error) {
	return LoadSchemaFile(path)
}

type PostgresDDLGenerator struct{}

func NewPostgresDDLGenerator() DDLGenerator {
	return &PostgresDDLGenerator{}
}

func (g *PostgresDDLGenerator) Generate(schemaName string, tables []ddl.Table) (string, error) {
	return GenerateDDL(schemaName, tables)
}

func (g *PostgresDDLGenerator) FormatInfo(schemaName string, tables []ddl.Table) string {
	return FormatSchemaInfo(schemaName, tables)
}

type FileOutputWriter struct{}

func NewFileOutputWriter() OutputWriter {
	return &FileOutputWriter{}
}

func (w *FileOutputWriter) WriteDDL(path, text string) error {
	if path == "-" {
		if _, err := os.Stdout.WriteString(text); err != nil {
			return fmt.Errorf("failed to write ddl to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write ddl file %s: %w", path, err)
	}
	return nil
}
