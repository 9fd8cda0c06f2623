package main

import (
	"github.com/soply/dbt-schema-to-ddl/dbt"
	"github.com/soply/dbt-schema-to-ddl/ddl"
)


func LoadSchemaFile(path string) (*dbt.SchemaFile, error) {
	return dbt.Load(path)
}


func GenerateDDL(schemaName string, tables []ddl.Table) (string, error) {
	return ddl.Generate(schemaName, tables)
}

func FormatSchemaInfo(schemaName string, tables []ddl.Table) string {
	return ddl.FormatSchemaInfo(schemaName, tables)
}
