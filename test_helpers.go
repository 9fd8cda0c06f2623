package main

import (
	"github.com/soply/dbt-schema-to-ddl/dbt"
	"github.com/soply/dbt-schema-to-ddl/ddl"
)

// MockSchemaLoader is a mock implementation of SchemaLoader for testing
type MockSchemaLoader struct {
	LoadSchemaFunc func(path string) (*dbt.SchemaFile, error)

	// Track calls for verification
	LoadSchemaCalled bool
}

func (m *MockSchemaLoader) LoadSchema(path string) (*dbt.SchemaFile, error) {
	m.LoadSchemaCalled = true
	if m.LoadSchemaFunc != nil {
		return m.LoadSchemaFunc(path)
	}
	return &dbt.SchemaFile{Version: 2, Models: []dbt.Model{}}, nil
}

// MockDDLGenerator is a mock implementation of DDLGenerator for testing
type MockDDLGenerator struct {
	GenerateFunc   func(schemaName string, tables []ddl.Table) (string, error)
	FormatInfoFunc func(schemaName string, tables []ddl.Table) string

	// Track calls for verification
	GenerateCalled   bool
	FormatInfoCalled bool
}

func (m *MockDDLGenerator) Generate(schemaName string, tables []ddl.Table) (string, error) {
	m.GenerateCalled = true
	if m.GenerateFunc != nil {
		return m.GenerateFunc(schemaName, tables)
	}
	return "", nil
}

func (m *MockDDLGenerator) FormatInfo(schemaName string, tables []ddl.Table) string {
	m.FormatInfoCalled = true
	if m.FormatInfoFunc != nil {
		return m.FormatInfoFunc(schemaName, tables)
	}
	return ""
}

// MockOutputWriter is a mock implementation of OutputWriter for testing
type MockOutputWriter struct {
	WriteDDLFunc func(path, text string) error

	// Track calls for verification
	WriteDDLCalled bool
	WrittenPath    string
	WrittenText    string
}

func (m *MockOutputWriter) WriteDDL(path, text string) error {
	m.WriteDDLCalled = true
	m.WrittenPath = path
	m.WrittenText = text
	if m.WriteDDLFunc != nil {
		return m.WriteDDLFunc(path, text)
	}
	return nil
}
