package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/soply/dbt-schema-to-ddl/ddl"
)

// StartMCPServer starts the MCP server for DDL generation
func StartMCPServer() error {
	s := server.NewMCPServer(
		"dbt2ddl",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	generateDDLTool := mcp.NewTool("generate_ddl",
		mcp.WithDescription("Generate constraint DDL statements from a dbt schema file"),
		mcp.WithString("schema_file",
			mcp.Required(),
			mcp.Description("Path to the dbt schema file (schema.yml)"),
		),
		mcp.WithString("target_schema",
			mcp.Required(),
			mcp.Description("Database schema the ALTER TABLE statements target"),
		),
	)

	s.AddTool(generateDDLTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGenerateDDL(ctx, request)
	})

	validateSchemaTool := mcp.NewTool("validate_schema",
		mcp.WithDescription("Validate a dbt schema file without generating DDL"),
		mcp.WithString("schema_file",
			mcp.Required(),
			mcp.Description("Path to the dbt schema file (schema.yml)"),
		),
		mcp.WithString("target_schema",
			mcp.Description("Schema used for generated constraint names (default: public)"),
		),
	)

	s.AddTool(validateSchemaTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleValidateSchema(ctx, request)
	})

	slog.Info("starting dbt2ddl mcp server")
	return server.ServeStdio(s)
}

// handleGenerateDDL processes the generate_ddl tool request
func handleGenerateDDL(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	schemaFile, err := request.RequireString("schema_file")
	if err != nil {
		return mcp.NewToolResultError("schema_file parameter is required"), nil
	}

	targetSchema, err := request.RequireString("target_schema")
	if err != nil {
		return mcp.NewToolResultError("target_schema parameter is required"), nil
	}

	output, err := generateDDLCore(schemaFile, targetSchema)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("ddl generated successfully:\n\n%s", output)), nil
}

// generateDDLCore contains the core logic for DDL generation, separated for testing
func generateDDLCore(schemaFile, targetSchema string) (string, error) {
	schemaLoader := NewFileSchemaLoader()
	ddlGenerator := NewPostgresDDLGenerator()

	return generateDDLCoreWithDeps(schemaFile, targetSchema, schemaLoader, ddlGenerator)
}

// generateDDLCoreWithDeps is the testable version with dependency injection
func generateDDLCoreWithDeps(schemaFile, targetSchema string, schemaLoader SchemaLoader, ddlGenerator DDLGenerator) (string, error) {
	if _, err := os.Stat(schemaFile); os.IsNotExist(err) {
		return "", fmt.Errorf("schema file does not exist: %s", schemaFile)
	}

	schema, err := schemaLoader.LoadSchema(schemaFile)
	if err != nil {
		return "", fmt.Errorf("failed to load schema: %v", err)
	}

	tables, err := schema.Tables()
	if err != nil {
		return "", fmt.Errorf("failed to build schema description: %v", err)
	}

	return ddlGenerator.Generate(targetSchema, tables)
}

// handleValidateSchema processes the validate_schema tool request
func handleValidateSchema(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	schemaFile, err := request.RequireString("schema_file")
	if err != nil {
		return mcp.NewToolResultError("schema_file parameter is required"), nil
	}

	targetSchema := request.GetString("target_schema", "public")

	output, err := validateSchemaCore(schemaFile, targetSchema)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("schema validation completed:\n\n%s", output)), nil
}

// validateSchemaCore contains the core logic for schema validation, separated for testing
func validateSchemaCore(schemaFile, targetSchema string) (string, error) {
	if _, err := os.Stat(schemaFile); os.IsNotExist(err) {
		return "", fmt.Errorf("schema file does not exist: %s", schemaFile)
	}

	schema, err := LoadSchemaFile(schemaFile)
	if err != nil {
		return "", fmt.Errorf("failed to load schema: %v", err)
	}

	tables, err := schema.Tables()
	if err != nil {
		return "", fmt.Errorf("failed to build schema description: %v", err)
	}

	result := map[string]interface{}{
		"valid":         true,
		"target_schema": targetSchema,
		"model_count":   len(tables),
		"models":        make([]map[string]interface{}, len(tables)),
	}

	if err := ddl.Validate(targetSchema, tables); err != nil {
		result["valid"] = false
		result["error"] = err.Error()
	}

	for i, table := range tables {
		notNullCount, uniqueCount := 0, 0
		for _, col := range table.Columns {
			if col.NotNull {
				notNullCount++
			}
			if col.Unique {
				uniqueCount++
			}
		}

		modelInfo := map[string]interface{}{
			"name":              table.Name,
			"column_count":      len(table.Columns),
			"has_primary_key":   len(table.PrimaryKey) > 0,
			"not_null_count":    notNullCount,
			"unique_count":      uniqueCount,
			"foreign_key_count": len(table.ForeignKeys),
		}
		result["models"].([]map[string]interface{})[i] = modelInfo
	}

	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	return string(jsonOutput), nil
}
