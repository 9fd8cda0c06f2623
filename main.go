package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	infoMode bool
	mcpMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "dbt2ddl [schema-file] [output-file] [target-schema]",
	Short: "Generate constraint DDL from a dbt schema file",
	Long: `dbt2ddl takes a dbt schema file (schema.yml) and turns the primary_key
declarations and column tests of its models into PostgreSQL ALTER TABLE
statements: primary keys, NOT NULL and UNIQUE constraints for every table
first, followed by foreign keys once all tables have been processed.

Modes:
  generate mode (default): writes the DDL to [output-file], "-" for stdout
  info mode (-i): shows the parsed schema and planned constraints
  mcp mode (--mcp): Run as Model Context Protocol server`,
	Args: func(cmd *cobra.Command, args []string) error {
		if mcpMode {
			return nil
		}
		if infoMode {
			return cobra.ExactArgs(2)(cmd, args)
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	Run: runDbt2DDL,
}

func main() {
	if err := run(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := LoadConfig()
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})
	slog.SetDefault(slog.New(handler))

	if rootCmd.Flags().Lookup("info") == nil {
		rootCmd.Flags().BoolVarP(&infoMode, "info", "i", false, "Show parsed schema and planned constraints instead of writing DDL")
	}
	if rootCmd.Flags().Lookup("mcp") == nil {
		rootCmd.Flags().BoolVar(&mcpMode, "mcp", false, "Run as Model Context Protocol server")
	}

	return rootCmd.Execute()
}

func runDbt2DDL(cmd *cobra.Command, args []string) {
	if mcpMode {
		slog.Info("starting mcp server")
		if err := StartMCPServer(); err != nil {
			slog.Error("failed to start mcp server", "error", err)
			os.Exit(1)
		}
		return
	}

	schemaFile := args[0]
	var outputFile, targetSchema string
	if infoMode {
		targetSchema = args[1]
	} else {
		outputFile = args[1]
		targetSchema = args[2]
	}

	schemaLoader := NewFileSchemaLoader()
	ddlGenerator := NewPostgresDDLGenerator()
	outputWriter := NewFileOutputWriter()

	if err := processSchemaFile(schemaFile, outputFile, targetSchema, schemaLoader, ddlGenerator, outputWriter); err != nil {
		slog.Error("failed to process schema file", "error", err)
		os.Exit(1)
	}
}

func processSchemaFile(schemaFile, outputFile, targetSchema string, schemaLoader SchemaLoader, ddlGenerator DDLGenerator, outputWriter OutputWriter) error {
	slog.Info("processing schema file", "file", schemaFile, "schema", targetSchema)

	if _, err := os.Stat(schemaFile); os.IsNotExist(err) {
		return fmt.Errorf("schema file does not exist: %s", schemaFile)
	}

	slog.Info("parsing schema file")
	schema, err := schemaLoader.LoadSchema(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	tables, err := schema.Tables()
	if err != nil {
		return fmt.Errorf("failed to build schema description: %w", err)
	}

	slog.Info("found models", "count", len(tables))

	if infoMode {
		fmt.Println("\n=== SCHEMA CONSTRAINTS ===")
		fmt.Print(ddlGenerator.FormatInfo(targetSchema, tables))
		return nil
	}

	slog.Info("generating ddl")
	text, err := ddlGenerator.Generate(targetSchema, tables)
	if err != nil {
		return fmt.Errorf("failed to generate ddl: %w", err)
	}

	if err := outputWriter.WriteDDL(outputFile, text); err != nil {
		return fmt.Errorf("failed to write ddl: %w", err)
	}

	slog.Info("ddl written", "file", outputFile, "bytes", len(text))
	return nil
}
