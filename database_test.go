package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// testDatabase wraps a throwaway PostgreSQL instance used to check that
// generated DDL applies cleanly. The tool itself never touches a database;
// the container exists only for this verification.
type testDatabase struct {
	Container testcontainers.Container
	DB        *sql.DB
	ConnStr   string
}

func setupPostgreSQL(ctx context.Context, image string) (*testDatabase, error) {
	container, err := postgres.Run(ctx,
		image,
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &testDatabase{
		Container: container,
		DB:        db,
		ConnStr:   connStr,
	}, nil
}

func (d *testDatabase) Close(ctx context.Context) error {
	if d.DB != nil {
		d.DB.Close()
	}
	if d.Container != nil {
		return d.Container.Terminate(ctx)
	}
	return nil
}

func TestGeneratedDDLAppliesCleanly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping ddl integration test in short mode")
	}

	if !isDockerAvailable() {
		t.Skip("docker not available, skipping ddl integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := LoadConfig()
	db, err := setupPostgreSQL(ctx, cfg.PostgresImage)
	require.NoError(t, err)
	defer func() {
		if err := db.Close(ctx); err != nil {
			t.Logf("failed to cleanup database: %v", err)
		}
	}()

	_, err = db.DB.Exec(`
		create table public.customers (
			id integer,
			email text,
			full_name text
		);
		create table public.orders (
			id integer,
			customer_id integer,
			placed_at timestamp
		);
	`)
	require.NoError(t, err)

	schemaContent := `version: 2

models:
  - name: customers
    primary_key: id
    columns:
      - name: id
        tests:
          - not_null
      - name: email
        tests:
          - not_null
          - unique
      - name: full_name

  - name: orders
    primary_key: id
    columns:
      - name: id
        tests:
          - not_null
      - name: customer_id
        tests:
          - not_null
          - relationships:
              to: ref('customers')
              field: id
      - name: placed_at
`

	tempDir := t.TempDir()
	schemaPath := filepath.Join(tempDir, "schema.yml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(schemaContent), 0644))

	schema, err := LoadSchemaFile(schemaPath)
	require.NoError(t, err)

	tables, err := schema.Tables()
	require.NoError(t, err)

	ddlText, err := GenerateDDL("public", tables)
	require.NoError(t, err)

	_, err = db.DB.Exec(ddlText)
	require.NoError(t, err)

	t.Run("primary_keys_created", func(t *testing.T) {
		var count int
		query := `SELECT count(*) FROM information_schema.table_constraints
			WHERE table_schema = 'public'
			AND table_name = 'customers'
			AND constraint_type = 'PRIMARY KEY'`
		require.NoError(t, db.DB.QueryRow(query).Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("unique_constraint_has_deterministic_name", func(t *testing.T) {
		var constraintType string
		query := `SELECT constraint_type FROM information_schema.table_constraints
			WHERE table_schema = 'public'
			AND constraint_name = 'unique_public_customers_email'`
		require.NoError(t, db.DB.QueryRow(query).Scan(&constraintType))
		assert.Equal(t, "UNIQUE", constraintType)
	})

	t.Run("foreign_key_has_deterministic_name", func(t *testing.T) {
		var constraintType string
		query := `SELECT constraint_type FROM information_schema.table_constraints
			WHERE table_schema = 'public'
			AND constraint_name = 'fk_public_orders_customer_id_customers_id'`
		require.NoError(t, db.DB.QueryRow(query).Scan(&constraintType))
		assert.Equal(t, "FOREIGN KEY", constraintType)
	})

	t.Run("columns_set_not_null", func(t *testing.T) {
		var nullable string
		query := `SELECT is_nullable FROM information_schema.columns
			WHERE table_schema = 'public'
			AND table_name = 'orders'
			AND column_name = 'customer_id'`
		require.NoError(t, db.DB.QueryRow(query).Scan(&nullable))
		assert.Equal(t, "NO", nullable)

		query = `SELECT is_nullable FROM information_schema.columns
			WHERE table_schema = 'public'
			AND table_name = 'customers'
			AND column_name = 'full_name'`
		require.NoError(t, db.DB.QueryRow(query).Scan(&nullable))
		assert.Equal(t, "YES", nullable)
	})
}

func TestTestDatabaseClose(t *testing.T) {
	t.Run("close_nil_database", func(t *testing.T) {
		db := &testDatabase{}
		assert.NoError(t, db.Close(context.Background()))
	})
}
