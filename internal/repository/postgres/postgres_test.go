package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestNewTableNames(t *testing.T) {
	tables := NewTableNames("test_")
	if tables.Users != "test_users" || tables.Folders != "test_folders" || tables.Documents != "test_documents" {
		t.Errorf("tables = %+v", tables)
	}
	if got := tables.migrationsTable(); got != "test_schema_migrations" {
		t.Errorf("migrationsTable() = %q", got)
	}
	if got := NewTableNames("").migrationsTable(); got != "schema_migrations" {
		t.Errorf("unprefixed migrationsTable() = %q", got)
	}
}

func TestRenderSQL_ReplacesAllPlaceholders(t *testing.T) {
	tables := NewTableNames("dev_")
	for _, m := range migrations {
		rendered := tables.renderSQL(m.sql)
		if strings.Contains(rendered, "{{") {
			t.Errorf("migration %q has unreplaced placeholders:\n%s", m.name, rendered)
		}
	}

	folders := tables.renderSQL(migrations[1].sql)
	if !strings.Contains(folders, "REFERENCES dev_folders(id) ON DELETE CASCADE") {
		t.Errorf("folders migration should cascade from parent:\n%s", folders)
	}
	if !strings.Contains(folders, "REFERENCES dev_users(id) ON DELETE SET NULL") {
		t.Errorf("folders migration should reference users:\n%s", folders)
	}
}

func TestPgErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		duplicate  bool
		foreignKey bool
		noRows     bool
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, true, false, false},
		{"wrapped fk violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), false, true, false},
		{"no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), false, false, true},
		{"other", errors.New("connection reset"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPgDuplicateError(tt.err); got != tt.duplicate {
				t.Errorf("IsPgDuplicateError() = %v, want %v", got, tt.duplicate)
			}
			if got := IsPgForeignKeyError(tt.err); got != tt.foreignKey {
				t.Errorf("IsPgForeignKeyError() = %v, want %v", got, tt.foreignKey)
			}
			if got := IsPgNoRowsError(tt.err); got != tt.noRows {
				t.Errorf("IsPgNoRowsError() = %v, want %v", got, tt.noRows)
			}
		})
	}
}

// TestMigrate_Integration runs against TEST_DATABASE_URL when set
func TestMigrate_Integration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := CreateConnectionPool(ctx, url)
	if err != nil {
		t.Fatalf("CreateConnectionPool() error = %v", err)
	}
	defer pool.Close()

	tables := NewTableNames("itest_")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := DropAll(ctx, pool, tables); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = DropAll(context.Background(), pool, tables) })

	for i := 0; i < 2; i++ {
		if err := Migrate(ctx, pool, tables, logger); err != nil {
			t.Fatalf("Migrate() run %d error = %v", i+1, err)
		}
	}

	var applied int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM "+tables.migrationsTable()).Scan(&applied); err != nil {
		t.Fatal(err)
	}
	if applied != len(migrations) {
		t.Errorf("applied migrations = %d, want %d", applied, len(migrations))
	}
}
