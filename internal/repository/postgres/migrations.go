package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type migration struct {
	name string
	sql  string // {{users}}, {{folders}} and {{documents}} are replaced with prefixed names
}

var migrations = []migration{
	{
		name: "create users table",
		sql: `
			CREATE TABLE IF NOT EXISTS {{users}} (
				id BIGSERIAL PRIMARY KEY,
				username VARCHAR(100) NOT NULL,
				email VARCHAR(255) NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				role VARCHAR(16) NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`,
	},
	{
		name: "create folders table",
		sql: `
			CREATE TABLE IF NOT EXISTS {{folders}} (
				id BIGSERIAL PRIMARY KEY,
				parent_id BIGINT REFERENCES {{folders}}(id) ON DELETE CASCADE,
				name VARCHAR(255) NOT NULL,
				path TEXT NOT NULL,
				created_by BIGINT REFERENCES {{users}}(id) ON DELETE SET NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_{{folders}}_parent ON {{folders}}(parent_id);
			CREATE INDEX IF NOT EXISTS idx_{{folders}}_path ON {{folders}}(path);
		`,
	},
	{
		name: "create documents table",
		sql: `
			CREATE TABLE IF NOT EXISTS {{documents}} (
				id BIGSERIAL PRIMARY KEY,
				folder_id BIGINT NOT NULL REFERENCES {{folders}}(id) ON DELETE CASCADE,
				name VARCHAR(255) NOT NULL,
				file_path TEXT NOT NULL,
				file_type VARCHAR(255) NOT NULL DEFAULT '',
				size BIGINT NOT NULL CHECK (size >= 0),
				created_by BIGINT REFERENCES {{users}}(id) ON DELETE SET NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_{{documents}}_folder ON {{documents}}(folder_id);
		`,
	},
}

// renderSQL substitutes prefixed table names into a migration body
func (t *TableNames) renderSQL(sql string) string {
	return strings.NewReplacer(
		"{{users}}", t.Users,
		"{{folders}}", t.Folders,
		"{{documents}}", t.Documents,
	).Replace(sql)
}

func (t *TableNames) migrationsTable() string {
	return strings.TrimSuffix(t.Users, "users") + "schema_migrations"
}

// Migrate applies pending migrations in order. Each migration runs in its own
// transaction together with its bookkeeping row.
func Migrate(ctx context.Context, pool *pgxpool.Pool, tables *TableNames, logger *slog.Logger) error {
	bookkeeping := tables.migrationsTable()
	if _, err := pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`, bookkeeping)); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	for _, m := range migrations {
		var applied bool
		err := pool.QueryRow(ctx,
			fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE name = $1)`, bookkeeping),
			m.name,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check migration %q: %w", m.name, err)
		}
		if applied {
			continue
		}

		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, tables.renderSQL(m.sql)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1)`, bookkeeping), m.name)
			return err
		})
		if err != nil {
			return fmt.Errorf("apply migration %q: %w", m.name, err)
		}
		logger.Info("migration applied", "name", m.name)
	}

	return nil
}

// DropAll drops every table owned by the service for the given prefix.
func DropAll(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	_, err := pool.Exec(ctx, fmt.Sprintf(`
		DROP TABLE IF EXISTS %s CASCADE;
		DROP TABLE IF EXISTS %s CASCADE;
		DROP TABLE IF EXISTS %s CASCADE;
		DROP TABLE IF EXISTS %s CASCADE;
	`, tables.Documents, tables.Folders, tables.Users, tables.migrationsTable()))
	if err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return nil
}
