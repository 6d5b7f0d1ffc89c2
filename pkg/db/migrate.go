/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/carverauto/seatmonitor/pkg/logger"
)

const migrationsTable = "seat_schema_migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

type migration struct {
	version    string
	name       string
	statements []string
}

func loadMigrations() ([]migration, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	filenames := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		filenames = append(filenames, entry.Name())
	}

	sort.Strings(filenames)

	out := make([]migration, 0, len(filenames))

	for _, name := range filenames {
		content, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		out = append(out, migration{
			version:    extractVersion(name),
			name:       name,
			statements: splitSQLStatements(string(content)),
		})
	}

	return out, nil
}

// runMigrations applies embedded migrations not yet recorded. With reapply
// set every migration runs again; they are all written to be idempotent.
func runMigrations(ctx context.Context, conn *sql.Conn, log logger.Logger, reapply bool) error {
	if _, err := conn.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		version     TEXT PRIMARY KEY,
		applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, migrationsTable)); err != nil {
		return fmt.Errorf("migrations: create tracking table: %w", err)
	}

	applied := make(map[string]struct{})

	rows, err := conn.QueryContext(ctx, fmt.Sprintf(`SELECT version FROM %s`, migrationsTable))
	if err != nil {
		return fmt.Errorf("migrations: list applied versions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("migrations: scan applied version: %w", err)
		}

		applied[version] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("migrations: iterate applied versions: %w", err)
	}

	migrations, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	for _, m := range migrations {
		if _, ok := applied[m.version]; ok && !reapply {
			continue
		}

		log.Info().Str("migration", m.name).Msg("Applying migration")

		for idx, stmt := range m.statements {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrations: statement %d in %s failed: %w", idx+1, m.name, err)
			}
		}

		if _, err := conn.ExecContext(ctx, fmt.Sprintf(
			`INSERT INTO %s (version) VALUES ($1) ON CONFLICT (version) DO NOTHING`, migrationsTable), m.version); err != nil {
			return fmt.Errorf("migrations: record %s: %w", m.name, err)
		}
	}

	return nil
}

// splitSQLStatements splits a migration on semicolons outside quotes and
// drops "--" comment lines.
func splitSQLStatements(content string) []string {
	var (
		statements []string
		current    strings.Builder
		inQuote    bool
	)

	for _, line := range strings.Split(content, "\n") {
		if !inQuote && strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}

		for i := 0; i < len(line); i++ {
			ch := line[i]

			switch {
			case ch == '\'':
				inQuote = !inQuote
				current.WriteByte(ch)
			case ch == ';' && !inQuote:
				if stmt := strings.TrimSpace(current.String()); stmt != "" {
					statements = append(statements, stmt)
				}

				current.Reset()
			default:
				current.WriteByte(ch)
			}
		}

		current.WriteByte('\n')
	}

	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}

	return statements
}

func extractVersion(filename string) string {
	version, _, _ := strings.Cut(filename, "_")
	return version
}
