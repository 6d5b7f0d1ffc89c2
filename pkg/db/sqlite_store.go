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
	"fmt"
	"strings"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS mappings (
    monitor_sn TEXT PRIMARY KEY,
    vendor_id  TEXT,
    product_id TEXT,
    seat_id    TEXT,
    created_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS live_status (
    seat_id        TEXT PRIMARY KEY,
    user_name      TEXT,
    host_name      TEXT,
    last_heartbeat TIMESTAMP,
    machine_serial TEXT
);
`

// Columns added after the first release; applied in place to older files.
var sqliteAddedColumns = []struct{ table, column, decl string }{
	{presenceTable, "machine_serial", "TEXT"},
}

const (
	sqliteLookupSeat = `SELECT seat_id FROM mappings WHERE monitor_sn = ?`

	sqliteBindSeat = `INSERT INTO mappings (monitor_sn, vendor_id, product_id, seat_id, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(monitor_sn) DO UPDATE SET
    vendor_id  = excluded.vendor_id,
    product_id = excluded.product_id,
    created_at = CASE WHEN mappings.seat_id = excluded.seat_id
                      THEN mappings.created_at ELSE excluded.created_at END,
    seat_id    = excluded.seat_id`

	sqliteListBindings = `SELECT monitor_sn, vendor_id, product_id, seat_id, created_at
FROM mappings ORDER BY seat_id, monitor_sn`

	sqliteReportPresence = `INSERT INTO live_status (seat_id, user_name, host_name, last_heartbeat, machine_serial)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(seat_id) DO UPDATE SET
    user_name      = excluded.user_name,
    host_name      = excluded.host_name,
    last_heartbeat = excluded.last_heartbeat,
    machine_serial = excluded.machine_serial`

	sqliteGetPresence = `SELECT seat_id, user_name, host_name, last_heartbeat, machine_serial
FROM live_status WHERE seat_id = ?`

	sqliteListPresence = `SELECT seat_id, user_name, host_name, last_heartbeat, machine_serial
FROM live_status ORDER BY seat_id`
)

// SQLiteStore is the file-backed Store used by single-node deployments.
type SQLiteStore struct {
	pool *sqlitePool
	log  logger.Logger
}

// NewSQLiteStore opens (creating if needed) the database file at path.
func NewSQLiteStore(path string, poolSize int, log logger.Logger) (*SQLiteStore, error) {
	pool, err := openSQLitePool(path, poolSize, log)
	if err != nil {
		return nil, err
	}

	return &SQLiteStore{pool: pool, log: log}, nil
}

func (s *SQLiteStore) Close() error {
	return s.pool.Close()
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	return s.ensureSchema(conn)
}

func (s *SQLiteStore) ensureSchema(conn *sqlite.Conn) error {
	if err := sqlitex.ExecuteScript(conn, sqliteSchema, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	for _, c := range sqliteAddedColumns {
		if err := ensureSQLiteColumn(conn, c.table, c.column, c.decl); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToInit, err)
		}
	}

	return nil
}

func ensureSQLiteColumn(conn *sqlite.Conn, table, column, decl string) error {
	exists := false

	err := sqlitex.ExecuteTransient(conn, fmt.Sprintf("PRAGMA table_info(%s)", table), &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			if stmt.GetText("name") == column {
				exists = true
			}

			return nil
		},
	})
	if err != nil || exists {
		return err
	}

	return sqlitex.ExecuteTransient(conn, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, decl), nil)
}

// withConn runs fn on a pooled connection. If fn fails because a table is
// missing, the schema is recreated once and fn is retried.
func (s *SQLiteStore) withConn(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	err = fn(conn)
	if err == nil || !isSQLiteMissingTable(err) {
		return err
	}

	s.log.Warn().Err(err).Msg("Seat tables missing, recreating schema")

	if schemaErr := s.ensureSchema(conn); schemaErr != nil {
		return fmt.Errorf("%w: %w", ErrSchemaMissing, schemaErr)
	}

	return fn(conn)
}

func isSQLiteMissingTable(err error) bool {
	return strings.Contains(err.Error(), "no such table") || strings.Contains(err.Error(), "no such column")
}

func (s *SQLiteStore) LookupSeat(ctx context.Context, monitorSN string) (string, bool, error) {
	var (
		seatID string
		found  bool
	)

	err := s.withConn(ctx, func(conn *sqlite.Conn) error {
		seatID, found = "", false

		return sqlitex.Execute(conn, sqliteLookupSeat, &sqlitex.ExecOptions{
			Args: []any{monitorSN},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				seatID = stmt.ColumnText(0)
				found = true

				return nil
			},
		})
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: lookup seat: %w", ErrFailedToQuery, err)
	}

	return seatID, found, nil
}

func (s *SQLiteStore) BindSeat(ctx context.Context, b *models.Binding) error {
	if err := validateBinding(b); err != nil {
		return err
	}

	err := s.withConn(ctx, func(conn *sqlite.Conn) error {
		return sqlitex.Execute(conn, sqliteBindSeat, &sqlitex.ExecOptions{
			Args: []any{b.MonitorSN, b.VendorID, b.ProductID, b.SeatID, formatTimestamp(b.CreatedAt)},
		})
	})
	if err != nil {
		return fmt.Errorf("%w: bind seat: %w", ErrFailedToInsert, err)
	}

	return nil
}

func (s *SQLiteStore) ListBindings(ctx context.Context) ([]models.Binding, error) {
	var out []models.Binding

	err := s.withConn(ctx, func(conn *sqlite.Conn) error {
		out = out[:0]

		return sqlitex.Execute(conn, sqliteListBindings, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				createdAt, err := parseTimestamp(stmt.ColumnText(4))
				if err != nil {
					return err
				}

				out = append(out, models.Binding{
					MonitorSN: stmt.ColumnText(0),
					VendorID:  stmt.ColumnText(1),
					ProductID: stmt.ColumnText(2),
					SeatID:    stmt.ColumnText(3),
					CreatedAt: createdAt,
				})

				return nil
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list bindings: %w", ErrFailedToQuery, err)
	}

	return out, nil
}

func (s *SQLiteStore) ReportPresence(ctx context.Context, rec *models.PresenceRecord) error {
	if err := validatePresence(rec); err != nil {
		return err
	}

	err := s.withConn(ctx, func(conn *sqlite.Conn) error {
		return sqlitex.Execute(conn, sqliteReportPresence, &sqlitex.ExecOptions{
			Args: []any{rec.SeatID, rec.UserName, rec.HostName, formatTimestamp(rec.LastReportAt), rec.MachineSerial},
		})
	})
	if err != nil {
		return fmt.Errorf("%w: report presence: %w", ErrFailedToInsert, err)
	}

	return nil
}

func (s *SQLiteStore) GetPresence(ctx context.Context, seatID string) (*models.PresenceRecord, bool, error) {
	var rec *models.PresenceRecord

	err := s.withConn(ctx, func(conn *sqlite.Conn) error {
		rec = nil

		return sqlitex.Execute(conn, sqliteGetPresence, &sqlitex.ExecOptions{
			Args: []any{seatID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				r, err := scanSQLitePresence(stmt)
				if err != nil {
					return err
				}

				rec = &r

				return nil
			},
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("%w: get presence: %w", ErrFailedToQuery, err)
	}

	return rec, rec != nil, nil
}

func (s *SQLiteStore) ListPresence(ctx context.Context) ([]models.PresenceRecord, error) {
	var out []models.PresenceRecord

	err := s.withConn(ctx, func(conn *sqlite.Conn) error {
		out = out[:0]

		return sqlitex.Execute(conn, sqliteListPresence, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				r, err := scanSQLitePresence(stmt)
				if err != nil {
					return err
				}

				out = append(out, r)

				return nil
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list presence: %w", ErrFailedToQuery, err)
	}

	return out, nil
}

func scanSQLitePresence(stmt *sqlite.Stmt) (models.PresenceRecord, error) {
	last, err := parseTimestamp(stmt.ColumnText(3))
	if err != nil {
		return models.PresenceRecord{}, err
	}

	return models.PresenceRecord{
		SeatID:        stmt.ColumnText(0),
		UserName:      stmt.ColumnText(1),
		HostName:      stmt.ColumnText(2),
		LastReportAt:  last,
		MachineSerial: stmt.ColumnText(4),
	}, nil
}
