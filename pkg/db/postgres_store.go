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
	"errors"
	"fmt"
	"time"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

const (
	pgDriverName = "pgx"

	pgLookupSeat = `SELECT seat_id FROM mappings WHERE monitor_sn = $1`

	pgBindSeat = `INSERT INTO mappings (monitor_sn, vendor_id, product_id, seat_id, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (monitor_sn) DO UPDATE SET
    vendor_id  = EXCLUDED.vendor_id,
    product_id = EXCLUDED.product_id,
    created_at = CASE WHEN mappings.seat_id = EXCLUDED.seat_id
                      THEN mappings.created_at ELSE EXCLUDED.created_at END,
    seat_id    = EXCLUDED.seat_id`

	pgListBindings = `SELECT monitor_sn, vendor_id, product_id, seat_id, created_at
FROM mappings ORDER BY seat_id, monitor_sn`

	pgReportPresence = `INSERT INTO live_status (seat_id, user_name, host_name, last_heartbeat, machine_serial)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (seat_id) DO UPDATE SET
    user_name      = EXCLUDED.user_name,
    host_name      = EXCLUDED.host_name,
    last_heartbeat = EXCLUDED.last_heartbeat,
    machine_serial = EXCLUDED.machine_serial`

	pgGetPresence = `SELECT seat_id, user_name, host_name, last_heartbeat, machine_serial
FROM live_status WHERE seat_id = $1`

	pgListPresence = `SELECT seat_id, user_name, host_name, last_heartbeat, machine_serial
FROM live_status ORDER BY seat_id`

	defaultPGMaxConns = 10

	sqlstateUndefinedTable  = "42P01"
	sqlstateUndefinedColumn = "42703"
)

// PostgresStore keeps bindings and presence in PostgreSQL through the pgx driver.
type PostgresStore struct {
	db  *sql.DB
	log logger.Logger
}

// NewPostgresStore connects using cfg and verifies the server is reachable.
func NewPostgresStore(ctx context.Context, cfg *models.PostgresConfig, log logger.Logger) (*PostgresStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: postgres settings are required", ErrFailedOpenDB)
	}

	sqlDB, err := sql.Open(pgDriverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	maxConns := cfg.MaxConnections
	if maxConns <= 0 {
		maxConns = defaultPGMaxConns
	}

	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrFailedOpenDB, cfg.Host, err)
	}

	log.Info().Str("host", cfg.Host).Str("database", cfg.Database).Msg("Connected to PostgreSQL")

	return newPostgresStore(sqlDB, log), nil
}

func newPostgresStore(sqlDB *sql.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{db: sqlDB, log: log}
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %w", ErrFailedToInit, err)
	}
	defer func() { _ = conn.Close() }()

	if err := runMigrations(ctx, conn, s.log, false); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	return nil
}

// withConn runs fn on a dedicated connection that is always released. An
// undefined-table failure triggers one schema repair and retry.
func (s *PostgresStore) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	err = fn(conn)
	if err == nil || !isPGMissingTable(err) {
		return err
	}

	s.log.Warn().Err(err).Msg("Seat tables missing, reapplying migrations")

	if schemaErr := runMigrations(ctx, conn, s.log, true); schemaErr != nil {
		return fmt.Errorf("%w: %w", ErrSchemaMissing, schemaErr)
	}

	return fn(conn)
}

func isPGMissingTable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == sqlstateUndefinedTable || pgErr.Code == sqlstateUndefinedColumn
}

func (s *PostgresStore) LookupSeat(ctx context.Context, monitorSN string) (string, bool, error) {
	var seatID sql.NullString

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, pgLookupSeat, monitorSN).Scan(&seatID)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("%w: lookup seat: %w", ErrFailedToQuery, err)
	}

	return seatID.String, true, nil
}

func (s *PostgresStore) BindSeat(ctx context.Context, b *models.Binding) error {
	if err := validateBinding(b); err != nil {
		return err
	}

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, pgBindSeat, b.MonitorSN, b.VendorID, b.ProductID, b.SeatID, b.CreatedAt.UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: bind seat: %w", ErrFailedToInsert, err)
	}

	return nil
}

func (s *PostgresStore) ListBindings(ctx context.Context) ([]models.Binding, error) {
	var out []models.Binding

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, pgListBindings)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		out = out[:0]

		for rows.Next() {
			var (
				b                           models.Binding
				vendorID, productID, seatID sql.NullString
			)

			if err := rows.Scan(&b.MonitorSN, &vendorID, &productID, &seatID, &b.CreatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToScan, err)
			}

			b.VendorID, b.ProductID, b.SeatID = vendorID.String, productID.String, seatID.String
			out = append(out, b)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list bindings: %w", ErrFailedToQuery, err)
	}

	return out, nil
}

func (s *PostgresStore) ReportPresence(ctx context.Context, rec *models.PresenceRecord) error {
	if err := validatePresence(rec); err != nil {
		return err
	}

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, pgReportPresence,
			rec.SeatID, rec.UserName, rec.HostName, rec.LastReportAt.UTC(), rec.MachineSerial)

		return err
	})
	if err != nil {
		return fmt.Errorf("%w: report presence: %w", ErrFailedToInsert, err)
	}

	return nil
}

type pgRowScanner interface {
	Scan(dest ...any) error
}

func scanPGPresence(row pgRowScanner) (models.PresenceRecord, error) {
	var (
		rec                        models.PresenceRecord
		userName, hostName, serial sql.NullString
		last                       sql.NullTime
	)

	if err := row.Scan(&rec.SeatID, &userName, &hostName, &last, &serial); err != nil {
		return rec, err
	}

	rec.UserName, rec.HostName, rec.MachineSerial = userName.String, hostName.String, serial.String
	if last.Valid {
		rec.LastReportAt = last.Time
	}

	return rec, nil
}

func (s *PostgresStore) GetPresence(ctx context.Context, seatID string) (*models.PresenceRecord, bool, error) {
	var rec models.PresenceRecord

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		var err error

		rec, err = scanPGPresence(conn.QueryRowContext(ctx, pgGetPresence, seatID))

		return err
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("%w: get presence: %w", ErrFailedToQuery, err)
	}

	return &rec, true, nil
}

func (s *PostgresStore) ListPresence(ctx context.Context) ([]models.PresenceRecord, error) {
	var out []models.PresenceRecord

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, pgListPresence)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		out = out[:0]

		for rows.Next() {
			rec, err := scanPGPresence(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToScan, err)
			}

			out = append(out, rec)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list presence: %w", ErrFailedToQuery, err)
	}

	return out, nil
}
