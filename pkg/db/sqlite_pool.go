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
	"runtime"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const minSQLitePoolSize = 4

var sqlitePragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA temp_store=MEMORY",
}

// sqlitePool is a fixed-size pool of SQLite connections. Each caller must
// Take its own connection and Put it back, typically via defer.
type sqlitePool struct {
	inner *sqlitex.Pool
	log   logger.Logger
	path  string
}

func openSQLitePool(path string, poolSize int, log logger.Logger) (*sqlitePool, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: sqlite path is required", ErrFailedOpenDB)
	}

	if poolSize <= 0 {
		poolSize = max(runtime.NumCPU(), minSQLitePoolSize)
	}

	inner, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize:    poolSize,
		PrepareConn: prepareSQLiteConn,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedOpenDB, path, err)
	}

	log.Info().Str("path", path).Int("pool_size", poolSize).Msg("SQLite pool opened")

	return &sqlitePool{inner: inner, log: log, path: path}, nil
}

func (p *sqlitePool) Take(ctx context.Context) (*sqlite.Conn, error) {
	conn, err := p.inner.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlite take: %w", err)
	}

	return conn, nil
}

func (p *sqlitePool) Put(conn *sqlite.Conn) {
	p.inner.Put(conn)
}

func (p *sqlitePool) Close() error {
	if err := p.inner.Close(); err != nil {
		p.log.Error().Err(err).Str("path", p.path).Msg("SQLite pool close error")
		return fmt.Errorf("closing %s: %w", p.path, err)
	}

	p.log.Info().Str("path", p.path).Msg("SQLite pool closed")

	return nil
}

func prepareSQLiteConn(conn *sqlite.Conn) error {
	for _, pragma := range sqlitePragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}

	return nil
}
