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
	"time"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

const (
	mappingsTable = "mappings"
	presenceTable = "live_status"
)

// Legacy deployments wrote naive local timestamps in these layouts.
var legacyTimestampLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// New opens the configured backend and ensures its schema.
func New(ctx context.Context, cfg *models.DatabaseConfig, log logger.Logger) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Driver {
	case models.DriverSQLite, "":
		store, err = NewSQLiteStore(cfg.Path, cfg.PoolSize, log)
	case models.DriverPostgres:
		store, err = NewPostgresStore(ctx, cfg.Postgres, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	if err != nil {
		return nil, err
	}

	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	log.Info().Str("driver", cfg.Driver).Msg("Seat store ready")

	return store, nil
}

func validateBinding(b *models.Binding) error {
	if b == nil {
		return ErrBindingNil
	}

	if b.MonitorSN == "" {
		return ErrMonitorSNRequired
	}

	return nil
}

func validatePresence(rec *models.PresenceRecord) error {
	if rec == nil {
		return ErrPresenceNil
	}

	if strings.TrimSpace(rec.SeatID) == "" {
		return ErrSeatIDRequired
	}

	return nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTimestamp reads both RFC 3339 values and legacy naive local timestamps.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	for _, layout := range legacyTimestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: unrecognized timestamp %q", ErrFailedToScan, s)
}
