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

//go:generate mockgen -destination=mock_db.go -package=db github.com/carverauto/seatmonitor/pkg/db BindingRegistry,PresenceTracker,Store

// Package db persists monitor-to-seat bindings and seat presence reports.
package db

import (
	"context"

	"github.com/carverauto/seatmonitor/pkg/models"
)

// BindingRegistry maps monitor identities to seats.
type BindingRegistry interface {
	// LookupSeat returns the seat bound to monitorSN; found is false when unbound.
	LookupSeat(ctx context.Context, monitorSN string) (seatID string, found bool, err error)
	// BindSeat upserts b. Rebinding the same seat keeps the original CreatedAt;
	// binding a different seat overwrites the previous one.
	BindSeat(ctx context.Context, b *models.Binding) error
	// ListBindings returns every binding ordered by seat id.
	ListBindings(ctx context.Context) ([]models.Binding, error)
}

// PresenceTracker stores the latest occupancy report per seat.
type PresenceTracker interface {
	ReportPresence(ctx context.Context, rec *models.PresenceRecord) error
	GetPresence(ctx context.Context, seatID string) (*models.PresenceRecord, bool, error)
	// ListPresence returns every presence record ordered by seat id.
	ListPresence(ctx context.Context) ([]models.PresenceRecord, error)
}

// Store is a durable backend for both bindings and presence.
type Store interface {
	BindingRegistry
	PresenceTracker
	// EnsureSchema creates missing tables and columns without touching existing rows.
	EnsureSchema(ctx context.Context) error
	Close() error
}
