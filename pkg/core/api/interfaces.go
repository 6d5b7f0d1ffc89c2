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

package api

import (
	"context"

	"github.com/carverauto/seatmonitor/pkg/models"
)

//go:generate mockgen -destination=mock_api.go -package=api github.com/carverauto/seatmonitor/pkg/core/api SeatService

// SeatService is the coordinator behaviour served by APIServer.
type SeatService interface {
	CheckMonitor(ctx context.Context, monitor *models.MonitorRecord) (*models.CheckMonitorResponse, error)
	BindSeat(ctx context.Context, req *models.BindSeatRequest) (*models.BindSeatResponse, error)
	Heartbeat(ctx context.Context, req *models.HeartbeatRequest) (*models.HeartbeatResponse, error)
	SeatMappings(ctx context.Context) ([]models.SeatMapping, error)
	Dashboard(ctx context.Context) ([]models.DashboardEntry, error)
}
