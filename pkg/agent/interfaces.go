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

package agent

import (
	"context"

	"github.com/carverauto/seatmonitor/pkg/models"
)

//go:generate mockgen -destination=mock_agent.go -package=agent github.com/carverauto/seatmonitor/pkg/agent CoordinatorClient,MonitorProber,SeatPrompter,MachineInfoCollector

// CoordinatorClient is the agent's view of the coordinator service.
type CoordinatorClient interface {
	CheckMonitor(ctx context.Context, monitor *models.MonitorRecord) (*models.CheckMonitorResponse, error)
	BindSeat(ctx context.Context, req *models.BindSeatRequest) (*models.BindSeatResponse, error)
	Heartbeat(ctx context.Context, req *models.HeartbeatRequest) (*models.HeartbeatResponse, error)
}

// MonitorProber lists the external displays attached to this machine.
type MonitorProber interface {
	Monitors(ctx context.Context) ([]models.MonitorDescriptor, error)
}

// SeatPrompter asks a human which seat a monitor belongs to. AskSeatID blocks
// the agent loop until the human answers or cancels; an empty result means
// the human declined.
type SeatPrompter interface {
	AskSeatID(ctx context.Context, monitor models.MonitorRecord) (string, error)
}

// MachineInfoCollector gathers the user, host and hardware serial sent with
// each heartbeat.
type MachineInfoCollector interface {
	Collect(ctx context.Context) (models.MachineInfo, error)
}
