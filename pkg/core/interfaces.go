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

package core

import (
	"context"

	"github.com/carverauto/seatmonitor/pkg/models"
)

//go:generate mockgen -destination=mock_core.go -package=core github.com/carverauto/seatmonitor/pkg/core EventPublisher

// EventPublisher receives seat events after the store write succeeds.
type EventPublisher interface {
	PublishSeatBound(ctx context.Context, data models.SeatBoundEventData) error
	PublishSeatHeartbeat(ctx context.Context, data models.SeatHeartbeatEventData) error
}
