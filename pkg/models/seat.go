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

package models

import "time"

// FreshnessWindow is the maximum heartbeat age for a seat to count as online.
const FreshnessWindow = 300 * time.Second

// Binding associates a monitor identity with a seat.
type Binding struct {
	MonitorSN string    `json:"monitor_sn"`
	VendorID  string    `json:"vendor_id"`
	ProductID string    `json:"product_id"`
	SeatID    string    `json:"seat_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PresenceRecord is the latest occupancy report for a seat.
type PresenceRecord struct {
	SeatID        string    `json:"seat_id"`
	UserName      string    `json:"user_name"`
	HostName      string    `json:"host_name"`
	MachineSerial string    `json:"machine_serial"`
	LastReportAt  time.Time `json:"last_report_at"`
}

// IsOnline reports whether rec was refreshed strictly within FreshnessWindow
// of now. A record exactly FreshnessWindow old is offline.
func IsOnline(rec *PresenceRecord, now time.Time) bool {
	if rec == nil || rec.LastReportAt.IsZero() {
		return false
	}

	return now.Sub(rec.LastReportAt) < FreshnessWindow
}

// PresenceStatus is the derived online/offline label for dashboards.
type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceOffline PresenceStatus = "offline"
)

// StatusOf returns the dashboard label for rec at now.
func StatusOf(rec *PresenceRecord, now time.Time) PresenceStatus {
	if IsOnline(rec, now) {
		return PresenceOnline
	}

	return PresenceOffline
}

// LastUser is the presence summary attached to a seat mapping.
type LastUser struct {
	UserName      string    `json:"user_name"`
	HostName      string    `json:"host_name"`
	MachineSerial string    `json:"machine_serial"`
	LastSeen      time.Time `json:"last_seen"`
	IsActive      bool      `json:"is_active"`
}

// SeatMapping is one row of the bindings read model.
type SeatMapping struct {
	SeatID    string    `json:"seat_id"`
	MonitorSN string    `json:"monitor_sn"`
	BoundAt   time.Time `json:"bound_at"`
	LastUser  *LastUser `json:"last_user"`
}

// DashboardEntry is one row of the presence dashboard.
type DashboardEntry struct {
	SeatID   string         `json:"seat_id"`
	User     string         `json:"user"`
	Host     string         `json:"host"`
	LastSeen time.Time      `json:"last_seen"`
	Status   PresenceStatus `json:"status"`
}
