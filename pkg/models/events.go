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

const (
	EventSource = "seatmonitor/core"

	SeatBoundEventType     = "com.carverauto.seatmonitor.seat.bound"
	SeatHeartbeatEventType = "com.carverauto.seatmonitor.seat.heartbeat"

	SeatBoundSubject     = "events.seat.bound"
	SeatHeartbeatSubject = "events.seat.heartbeat"
)

// CloudEvent represents a CloudEvents v1.0 message.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	ID              string      `json:"id"`
	Source          string      `json:"source"`
	Type            string      `json:"type"`
	DataContentType string      `json:"datacontenttype"`
	Subject         string      `json:"subject,omitempty"`
	Time            *time.Time  `json:"time,omitempty"`
	Data            interface{} `json:"data,omitempty"`
}

// SeatBoundEventData is published when a monitor is bound to a seat.
type SeatBoundEventData struct {
	MonitorSN    string    `json:"monitor_sn"`
	VendorID     string    `json:"vendor_id,omitempty"`
	ProductID    string    `json:"product_id,omitempty"`
	SeatID       string    `json:"seat_id"`
	PreviousSeat string    `json:"previous_seat,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// SeatHeartbeatEventData is published for each accepted heartbeat.
type SeatHeartbeatEventData struct {
	SeatID        string    `json:"seat_id"`
	MonitorSN     string    `json:"monitor_sn,omitempty"`
	UserName      string    `json:"user_name"`
	HostName      string    `json:"host_name"`
	MachineSerial string    `json:"machine_serial,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
