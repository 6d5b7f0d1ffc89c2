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

// Binding states returned by check_monitor.
const (
	BindingStatusBound   = "bound"
	BindingStatusUnbound = "unbound"
)

const (
	StatusSuccess = "success"
	StatusOK      = "ok"
	StatusError   = "error"
)

// CheckMonitorResponse answers whether a monitor is bound. SeatID is null when unbound.
type CheckMonitorResponse struct {
	Status string  `json:"status"`
	SeatID *string `json:"seat_id"`
}

// BindSeatRequest asks the coordinator to bind Monitor to SeatID.
type BindSeatRequest struct {
	Monitor MonitorRecord `json:"monitor"`
	SeatID  string        `json:"seat_id"`
}

type BindSeatResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HeartbeatRequest is the periodic presence report from an agent.
type HeartbeatRequest struct {
	SeatID        string `json:"seat_id"`
	MonitorSN     string `json:"monitor_sn"`
	UserName      string `json:"user_name"`
	HostName      string `json:"host_name"`
	MachineSerial string `json:"machine_serial"`
}

type HeartbeatResponse struct {
	Status string `json:"status"`
}

// ServiceStatusResponse is returned by the liveness endpoint.
type ServiceStatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}
