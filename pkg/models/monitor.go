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

// MonitorDescriptor is the raw per-cycle probe record for one attached display.
// It is never persisted.
type MonitorDescriptor struct {
	VendorID       string `json:"vendor_id"`
	ProductID      string `json:"product_id"`
	RawEDID        []byte `json:"-"`
	EDIDHash       string `json:"edid_hash,omitempty"`
	PlatformSerial string `json:"platform_serial,omitempty"`
	Connector      string `json:"connector,omitempty"`
}

// MonitorRecord is the canonical identity of a display. SerialNumber is never
// an unknown sentinel once produced by the identity resolver.
type MonitorRecord struct {
	SerialNumber string `json:"serial_number"`
	VendorID     string `json:"vendor_id"`
	ProductID    string `json:"product_id"`
}

// MachineInfo describes the workstation running the agent.
type MachineInfo struct {
	UserName      string `json:"user_name"`
	HostName      string `json:"host_name"`
	MachineSerial string `json:"machine_serial"`
}
