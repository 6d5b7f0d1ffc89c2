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

//go:build windows

package probe

import (
	"context"
	"fmt"

	"github.com/carverauto/seatmonitor/pkg/identity"
	"github.com/carverauto/seatmonitor/pkg/models"
	"github.com/yusufpapurcu/wmi"
)

const (
	wmiMonitorNamespace = `root\wmi`
	wmiCIMNamespace     = `root\cimv2`

	// windowsEDIDHash stands in for the EDID hash; WmiMonitorID does not expose raw EDID.
	windowsEDIDHash = "WIN_NO_HASH"
)

type wmiMonitorID struct {
	InstanceName     string
	Active           bool
	ManufacturerName []int32
	ProductCodeID    []int32
	SerialNumberID   []int32
}

type win32BIOS struct {
	SerialNumber string
}

func platformDefaults(p *Probe) {
	p.queryWMI = wmi.QueryNamespace
}

func (p *Probe) platformMonitors(context.Context) ([]models.MonitorDescriptor, error) {
	var rows []wmiMonitorID

	q := wmi.CreateQuery(&rows, "", "WmiMonitorID")
	if err := p.queryWMI(q, &rows, wmiMonitorNamespace); err != nil {
		return nil, fmt.Errorf("WmiMonitorID query failed: %w", err)
	}

	out := make([]models.MonitorDescriptor, 0, len(rows))

	for _, row := range rows {
		if !row.Active {
			continue
		}

		out = append(out, models.MonitorDescriptor{
			VendorID:       decodeWMIString(row.ManufacturerName),
			ProductID:      decodeWMIString(row.ProductCodeID),
			PlatformSerial: decodeWMIString(row.SerialNumberID),
			EDIDHash:       windowsEDIDHash,
			Connector:      row.InstanceName,
		})
	}

	return out, nil
}

func (p *Probe) platformSerial(context.Context) (string, error) {
	var rows []win32BIOS

	q := wmi.CreateQuery(&rows, "", "Win32_BIOS")
	if err := p.queryWMI(q, &rows, wmiCIMNamespace); err != nil {
		return "", fmt.Errorf("Win32_BIOS query failed: %w", err)
	}

	for _, row := range rows {
		if !identity.IsSentinel(row.SerialNumber) {
			return row.SerialNumber, nil
		}
	}

	return "", errNoPlatformSerial
}
