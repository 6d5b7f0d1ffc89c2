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

//go:build darwin

package probe

import (
	"context"
	"fmt"

	"github.com/carverauto/seatmonitor/pkg/models"
)

func platformDefaults(*Probe) {}

func (p *Probe) platformMonitors(ctx context.Context) ([]models.MonitorDescriptor, error) {
	out, err := p.runCommand(ctx, "ioreg", "-l", "-w0", "-r", "-c", "IODisplayConnect", "-a")
	if err != nil {
		return nil, fmt.Errorf("ioreg display query failed: %w", err)
	}

	if len(out) == 0 {
		return nil, nil
	}

	return ParseIORegDisplays(out)
}

func (p *Probe) platformSerial(ctx context.Context) (string, error) {
	out, err := p.runCommand(ctx, "ioreg", "-l", "-w0", "-r", "-c", "IOPlatformExpertDevice", "-a")
	if err != nil {
		return "", fmt.Errorf("ioreg platform query failed: %w", err)
	}

	return ParseIORegPlatformSerial(out)
}
