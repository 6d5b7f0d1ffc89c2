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

// Package probe reads attached display descriptors and workstation identity
// from the host operating system.
package probe

import (
	"context"
	"os/exec"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

// Probe enumerates external displays on the local machine. Its OS access is
// held in function fields so tests can substitute canned output.
type Probe struct {
	log        logger.Logger
	runCommand func(ctx context.Context, name string, args ...string) ([]byte, error)
	queryWMI   func(query string, dst interface{}, namespace string) error
	drmRoot    string
	dmiRoot    string
}

// New returns a Probe wired to the host platform.
func New(log logger.Logger) *Probe {
	p := &Probe{
		log:        log,
		runCommand: runCommand,
		drmRoot:    defaultDRMRoot,
		dmiRoot:    defaultDMIRoot,
	}

	platformDefaults(p)

	return p
}

// Monitors returns the external displays currently attached, in probe order.
// An empty slice with a nil error means nothing was detected.
func (p *Probe) Monitors(ctx context.Context) ([]models.MonitorDescriptor, error) {
	monitors, err := p.platformMonitors(ctx)
	if err != nil {
		return nil, err
	}

	p.log.Debug().Int("count", len(monitors)).Msg("Probed displays")

	return monitors, nil
}

// MachineSerial returns the workstation hardware serial number.
func (p *Probe) MachineSerial(ctx context.Context) (string, error) {
	return p.platformSerial(ctx)
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
