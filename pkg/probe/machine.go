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

package probe

import (
	"context"
	"os"
	"os/user"
	"strings"

	"github.com/carverauto/seatmonitor/pkg/identity"
	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
	"github.com/shirou/gopsutil/v3/host"
)

const unknownValue = "UNKNOWN"

// MachineCollector gathers the user, host and hardware serial reported in heartbeats.
type MachineCollector struct {
	log            logger.Logger
	hostInfo       func(context.Context) (*host.InfoStat, error)
	currentUser    func() (*user.User, error)
	hardwareSerial func(context.Context) (string, error)
}

// NewMachineCollector returns a collector that reads the hardware serial through p.
func NewMachineCollector(log logger.Logger, p *Probe) *MachineCollector {
	return &MachineCollector{
		log:            log,
		hostInfo:       host.InfoWithContext,
		currentUser:    user.Current,
		hardwareSerial: p.MachineSerial,
	}
}

// Collect never fails; fields it cannot determine are reported as UNKNOWN.
func (m *MachineCollector) Collect(ctx context.Context) (models.MachineInfo, error) {
	info := models.MachineInfo{
		UserName:      m.userName(),
		HostName:      unknownValue,
		MachineSerial: unknownValue,
	}

	hi, err := m.hostInfo(ctx)
	if err != nil {
		m.log.Debug().Err(err).Msg("host info unavailable")
	}

	if hi != nil && hi.Hostname != "" {
		info.HostName = hi.Hostname
	} else if name, err := os.Hostname(); err == nil && name != "" {
		info.HostName = name
	}

	serial, err := m.hardwareSerial(ctx)
	switch {
	case err == nil && !identity.IsSentinel(serial):
		info.MachineSerial = serial
	case hi != nil && !identity.IsSentinel(hi.HostID):
		m.log.Debug().Err(err).Msg("hardware serial unavailable, using host id")
		info.MachineSerial = hi.HostID
	default:
		m.log.Debug().Err(err).Msg("hardware serial unavailable")
	}

	return info, nil
}

func (m *MachineCollector) userName() string {
	if u, err := m.currentUser(); err == nil && u.Username != "" {
		name := u.Username
		// Windows reports DOMAIN\user.
		if i := strings.LastIndex(name, `\`); i >= 0 {
			name = name[i+1:]
		}

		return name
	}

	for _, env := range []string{"LOGNAME", "USER", "USERNAME"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}

	return unknownValue
}
