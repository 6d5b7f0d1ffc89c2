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
	"errors"
	"os/user"
	"testing"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(serial string, serialErr error, hi *host.InfoStat, u *user.User) *MachineCollector {
	return &MachineCollector{
		log: logger.NewTestLogger(),
		hostInfo: func(context.Context) (*host.InfoStat, error) {
			if hi == nil {
				return nil, errors.New("no host info")
			}

			return hi, nil
		},
		currentUser: func() (*user.User, error) {
			if u == nil {
				return nil, errors.New("no user")
			}

			return u, nil
		},
		hardwareSerial: func(context.Context) (string, error) { return serial, serialErr },
	}
}

func TestMachineCollectorCollect(t *testing.T) {
	m := newTestCollector("C02XK0AAJGH5", nil,
		&host.InfoStat{Hostname: "ws-17", HostID: "uuid-1"},
		&user.User{Username: `CORP\alice`})

	info, err := m.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "alice", info.UserName)
	assert.Equal(t, "ws-17", info.HostName)
	assert.Equal(t, "C02XK0AAJGH5", info.MachineSerial)
}

func TestMachineCollectorFallsBackToHostID(t *testing.T) {
	m := newTestCollector("", errNoPlatformSerial,
		&host.InfoStat{Hostname: "ws-17", HostID: "uuid-1"},
		&user.User{Username: "bob"})

	info, err := m.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", info.MachineSerial)
}

func TestMachineCollectorUnknownSerial(t *testing.T) {
	t.Setenv("LOGNAME", "carol")

	m := newTestCollector("0", nil, nil, nil)

	info, err := m.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "carol", info.UserName)
	assert.Equal(t, unknownValue, info.MachineSerial)
	assert.NotEmpty(t, info.HostName)
}
