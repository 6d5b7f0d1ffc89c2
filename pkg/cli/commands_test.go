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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/seatmonitor/pkg/models"
)

type fakeReader struct {
	payloads map[string]string
	err      error
	paths    []string
}

func (f *fakeReader) GetJSON(_ context.Context, path string, out interface{}) error {
	f.paths = append(f.paths, path)

	if f.err != nil {
		return f.err
	}

	return json.Unmarshal([]byte(f.payloads[path]), out)
}

type fakeProber struct {
	descriptors []models.MonitorDescriptor
}

func (f fakeProber) Monitors(context.Context) ([]models.MonitorDescriptor, error) {
	return f.descriptors, nil
}

func TestParseFlags(t *testing.T) {
	t.Setenv(models.ServerURLEnv, "")

	tests := []struct {
		name    string
		args    []string
		want    CmdConfig
		wantErr error
	}{
		{
			name: "no args shows help",
			args: nil,
			want: CmdConfig{Help: true, Format: FormatTable},
		},
		{
			name: "mappings defaults",
			args: []string{"mappings"},
			want: CmdConfig{
				SubCmd:    "mappings",
				ServerURL: models.DefaultServerURL,
				Timeout:   models.DefaultRequestTimeout,
				Format:    FormatTable,
			},
		},
		{
			name: "presence with flags",
			args: []string{"presence", "--server", "http://seats:8000/", "--timeout", "3s", "-o", "json"},
			want: CmdConfig{
				SubCmd:    "presence",
				ServerURL: "http://seats:8000",
				Timeout:   3 * time.Second,
				Format:    FormatJSON,
			},
		},
		{
			name:    "unknown command",
			args:    []string{"unbind"},
			wantErr: errUnknownCommand,
		},
		{
			name:    "bad format",
			args:    []string{"identify", "-o", "xml"},
			wantErr: errUnsupportedFormat,
		},
		{
			name:    "stray arguments",
			args:    []string{"mappings", "A-101"},
			wantErr: errUnexpectedArgs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestParseFlags_ServerFromEnvironment(t *testing.T) {
	t.Setenv(models.ServerURLEnv, "http://from-env:9000")

	cfg, err := ParseFlags([]string{"mappings"})
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:9000", cfg.ServerURL)
	assert.True(t, cfg.NeedsServer())
}

func TestRunMappings_Table(t *testing.T) {
	reader := &fakeReader{payloads: map[string]string{
		mappingsPath: `[
			{"seat_id":"A-101","monitor_sn":"ABC123","bound_at":"2025-01-02T03:04:05Z",
			 "last_user":{"user_name":"alice","host_name":"ws-01","machine_serial":"C02","last_seen":"2025-01-02T04:00:00Z","is_active":true}},
			{"seat_id":"B-7","monitor_sn":"GEN-1c6b740a72db","bound_at":"2025-01-01T00:00:00Z","last_user":null}
		]`,
	}}

	var out bytes.Buffer

	err := Run(context.Background(), &CmdConfig{SubCmd: cmdMappings, Format: FormatTable}, Deps{Client: reader, Out: &out})
	require.NoError(t, err)

	assert.Equal(t, []string{mappingsPath}, reader.paths)

	text := out.String()
	assert.Contains(t, text, "SEAT")
	assert.Contains(t, text, "A-101")
	assert.Contains(t, text, "alice")
	assert.Contains(t, text, "2025-01-02 03:04:05")
	assert.Contains(t, text, "yes")
	assert.Contains(t, text, "GEN-1c6b740a72db")
}

func TestRunPresence_JSON(t *testing.T) {
	reader := &fakeReader{payloads: map[string]string{
		dashboardPath: `[{"seat_id":"A-101","user":"alice","host":"ws-01","last_seen":"2025-01-02T04:00:00Z","status":"online"}]`,
	}}

	var out bytes.Buffer

	err := Run(context.Background(), &CmdConfig{SubCmd: cmdPresence, Format: FormatJSON}, Deps{Client: reader, Out: &out})
	require.NoError(t, err)

	var entries []models.DashboardEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, models.PresenceOnline, entries[0].Status)
}

func TestRunPresence_Empty(t *testing.T) {
	reader := &fakeReader{payloads: map[string]string{dashboardPath: `[]`}}

	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), &CmdConfig{SubCmd: cmdPresence, Format: FormatTable}, Deps{Client: reader, Out: &out}))
	assert.Equal(t, noRowsMessage+"\n", out.String())
}

func TestRun_ClientError(t *testing.T) {
	errDown := errors.New("coordinator unreachable")

	err := Run(context.Background(), &CmdConfig{SubCmd: cmdMappings, Format: FormatTable},
		Deps{Client: &fakeReader{err: errDown}, Out: &bytes.Buffer{}})
	require.ErrorIs(t, err, errDown)
}

func TestRunIdentify(t *testing.T) {
	prober := fakeProber{descriptors: []models.MonitorDescriptor{
		{VendorID: "4268", ProductID: "40961", PlatformSerial: "ABC123", Connector: "DP-1"},
		{VendorID: "4268", ProductID: "1", EDIDHash: "deadbeef", PlatformSerial: "0"},
	}}

	var out bytes.Buffer

	err := Run(context.Background(), &CmdConfig{SubCmd: cmdIdentify, Format: FormatJSON}, Deps{Prober: prober, Out: &out})
	require.NoError(t, err)

	var got []IdentifiedMonitor
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "ABC123", got[0].SerialNumber)
	assert.Equal(t, SourcePlatform, got[0].Source)
	assert.Equal(t, "DEL", got[0].Manufacturer)
	assert.Equal(t, "DP-1", got[0].Connector)

	assert.Equal(t, "GEN-1c6b740a72db", got[1].SerialNumber)
	assert.Equal(t, SourceGenerated, got[1].Source)
}

func TestRunIdentify_RequiresProber(t *testing.T) {
	err := Run(context.Background(), &CmdConfig{SubCmd: cmdIdentify}, Deps{Out: &bytes.Buffer{}})
	require.ErrorIs(t, err, errProberRequired)
}

func TestRun_HelpAndVersion(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), &CmdConfig{Help: true}, Deps{Out: &out}))
	assert.Contains(t, out.String(), "seatctl <command>")

	out.Reset()
	require.NoError(t, Run(context.Background(), &CmdConfig{SubCmd: cmdVersion}, Deps{Out: &out}))
	assert.Contains(t, out.String(), "seatctl dev")
}
