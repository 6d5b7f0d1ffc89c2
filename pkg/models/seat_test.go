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

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOnlineFreshnessBoundary(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := &PresenceRecord{SeatID: "A-101", LastReportAt: t0}

	tests := []struct {
		name   string
		age    time.Duration
		online bool
	}{
		{name: "just reported", age: 0, online: true},
		{name: "299s", age: 299 * time.Second, online: true},
		{name: "one nanosecond short of window", age: FreshnessWindow - time.Nanosecond, online: true},
		{name: "exactly 300s", age: 300 * time.Second, online: false},
		{name: "301s", age: 301 * time.Second, online: false},
		{name: "400s", age: 400 * time.Second, online: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.online, IsOnline(rec, t0.Add(tt.age)))
		})
	}
}

func TestIsOnlineWithoutRecord(t *testing.T) {
	assert.False(t, IsOnline(nil, time.Now()))
	assert.False(t, IsOnline(&PresenceRecord{SeatID: "A-1"}, time.Now()))
}

func TestStatusOf(t *testing.T) {
	now := time.Now()
	assert.Equal(t, PresenceOnline, StatusOf(&PresenceRecord{LastReportAt: now.Add(-time.Minute)}, now))
	assert.Equal(t, PresenceOffline, StatusOf(&PresenceRecord{LastReportAt: now.Add(-10 * time.Minute)}, now))
}

func TestCheckMonitorResponseEncodesNullSeat(t *testing.T) {
	b, err := json.Marshal(CheckMonitorResponse{Status: BindingStatusUnbound})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"unbound","seat_id":null}`, string(b))

	seat := "A-101"
	b, err = json.Marshal(CheckMonitorResponse{Status: BindingStatusBound, SeatID: &seat})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"bound","seat_id":"A-101"}`, string(b))
}

func TestSeatMappingEncodesNullLastUser(t *testing.T) {
	b, err := json.Marshal(SeatMapping{SeatID: "A-1", MonitorSN: "SN", BoundAt: time.Unix(0, 0).UTC()})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"last_user":null`)
}
