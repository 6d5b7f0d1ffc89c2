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

package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

func TestHTTPClient_CheckMonitor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/check_monitor", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var rec models.MonitorRecord
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		assert.Equal(t, "ABC123", rec.SerialNumber)

		_, _ = w.Write([]byte(`{"status":"bound","seat_id":"A-101"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, srv.Client(), logger.NewTestLogger())

	resp, err := c.CheckMonitor(context.Background(), &models.MonitorRecord{SerialNumber: "ABC123"})
	require.NoError(t, err)
	assert.Equal(t, models.BindingStatusBound, resp.Status)
	require.NotNil(t, resp.SeatID)
	assert.Equal(t, "A-101", *resp.SeatID)
}

func TestHTTPClient_SurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"seat_id must not be empty","code":400}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil, logger.NewTestLogger())

	_, err := c.BindSeat(context.Background(), &models.BindSeatRequest{})
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "seat_id must not be empty")
	assert.Contains(t, err.Error(), "400")
}

func TestHTTPClient_TimeoutIsUnreachable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewHTTPClient(srv.URL, 50*time.Millisecond, nil, logger.NewTestLogger())

	_, err := c.Heartbeat(context.Background(), &models.HeartbeatRequest{SeatID: "A-101"})
	require.ErrorIs(t, err, ErrServiceUnreachable)
}

func TestHTTPClient_ClosedServerIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second, nil, logger.NewTestLogger())

	_, err := c.CheckMonitor(context.Background(), &models.MonitorRecord{SerialNumber: "ABC123"})
	require.ErrorIs(t, err, ErrServiceUnreachable)
}

func TestHTTPClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/mappings", r.URL.Path)

		_, _ = w.Write([]byte(`[{"seat_id":"A-101","monitor_sn":"ABC123","bound_at":"2025-01-01T00:00:00Z","last_user":null}]`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil, logger.NewTestLogger())

	var mappings []models.SeatMapping
	require.NoError(t, c.GetJSON(context.Background(), "/api/mappings", &mappings))
	require.Len(t, mappings, 1)
	assert.Equal(t, "A-101", mappings[0].SeatID)
	assert.Nil(t, mappings[0].LastUser)
}
