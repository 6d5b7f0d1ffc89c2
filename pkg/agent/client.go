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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

const maxErrorBody = 4096

var _ CoordinatorClient = (*HTTPClient)(nil)

// HTTPClient talks to the coordinator's JSON API. Every call is bounded by
// the configured request timeout.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	log     logger.Logger
}

// NewHTTPClient returns a client for baseURL. A nil httpClient uses a fresh
// http.Client.
func NewHTTPClient(baseURL string, timeout time.Duration, httpClient *http.Client, log logger.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	if timeout <= 0 {
		timeout = models.DefaultRequestTimeout
	}

	return &HTTPClient{
		baseURL: baseURL,
		timeout: timeout,
		http:    httpClient,
		log:     log,
	}
}

func (c *HTTPClient) CheckMonitor(ctx context.Context, monitor *models.MonitorRecord) (*models.CheckMonitorResponse, error) {
	var resp models.CheckMonitorResponse
	if err := c.post(ctx, "/check_monitor", monitor, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *HTTPClient) BindSeat(ctx context.Context, req *models.BindSeatRequest) (*models.BindSeatResponse, error) {
	var resp models.BindSeatResponse
	if err := c.post(ctx, "/bind_seat", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *HTTPClient) Heartbeat(ctx context.Context, req *models.HeartbeatRequest) (*models.HeartbeatResponse, error) {
	var resp models.HeartbeatResponse
	if err := c.post(ctx, "/heartbeat", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetJSON fetches a read-model endpoint such as /api/mappings.
func (c *HTTPClient) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrServiceUnreachable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	c.log.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("Coordinator call succeeded")

	return nil
}

func (*HTTPClient) statusError(path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var errResp models.ErrorResponse
	if json.Unmarshal(raw, &errResp) == nil && errResp.Message != "" {
		return fmt.Errorf("%w: %s returned %d: %s", ErrUnexpectedStatus, path, resp.StatusCode, errResp.Message)
	}

	return fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, path, resp.StatusCode)
}
