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

// Package agent runs the workstation side of seat monitoring: probe the
// attached monitor, make sure it is bound to a seat, and report presence.
package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/carverauto/seatmonitor/pkg/identity"
	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

// Outcome is the result of one probe/bind/heartbeat cycle.
type Outcome string

const (
	OutcomeNoMonitor Outcome = "no_monitor"
	OutcomeDeclined  Outcome = "declined"
	OutcomeHeartbeat Outcome = "heartbeat"
	OutcomeFailed    Outcome = "failed"
)

// Dependencies are the collaborators the agent drives each cycle.
type Dependencies struct {
	Client   CoordinatorClient
	Prober   MonitorProber
	Prompter SeatPrompter
	Machine  MachineInfoCollector
}

// Agent is the polling loop. One cycle runs at a time.
type Agent struct {
	deps     Dependencies
	interval time.Duration
	log      logger.Logger

	done     chan struct{}
	stopOnce sync.Once
	cancel   context.CancelFunc
	stopped  bool
	mu       sync.Mutex
}

// New builds an agent polling every cfg.PollInterval.
func New(cfg *models.AgentConfig, deps Dependencies, log logger.Logger) (*Agent, error) {
	if deps.Client == nil || deps.Prober == nil || deps.Prompter == nil || deps.Machine == nil {
		return nil, errMissingDep
	}

	interval := time.Duration(cfg.PollInterval)
	if interval <= 0 {
		interval = models.DefaultPollInterval
	}

	return &Agent{
		deps:     deps,
		interval: interval,
		log:      log,
		done:     make(chan struct{}),
	}, nil
}

// Start runs a cycle immediately and then once per interval until ctx is
// cancelled or Stop is called. Cycle failures never end the loop.
func (a *Agent) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return nil
	}

	a.cancel = cancel
	a.mu.Unlock()

	defer close(a.done)

	a.log.Info().Dur("interval", a.interval).Msg("Starting seat agent")

	// The wait starts after each cycle, so a slow prompt still gets a full sleep.
	timer := time.NewTimer(a.interval)
	defer timer.Stop()

	for {
		_, _ = a.RunCycle(ctx)

		timer.Reset(a.interval)

		select {
		case <-ctx.Done():
			a.log.Info().Msg("Seat agent stopping")
			return nil
		case <-timer.C:
		}
	}
}

// Stop cancels the loop and waits for the running cycle to finish.
func (a *Agent) Stop(ctx context.Context) error {
	a.mu.Lock()
	cancel := a.cancel
	a.stopped = true
	a.mu.Unlock()

	if cancel == nil {
		return nil
	}

	a.stopOnce.Do(cancel)

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunCycle performs PROBE, CHECK, optional PROMPT and BIND, then HEARTBEAT.
// Errors and panics are logged and reported as OutcomeFailed.
func (a *Agent) RunCycle(ctx context.Context) (outcome Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome, err = OutcomeFailed, fmt.Errorf("%w: %v", errCyclePanic, r)
		}

		a.logOutcome(outcome, err)
	}()

	descriptors, err := a.deps.Prober.Monitors(ctx)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("probe monitors: %w", err)
	}

	if len(descriptors) == 0 {
		return OutcomeNoMonitor, nil
	}

	monitor := identity.Resolve(descriptors[0])
	log := a.log.With().Str("monitor_sn", monitor.SerialNumber).Logger()

	check, err := a.deps.Client.CheckMonitor(ctx, &monitor)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("check monitor: %w", err)
	}

	seatID := ""
	if check.Status == models.BindingStatusBound && check.SeatID != nil {
		seatID = *check.SeatID
	}

	if seatID == "" {
		log.Info().Msg("Monitor is not bound to a seat, asking for one")

		seatID, err = a.bind(ctx, monitor)
		if err != nil {
			return OutcomeFailed, err
		}

		if seatID == "" {
			return OutcomeDeclined, nil
		}
	}

	info, err := a.deps.Machine.Collect(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Machine info incomplete")
	}

	_, err = a.deps.Client.Heartbeat(ctx, &models.HeartbeatRequest{
		SeatID:        seatID,
		MonitorSN:     monitor.SerialNumber,
		UserName:      info.UserName,
		HostName:      info.HostName,
		MachineSerial: info.MachineSerial,
	})
	if err != nil {
		return OutcomeFailed, fmt.Errorf("heartbeat for seat %s: %w", seatID, err)
	}

	log.Debug().Str("seat_id", seatID).Msg("Heartbeat accepted")

	return OutcomeHeartbeat, nil
}

// bind prompts for a seat and binds it. An empty seat id with a nil error
// means the human declined.
func (a *Agent) bind(ctx context.Context, monitor models.MonitorRecord) (string, error) {
	seatID, err := a.deps.Prompter.AskSeatID(ctx, monitor)
	if err != nil {
		return "", fmt.Errorf("ask seat id: %w", err)
	}

	seatID = strings.TrimSpace(seatID)
	if seatID == "" {
		return "", nil
	}

	resp, err := a.deps.Client.BindSeat(ctx, &models.BindSeatRequest{Monitor: monitor, SeatID: seatID})
	if err != nil {
		return "", fmt.Errorf("bind seat %s: %w", seatID, err)
	}

	if resp.Status != models.StatusSuccess {
		return "", fmt.Errorf("%w: %s", ErrBindRejected, resp.Message)
	}

	a.log.Info().Str("monitor_sn", monitor.SerialNumber).Str("seat_id", seatID).Msg("Monitor bound to seat")

	return seatID, nil
}

func (a *Agent) logOutcome(outcome Outcome, err error) {
	switch outcome {
	case OutcomeFailed:
		a.log.Warn().Err(err).Str("outcome", string(outcome)).Msg("Cycle skipped")
	case OutcomeNoMonitor, OutcomeDeclined:
		a.log.Info().Str("outcome", string(outcome)).Msg("Cycle finished without heartbeat")
	case OutcomeHeartbeat:
		a.log.Debug().Str("outcome", string(outcome)).Msg("Cycle finished")
	}
}
