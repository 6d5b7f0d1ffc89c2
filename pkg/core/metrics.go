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

package core

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/carverauto/seatmonitor/pkg/core"

	metricCheckTotal     = "seatmonitor_check_monitor_total"
	metricBindTotal      = "seatmonitor_bind_seat_total"
	metricHeartbeatTotal = "seatmonitor_heartbeat_total"
)

// serviceMetrics holds the coordinator counters. A nil counter is skipped.
type serviceMetrics struct {
	check     metric.Int64Counter
	bind      metric.Int64Counter
	heartbeat metric.Int64Counter
}

func newServiceMetrics(provider metric.MeterProvider) *serviceMetrics {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	meter := provider.Meter(meterName)

	newCounter := func(name, description string) metric.Int64Counter {
		counter, err := meter.Int64Counter(name, metric.WithDescription(description))
		if err != nil {
			otel.Handle(err)
			return nil
		}

		return counter
	}

	return &serviceMetrics{
		check:     newCounter(metricCheckTotal, "check_monitor lookups by result"),
		bind:      newCounter(metricBindTotal, "bind_seat requests by outcome"),
		heartbeat: newCounter(metricHeartbeatTotal, "heartbeat reports by outcome"),
	}
}

func (m *serviceMetrics) recordCheck(ctx context.Context, status string) {
	if m.check == nil {
		return
	}

	m.check.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// recordBind counts a bind; rebind is true when the monitor moved seats.
func (m *serviceMetrics) recordBind(ctx context.Context, outcome string, rebind bool) {
	if m.bind == nil {
		return
	}

	m.bind.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.Bool("rebind", rebind),
	))
}

func (m *serviceMetrics) recordHeartbeat(ctx context.Context, outcome string) {
	if m.heartbeat == nil {
		return
	}

	m.heartbeat.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
