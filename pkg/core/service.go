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

// Package core composes the binding registry and presence tracker into the
// coordinator operations served over HTTP.
package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/carverauto/seatmonitor/pkg/db"
	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

const (
	outcomeSuccess = "success"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

// Service implements check_monitor, bind_seat and heartbeat plus the
// mappings and dashboard read models. Bindings and presence live only in
// its store.
type Service struct {
	store  db.Store
	events EventPublisher
	log    logger.Logger
	now    func() time.Time

	meterProvider metric.MeterProvider
	metrics       *serviceMetrics
}

// Option configures a Service.
type Option func(*Service)

// WithEventPublisher publishes bind and heartbeat events after each write.
func WithEventPublisher(p EventPublisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

// WithClock overrides the time source used for created_at and last_report_at.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithMeterProvider records the service counters on provider instead of
// the global one.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(s *Service) {
		s.meterProvider = provider
	}
}

func NewService(store db.Store, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   log,
		now:   time.Now,
	}

	for _, o := range opts {
		o(s)
	}

	s.metrics = newServiceMetrics(s.meterProvider)

	return s
}

// CheckMonitor reports whether the monitor is bound and to which seat.
func (s *Service) CheckMonitor(ctx context.Context, monitor *models.MonitorRecord) (*models.CheckMonitorResponse, error) {
	seatID, found, err := s.store.LookupSeat(ctx, monitor.SerialNumber)
	if err != nil {
		s.metrics.recordCheck(ctx, outcomeError)
		return nil, err
	}

	if !found {
		s.metrics.recordCheck(ctx, models.BindingStatusUnbound)
		return &models.CheckMonitorResponse{Status: models.BindingStatusUnbound}, nil
	}

	s.metrics.recordCheck(ctx, models.BindingStatusBound)

	return &models.CheckMonitorResponse{Status: models.BindingStatusBound, SeatID: &seatID}, nil
}

// BindSeat binds the monitor to req.SeatID. A monitor already bound to a
// different seat is moved without confirmation and the move is logged.
func (s *Service) BindSeat(ctx context.Context, req *models.BindSeatRequest) (*models.BindSeatResponse, error) {
	if strings.TrimSpace(req.SeatID) == "" {
		s.metrics.recordBind(ctx, outcomeInvalid, false)
		return nil, fmt.Errorf("%w: seat_id is required", ErrInvalidBindRequest)
	}

	if strings.TrimSpace(req.Monitor.SerialNumber) == "" {
		s.metrics.recordBind(ctx, outcomeInvalid, false)
		return nil, fmt.Errorf("%w: monitor serial_number is required", ErrInvalidBindRequest)
	}

	previous, wasBound, err := s.store.LookupSeat(ctx, req.Monitor.SerialNumber)
	if err != nil {
		s.log.Debug().Err(err).Str("monitor_sn", req.Monitor.SerialNumber).Msg("Previous binding lookup failed")
	}

	rebind := wasBound && previous != req.SeatID
	if rebind {
		s.log.Warn().
			Str("monitor_sn", req.Monitor.SerialNumber).
			Str("old_seat_id", previous).
			Str("new_seat_id", req.SeatID).
			Msg("Monitor rebound to a different seat")
	}

	now := s.now()

	err = s.store.BindSeat(ctx, &models.Binding{
		MonitorSN: req.Monitor.SerialNumber,
		VendorID:  req.Monitor.VendorID,
		ProductID: req.Monitor.ProductID,
		SeatID:    req.SeatID,
		CreatedAt: now,
	})
	if err != nil {
		s.metrics.recordBind(ctx, outcomeError, rebind)
		return nil, err
	}

	s.metrics.recordBind(ctx, outcomeSuccess, rebind)

	s.log.Info().
		Str("monitor_sn", req.Monitor.SerialNumber).
		Str("seat_id", req.SeatID).
		Msg("Seat bound")

	if s.events != nil {
		data := models.SeatBoundEventData{
			MonitorSN: req.Monitor.SerialNumber,
			VendorID:  req.Monitor.VendorID,
			ProductID: req.Monitor.ProductID,
			SeatID:    req.SeatID,
			Timestamp: now,
		}
		if rebind {
			data.PreviousSeat = previous
		}

		if err := s.events.PublishSeatBound(ctx, data); err != nil {
			s.log.Warn().Err(err).Str("seat_id", req.SeatID).Msg("Failed to publish seat bound event")
		}
	}

	return &models.BindSeatResponse{
		Status:  models.StatusSuccess,
		Message: fmt.Sprintf("Monitor %s bound to seat %s", req.Monitor.SerialNumber, req.SeatID),
	}, nil
}

// Heartbeat records presence for req.SeatID at the current time. The seat
// does not need a binding.
func (s *Service) Heartbeat(ctx context.Context, req *models.HeartbeatRequest) (*models.HeartbeatResponse, error) {
	if strings.TrimSpace(req.SeatID) == "" {
		s.metrics.recordHeartbeat(ctx, outcomeInvalid)
		return nil, fmt.Errorf("%w: seat_id is required", ErrInvalidHeartbeat)
	}

	now := s.now()

	err := s.store.ReportPresence(ctx, &models.PresenceRecord{
		SeatID:        req.SeatID,
		UserName:      req.UserName,
		HostName:      req.HostName,
		MachineSerial: req.MachineSerial,
		LastReportAt:  now,
	})
	if err != nil {
		s.metrics.recordHeartbeat(ctx, outcomeError)
		return nil, err
	}

	s.metrics.recordHeartbeat(ctx, outcomeSuccess)

	s.log.Debug().
		Str("seat_id", req.SeatID).
		Str("monitor_sn", req.MonitorSN).
		Str("user", req.UserName).
		Msg("Heartbeat recorded")

	if s.events != nil {
		err := s.events.PublishSeatHeartbeat(ctx, models.SeatHeartbeatEventData{
			SeatID:        req.SeatID,
			MonitorSN:     req.MonitorSN,
			UserName:      req.UserName,
			HostName:      req.HostName,
			MachineSerial: req.MachineSerial,
			Timestamp:     now,
		})
		if err != nil {
			s.log.Warn().Err(err).Str("seat_id", req.SeatID).Msg("Failed to publish heartbeat event")
		}
	}

	return &models.HeartbeatResponse{Status: models.StatusOK}, nil
}

// SeatMappings joins every binding with the latest presence for its seat,
// ordered by seat id. Seats never reported have a nil LastUser.
func (s *Service) SeatMappings(ctx context.Context) ([]models.SeatMapping, error) {
	bindings, err := s.store.ListBindings(ctx)
	if err != nil {
		return nil, err
	}

	presence, err := s.store.ListPresence(ctx)
	if err != nil {
		return nil, err
	}

	bySeat := make(map[string]*models.PresenceRecord, len(presence))
	for i := range presence {
		bySeat[presence[i].SeatID] = &presence[i]
	}

	now := s.now()
	out := make([]models.SeatMapping, 0, len(bindings))

	for _, b := range bindings {
		mapping := models.SeatMapping{
			SeatID:    b.SeatID,
			MonitorSN: b.MonitorSN,
			BoundAt:   b.CreatedAt,
		}

		if rec, ok := bySeat[b.SeatID]; ok {
			mapping.LastUser = &models.LastUser{
				UserName:      rec.UserName,
				HostName:      rec.HostName,
				MachineSerial: rec.MachineSerial,
				LastSeen:      rec.LastReportAt,
				IsActive:      models.IsOnline(rec, now),
			}
		}

		out = append(out, mapping)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].SeatID < out[j].SeatID })

	return out, nil
}

// Dashboard lists every reported seat, most recently seen first.
func (s *Service) Dashboard(ctx context.Context) ([]models.DashboardEntry, error) {
	presence, err := s.store.ListPresence(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(presence, func(i, j int) bool {
		return presence[i].LastReportAt.After(presence[j].LastReportAt)
	})

	now := s.now()
	out := make([]models.DashboardEntry, 0, len(presence))

	for i := range presence {
		rec := &presence[i]
		out = append(out, models.DashboardEntry{
			SeatID:   rec.SeatID,
			User:     rec.UserName,
			Host:     rec.HostName,
			LastSeen: rec.LastReportAt,
			Status:   models.StatusOf(rec, now),
		})
	}

	return out, nil
}
