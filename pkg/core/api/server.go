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

// Package api serves the coordinator over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/carverauto/seatmonitor/pkg/core"
	srHttp "github.com/carverauto/seatmonitor/pkg/http"
	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second

	maxRequestBody = 1 << 20

	runningMessage = "SeatMonitor Server Running"
)

var errServiceNotConfigured = errors.New("seat service not configured")

// APIServer routes coordinator requests to a SeatService.
type APIServer struct {
	router     *mux.Router
	service    SeatService
	logger     logger.Logger
	corsConfig models.CORSConfig
	addr       string

	mu      sync.Mutex
	srv     *http.Server
	stopped bool
}

// NewAPIServer creates a new API server instance with the given configuration.
func NewAPIServer(config models.CORSConfig, options ...func(server *APIServer)) *APIServer {
	s := &APIServer{
		router:     mux.NewRouter(),
		corsConfig: config,
		logger:     logger.NewTestLogger(),
		addr:       models.DefaultListenAddr,
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithSeatService sets the coordinator the routes delegate to.
func WithSeatService(svc SeatService) func(server *APIServer) {
	return func(server *APIServer) {
		server.service = svc
	}
}

// WithLogger sets the request and error logger.
func WithLogger(log logger.Logger) func(server *APIServer) {
	return func(server *APIServer) {
		server.logger = log
	}
}

// WithListenAddr sets the address Start listens on.
func WithListenAddr(addr string) func(server *APIServer) {
	return func(server *APIServer) {
		server.addr = addr
	}
}

// Handler exposes the router, mainly for tests.
func (s *APIServer) Handler() http.Handler {
	return s.router
}

func (s *APIServer) setupRoutes() {
	s.router.Use(func(next http.Handler) http.Handler {
		return srHttp.CommonMiddleware(next, s.corsConfig, s.logger)
	})

	s.router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	s.router.HandleFunc("/check_monitor", s.handleCheckMonitor).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/bind_seat", s.handleBindSeat).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/heartbeat", s.handleHeartbeat).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/mappings", s.handleMappings).Methods(http.MethodGet)
	s.router.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
}

func (s *APIServer) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, models.ServiceStatusResponse{Status: runningMessage})
}

func (s *APIServer) handleCheckMonitor(w http.ResponseWriter, r *http.Request) {
	var monitor models.MonitorRecord
	if !s.decode(w, r, &monitor) {
		return
	}

	resp, err := s.seatService().CheckMonitor(r.Context(), &monitor)
	if err != nil {
		s.fail(w, "check_monitor", err)
		return
	}

	s.respond(w, resp)
}

func (s *APIServer) handleBindSeat(w http.ResponseWriter, r *http.Request) {
	var req models.BindSeatRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp, err := s.seatService().BindSeat(r.Context(), &req)
	if err != nil {
		s.fail(w, "bind_seat", err)
		return
	}

	s.respond(w, resp)
}

func (s *APIServer) handleHeartbeat(w http.ResponseWriter, r *http.Request) {
	var req models.HeartbeatRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp, err := s.seatService().Heartbeat(r.Context(), &req)
	if err != nil {
		s.fail(w, "heartbeat", err)
		return
	}

	s.respond(w, resp)
}

func (s *APIServer) handleMappings(w http.ResponseWriter, r *http.Request) {
	mappings, err := s.seatService().SeatMappings(r.Context())
	if err != nil {
		s.fail(w, "mappings", err)
		return
	}

	s.respond(w, mappings)
}

func (s *APIServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.seatService().Dashboard(r.Context())
	if err != nil {
		s.fail(w, "dashboard", err)
		return
	}

	s.respond(w, entries)
}

func (s *APIServer) seatService() SeatService {
	if s.service == nil {
		return unconfiguredService{}
	}

	return s.service
}

func (s *APIServer) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(dst); err != nil {
		writeError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}

// fail maps validation errors to 400 and everything else to 500.
func (s *APIServer) fail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, core.ErrInvalidBindRequest) || errors.Is(err, core.ErrInvalidHeartbeat) {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.logger.Error().Err(err).Str("op", op).Msg("Request failed")
	writeError(w, err.Error(), http.StatusInternalServerError)
}

func (s *APIServer) respond(w http.ResponseWriter, data interface{}) {
	if err := s.encodeJSONResponse(w, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// encodeJSONResponse encodes a response as JSON
func (*APIServer) encodeJSONResponse(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")

	return json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)

	errResponse := models.ErrorResponse{
		Status:  models.StatusError,
		Message: message,
		Code:    statusCode,
	}

	if err := json.NewEncoder(w).Encode(errResponse); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// Start serves until Stop is called. It implements lifecycle.Service.
func (s *APIServer) Start(_ context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}

	s.srv = srv
	s.mu.Unlock()

	s.logger.Info().Str("addr", s.addr).Msg("Starting HTTP server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop drains in-flight requests.
func (s *APIServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.stopped = true
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	return srv.Shutdown(ctx)
}

type unconfiguredService struct{}

func (unconfiguredService) CheckMonitor(context.Context, *models.MonitorRecord) (*models.CheckMonitorResponse, error) {
	return nil, errServiceNotConfigured
}

func (unconfiguredService) BindSeat(context.Context, *models.BindSeatRequest) (*models.BindSeatResponse, error) {
	return nil, errServiceNotConfigured
}

func (unconfiguredService) Heartbeat(context.Context, *models.HeartbeatRequest) (*models.HeartbeatResponse, error) {
	return nil, errServiceNotConfigured
}

func (unconfiguredService) SeatMappings(context.Context) ([]models.SeatMapping, error) {
	return nil, errServiceNotConfigured
}

func (unconfiguredService) Dashboard(context.Context) ([]models.DashboardEntry, error) {
	return nil, errServiceNotConfigured
}

var _ SeatService = (*core.Service)(nil)
