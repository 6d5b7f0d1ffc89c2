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

// Package app wires the coordinator service together.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/carverauto/seatmonitor/pkg/config"
	"github.com/carverauto/seatmonitor/pkg/core"
	"github.com/carverauto/seatmonitor/pkg/core/api"
	"github.com/carverauto/seatmonitor/pkg/db"
	"github.com/carverauto/seatmonitor/pkg/lifecycle"
	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
	"github.com/carverauto/seatmonitor/pkg/natsutil"
	"github.com/carverauto/seatmonitor/pkg/version"
)

const (
	serviceName = "seatmonitor-core"

	metricsShutdownTimeout = 5 * time.Second
)

// Options contains runtime configuration derived from CLI flags.
type Options struct {
	ConfigPath string
}

// Run boots the coordinator and blocks until it is shut down.
func Run(ctx context.Context, opts Options) error {
	var cfg models.CoreConfig
	if err := config.NewConfig(nil).LoadAndValidate(ctx, opts.ConfigPath, &cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	mainLogger, err := lifecycle.CreateComponentLogger("core", cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	mainLogger.Info().
		Str("version", version.Full()).
		Str("listen_addr", cfg.ListenAddr).
		Msg("Starting seat monitor coordinator")

	store, err := db.New(ctx, &cfg.Database, mainLogger)
	if err != nil {
		return fmt.Errorf("failed to open seat store: %w", err)
	}

	defer func() {
		if err := store.Close(); err != nil {
			mainLogger.Error().Err(err).Msg("Error closing seat store")
		}
	}()

	var svcOpts []core.Option

	provider, err := logger.InitializeMetrics(ctx, cfg.OTel.Metrics(serviceName, version.Full()))
	switch {
	case err == nil:
		defer shutdownMetrics(mainLogger)

		svcOpts = append(svcOpts, core.WithMeterProvider(provider))

		mainLogger.Info().Str("endpoint", cfg.OTel.Endpoint).Msg("OTel metrics exporter enabled")
	case !errors.Is(err, logger.ErrOTelMetricsDisabled):
		mainLogger.Warn().Err(err).Msg("OTel metrics disabled")
	}

	if cfg.NATS.Enabled() {
		nc, publisher, err := connectEvents(ctx, cfg.NATS, mainLogger)
		if err != nil {
			mainLogger.Warn().Err(err).Str("url", cfg.NATS.URL).Msg("Seat events disabled")
		} else {
			defer nc.Close()

			svcOpts = append(svcOpts, core.WithEventPublisher(publisher))
		}
	}

	svc := core.NewService(store, mainLogger, svcOpts...)

	apiServer := api.NewAPIServer(cfg.CORS,
		api.WithSeatService(svc),
		api.WithLogger(mainLogger),
		api.WithListenAddr(cfg.ListenAddr),
	)

	return lifecycle.RunServer(ctx, &lifecycle.ServerOptions{
		ServiceName: serviceName,
		Service:     apiServer,
		Logger:      mainLogger,
	})
}

func shutdownMetrics(log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()

	if err := logger.ShutdownMetrics(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to flush metrics")
	}
}

func connectEvents(ctx context.Context, cfg *models.NATSConfig, log logger.Logger) (*nats.Conn, *natsutil.EventPublisher, error) {
	nc, err := natsutil.Connect(cfg.URL, log)
	if err != nil {
		return nil, nil, err
	}

	publisher, err := natsutil.CreateEventPublisher(ctx, nc, cfg, log)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	return nc, publisher, nil
}
