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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carverauto/seatmonitor/pkg/agent"
	"github.com/carverauto/seatmonitor/pkg/cli"
	"github.com/carverauto/seatmonitor/pkg/lifecycle"
	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/probe"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seatctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		cli.ShowHelp(os.Stderr)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log, err := lifecycle.CreateComponentLogger("seatctl", &logger.Config{Level: "error", Output: "stderr"})
	if err != nil {
		return err
	}

	deps := cli.Deps{Out: os.Stdout}

	if cfg.NeedsServer() {
		deps.Client = agent.NewHTTPClient(cfg.ServerURL, cfg.Timeout, nil, log)
	} else {
		deps.Prober = probe.New(log)
	}

	return cli.Run(ctx, cfg, deps)
}
