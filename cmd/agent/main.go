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
	"log"
	"time"

	"github.com/spf13/pflag"

	"github.com/carverauto/seatmonitor/pkg/agent"
	"github.com/carverauto/seatmonitor/pkg/cli"
	"github.com/carverauto/seatmonitor/pkg/config"
	"github.com/carverauto/seatmonitor/pkg/lifecycle"
	"github.com/carverauto/seatmonitor/pkg/models"
	"github.com/carverauto/seatmonitor/pkg/probe"
	"github.com/carverauto/seatmonitor/pkg/version"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := pflag.String("config", "", "Path to agent config file (defaults are used when empty)")
	once := pflag.Bool("once", false, "Run a single cycle and exit")
	pflag.Parse()

	ctx := context.Background()

	var cfg models.AgentConfig
	if err := config.NewConfig(nil).LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	agentLogger, err := lifecycle.CreateComponentLogger("agent", cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	prompter, err := cli.NewPrompter(cfg.Prompt, agentLogger)
	if err != nil {
		return err
	}

	prober := probe.New(agentLogger)

	a, err := agent.New(&cfg, agent.Dependencies{
		Client:   agent.NewHTTPClient(cfg.ServerURL, time.Duration(cfg.RequestTimeout), nil, agentLogger),
		Prober:   prober,
		Prompter: prompter,
		Machine:  probe.NewMachineCollector(agentLogger, prober),
	}, agentLogger)
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}

	agentLogger.Info().
		Str("version", version.Full()).
		Str("server_url", cfg.ServerURL).
		Msg("Seat agent configured")

	if *once {
		outcome, err := a.RunCycle(ctx)
		fmt.Println(outcome)

		return err
	}

	return lifecycle.RunServer(ctx, &lifecycle.ServerOptions{
		ServiceName: "seatmonitor-agent",
		Service:     a,
		Logger:      agentLogger,
	})
}
