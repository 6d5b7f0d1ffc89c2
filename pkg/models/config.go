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
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/carverauto/seatmonitor/pkg/logger"
)

var (
	errInvalidDuration        = errors.New("invalid duration")
	errListenAddrRequired     = errors.New("listen_addr is required")
	errUnsupportedDriver      = errors.New("unsupported database driver")
	errDatabasePathRequired   = errors.New("database.path is required for sqlite")
	errPostgresHostRequired   = errors.New("database.postgres.host is required")
	errPostgresNameRequired   = errors.New("database.postgres.database is required")
	errServerURLInvalid       = errors.New("server_url must be an absolute http(s) URL")
	errPollIntervalInvalid    = errors.New("poll_interval must be positive")
	errRequestTimeoutInvalid  = errors.New("request_timeout must be positive")
	errUnsupportedPromptMode  = errors.New("unsupported prompt mode")
	errNATSStreamNameRequired = errors.New("nats.stream_name is required")
	errOTelEndpointRequired   = errors.New("otel.endpoint is required when otel is enabled")
	errExportIntervalInvalid  = errors.New("otel.export_interval must be positive")
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	PromptTUI  = "tui"
	PromptNone = "none"

	DefaultListenAddr     = ":8000"
	DefaultDatabasePath   = "seat_monitor.db"
	DefaultServerURL      = "http://localhost:8000"
	DefaultPollInterval   = 60 * time.Second
	DefaultRequestTimeout = 10 * time.Second

	// ServerURLEnv overrides AgentConfig.ServerURL when set.
	ServerURLEnv = "SEAT_MONITOR_URL"
)

// Duration is a time.Duration that unmarshals from "10s"-style strings.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// CORSConfig controls cross-origin access to the HTTP API.
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins,omitempty"`
	AllowCredentials bool     `json:"allow_credentials,omitempty"`
}

// PostgresConfig holds connection settings for the PostgreSQL backend.
type PostgresConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port,omitempty"`
	Database        string `json:"database"`
	Username        string `json:"username,omitempty"`
	Password        string `json:"password,omitempty"`
	SSLMode         string `json:"ssl_mode,omitempty"`
	ApplicationName string `json:"application_name,omitempty"`
	MaxConnections  int    `json:"max_connections,omitempty"`
}

// DSN renders the settings as a libpq-style URL for pgx.
func (c *PostgresConfig) DSN() string {
	port := c.Port
	if port == 0 {
		port = 5432
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.Host, port),
		Path:   "/" + c.Database,
	}

	if c.Username != "" {
		u.User = url.UserPassword(c.Username, c.Password)
	}

	q := url.Values{}
	q.Set("sslmode", sslMode)

	if c.ApplicationName != "" {
		q.Set("application_name", c.ApplicationName)
	}

	u.RawQuery = q.Encode()

	return u.String()
}

// DatabaseConfig selects and configures the binding/presence store.
type DatabaseConfig struct {
	Driver   string          `json:"driver"`
	Path     string          `json:"path,omitempty"`
	PoolSize int             `json:"pool_size,omitempty"`
	Postgres *PostgresConfig `json:"postgres,omitempty"`
}

func (c *DatabaseConfig) Validate() error {
	if c.Driver == "" {
		c.Driver = DriverSQLite
	}

	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			c.Path = DefaultDatabasePath
		}

		if strings.TrimSpace(c.Path) == "" {
			return errDatabasePathRequired
		}
	case DriverPostgres:
		if c.Postgres == nil || c.Postgres.Host == "" {
			return errPostgresHostRequired
		}

		if c.Postgres.Database == "" {
			return errPostgresNameRequired
		}
	default:
		return fmt.Errorf("%w: %q", errUnsupportedDriver, c.Driver)
	}

	return nil
}

// NATSConfig enables optional publication of seat events to JetStream.
type NATSConfig struct {
	URL        string   `json:"url"`
	StreamName string   `json:"stream_name,omitempty"`
	Subjects   []string `json:"subjects,omitempty"`
}

// Enabled reports whether a NATS URL was configured.
func (c *NATSConfig) Enabled() bool {
	return c != nil && c.URL != ""
}

func (c *NATSConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}

	if c.StreamName == "" {
		c.StreamName = "events"
	}

	if len(c.Subjects) == 0 {
		c.Subjects = []string{"events.seat.*"}
	}

	if strings.TrimSpace(c.StreamName) == "" {
		return errNATSStreamNameRequired
	}

	return nil
}

// OTelConfig enables pushing coordinator metrics to an OTLP/gRPC collector.
type OTelConfig struct {
	Enabled        bool              `json:"enabled"`
	Endpoint       string            `json:"endpoint"`
	Headers        map[string]string `json:"headers,omitempty"`
	Insecure       bool              `json:"insecure,omitempty"`
	TLS            *logger.TLSConfig `json:"tls,omitempty"`
	ExportInterval Duration          `json:"export_interval,omitempty"`
}

func (c *OTelConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}

	if strings.TrimSpace(c.Endpoint) == "" {
		return errOTelEndpointRequired
	}

	if c.ExportInterval < 0 {
		return errExportIntervalInvalid
	}

	return nil
}

// Metrics converts the block for logger.InitializeMetrics. A nil or
// disabled block yields a config with no endpoint.
func (c *OTelConfig) Metrics(serviceName, serviceVersion string) logger.MetricsConfig {
	out := logger.MetricsConfig{ServiceName: serviceName, ServiceVersion: serviceVersion}
	if c == nil || !c.Enabled {
		return out
	}

	out.Endpoint = c.Endpoint
	out.Headers = c.Headers
	out.Insecure = c.Insecure
	out.TLS = c.TLS
	out.ExportInterval = time.Duration(c.ExportInterval)

	return out
}

// CoreConfig is the configuration of the coordinator service.
type CoreConfig struct {
	ListenAddr string         `json:"listen_addr"`
	Database   DatabaseConfig `json:"database"`
	CORS       CORSConfig     `json:"cors,omitempty"`
	NATS       *NATSConfig    `json:"nats,omitempty"`
	OTel       *OTelConfig    `json:"otel,omitempty"`
	Logging    *logger.Config `json:"logging,omitempty"`
}

// Validate fills defaults and rejects unusable settings.
func (c *CoreConfig) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}

	if strings.TrimSpace(c.ListenAddr) == "" {
		return errListenAddrRequired
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}

	if c.NATS != nil {
		if err := c.NATS.Validate(); err != nil {
			return err
		}
	}

	if err := c.OTel.Validate(); err != nil {
		return err
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}

	return nil
}

// AgentConfig is the configuration of the workstation agent.
type AgentConfig struct {
	ServerURL      string         `json:"server_url"`
	PollInterval   Duration       `json:"poll_interval"`
	RequestTimeout Duration       `json:"request_timeout"`
	Prompt         string         `json:"prompt,omitempty"`
	Logging        *logger.Config `json:"logging,omitempty"`
}

// Validate fills defaults, applies the SEAT_MONITOR_URL override and checks values.
func (c *AgentConfig) Validate() error {
	if override := strings.TrimSpace(os.Getenv(ServerURLEnv)); override != "" {
		c.ServerURL = override
	}

	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}

	c.ServerURL = strings.TrimRight(c.ServerURL, "/")

	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", errServerURLInvalid, c.ServerURL)
	}

	if c.PollInterval == 0 {
		c.PollInterval = Duration(DefaultPollInterval)
	}

	if c.PollInterval < 0 {
		return errPollIntervalInvalid
	}

	if c.RequestTimeout == 0 {
		c.RequestTimeout = Duration(DefaultRequestTimeout)
	}

	if c.RequestTimeout < 0 {
		return errRequestTimeoutInvalid
	}

	switch c.Prompt {
	case "":
		c.Prompt = PromptTUI
	case PromptTUI, PromptNone:
	default:
		return fmt.Errorf("%w: %q", errUnsupportedPromptMode, c.Prompt)
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}

	return nil
}
