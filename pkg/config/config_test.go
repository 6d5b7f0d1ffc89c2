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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidate_JSONWithComments(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	path := writeFile(t, "core.json", `{
	// coordinator settings
	"listen_addr": ":9000",
	"database": {"driver": "sqlite", "path": "/var/lib/seats.db",},
	"cors": {"allowed_origins": ["https://ops.example.com"]},
}`)

	var cfg models.CoreConfig
	require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), path, &cfg))

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/var/lib/seats.db", cfg.Database.Path)
	assert.Equal(t, []string{"https://ops.example.com"}, cfg.CORS.AllowedOrigins)
	assert.NotNil(t, cfg.Logging)
}

func TestLoadAndValidate_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")
	t.Setenv(models.ServerURLEnv, "")

	var cfg models.AgentConfig
	require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, models.DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, models.DefaultPollInterval, time.Duration(cfg.PollInterval))
	assert.Equal(t, models.PromptTUI, cfg.Prompt)
}

func TestLoadAndValidate_YAML(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "file")
	t.Setenv(models.ServerURLEnv, "")

	path := writeFile(t, "agent.yaml", `
server_url: http://seats.internal:8000/
poll_interval: 30s
request_timeout: 5s
prompt: none
`)

	var cfg models.AgentConfig
	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg))

	assert.Equal(t, "http://seats.internal:8000", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, time.Duration(cfg.PollInterval))
	assert.Equal(t, 5*time.Second, time.Duration(cfg.RequestTimeout))
	assert.Equal(t, models.PromptNone, cfg.Prompt)
}

func TestLoadAndValidate_EnvSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("CONFIG_ENV_PREFIX", "")
	t.Setenv("SEATMONITOR_LISTEN_ADDR", ":8100")
	t.Setenv("SEATMONITOR_DATABASE_DRIVER", "postgres")
	t.Setenv("SEATMONITOR_DATABASE_POSTGRES_HOST", "db.internal")
	t.Setenv("SEATMONITOR_DATABASE_POSTGRES_DATABASE", "seats")
	t.Setenv("SEATMONITOR_DATABASE_POSTGRES_PORT", "6432")
	t.Setenv("SEATMONITOR_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	var cfg models.CoreConfig
	require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, ":8100", cfg.ListenAddr)
	assert.Equal(t, models.DriverPostgres, cfg.Database.Driver)
	require.NotNil(t, cfg.Database.Postgres)
	assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
	assert.Equal(t, 6432, cfg.Database.Postgres.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadAndValidate_EnvDurations(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("CONFIG_ENV_PREFIX", "AGENT_")
	t.Setenv(models.ServerURLEnv, "")
	t.Setenv("AGENT_SERVER_URL", "https://seats.example.com")
	t.Setenv("AGENT_POLL_INTERVAL", "2m")

	var cfg models.AgentConfig
	require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, 2*time.Minute, time.Duration(cfg.PollInterval))
	assert.Equal(t, "https://seats.example.com", cfg.ServerURL)
}

func TestLoadAndValidate_EnvConfigJSON(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("CONFIG_ENV_PREFIX", "")
	t.Setenv("SEATMONITOR_CONFIG_JSON", `{"listen_addr": ":7000"}`)

	var cfg models.CoreConfig
	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg))
	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, models.DriverSQLite, cfg.Database.Driver)
}

func TestLoadAndValidate_Errors(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "consul")

	var cfg models.CoreConfig
	err := NewConfig(nil).LoadAndValidate(context.Background(), "core.json", &cfg)
	require.ErrorIs(t, err, errInvalidConfigSource)

	t.Setenv("CONFIG_SOURCE", "file")

	err = NewConfig(nil).LoadAndValidate(context.Background(), filepath.Join(t.TempDir(), "missing.json"), &cfg)
	require.Error(t, err)

	path := writeFile(t, "bad.json", `{"database": {"driver": "mysql"}}`)
	err = NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg)
	require.Error(t, err)
}

func TestEnvConfigLoader_RejectsNonStruct(t *testing.T) {
	loader := NewEnvConfigLoader(nil, "X_")

	var s string
	require.ErrorIs(t, loader.Load(context.Background(), "", &s), ErrDstMustBePointerToStruct)
	require.ErrorIs(t, loader.Load(context.Background(), "", nil), ErrDstMustBeNonNilPointer)
}

func TestEnvConfigLoader_OptionalSectionsStayNil(t *testing.T) {
	t.Setenv("SEATS_LISTEN_ADDR", ":8200")

	var cfg models.CoreConfig
	require.NoError(t, NewEnvConfigLoader(logger.NewTestLogger(), "SEATS_").Load(context.Background(), "", &cfg))

	assert.Equal(t, ":8200", cfg.ListenAddr)
	assert.Nil(t, cfg.NATS)
	assert.Nil(t, cfg.Database.Postgres)
	assert.Nil(t, cfg.Logging)

	t.Setenv("SEATS_NATS_URL", "nats://bus:4222")
	t.Setenv("SEATS_LOGGING_LEVEL", "debug")

	require.NoError(t, NewEnvConfigLoader(logger.NewTestLogger(), "SEATS_").Load(context.Background(), "", &cfg))
	require.NotNil(t, cfg.NATS)
	assert.Equal(t, "nats://bus:4222", cfg.NATS.URL)
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvConfigLoader_InvalidValue(t *testing.T) {
	t.Setenv("SEATS_POLL_INTERVAL", "soon")

	var cfg models.AgentConfig
	err := NewEnvConfigLoader(nil, "SEATS_").Load(context.Background(), "", &cfg)
	require.ErrorIs(t, err, errInvalidEnvValue)
	assert.Contains(t, err.Error(), "SEATS_POLL_INTERVAL")
}
