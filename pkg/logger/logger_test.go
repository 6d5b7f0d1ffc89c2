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

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	zl, err := New(&Config{Level: "debug", Output: "stdout"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, zl.GetLevel())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&Config{Level: "shouting"})
	require.Error(t, err)

	_, err = NewComponent("core", &Config{Level: "shouting"})
	require.Error(t, err)
}

func TestSetDebug(t *testing.T) {
	l, err := NewComponent("agent", &Config{Level: "warn"})
	require.NoError(t, err)

	l.SetDebug(true)
	assert.True(t, l.Debug().Enabled())

	l.SetDebug(false)
	assert.False(t, l.Debug().Enabled())
	assert.True(t, l.Info().Enabled())
}

func TestWithComponent(t *testing.T) {
	l, err := NewComponent("core", &Config{Level: "info"})
	require.NoError(t, err)

	assert.Equal(t, zerolog.InfoLevel, l.WithComponent("api").GetLevel())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(&Config{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel(&Config{Level: "warn"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	level, err = ParseLevel(&Config{Level: "error", Debug: true})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_OUTPUT", "stderr")
	t.Setenv("DEBUG", "yes please")

	config := DefaultConfig()

	assert.Equal(t, "info", config.Level)
	assert.Equal(t, "stderr", config.Output)
	assert.False(t, config.Debug)
}

func TestNewTestLoggerIsSilent(t *testing.T) {
	l := NewTestLogger()

	assert.False(t, l.Info().Enabled())
	assert.False(t, l.Error().Enabled())
}
