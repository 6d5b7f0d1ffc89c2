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
	"io"

	"github.com/rs/zerolog"
)

// Logger is the injected logging surface used by every seatmonitor component.
type Logger interface {
	Trace() *zerolog.Event
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	Fatal() *zerolog.Event
	Panic() *zerolog.Event
	With() zerolog.Context
	WithComponent(component string) zerolog.Logger
	WithFields(fields map[string]interface{}) zerolog.Logger
	SetLevel(level zerolog.Level)
	SetDebug(debug bool)
}

// zlog adapts a zerolog.Logger to Logger.
type zlog struct {
	zl zerolog.Logger
}

// Wrap returns zl as a Logger.
func Wrap(zl zerolog.Logger) Logger {
	return &zlog{zl: zl}
}

// NewTestLogger returns a disabled logger for tests.
func NewTestLogger() Logger {
	return Wrap(zerolog.New(io.Discard).Level(zerolog.Disabled))
}

func (l *zlog) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *zlog) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *zlog) Info() *zerolog.Event  { return l.zl.Info() }
func (l *zlog) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *zlog) Error() *zerolog.Event { return l.zl.Error() }
func (l *zlog) Fatal() *zerolog.Event { return l.zl.Fatal() }
func (l *zlog) Panic() *zerolog.Event { return l.zl.Panic() }
func (l *zlog) With() zerolog.Context { return l.zl.With() }

func (l *zlog) WithComponent(component string) zerolog.Logger {
	return l.zl.With().Str("component", component).Logger()
}

func (l *zlog) WithFields(fields map[string]interface{}) zerolog.Logger {
	return l.zl.With().Fields(fields).Logger()
}

func (l *zlog) SetLevel(level zerolog.Level) {
	l.zl = l.zl.Level(level)
}

// SetDebug switches between debug and info level.
func (l *zlog) SetDebug(debug bool) {
	if debug {
		l.SetLevel(zerolog.DebugLevel)
		return
	}

	l.SetLevel(zerolog.InfoLevel)
}
