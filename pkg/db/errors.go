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

package db

import "errors"

var (
	ErrFailedOpenDB      = errors.New("failed to open database")
	ErrFailedToInit      = errors.New("failed to initialize schema")
	ErrFailedToQuery     = errors.New("failed to query")
	ErrFailedToInsert    = errors.New("failed to insert")
	ErrFailedToScan      = errors.New("failed to scan")
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrSchemaMissing marks a statement that failed because a table was absent.
	ErrSchemaMissing = errors.New("schema missing")

	ErrMonitorSNRequired = errors.New("monitor serial is required")
	ErrSeatIDRequired    = errors.New("seat id is required")
	ErrBindingNil        = errors.New("binding is nil")
	ErrPresenceNil       = errors.New("presence record is nil")
)
