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

package agent

import "errors"

var (
	// ErrServiceUnreachable wraps connection failures and timeouts talking to the coordinator.
	ErrServiceUnreachable = errors.New("coordinator unreachable")
	// ErrUnexpectedStatus is returned for non-2xx coordinator responses.
	ErrUnexpectedStatus = errors.New("unexpected coordinator response")
	ErrBindRejected     = errors.New("seat binding rejected")
	errCyclePanic       = errors.New("agent cycle panicked")
	errMissingDep       = errors.New("agent dependency is required")
)
