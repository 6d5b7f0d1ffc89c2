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

// Package version reports the build version of the seatmonitor binaries.
package version

// Overridden at link time:
//
//	-ldflags "-X github.com/carverauto/seatmonitor/pkg/version.version=1.2.0 -X ...version.buildID=abc123"
//
//nolint:gochecknoglobals // ldflags injection
var (
	version = "dev"
	buildID = ""
)

// Version returns the release version, "dev" for local builds.
func Version() string {
	return version
}

// Full returns the version with the build ID appended when one was injected.
func Full() string {
	if buildID == "" {
		return version
	}

	return version + "+" + buildID
}
