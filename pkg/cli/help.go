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

package cli

import (
	"fmt"
	"io"
)

// ShowHelp writes the usage message.
func ShowHelp(w io.Writer) {
	_, _ = fmt.Fprint(w, `seatctl: seat monitor operator tool
Usage:
  seatctl <command> [options]

Commands:
  mappings    List seat bindings with the last user seen at each seat
  presence    List seats by most recent heartbeat with online/offline status
  identify    Probe local displays and show the identity each resolves to
  version     Print the version

Options:
  --server string     coordinator base URL (default $SEAT_MONITOR_URL or http://localhost:8000)
  --timeout duration  request timeout (default 10s)
  -o, --output string output format: table or json (default "table")
  -h, --help          show this help message

Examples:
  seatctl mappings
  seatctl presence --server http://seats.internal:8000
  seatctl identify -o json
`)
}
