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

package probe

import "strings"

// decodeWMIString converts the zero-padded UTF-16 code arrays WmiMonitorID
// returns (ManufacturerName, ProductCodeID, SerialNumberID) into a string.
func decodeWMIString(codes []int32) string {
	var sb strings.Builder

	for _, c := range codes {
		if c <= 0 || c > 0xFFFF {
			continue
		}

		sb.WriteRune(rune(c))
	}

	return strings.TrimSpace(sb.String())
}
