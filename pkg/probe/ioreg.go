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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carverauto/seatmonitor/pkg/identity"
	"github.com/carverauto/seatmonitor/pkg/models"
	"howett.net/plist"
)

const (
	ioregEDIDKey           = "IODisplayEDID"
	ioregVendorKey         = "DisplayVendorID"
	ioregProductKey        = "DisplayProductID"
	ioregSerialKey         = "DisplaySerialNumber"
	ioregPlatformSerialKey = "IOPlatformSerialNumber"

	// appleVendorID is the DisplayVendorID of built-in Apple panels.
	appleVendorID = 1552
)

// ParseIORegDisplays decodes `ioreg -a` plist output for IODisplayConnect and
// returns one descriptor per external display carrying an EDID.
func ParseIORegDisplays(data []byte) ([]models.MonitorDescriptor, error) {
	var root any
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedIOReg, err)
	}

	nodes := FindNodesWithKey(root, ioregEDIDKey)
	out := make([]models.MonitorDescriptor, 0, len(nodes))

	for _, node := range nodes {
		vendor, _ := plistUint(node[ioregVendorKey])
		if vendor == appleVendorID {
			continue
		}

		product, _ := plistUint(node[ioregProductKey])
		edid, _ := node[ioregEDIDKey].([]byte)

		d := models.MonitorDescriptor{
			VendorID:  strconv.FormatUint(vendor, 10),
			ProductID: strconv.FormatUint(product, 10),
			RawEDID:   edid,
		}

		// The EDID text serial is preferred over the numeric one ioreg reports.
		if _, ok := identity.EDIDSerial(edid); !ok {
			if serial, ok := plistUint(node[ioregSerialKey]); ok && serial != 0 {
				d.PlatformSerial = strconv.FormatUint(serial, 10)
			}
		}

		out = append(out, d)
	}

	return out, nil
}

// ParseIORegPlatformSerial extracts IOPlatformSerialNumber from `ioreg -a`
// output for IOPlatformExpertDevice.
func ParseIORegPlatformSerial(data []byte) (string, error) {
	var root any
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return "", fmt.Errorf("%w: %w", errMalformedIOReg, err)
	}

	for _, node := range FindNodesWithKey(root, ioregPlatformSerialKey) {
		if s, ok := node[ioregPlatformSerialKey].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s), nil
		}
	}

	return "", errNoPlatformSerial
}

func plistUint(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case int64:
		if n < 0 {
			return 0, false
		}

		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}

		return uint64(n), true
	case float64:
		return uint64(n), n >= 0
	default:
		return 0, false
	}
}
