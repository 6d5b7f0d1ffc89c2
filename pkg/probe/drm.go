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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/carverauto/seatmonitor/pkg/identity"
	"github.com/carverauto/seatmonitor/pkg/models"
)

const (
	defaultDRMRoot = "/sys/class/drm"
	defaultDMIRoot = "/sys/class/dmi/id"
)

// internalConnectors are laptop panel connector types, never seat monitors.
var internalConnectors = []string{"eDP", "LVDS", "DSI"}

// ScanDRM lists connected external displays under a sysfs DRM root such as
// /sys/class/drm. Connectors without an EDID are skipped.
func ScanDRM(root string) ([]models.MonitorDescriptor, error) {
	dirs, err := filepath.Glob(filepath.Join(root, "card*-*"))
	if err != nil {
		return nil, err
	}

	sort.Strings(dirs)

	out := make([]models.MonitorDescriptor, 0, len(dirs))

	for _, dir := range dirs {
		connector := connectorName(filepath.Base(dir))
		if isInternalConnector(connector) {
			continue
		}

		status, err := os.ReadFile(filepath.Join(dir, "status"))
		if err != nil || strings.TrimSpace(string(status)) != "connected" {
			continue
		}

		edid, err := os.ReadFile(filepath.Join(dir, "edid"))
		if err != nil || len(edid) == 0 {
			continue
		}

		d := models.MonitorDescriptor{RawEDID: edid, Connector: connector}
		d.VendorID, d.ProductID, _ = identity.EDIDVendorProduct(edid)

		if _, ok := identity.EDIDSerial(edid); !ok {
			if n := edidNumericSerial(edid); n != 0 {
				d.PlatformSerial = strconv.FormatUint(uint64(n), 10)
			}
		}

		out = append(out, d)
	}

	return out, nil
}

// ReadDMISerial returns the board serial exposed by the kernel DMI driver.
func ReadDMISerial(root string) (string, error) {
	for _, name := range []string{"product_serial", "board_serial"} {
		b, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				continue
			}

			return "", err
		}

		if s := strings.TrimSpace(string(b)); !identity.IsSentinel(s) {
			return s, nil
		}
	}

	return "", errNoPlatformSerial
}

// connectorName strips the "cardN-" prefix: card0-HDMI-A-1 -> HDMI-A-1.
func connectorName(base string) string {
	if _, rest, ok := strings.Cut(base, "-"); ok {
		return rest
	}

	return base
}

func isInternalConnector(connector string) bool {
	for _, prefix := range internalConnectors {
		if strings.HasPrefix(connector, prefix) {
			return true
		}
	}

	return false
}

// edidNumericSerial is the 32-bit serial in bytes 12..15 of the EDID header.
func edidNumericSerial(edid []byte) uint32 {
	if len(edid) < 16 {
		return 0
	}

	return uint32(edid[12]) | uint32(edid[13])<<8 | uint32(edid[14])<<16 | uint32(edid[15])<<24
}
