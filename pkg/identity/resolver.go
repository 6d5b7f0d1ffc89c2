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

// Package identity derives a stable identifier for a physical display from
// whatever the platform probe was able to read.
package identity

import (
	"crypto/md5" //nolint:gosec // identifiers must stay compatible with existing bindings
	"encoding/hex"
	"strings"

	"github.com/carverauto/seatmonitor/pkg/models"
)

const (
	// SyntheticPrefix marks identifiers that were derived rather than read from the display.
	SyntheticPrefix = "GEN-"

	syntheticHexLen = 12
	unknownMarker   = "UNKNOWN"
)

// IsSentinel reports whether serial is one of the values platforms use to mean "no serial".
func IsSentinel(serial string) bool {
	s := strings.TrimSpace(serial)

	return s == "" || s == "0" || strings.EqualFold(s, unknownMarker)
}

// IsSynthetic reports whether serial was produced by SyntheticSerial.
func IsSynthetic(serial string) bool {
	return strings.HasPrefix(serial, SyntheticPrefix)
}

// EDIDHash is the content hash of a raw EDID block, or "" when none was read.
func EDIDHash(edid []byte) string {
	if len(edid) == 0 {
		return ""
	}

	sum := md5.Sum(edid) //nolint:gosec

	return hex.EncodeToString(sum[:])
}

// SyntheticSerial builds the deterministic stand-in identifier for a display
// without a usable serial.
func SyntheticSerial(vendorID, productID, edidHash string) string {
	sum := md5.Sum([]byte(vendorID + "-" + productID + "-" + edidHash)) //nolint:gosec

	return SyntheticPrefix + hex.EncodeToString(sum[:])[:syntheticHexLen]
}

// Resolve turns a probe record into a MonitorRecord. It never fails and has no
// side effects; the same descriptor always yields the same record.
//
// Precedence: a usable platform serial, then the EDID serial descriptor, then
// a synthetic identifier over vendor, product and EDID hash.
func Resolve(d models.MonitorDescriptor) models.MonitorRecord {
	rec := models.MonitorRecord{
		VendorID:  d.VendorID,
		ProductID: d.ProductID,
	}

	if !IsSentinel(d.PlatformSerial) {
		rec.SerialNumber = d.PlatformSerial
		return rec
	}

	if serial, ok := EDIDSerial(d.RawEDID); ok && !IsSentinel(serial) {
		rec.SerialNumber = serial
		return rec
	}

	hash := d.EDIDHash
	if hash == "" {
		hash = EDIDHash(d.RawEDID)
	}

	rec.SerialNumber = SyntheticSerial(d.VendorID, d.ProductID, hash)

	return rec
}

// ResolveAll resolves every descriptor in probe order.
func ResolveAll(ds []models.MonitorDescriptor) []models.MonitorRecord {
	out := make([]models.MonitorRecord, 0, len(ds))
	for _, d := range ds {
		out = append(out, Resolve(d))
	}

	return out
}
