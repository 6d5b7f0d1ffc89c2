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

package identity

import (
	"encoding/binary"
	"strconv"
	"strings"
)

const (
	descriptorLen       = 18
	serialDescriptorTag = 0xFF
	edidHeaderLen       = 20
)

// descriptorOffsets are the four 18-byte display descriptor slots of an EDID base block.
var descriptorOffsets = [...]int{54, 72, 90, 108}

var edidMagic = [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// EDIDSerial returns the ASCII serial carried in the first non-empty display
// serial number descriptor of edid. Slots that do not fit in the buffer are
// skipped; ok is false when no slot yields a serial.
func EDIDSerial(edid []byte) (serial string, ok bool) {
	for _, offset := range descriptorOffsets {
		if offset+descriptorLen > len(edid) {
			continue
		}

		block := edid[offset : offset+descriptorLen]
		if block[0] != 0 || block[1] != 0 || block[2] != 0 || block[3] != serialDescriptorTag {
			continue
		}

		if s := decodeDescriptorText(block[5:]); s != "" {
			return s, true
		}
	}

	return "", false
}

// decodeDescriptorText keeps ASCII bytes, trims the 0x0A/0x20 padding and drops
// embedded newlines.
func decodeDescriptorText(b []byte) string {
	var sb strings.Builder

	for _, c := range b {
		if c < 0x80 {
			sb.WriteByte(c)
		}
	}

	s := strings.TrimSpace(sb.String())
	s = strings.ReplaceAll(s, "\n", "")

	return strings.Trim(s, "\x00 ")
}

// EDIDVendorProduct decodes the manufacturer and product code from an EDID
// header in the decimal form macOS reports as DisplayVendorID/DisplayProductID.
func EDIDVendorProduct(edid []byte) (vendorID, productID string, ok bool) {
	if len(edid) < edidHeaderLen {
		return "", "", false
	}

	for i, b := range edidMagic {
		if edid[i] != b {
			return "", "", false
		}
	}

	vendor := binary.BigEndian.Uint16(edid[8:10])
	product := binary.LittleEndian.Uint16(edid[10:12])

	return strconv.Itoa(int(vendor)), strconv.Itoa(int(product)), true
}

// ManufacturerCode renders a numeric EDID vendor id as its three-letter PNP code.
func ManufacturerCode(vendorID string) string {
	n, err := strconv.ParseUint(vendorID, 10, 16)
	if err != nil || n == 0 {
		return ""
	}

	letters := []byte{
		byte((n>>10)&0x1F) + 'A' - 1,
		byte((n>>5)&0x1F) + 'A' - 1,
		byte(n&0x1F) + 'A' - 1,
	}

	for _, l := range letters {
		if l < 'A' || l > 'Z' {
			return ""
		}
	}

	return string(letters)
}
