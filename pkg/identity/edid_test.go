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
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildEDID returns a 128-byte base block for vendor DEL (4268), product 40961.
func buildEDID() []byte {
	e := make([]byte, 128)
	copy(e, edidMagic[:])
	e[8], e[9] = 0x10, 0xAC
	e[10], e[11] = 0x01, 0xA0

	return e
}

func withSerialDescriptor(e []byte, offset int, text string) []byte {
	block := e[offset : offset+descriptorLen]
	block[0], block[1], block[2], block[3], block[4] = 0, 0, 0, serialDescriptorTag, 0

	payload := []byte(text)
	if len(payload) < 13 {
		payload = append(payload, '\n')
	}

	for len(payload) < 13 {
		payload = append(payload, ' ')
	}

	copy(block[5:], payload[:13])

	return e
}

func TestEDIDSerial(t *testing.T) {
	tests := []struct {
		name   string
		edid   []byte
		serial string
		ok     bool
	}{
		{name: "nil", edid: nil},
		{name: "no descriptor", edid: buildEDID()},
		{name: "first slot", edid: withSerialDescriptor(buildEDID(), 54, "ABC123"), serial: "ABC123", ok: true},
		{name: "last slot", edid: withSerialDescriptor(buildEDID(), 108, "CN0XYZ"), serial: "CN0XYZ", ok: true},
		{name: "full 13 chars", edid: withSerialDescriptor(buildEDID(), 72, "1234567890ABC"), serial: "1234567890ABC", ok: true},
		{name: "truncated before slot", edid: withSerialDescriptor(buildEDID(), 108, "CN0XYZ")[:120]},
		{name: "shorter than first slot", edid: buildEDID()[:60]},
		{name: "blank descriptor", edid: withSerialDescriptor(buildEDID(), 54, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serial, ok := EDIDSerial(tt.edid)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.serial, serial)
		})
	}
}

func TestEDIDSerialSkipsBlankSlotForLaterOne(t *testing.T) {
	e := withSerialDescriptor(buildEDID(), 54, "")
	e = withSerialDescriptor(e, 90, "LATE01")

	serial, ok := EDIDSerial(e)
	assert.True(t, ok)
	assert.Equal(t, "LATE01", serial)
}

func TestEDIDSerialIgnoresOtherDescriptorTags(t *testing.T) {
	e := withSerialDescriptor(buildEDID(), 54, "NAME")
	e[54+3] = 0xFC

	_, ok := EDIDSerial(e)
	assert.False(t, ok)
}

func TestEDIDSerialDropsNonASCII(t *testing.T) {
	e := withSerialDescriptor(buildEDID(), 54, "AB\xffCD")

	serial, ok := EDIDSerial(e)
	assert.True(t, ok)
	assert.Equal(t, "ABCD", serial)
}

func TestEDIDVendorProduct(t *testing.T) {
	vendor, product, ok := EDIDVendorProduct(buildEDID())
	assert.True(t, ok)
	assert.Equal(t, "4268", vendor)
	assert.Equal(t, "40961", product)

	_, _, ok = EDIDVendorProduct(buildEDID()[:10])
	assert.False(t, ok)

	bad := buildEDID()
	bad[0] = 0x01
	_, _, ok = EDIDVendorProduct(bad)
	assert.False(t, ok)
}

func TestManufacturerCode(t *testing.T) {
	assert.Equal(t, "DEL", ManufacturerCode("4268"))
	assert.Equal(t, "", ManufacturerCode("0"))
	assert.Equal(t, "", ManufacturerCode("DEL"))
}
