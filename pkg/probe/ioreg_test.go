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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func testEDID(serial string) []byte {
	e := make([]byte, 128)
	copy(e, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	e[8], e[9] = 0x10, 0xAC
	e[10], e[11] = 0x01, 0xA0
	e[12], e[13] = 0x39, 0x30 // numeric serial 12345

	if serial != "" {
		block := e[54:72]
		block[3] = 0xFF
		copy(block[5:], serial+"\n")
	}

	return e
}

func marshalIOReg(t *testing.T, v any) []byte {
	t.Helper()

	b, err := plist.Marshal(v, plist.XMLFormat)
	require.NoError(t, err)

	return b
}

func TestParseIORegDisplays(t *testing.T) {
	data := marshalIOReg(t, []any{
		map[string]any{
			"IOObjectClass": "IODisplayConnect",
			"IORegistryEntryChildren": []any{
				map[string]any{
					"DisplayVendorID":     uint64(1552),
					"DisplayProductID":    uint64(41216),
					"DisplaySerialNumber": uint64(0),
					"IODisplayEDID":       testEDID(""),
				},
			},
		},
		map[string]any{
			"IOObjectClass": "IODisplayConnect",
			"IORegistryEntryChildren": []any{
				map[string]any{
					"DisplayVendorID":     uint64(4268),
					"DisplayProductID":    uint64(40961),
					"DisplaySerialNumber": uint64(12345),
					"IODisplayEDID":       testEDID("CN0ABC"),
				},
			},
		},
		map[string]any{
			"IORegistryEntryChildren": []any{
				map[string]any{
					"DisplayVendorID":     uint64(4268),
					"DisplayProductID":    uint64(40962),
					"DisplaySerialNumber": uint64(777),
					"IODisplayEDID":       testEDID(""),
				},
			},
		},
	})

	monitors, err := ParseIORegDisplays(data)
	require.NoError(t, err)
	require.Len(t, monitors, 2, "built-in Apple panel must be skipped")

	assert.Equal(t, "4268", monitors[0].VendorID)
	assert.Equal(t, "40961", monitors[0].ProductID)
	assert.Empty(t, monitors[0].PlatformSerial, "EDID text serial takes precedence")
	assert.Equal(t, testEDID("CN0ABC"), monitors[0].RawEDID)

	assert.Equal(t, "40962", monitors[1].ProductID)
	assert.Equal(t, "777", monitors[1].PlatformSerial)
}

func TestParseIORegDisplaysEmpty(t *testing.T) {
	monitors, err := ParseIORegDisplays(marshalIOReg(t, []any{}))
	require.NoError(t, err)
	assert.Empty(t, monitors)
}

func TestParseIORegDisplaysMalformed(t *testing.T) {
	_, err := ParseIORegDisplays([]byte("<plist><dict><key>"))
	require.ErrorIs(t, err, errMalformedIOReg)
}

func TestParseIORegPlatformSerial(t *testing.T) {
	data := marshalIOReg(t, []any{
		map[string]any{"IOPlatformSerialNumber": " C02XK0AAJGH5 ", "IOPlatformUUID": "abc"},
	})

	serial, err := ParseIORegPlatformSerial(data)
	require.NoError(t, err)
	assert.Equal(t, "C02XK0AAJGH5", serial)

	_, err = ParseIORegPlatformSerial(marshalIOReg(t, []any{map[string]any{"x": "y"}}))
	require.ErrorIs(t, err, errNoPlatformSerial)
}
