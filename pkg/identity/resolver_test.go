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

	"github.com/carverauto/seatmonitor/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticSerialKnownValue(t *testing.T) {
	// md5("4268-1-deadbeef") = 1c6b740a72db...
	assert.Equal(t, "GEN-1c6b740a72db", SyntheticSerial("4268", "1", "deadbeef"))
}

func TestResolveSyntheticFromEDIDHash(t *testing.T) {
	rec := Resolve(models.MonitorDescriptor{VendorID: "4268", ProductID: "1", EDIDHash: "deadbeef"})

	assert.Equal(t, models.MonitorRecord{
		SerialNumber: "GEN-1c6b740a72db",
		VendorID:     "4268",
		ProductID:    "1",
	}, rec)
}

func TestResolvePlatformSerialWins(t *testing.T) {
	d := models.MonitorDescriptor{
		VendorID:       "4268",
		ProductID:      "40961",
		RawEDID:        withSerialDescriptor(buildEDID(), 54, "EDIDSN"),
		PlatformSerial: "ABC123",
	}

	assert.Equal(t, "ABC123", Resolve(d).SerialNumber)
}

func TestResolveFallsBackToEDID(t *testing.T) {
	for _, sentinel := range []string{"", "0", "UNKNOWN", "unknown", "  "} {
		t.Run(sentinel, func(t *testing.T) {
			d := models.MonitorDescriptor{
				VendorID:       "4268",
				ProductID:      "40961",
				RawEDID:        withSerialDescriptor(buildEDID(), 72, "EDIDSN"),
				PlatformSerial: sentinel,
			}

			assert.Equal(t, "EDIDSN", Resolve(d).SerialNumber)
		})
	}
}

func TestResolveHashesRawEDID(t *testing.T) {
	d := models.MonitorDescriptor{VendorID: "4268", ProductID: "40961", RawEDID: buildEDID()}

	assert.Equal(t, "d9a5dbd462d423cde4427de63834aa71", EDIDHash(d.RawEDID))
	assert.Equal(t, "GEN-17e9056a910f", Resolve(d).SerialNumber)
}

func TestResolveExplicitHashOverridesRawEDID(t *testing.T) {
	d := models.MonitorDescriptor{VendorID: "4268", ProductID: "1", RawEDID: buildEDID(), EDIDHash: "deadbeef"}

	assert.Equal(t, "GEN-1c6b740a72db", Resolve(d).SerialNumber)
}

func TestResolveWithoutAnyEDID(t *testing.T) {
	rec := Resolve(models.MonitorDescriptor{VendorID: "4268", ProductID: "1"})
	assert.Equal(t, "GEN-29acdb442a4d", rec.SerialNumber)

	rec = Resolve(models.MonitorDescriptor{})
	assert.Equal(t, "GEN-cfab1ba8c67c", rec.SerialNumber)
}

func TestResolveMalformedEDIDDoesNotPanic(t *testing.T) {
	for _, size := range []int{1, 8, 55, 71, 72, 107, 125} {
		d := models.MonitorDescriptor{VendorID: "1", ProductID: "2", RawEDID: make([]byte, size)}

		require.NotPanics(t, func() { Resolve(d) })
		assert.True(t, IsSynthetic(Resolve(d).SerialNumber))
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	descriptors := []models.MonitorDescriptor{
		{VendorID: "4268", ProductID: "1", EDIDHash: "deadbeef"},
		{VendorID: "4268", ProductID: "40961", RawEDID: buildEDID()},
		{VendorID: "4268", ProductID: "40961", RawEDID: withSerialDescriptor(buildEDID(), 54, "X1")},
		{VendorID: "DEL", ProductID: "A0A2", PlatformSerial: "CN-0ABC"},
	}

	for _, d := range descriptors {
		assert.Equal(t, Resolve(d), Resolve(d))
	}
}

func TestResolveDistinctInputsDistinctIDs(t *testing.T) {
	descriptors := []models.MonitorDescriptor{
		{VendorID: "4268", ProductID: "1", EDIDHash: "deadbeef"},
		{VendorID: "4268", ProductID: "2", EDIDHash: "deadbeef"},
		{VendorID: "4269", ProductID: "1", EDIDHash: "deadbeef"},
		{VendorID: "4268", ProductID: "1", EDIDHash: "deadbeee"},
		{VendorID: "4268", ProductID: "1"},
		{VendorID: "4268", ProductID: "40961", RawEDID: buildEDID()},
	}

	seen := make(map[string]int)

	for i, d := range descriptors {
		sn := Resolve(d).SerialNumber
		require.True(t, IsSynthetic(sn))

		if prev, dup := seen[sn]; dup {
			t.Fatalf("descriptors %d and %d collide on %s", prev, i, sn)
		}

		seen[sn] = i
	}

	assert.Equal(t, "GEN-d003986845d6", Resolve(descriptors[1]).SerialNumber)
	assert.Equal(t, "GEN-8fc2ad006b8b", Resolve(descriptors[2]).SerialNumber)
	assert.Equal(t, "GEN-09ccfd4cec62", Resolve(descriptors[3]).SerialNumber)
}

func TestResolvedSerialIsNeverSentinel(t *testing.T) {
	d := models.MonitorDescriptor{
		PlatformSerial: "0",
		RawEDID:        withSerialDescriptor(buildEDID(), 54, "0"),
	}

	sn := Resolve(d).SerialNumber
	assert.False(t, IsSentinel(sn))
	assert.True(t, IsSynthetic(sn))
}

func TestResolveAll(t *testing.T) {
	recs := ResolveAll([]models.MonitorDescriptor{
		{PlatformSerial: "A"},
		{PlatformSerial: "B"},
	})

	require.Len(t, recs, 2)
	assert.Equal(t, "A", recs[0].SerialNumber)
	assert.Equal(t, "B", recs[1].SerialNumber)
}
