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
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

var testMonitor = models.MonitorRecord{SerialNumber: "GEN-1c6b740a72db", VendorID: "4268", ProductID: "1"}

func typeInto(t *testing.T, m *seatModel, text string) *seatModel {
	t.Helper()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})

	sm, ok := next.(*seatModel)
	require.True(t, ok)

	return sm
}

func TestSeatModel_EnterReturnsTrimmedSeat(t *testing.T) {
	m := typeInto(t, newSeatModel(testMonitor), "  B-7 ")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	sm := next.(*seatModel)
	assert.Equal(t, "B-7", sm.seatID)
	assert.False(t, sm.cancelled)
}

func TestSeatModel_EscapeCancels(t *testing.T) {
	m := typeInto(t, newSeatModel(testMonitor), "B-7")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	sm := next.(*seatModel)
	assert.True(t, sm.cancelled)
	assert.Empty(t, sm.seatID)
}

func TestSeatModel_ViewShowsIdentity(t *testing.T) {
	view := newSeatModel(testMonitor).View()

	assert.Contains(t, view, "GEN-1c6b740a72db")
	assert.Contains(t, view, "DEL")
	assert.Contains(t, view, "generated id")
}

func TestTUIPrompter_NoTerminalDeclines(t *testing.T) {
	p := NewTUIPrompter(logger.NewTestLogger())
	p.interactive = func() bool { return false }

	seat, err := p.AskSeatID(context.Background(), testMonitor)
	require.NoError(t, err)
	assert.Empty(t, seat)
}

func TestNewPrompter(t *testing.T) {
	log := logger.NewTestLogger()

	p, err := NewPrompter(models.PromptNone, log)
	require.NoError(t, err)
	assert.IsType(t, &DeclinePrompter{}, p)

	seat, err := p.AskSeatID(context.Background(), testMonitor)
	require.NoError(t, err)
	assert.Empty(t, seat)

	p, err = NewPrompter("", log)
	require.NoError(t, err)
	assert.IsType(t, &TUIPrompter{}, p)

	_, err = NewPrompter("zenity", log)
	require.ErrorIs(t, err, errUnknownPrompt)
}
