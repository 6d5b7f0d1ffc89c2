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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/carverauto/seatmonitor/pkg/identity"
	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

type seatModel struct {
	input     textinput.Model
	monitor   models.MonitorRecord
	seatID    string
	cancelled bool
	styles    styles
}

func newSeatModel(monitor models.MonitorRecord) *seatModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. A-101"
	ti.CharLimit = seatIDLimit
	ti.Width = inputWidth
	ti.Focus()
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaForeground))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaComment))

	return &seatModel{
		input:   ti,
		monitor: monitor,
		styles:  newStyles(),
	}
}

func (*seatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *seatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // everything else goes to the text input
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			m.seatID = ""

			return m, tea.Quit
		case tea.KeyEnter:
			m.seatID = strings.TrimSpace(m.input.Value())

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *seatModel) View() string {
	var content strings.Builder

	content.WriteString(m.styles.title.Render("Seat Monitor: new display detected") + "\n\n")

	row := func(label, value string) {
		content.WriteString(m.styles.label.Render(fmt.Sprintf("%-10s", label)) + m.styles.value.Render(value) + "\n")
	}

	row("Serial", m.monitor.SerialNumber)
	row("Vendor", fmt.Sprintf("%s (%s)", m.monitor.VendorID, identity.ManufacturerCode(m.monitor.VendorID)))
	row("Product", m.monitor.ProductID)

	if identity.IsSynthetic(m.monitor.SerialNumber) {
		content.WriteString(m.styles.hint.Render("This display reports no serial; a generated id is used.") + "\n")
	}

	content.WriteString("\n" + m.styles.title.Render("Seat number") + "\n")
	content.WriteString(m.input.View() + "\n\n")
	content.WriteString(m.styles.help.Render("enter: bind • esc: skip for now"))

	return m.styles.app.Align(lipgloss.Left).Render(content.String())
}

// TUIPrompter asks the person at the workstation for a seat number with a
// bubbletea form. It blocks until they answer, skip, or ctx is cancelled.
type TUIPrompter struct {
	in          io.Reader
	out         io.Writer
	interactive func() bool
	log         logger.Logger
}

// NewTUIPrompter prompts on stdin/stdout when stdin is a terminal.
func NewTUIPrompter(log logger.Logger) *TUIPrompter {
	return &TUIPrompter{
		in:  os.Stdin,
		out: os.Stdout,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		log: log,
	}
}

// AskSeatID returns the trimmed seat number, or "" when the person skipped
// the prompt or no terminal is attached.
func (p *TUIPrompter) AskSeatID(ctx context.Context, monitor models.MonitorRecord) (string, error) {
	if !p.interactive() {
		p.log.Warn().Str("monitor_sn", monitor.SerialNumber).Msg("No terminal attached, cannot ask for a seat number")
		return "", nil
	}

	program := tea.NewProgram(newSeatModel(monitor),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if errors.Is(err, tea.ErrInterrupted) {
			return "", nil
		}

		return "", fmt.Errorf("%w: %w", errPromptFailed, err)
	}

	m, ok := final.(*seatModel)
	if !ok || m.cancelled {
		return "", nil
	}

	return m.seatID, nil
}

// DeclinePrompter never binds. Headless agents use it so unbound monitors are
// reported in the logs and left for an operator.
type DeclinePrompter struct {
	log logger.Logger
}

func NewDeclinePrompter(log logger.Logger) *DeclinePrompter {
	return &DeclinePrompter{log: log}
}

func (p *DeclinePrompter) AskSeatID(_ context.Context, monitor models.MonitorRecord) (string, error) {
	p.log.Info().Str("monitor_sn", monitor.SerialNumber).Msg("Monitor is unbound and prompting is disabled")

	return "", nil
}

// SeatPrompter is satisfied by both prompters.
type SeatPrompter interface {
	AskSeatID(ctx context.Context, monitor models.MonitorRecord) (string, error)
}

// NewPrompter picks the prompter for an agent's prompt setting.
func NewPrompter(mode string, log logger.Logger) (SeatPrompter, error) {
	switch mode {
	case "", models.PromptTUI:
		return NewTUIPrompter(log), nil
	case models.PromptNone:
		return NewDeclinePrompter(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownPrompt, mode)
	}
}
