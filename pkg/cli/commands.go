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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/carverauto/seatmonitor/pkg/identity"
	"github.com/carverauto/seatmonitor/pkg/models"
	"github.com/carverauto/seatmonitor/pkg/version"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const (
	cmdMappings = "mappings"
	cmdPresence = "presence"
	cmdIdentify = "identify"
	cmdVersion  = "version"

	mappingsPath  = "/api/mappings"
	dashboardPath = "/dashboard"
	emptyCell     = "-"
)

// CmdConfig holds parsed command-line configuration.
type CmdConfig struct {
	Help      bool
	SubCmd    string
	ServerURL string
	Timeout   time.Duration
	Format    string
}

// SubcommandHandler defines the interface for parsing subcommand flags.
type SubcommandHandler interface {
	Parse(args []string, cfg *CmdConfig) error
}

// ReadClient fetches the coordinator's read models.
type ReadClient interface {
	GetJSON(ctx context.Context, path string, out interface{}) error
}

// MonitorLister returns the displays attached to this machine.
type MonitorLister interface {
	Monitors(ctx context.Context) ([]models.MonitorDescriptor, error)
}

// Deps are the collaborators seatctl commands use.
type Deps struct {
	Client ReadClient
	Prober MonitorLister
	Out    io.Writer
}

func defaultServerURL() string {
	if v := strings.TrimSpace(os.Getenv(models.ServerURLEnv)); v != "" {
		return v
	}

	return models.DefaultServerURL
}

func newFlagSet(name string, cfg *CmdConfig, remote bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVarP(&cfg.Help, "help", "h", false, "show help message")
	fs.StringVarP(&cfg.Format, "output", "o", FormatTable, "output format: table or json")

	if remote {
		fs.StringVar(&cfg.ServerURL, "server", defaultServerURL(), "coordinator base URL")
		fs.DurationVar(&cfg.Timeout, "timeout", models.DefaultRequestTimeout, "request timeout")
	}

	return fs
}

func parseInto(fs *pflag.FlagSet, args []string, cfg *CmdConfig) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing %s flags: %w", fs.Name(), err)
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s", errUnexpectedArgs, strings.Join(fs.Args(), " "))
	}

	if cfg.Format != FormatTable && cfg.Format != FormatJSON {
		return fmt.Errorf("%w: %q", errUnsupportedFormat, cfg.Format)
	}

	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")

	return nil
}

// MappingsHandler handles flags for the mappings subcommand.
type MappingsHandler struct{}

func (MappingsHandler) Parse(args []string, cfg *CmdConfig) error {
	return parseInto(newFlagSet(cmdMappings, cfg, true), args, cfg)
}

// PresenceHandler handles flags for the presence subcommand.
type PresenceHandler struct{}

func (PresenceHandler) Parse(args []string, cfg *CmdConfig) error {
	return parseInto(newFlagSet(cmdPresence, cfg, true), args, cfg)
}

// IdentifyHandler handles flags for the identify subcommand.
type IdentifyHandler struct{}

func (IdentifyHandler) Parse(args []string, cfg *CmdConfig) error {
	return parseInto(newFlagSet(cmdIdentify, cfg, false), args, cfg)
}

// VersionHandler handles flags for the version subcommand.
type VersionHandler struct{}

func (VersionHandler) Parse(args []string, cfg *CmdConfig) error {
	return parseInto(newFlagSet(cmdVersion, cfg, false), args, cfg)
}

// ParseFlags parses os.Args[1:]-style arguments into a CmdConfig.
func ParseFlags(args []string) (*CmdConfig, error) {
	cfg := &CmdConfig{Format: FormatTable}

	if len(args) == 0 {
		cfg.Help = true
		return cfg, nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		cfg.Help = true
		return cfg, nil
	}

	cfg.SubCmd = args[0]

	subcommands := map[string]SubcommandHandler{
		cmdMappings: MappingsHandler{},
		cmdPresence: PresenceHandler{},
		cmdIdentify: IdentifyHandler{},
		cmdVersion:  VersionHandler{},
	}

	handler, ok := subcommands[cfg.SubCmd]
	if !ok {
		return cfg, fmt.Errorf("%w: %s", errUnknownCommand, cfg.SubCmd)
	}

	if err := handler.Parse(args[1:], cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// NeedsServer reports whether the parsed command talks to the coordinator.
func (c *CmdConfig) NeedsServer() bool {
	return c.SubCmd == cmdMappings || c.SubCmd == cmdPresence
}

// Run executes the parsed subcommand.
func Run(ctx context.Context, cfg *CmdConfig, deps Deps) error {
	if cfg.Help {
		ShowHelp(deps.Out)
		return nil
	}

	switch cfg.SubCmd {
	case cmdMappings:
		return RunMappings(ctx, cfg, deps)
	case cmdPresence:
		return RunPresence(ctx, cfg, deps)
	case cmdIdentify:
		return RunIdentify(ctx, cfg, deps)
	case cmdVersion:
		_, err := fmt.Fprintf(deps.Out, "seatctl %s\n", version.Full())
		return err
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cfg.SubCmd)
	}
}

// RunMappings prints every seat binding with its most recent user.
func RunMappings(ctx context.Context, cfg *CmdConfig, deps Deps) error {
	var mappings []models.SeatMapping
	if err := deps.Client.GetJSON(ctx, mappingsPath, &mappings); err != nil {
		return fmt.Errorf("fetching mappings: %w", err)
	}

	if cfg.Format == FormatJSON {
		return writeJSON(deps.Out, mappings)
	}

	rows := make([][]string, 0, len(mappings))

	for i := range mappings {
		m := &mappings[i]
		user, host, lastSeen, active := emptyCell, emptyCell, emptyCell, emptyCell

		if m.LastUser != nil {
			user = orEmpty(m.LastUser.UserName)
			host = orEmpty(m.LastUser.HostName)
			lastSeen = formatTime(m.LastUser.LastSeen)
			active = yesNo(m.LastUser.IsActive)
		}

		rows = append(rows, []string{m.SeatID, m.MonitorSN, formatTime(m.BoundAt), user, host, lastSeen, active})
	}

	return writeTable(deps.Out, []string{"SEAT", "MONITOR", "BOUND AT", "LAST USER", "HOST", "LAST SEEN", "ACTIVE"}, rows)
}

// RunPresence prints the dashboard view of every reporting seat.
func RunPresence(ctx context.Context, cfg *CmdConfig, deps Deps) error {
	var entries []models.DashboardEntry
	if err := deps.Client.GetJSON(ctx, dashboardPath, &entries); err != nil {
		return fmt.Errorf("fetching presence: %w", err)
	}

	if cfg.Format == FormatJSON {
		return writeJSON(deps.Out, entries)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.SeatID, orEmpty(e.User), orEmpty(e.Host), formatTime(e.LastSeen), string(e.Status)})
	}

	return writeTable(deps.Out, []string{"SEAT", "USER", "HOST", "LAST SEEN", "STATUS"}, rows)
}

// IdentifiedMonitor is one row of identify output.
type IdentifiedMonitor struct {
	models.MonitorRecord
	Manufacturer string `json:"manufacturer"`
	Connector    string `json:"connector,omitempty"`
	Source       string `json:"source"`
}

// Identity sources reported by identify.
const (
	SourcePlatform  = "platform"
	SourceEDID      = "edid"
	SourceGenerated = "generated"
)

func identitySource(d *models.MonitorDescriptor) string {
	if !identity.IsSentinel(d.PlatformSerial) {
		return SourcePlatform
	}

	if serial, ok := identity.EDIDSerial(d.RawEDID); ok && !identity.IsSentinel(serial) {
		return SourceEDID
	}

	return SourceGenerated
}

// RunIdentify probes local displays and prints the identity each resolves to.
func RunIdentify(ctx context.Context, cfg *CmdConfig, deps Deps) error {
	if deps.Prober == nil {
		return errProberRequired
	}

	descriptors, err := deps.Prober.Monitors(ctx)
	if err != nil {
		return fmt.Errorf("probing monitors: %w", err)
	}

	records := identity.ResolveAll(descriptors)
	out := make([]IdentifiedMonitor, 0, len(records))

	for i := range records {
		out = append(out, IdentifiedMonitor{
			MonitorRecord: records[i],
			Manufacturer:  identity.ManufacturerCode(records[i].VendorID),
			Connector:     descriptors[i].Connector,
			Source:        identitySource(&descriptors[i]),
		})
	}

	if cfg.Format == FormatJSON {
		return writeJSON(deps.Out, out)
	}

	rows := make([][]string, 0, len(out))
	for _, m := range out {
		rows = append(rows, []string{m.SerialNumber, m.VendorID, orEmpty(m.Manufacturer), m.ProductID, orEmpty(m.Connector), m.Source})
	}

	return writeTable(deps.Out, []string{"SERIAL", "VENDOR", "MFR", "PRODUCT", "CONNECTOR", "SOURCE"}, rows)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return emptyCell
	}

	return t.Format(time.DateTime)
}

func orEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyCell
	}

	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
