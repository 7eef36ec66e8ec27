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

// Package transport implements device access over SSH and SNMP for
// IOS-style WAN routers.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/carverauto/wanprov/pkg/config"
	"github.com/carverauto/wanprov/pkg/logger"
	"github.com/carverauto/wanprov/pkg/models"
)

const (
	defaultSSHPort    = 22
	defaultSNMPPort   = 161
	defaultTimeout    = 30 * time.Second
	defaultProbeCount = 5
)

// Config holds device access credentials and timeouts. Credentials
// are shared across the fleet, matching the lab inventory defaults.
type Config struct {
	Username      string          `json:"username"`
	Password      string          `json:"password"`
	SSHPort       int             `json:"ssh_port"`
	SNMPCommunity string          `json:"snmp_community"`
	SNMPPort      uint16          `json:"snmp_port"`
	Timeout       config.Duration `json:"timeout"`
	ProbeCount    int             `json:"probe_count"`
}

func (c *Config) timeout() time.Duration {
	if c.Timeout.Duration() > 0 {
		return c.Timeout.Duration()
	}

	return defaultTimeout
}

func (c *Config) probeCount() int {
	if c.ProbeCount > 0 {
		return c.ProbeCount
	}

	return defaultProbeCount
}

var _ Transport = (*IOSTransport)(nil)

// IOSTransport drives IOS-style routers: configuration and exec
// commands over SSH, interface facts over SNMP.
type IOSTransport struct {
	config Config
	logger logger.Logger
}

// NewIOSTransport builds a transport from config.
func NewIOSTransport(cfg Config, log logger.Logger) *IOSTransport {
	if cfg.SSHPort == 0 {
		cfg.SSHPort = defaultSSHPort
	}

	if cfg.SNMPPort == 0 {
		cfg.SNMPPort = defaultSNMPPort
	}

	return &IOSTransport{
		config: cfg,
		logger: log.WithComponent("transport"),
	}
}

// dial opens an SSH connection to the device's management address. The
// returned cleanup closes the connection and detaches the context
// watchdog; it is safe to call more than once.
func (t *IOSTransport) dial(ctx context.Context, device *models.DeviceRecord) (*ssh.Client, func(), error) {
	if device.ManagementAddr == "" {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoManagementAddr, device.Name)
	}

	sshConfig := &ssh.ClientConfig{
		User: t.config.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(t.config.Password),
		},
		//nolint:gosec // lab routers have no stable host keys
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         t.config.timeout(),
	}

	addr := net.JoinHostPort(device.ManagementAddr, strconv.Itoa(t.config.SSHPort))

	client, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("ssh dial %s: %w", addr, err)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = client.Close()
	})

	cleanup := func() {
		stop()
		_ = client.Close()
	}

	return client, cleanup, nil
}

// RunCommand executes one exec-mode command in its own session.
func (t *IOSTransport) RunCommand(ctx context.Context, device *models.DeviceRecord, command string) (string, error) {
	client, cleanup, err := t.dial(ctx, device)
	if err != nil {
		return "", err
	}
	defer cleanup()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("ssh session %s: %w", device.Name, err)
	}

	defer func() {
		_ = session.Close()
	}()

	out, err := session.CombinedOutput(command)
	if err != nil {
		return string(out), fmt.Errorf("command %q on %s: %w", command, device.Name, err)
	}

	t.logger.Debug().
		Str("device", device.Name).
		Str("command", command).
		Int("output_bytes", len(out)).
		Msg("Command executed")

	return string(out), nil
}

// PushConfig applies configuration text through an interactive shell,
// wrapped in configure terminal / end.
func (t *IOSTransport) PushConfig(ctx context.Context, device *models.DeviceRecord, configText string) error {
	client, cleanup, err := t.dial(ctx, device)
	if err != nil {
		return err
	}
	defer cleanup()

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("ssh session %s: %w", device.Name, err)
	}

	defer func() {
		_ = session.Close()
	}()

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}

	if err := session.RequestPty("vt100", 80, 200, modes); err != nil {
		return fmt.Errorf("request pty %s: %w", device.Name, err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		return err
	}

	var output bytes.Buffer

	session.Stdout = &output
	session.Stderr = &output

	if err := session.Shell(); err != nil {
		return fmt.Errorf("shell %s: %w", device.Name, err)
	}

	lines := []string{"terminal length 0", "configure terminal"}
	lines = append(lines, strings.Split(strings.TrimSpace(configText), "\n")...)
	lines = append(lines, "end", "exit")

	for _, line := range lines {
		if _, err := fmt.Fprintln(stdin, line); err != nil {
			return fmt.Errorf("writing config to %s: %w", device.Name, err)
		}
	}

	if err := session.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return fmt.Errorf("config session %s: %w (output: %s)", device.Name, err, output.String())
	}

	t.logger.Info().
		Str("device", device.Name).
		Int("lines", len(lines)).
		Msg("Configuration pushed")

	return nil
}

// Probe pings destAddr sourced from sourceAddr on the device itself
// and parses the success rate from the command output.
func (t *IOSTransport) Probe(ctx context.Context, device *models.DeviceRecord, sourceAddr, destAddr string) (*models.ProbeResult, error) {
	command := fmt.Sprintf("ping %s source %s repeat %d", destAddr, sourceAddr, t.config.probeCount())

	out, err := t.RunCommand(ctx, device, command)
	if err != nil {
		return nil, err
	}

	result := parsePingOutput(out)
	result.SourceAddr = sourceAddr
	result.DestAddr = destAddr

	return result, nil
}

// BGPPeerFacts parses the device's BGP summary table.
func (t *IOSTransport) BGPPeerFacts(ctx context.Context, device *models.DeviceRecord) (map[string]models.BGPPeerFacts, error) {
	out, err := t.RunCommand(ctx, device, "show ip bgp summary")
	if err != nil {
		return nil, err
	}

	return parseBGPSummary(out)
}

// SaveRunningConfig persists the running configuration to startup.
func (t *IOSTransport) SaveRunningConfig(ctx context.Context, device *models.DeviceRecord) error {
	if _, err := t.RunCommand(ctx, device, "write memory"); err != nil {
		return err
	}

	t.logger.Info().Str("device", device.Name).Msg("Running config saved")

	return nil
}
