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

package transport

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gosnmp/gosnmp"

	"github.com/carverauto/wanprov/pkg/models"
)

const (
	oidIfDescr       = ".1.3.6.1.2.1.2.2.1.2"
	oidIfPhysAddress = ".1.3.6.1.2.1.2.2.1.6"
	oidIfAdminStatus = ".1.3.6.1.2.1.2.2.1.7"
	oidIfOperStatus  = ".1.3.6.1.2.1.2.2.1.8"
	oidIfHighSpeed   = ".1.3.6.1.2.1.31.1.1.1.15"
	oidIfAlias       = ".1.3.6.1.2.1.31.1.1.1.18"

	ifStatusUp = 1
)

// snmpClient builds an SNMP v2c client for the device.
func (t *IOSTransport) snmpClient(ctx context.Context, device *models.DeviceRecord) (*gosnmp.GoSNMP, error) {
	if device.ManagementAddr == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoManagementAddr, device.Name)
	}

	client := &gosnmp.GoSNMP{
		Context:        ctx,
		Target:         device.ManagementAddr,
		Port:           t.config.SNMPPort,
		Version:        gosnmp.Version2c,
		Community:      t.config.SNMPCommunity,
		Timeout:        t.config.timeout(),
		Retries:        1,
		MaxOids:        gosnmp.MaxOids,
		MaxRepetitions: 10,
	}

	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("snmp connect %s: %w", device.ManagementAddr, err)
	}

	return client, nil
}

// InterfaceFacts walks the interface tables and returns a fresh
// snapshot keyed by interface name.
func (t *IOSTransport) InterfaceFacts(ctx context.Context, device *models.DeviceRecord) (map[string]models.InterfaceFacts, error) {
	client, err := t.snmpClient(ctx, device)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = client.Conn.Close()
	}()

	names := make(map[int]string)

	err = client.BulkWalk(oidIfDescr, func(pdu gosnmp.SnmpPDU) error {
		index, ok := ifIndexFromOID(pdu.Name)
		if !ok {
			return nil
		}

		if raw, ok := pdu.Value.([]byte); ok {
			names[index] = string(raw)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking ifDescr on %s: %w", device.Name, err)
	}

	byIndex := make(map[int]*models.InterfaceFacts, len(names))
	for index := range names {
		byIndex[index] = &models.InterfaceFacts{}
	}

	columns := []string{oidIfAlias, oidIfPhysAddress, oidIfOperStatus, oidIfAdminStatus, oidIfHighSpeed}

	for _, column := range columns {
		col := column

		err = client.BulkWalk(col, func(pdu gosnmp.SnmpPDU) error {
			index, ok := ifIndexFromOID(pdu.Name)
			if !ok {
				return nil
			}

			facts, ok := byIndex[index]
			if !ok {
				return nil
			}

			applyColumn(facts, col, pdu)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s on %s: %w", col, device.Name, err)
		}
	}

	facts := make(map[string]models.InterfaceFacts, len(names))
	for index, name := range names {
		facts[name] = *byIndex[index]
	}

	t.logger.Debug().
		Str("device", device.Name).
		Int("interfaces", len(facts)).
		Msg("Interface facts collected")

	return facts, nil
}

func applyColumn(facts *models.InterfaceFacts, column string, pdu gosnmp.SnmpPDU) {
	switch column {
	case oidIfAlias:
		if raw, ok := pdu.Value.([]byte); ok {
			facts.Description = string(raw)
		}
	case oidIfPhysAddress:
		if raw, ok := pdu.Value.([]byte); ok {
			facts.MACAddress = formatMACAddress(raw)
		}
	case oidIfOperStatus:
		if val, ok := pdu.Value.(int); ok {
			facts.OperUp = val == ifStatusUp
		}
	case oidIfAdminStatus:
		if val, ok := pdu.Value.(int); ok {
			facts.AdminUp = val == ifStatusUp
		}
	case oidIfHighSpeed:
		if val, ok := pdu.Value.(uint); ok {
			facts.SpeedMbps = int64(val)
		}
	}
}

// ifIndexFromOID extracts the trailing ifIndex from a column OID such
// as .1.3.6.1.2.1.2.2.1.2.3 -> 3.
func ifIndexFromOID(oid string) (int, bool) {
	dot := strings.LastIndex(oid, ".")
	if dot < 0 {
		return 0, false
	}

	index, err := strconv.Atoi(oid[dot+1:])
	if err != nil {
		return 0, false
	}

	return index, true
}

// formatMACAddress renders an ifPhysAddress octet string as a
// colon-separated uppercase MAC. Virtual interfaces report an empty
// octet string, which maps to "".
func formatMACAddress(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%02X", b)
	}

	return strings.Join(parts, ":")
}
