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

// Package netbox implements the source-of-truth client against the
// NetBox REST API.
package netbox

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/carverauto/wanprov/pkg/logger"
	"github.com/carverauto/wanprov/pkg/models"
)

// Config holds the NetBox API connection settings.
type Config struct {
	Endpoint           string `json:"endpoint"`
	APIToken           string `json:"api_token"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify"`
}

var _ Inventory = (*Client)(nil)

// Client talks to the NetBox REST API. It is safe for concurrent use.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient builds a NetBox client from config.
func NewClient(config Config, log logger.Logger) *Client {
	//nolint:gosec // insecure TLS is an explicit lab opt-in
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		logger: log.WithComponent("netbox"),
	}
}

// do performs one API request and decodes the JSON response into out
// when out is non-nil.
func (c *Client) do(ctx context.Context, method, rawURL string, body, out interface{}) error {
	var reqBody *bytes.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Token "+c.config.APIToken)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn().Err(cerr).Msg("Failed to close response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d (%s %s)", errUnexpectedStatusCode, resp.StatusCode, method, rawURL)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// DevicesByRole lists devices by role slug, following pagination.
func (c *Client) DevicesByRole(ctx context.Context, role string) ([]Device, error) {
	next := c.config.Endpoint + "/api/dcim/devices/?role=" + url.QueryEscape(role)

	var devices []Device

	for next != "" {
		var page DeviceResponse

		if err := c.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, err
		}

		devices = append(devices, page.Results...)

		if page.Next != nil {
			next = *page.Next
		} else {
			next = ""
		}
	}

	c.logger.Debug().Int("count", len(devices)).Str("role", role).Msg("Fetched devices from NetBox")

	return devices, nil
}

// ConfigContext fetches the device's local config context and decodes
// it into the declarative intent model.
func (c *Client) ConfigContext(ctx context.Context, deviceID int) (*models.ConfigIntent, error) {
	rawURL := fmt.Sprintf("%s/api/dcim/devices/%d/", c.config.Endpoint, deviceID)

	var device Device

	if err := c.do(ctx, http.MethodGet, rawURL, nil, &device); err != nil {
		return nil, err
	}

	if len(device.LocalContextData) == 0 || string(device.LocalContextData) == "null" {
		return nil, fmt.Errorf("%w: device %d", ErrNoConfigContext, deviceID)
	}

	var intent models.ConfigIntent

	if err := json.Unmarshal(device.LocalContextData, &intent); err != nil {
		return nil, fmt.Errorf("decoding config context for device %d: %w", deviceID, err)
	}

	return &intent, nil
}

// Interfaces lists the interface records of a device, following pagination.
func (c *Client) Interfaces(ctx context.Context, deviceID int) ([]Interface, error) {
	next := fmt.Sprintf("%s/api/dcim/interfaces/?device_id=%d", c.config.Endpoint, deviceID)

	var interfaces []Interface

	for next != "" {
		var page InterfaceResponse

		if err := c.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, err
		}

		interfaces = append(interfaces, page.Results...)

		if page.Next != nil {
			next = *page.Next
		} else {
			next = ""
		}
	}

	return interfaces, nil
}

// CreateInterface creates a dcim interface record.
func (c *Client) CreateInterface(ctx context.Context, req *CreateInterfaceRequest) (*Interface, error) {
	if req.Type == "" {
		req.Type = defaultInterfaceType
	}

	rawURL := c.config.Endpoint + "/api/dcim/interfaces/"

	var created Interface

	if err := c.do(ctx, http.MethodPost, rawURL, req, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateInterface patches an existing dcim interface record.
func (c *Client) UpdateInterface(ctx context.Context, interfaceID int, req *UpdateInterfaceRequest) error {
	rawURL := fmt.Sprintf("%s/api/dcim/interfaces/%d/", c.config.Endpoint, interfaceID)

	return c.do(ctx, http.MethodPatch, rawURL, req, nil)
}

// IPAddressByAddress looks up an IP record by its literal CIDR string.
// Returns (nil, nil) when no record exists.
func (c *Client) IPAddressByAddress(ctx context.Context, address string) (*IPAddress, error) {
	rawURL := c.config.Endpoint + "/api/ipam/ip-addresses/?address=" + url.QueryEscape(address)

	var page IPAddressResponse

	if err := c.do(ctx, http.MethodGet, rawURL, nil, &page); err != nil {
		return nil, err
	}

	if len(page.Results) == 0 {
		return nil, nil
	}

	return &page.Results[0], nil
}

// CreateIPAddress creates an IP record bound to a dcim interface.
func (c *Client) CreateIPAddress(ctx context.Context, address string, interfaceID int) (*IPAddress, error) {
	rawURL := c.config.Endpoint + "/api/ipam/ip-addresses/"

	req := map[string]interface{}{
		"address":              address,
		"assigned_object_type": "dcim.interface",
		"assigned_object_id":   interfaceID,
	}

	var created IPAddress

	if err := c.do(ctx, http.MethodPost, rawURL, req, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateDevice patches the device's type, role and site.
func (c *Client) UpdateDevice(ctx context.Context, deviceID int, update *DeviceUpdate) error {
	rawURL := fmt.Sprintf("%s/api/dcim/devices/%d/", c.config.Endpoint, deviceID)

	return c.do(ctx, http.MethodPatch, rawURL, update, nil)
}
