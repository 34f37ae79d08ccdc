// Copyright 2026 The vizcast Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package discovery finds SmartCast devices on the local network via
// SSDP. It only yields reachable addresses; the control client does not
// depend on it.
package discovery

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// ServiceType is the SSDP search target SmartCast devices answer to.
const ServiceType = "urn:dial-multiscreen-org:device:dial:1"

const (
	ssdpAddr = "239.255.255.250:1900"
	ssdpMX   = 3
)

// Device is one SSDP responder.
type Device struct {
	IP       string
	Location string
	USN      string
	ST       string
}

// Discover broadcasts an M-SEARCH for the given service type and collects
// unique responders until the timeout elapses.
func Discover(serviceType string, timeout time.Duration) ([]Device, error) {
	group, err := net.ResolveUDPAddr("udp4", ssdpAddr)
	if err != nil {
		return nil, err
	}

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero})
	if err != nil {
		return nil, fmt.Errorf("failed to open discovery socket: %w", err)
	}
	defer conn.Close()

	search := strings.Join([]string{
		"M-SEARCH * HTTP/1.1",
		"HOST: " + ssdpAddr,
		`MAN: "ssdp:discover"`,
		"ST: " + serviceType,
		fmt.Sprintf("MX: %d", ssdpMX),
		"",
		"",
	}, "\r\n")

	if _, err := conn.WriteTo([]byte(search), group); err != nil {
		return nil, fmt.Errorf("failed to send discovery request: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var devices []Device
	buf := make([]byte, 1024)

	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			// Deadline expiry ends collection.
			break
		}

		dev, ok := parseResponse(buf[:n])
		if !ok {
			continue
		}
		if host, _, err := net.SplitHostPort(from.String()); err == nil {
			dev.IP = host
		}

		if seen[dev.Location] {
			continue
		}
		seen[dev.Location] = true
		devices = append(devices, dev)
	}

	return devices, nil
}

// parseResponse decodes one SSDP response datagram, which is shaped like
// an HTTP response head.
func parseResponse(raw []byte) (Device, bool) {
	reader := bufio.NewReader(strings.NewReader(string(raw)))
	resp, err := http.ReadResponse(reader, nil)
	if err != nil {
		return Device{}, false
	}
	defer resp.Body.Close()

	dev := Device{
		Location: resp.Header.Get("Location"),
		USN:      resp.Header.Get("USN"),
		ST:       resp.Header.Get("ST"),
	}
	return dev, dev.Location != ""
}
