package smartcast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// resolveAddr returns host:port for the device, probing the known API
// ports when the caller supplied a bare host. A successful probe is cached
// for the client's lifetime; the write-once race between concurrent calls
// is benign since the value is idempotent.
func (d *Device) resolveAddr() string {
	if addr := d.resolved; addr != "" {
		return addr
	}
	if strings.Contains(d.host, ":") {
		d.resolved = d.host
		return d.resolved
	}

	for _, port := range defaultPorts {
		addr := net.JoinHostPort(d.host, strconv.Itoa(port))
		conn, err := net.DialTimeout("tcp", addr, portProbeTimeout)
		if err != nil {
			continue
		}
		conn.Close()
		d.resolved = addr
		return addr
	}

	// No candidate port answered; leave the cache empty so a later call
	// probes again once the device comes back.
	return d.host
}

// invoke sends a command to the device and returns its decoded result.
//
// This is the fail-soft boundary of the whole client: transport failures,
// non-200 statuses, unparsable bodies and protocol-level rejections are
// all logged and reported as a nil result, never as an error. A poll loop
// hitting a powered-off device must see absent values, not crashes.
func (d *Device) invoke(cmd command, headers map[string]string) any {
	url := fmt.Sprintf("https://%s%s", d.resolveAddr(), cmd.uri())

	var req *http.Request
	var err error
	if cmd.httpMethod() == http.MethodGet {
		req, err = http.NewRequest(http.MethodGet, url, nil)
	} else {
		var body []byte
		body, err = json.Marshal(cmd.payload())
		if err == nil {
			req, err = http.NewRequest(cmd.httpMethod(), url, bytes.NewReader(body))
			if req != nil {
				req.Header.Set("Content-Type", "application/json")
			}
		}
	}
	if err != nil {
		d.logFailure(cmd, fmt.Errorf("failed to build request: %w", err))
		return nil
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	d.log.Debug().
		Str("method", cmd.httpMethod()).
		Str("url", url).
		Msg("Sending API request")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.logFailure(cmd, fmt.Errorf("request failed: %w", err))
		return nil
	}
	defer resp.Body.Close()

	envelope, err := validateResponse(resp)
	if err != nil {
		d.logFailure(cmd, err)
		return nil
	}

	result, err := cmd.parse(envelope)
	if err != nil {
		d.logFailure(cmd, fmt.Errorf("failed to decode response: %w", err))
		return nil
	}
	return result
}

// validateResponse checks the HTTP status and the status.result field of
// the response envelope, returning the decoded envelope on success.
func validateResponse(resp *http.Response) (map[string]any, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("device is unreachable? status code: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	status := getCIMap(envelope, "status")
	if status == nil {
		return nil, fmt.Errorf("response envelope has no status")
	}

	result := strings.ToLower(getCIString(status, "result"))
	switch result {
	case statusSuccess:
		return envelope, nil
	case statusInvalidParameter:
		return nil, fmt.Errorf("device rejected the value as invalid")
	default:
		return nil, fmt.Errorf("unexpected status %q: %s", result, getCIString(status, "detail"))
	}
}

func (d *Device) logFailure(cmd command, err error) {
	if !d.logFailures {
		return
	}
	d.log.Error().
		Err(err).
		Str("method", cmd.httpMethod()).
		Str("uri", cmd.uri()).
		Msg("Failed to execute command")
}

// invokeAuth invokes a command carrying the bearer auth header.
func (d *Device) invokeAuth(cmd command) any {
	return d.invoke(cmd, map[string]string{authHeader: d.authToken})
}

// invokeMayNeedAuth routes a command through the auth header when a token
// is present. Without a token, only speaker-class devices may proceed: the
// vendor lets speakers run unauthenticated, while an unauthenticated TV
// call is a caller configuration error raised before any network I/O.
func (d *Device) invokeMayNeedAuth(cmd command) (any, error) {
	if d.authToken == "" {
		if d.class == ClassSpeaker {
			return d.invoke(cmd, nil), nil
		}
		return nil, fmt.Errorf("%w: pair first or target a %s device", ErrAuthRequired, ClassSpeaker)
	}
	return d.invokeAuth(cmd), nil
}
