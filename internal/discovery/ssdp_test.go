package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("parses a dial responder", func(t *testing.T) {
		raw := []byte("HTTP/1.1 200 OK\r\n" +
			"CACHE-CONTROL: max-age=1800\r\n" +
			"ST: urn:dial-multiscreen-org:device:dial:1\r\n" +
			"USN: uuid:abc-123::urn:dial-multiscreen-org:device:dial:1\r\n" +
			"LOCATION: http://192.168.1.50:8008/ssdp/device-desc.xml\r\n" +
			"\r\n")

		dev, ok := parseResponse(raw)
		require.True(t, ok)
		assert.Equal(t, "http://192.168.1.50:8008/ssdp/device-desc.xml", dev.Location)
		assert.Equal(t, "urn:dial-multiscreen-org:device:dial:1", dev.ST)
		assert.Contains(t, dev.USN, "uuid:abc-123")
	})

	t.Run("rejects responses without a location", func(t *testing.T) {
		raw := []byte("HTTP/1.1 200 OK\r\nST: something\r\n\r\n")
		_, ok := parseResponse(raw)
		assert.False(t, ok)
	})

	t.Run("rejects garbage datagrams", func(t *testing.T) {
		_, ok := parseResponse([]byte("NOTIFY * HTTP/1.1 garbage"))
		assert.False(t, ok)
	})
}
