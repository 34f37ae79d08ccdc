package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vizcast/internal/smartcast"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "vizcast.yaml"))
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	entry := DeviceEntry{
		Name:      "living-room",
		Host:      "192.168.1.50",
		Class:     "tv",
		DeviceID:  "client-1",
		AuthToken: "Zbxqthl77q",
	}
	require.NoError(t, store.SaveDevice(entry))

	loaded, err := store.GetDevice("living-room")
	require.NoError(t, err)
	assert.Equal(t, entry, *loaded)
}

func TestStoreReplacesByName(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveDevice(DeviceEntry{Name: "tv", Host: "10.0.0.1", Class: "tv"}))
	require.NoError(t, store.SaveDevice(DeviceEntry{Name: "tv", Host: "10.0.0.2", Class: "tv"}))

	devices, err := store.ListDevices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "10.0.0.2", devices[0].Host)
}

func TestStoreValidation(t *testing.T) {
	store := newTestStore(t)

	assert.Error(t, store.SaveDevice(DeviceEntry{Host: "10.0.0.1", Class: "tv"}), "name required")
	assert.Error(t, store.SaveDevice(DeviceEntry{Name: "x", Host: "10.0.0.1", Class: "toaster"}), "class validated")
}

func TestStoreMissingEntries(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetDevice("nope")
	assert.Error(t, err)
	assert.Error(t, store.RemoveDevice("nope"))

	devices, err := store.ListDevices()
	require.NoError(t, err)
	assert.Empty(t, devices, "missing file reads as empty config")
}

func TestStoreRemove(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveDevice(DeviceEntry{Name: "a", Host: "10.0.0.1", Class: "tv"}))
	require.NoError(t, store.SaveDevice(DeviceEntry{Name: "b", Host: "10.0.0.2", Class: "speaker"}))
	require.NoError(t, store.RemoveDevice("a"))

	devices, err := store.ListDevices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "b", devices[0].Name)
}

func TestStoreFilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveDevice(DeviceEntry{Name: "tv", Host: "10.0.0.1", Class: "tv", AuthToken: "secret"}))

	info, err := os.Stat(store.configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "token-bearing file must be private")
}

func TestDeviceEntryConnect(t *testing.T) {
	entry := DeviceEntry{
		Name:      "living-room",
		Host:      "192.168.1.50",
		Class:     "speaker",
		DeviceID:  "client-1",
		AuthToken: "tok",
	}

	device, err := entry.Connect()
	require.NoError(t, err)
	assert.Equal(t, smartcast.ClassSpeaker, device.Class())
	assert.Equal(t, "192.168.1.50", device.Host())
	assert.Equal(t, "tok", device.AuthToken())

	entry.Class = "toaster"
	_, err = entry.Connect()
	assert.Error(t, err)
}
