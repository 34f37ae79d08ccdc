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

// Package cli persists paired devices between command invocations.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"vizcast/internal/smartcast"
)

// DeviceEntry is one saved device in the config file.
type DeviceEntry struct {
	Name      string `yaml:"name"`
	Host      string `yaml:"host"`
	Class     string `yaml:"class"`
	DeviceID  string `yaml:"device_id"`
	AuthToken string `yaml:"auth_token,omitempty"`
}

type configFile struct {
	Devices []DeviceEntry `yaml:"devices"`
}

// Store handles device configuration file operations.
type Store struct {
	configPath string
}

// DefaultConfigPath returns the config file location, honoring
// VIZCAST_CONFIG when set.
func DefaultConfigPath() string {
	if path := os.Getenv("VIZCAST_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vizcast.yaml"
	}
	return filepath.Join(home, ".vizcast.yaml")
}

// NewStore creates a store backed by the given config file.
func NewStore(configPath string) *Store {
	return &Store{configPath: configPath}
}

func (s *Store) load() (*configFile, error) {
	data, err := os.ReadFile(s.configPath)
	if os.IsNotExist(err) {
		return &configFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func (s *Store) save(cfg *configFile) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	// Auth tokens live in this file.
	if err := os.WriteFile(s.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ListDevices returns all saved devices.
func (s *Store) ListDevices() ([]DeviceEntry, error) {
	cfg, err := s.load()
	if err != nil {
		return nil, err
	}
	return cfg.Devices, nil
}

// GetDevice returns the saved device with the given name.
func (s *Store) GetDevice(name string) (*DeviceEntry, error) {
	cfg, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, device := range cfg.Devices {
		if device.Name == name {
			return &device, nil
		}
	}
	return nil, fmt.Errorf("device '%s' not found in %s", name, s.configPath)
}

// SaveDevice adds or replaces a saved device, keyed by name.
func (s *Store) SaveDevice(entry DeviceEntry) error {
	if entry.Name == "" {
		return fmt.Errorf("device name is required")
	}
	if _, err := smartcast.ParseDeviceClass(entry.Class); err != nil {
		return err
	}

	cfg, err := s.load()
	if err != nil {
		return err
	}

	for i, device := range cfg.Devices {
		if device.Name == entry.Name {
			cfg.Devices[i] = entry
			return s.save(cfg)
		}
	}

	cfg.Devices = append(cfg.Devices, entry)
	return s.save(cfg)
}

// RemoveDevice deletes a saved device by name.
func (s *Store) RemoveDevice(name string) error {
	cfg, err := s.load()
	if err != nil {
		return err
	}

	for i, device := range cfg.Devices {
		if device.Name == name {
			cfg.Devices = append(cfg.Devices[:i], cfg.Devices[i+1:]...)
			return s.save(cfg)
		}
	}
	return fmt.Errorf("device '%s' not found in %s", name, s.configPath)
}

// Connect builds a control client from a saved entry.
func (e DeviceEntry) Connect() (*smartcast.Device, error) {
	class, err := smartcast.ParseDeviceClass(e.Class)
	if err != nil {
		return nil, err
	}
	return smartcast.New(e.DeviceID, e.Host, e.Name, class,
		smartcast.WithAuthToken(e.AuthToken))
}
