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

package smartcast

import "strings"

// Sentinel names returned by app identity resolution.
const (
	// NoAppRunning means the device reported no running app at all.
	NoAppRunning = "_NO_APP_RUNNING"
	// UnknownApp means the device reported an app the catalog does not
	// know.
	UnknownApp = "_UNKNOWN_APP"

	// castAppName labels the platform's own cast/home surface, which the
	// device reports under the reserved namespace below rather than as a
	// catalogued app.
	castAppName   = "Cast"
	castNameSpace = 0
)

// equivalentNameSpaces are empirically interchangeable across firmware
// revisions: the same app can be reported under either value depending on
// the firmware generation.
var equivalentNameSpaces = []int{2, 4}

// AppConfig is the opaque identity tuple the device uses for a running or
// to-be-launched app. It is compared against catalog entries, never
// interpreted.
type AppConfig struct {
	AppID     string `json:"APP_ID"`
	NameSpace int    `json:"NAME_SPACE"`
	Message   string `json:"MESSAGE,omitempty"`
}

// AppEntry is one read-only catalog record mapping a human name to the
// launch configs the app has used across firmware generations. Any one
// config matching is sufficient for identification.
type AppEntry struct {
	Name      string
	Countries []string
	Configs   []AppConfig
}

// FindAppName resolves an observed app config to a human-readable name
// against a catalog. Resolution is layered, first match wins:
//
//  1. nil config means nothing is running.
//  2. Exact (AppID, NameSpace) match over every config of every entry.
//  3. Equivalence fallback: when the observed namespace is one of the
//     interchangeable pair, accept either value in place of an exact
//     namespace match. Exact matching runs first so a legitimately
//     distinct app sharing an id under the other namespace is not masked.
//  4. The reserved namespace with no match is the cast/home surface.
//
// The function is pure: same inputs, same answer.
func FindAppName(observed *AppConfig, catalog []AppEntry) string {
	if observed == nil {
		return NoAppRunning
	}

	for _, entry := range catalog {
		for _, cfg := range entry.Configs {
			if cfg.AppID == observed.AppID && cfg.NameSpace == observed.NameSpace {
				return entry.Name
			}
		}
	}

	if containsInt(equivalentNameSpaces, observed.NameSpace) {
		for _, entry := range catalog {
			for _, cfg := range entry.Configs {
				if cfg.AppID == observed.AppID && containsInt(equivalentNameSpaces, cfg.NameSpace) {
					return entry.Name
				}
			}
		}
	}

	if observed.NameSpace == castNameSpace {
		return castAppName
	}
	return UnknownApp
}

// FindAppEntry returns the catalog entry with the given name, ignoring
// case.
func FindAppEntry(name string, catalog []AppEntry) *AppEntry {
	for i := range catalog {
		if strings.EqualFold(catalog[i].Name, name) {
			return &catalog[i]
		}
	}
	return nil
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

type currentAppConfigCommand struct {
	getCommand
}

func newCurrentAppConfigCommand(class DeviceClass) currentAppConfigCommand {
	return currentAppConfigCommand{getCommand{url: endpoint(class, epCurrentApp)}}
}

func (c currentAppConfigCommand) parse(envelope map[string]any) (any, error) {
	item := getCIMap(envelope, "item")
	if item == nil {
		return nil, nil
	}
	value := getCIMap(item, "value")
	if value == nil {
		return nil, nil
	}

	cfg := &AppConfig{
		AppID:   getCIString(value, "APP_ID"),
		Message: getCIString(value, "MESSAGE"),
	}
	if ns := getCIInt(value, "NAME_SPACE"); ns != nil {
		cfg.NameSpace = *ns
	}
	if cfg.AppID == "" && cfg.Message == "" {
		return nil, nil
	}
	return cfg, nil
}

type launchAppBody struct {
	Value AppConfig `json:"VALUE"`
}

func newLaunchAppCommand(class DeviceClass, cfg AppConfig) putCommand {
	return putCommand{
		url:  endpoint(class, epLaunchApp),
		body: launchAppBody{Value: cfg},
	}
}
