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

import (
	"fmt"
	"strings"
	"time"
)

// DeviceClass identifies the kind of SmartCast device being controlled.
// TVs and speakers expose structurally different menu trees and key sets.
type DeviceClass string

const (
	ClassTV      DeviceClass = "tv"
	ClassSpeaker DeviceClass = "speaker"
)

// ParseDeviceClass validates a device class string.
func ParseDeviceClass(s string) (DeviceClass, error) {
	switch DeviceClass(strings.ToLower(s)) {
	case ClassTV:
		return ClassTV, nil
	case ClassSpeaker:
		return ClassSpeaker, nil
	default:
		return "", fmt.Errorf("%w: %q (use %q or %q)", ErrInvalidDeviceClass, s, ClassTV, ClassSpeaker)
	}
}

// Protocol constants shared by every command.
const (
	actionModify = "MODIFY"
	authHeader   = "AUTH"

	statusSuccess          = "success"
	statusInvalidParameter = "invalid_parameter"

	typeSlider = "t_value_abs_v1"
	typeList   = "t_list_v1"
	typeValue  = "t_value_v1"
	typeMenu   = "t_menu_v1"
	typeXList  = "t_list_x_v1"
)

// Candidate API ports tried in order when the caller supplies a bare host.
var defaultPorts = []int{7345, 9000}

const (
	// DefaultTimeout bounds each API round trip unless overridden.
	DefaultTimeout = 5 * time.Second

	portProbeTimeout = 2 * time.Second
)

// MaxVolume returns the volume ceiling for a device class.
func MaxVolume(class DeviceClass) int {
	if class == ClassSpeaker {
		return 31
	}
	return 100
}

// Endpoint lookup keys. Paths differ between device classes for nearly
// every operation, so commands resolve (class, key) through the table
// below instead of hard-coding paths.
const (
	epBeginPair       = "BEGIN_PAIR"
	epFinishPair      = "FINISH_PAIR"
	epCancelPair      = "CANCEL_PAIR"
	epInputs          = "INPUTS"
	epCurrentInput    = "CURRENT_INPUT"
	epESN             = "ESN"
	epSerialNumber    = "SERIAL_NUMBER"
	epVersion         = "VERSION"
	epDeviceInfo      = "DEVICE_INFO"
	epPowerMode       = "POWER_MODE"
	epKeyPress        = "KEY_PRESS"
	epSettings        = "SETTINGS"
	epSettingsOptions = "SETTINGS_OPTIONS"
	epCurrentApp      = "CURRENT_APP"
	epLaunchApp       = "LAUNCH_APP"
)

var endpoints = map[DeviceClass]map[string]string{
	ClassTV: {
		epBeginPair:       "/pairing/start",
		epFinishPair:      "/pairing/pair",
		epCancelPair:      "/pairing/cancel",
		epInputs:          "/menu_native/dynamic/tv_settings/devices/name_input",
		epCurrentInput:    "/menu_native/dynamic/tv_settings/devices/current_input",
		epESN:             "/menu_native/dynamic/tv_settings/system/system_information/uli_information/esn",
		epSerialNumber:    "/menu_native/dynamic/tv_settings/system/system_information/tv_information/serial_number",
		epVersion:         "/menu_native/dynamic/tv_settings/system/system_information/tv_information/version",
		epDeviceInfo:      "/state/device/deviceinfo",
		epPowerMode:       "/state/device/power_mode",
		epKeyPress:        "/key_command/",
		epSettings:        "/menu_native/dynamic/tv_settings",
		epSettingsOptions: "/menu_native/static/tv_settings",
		epCurrentApp:      "/app/current",
		epLaunchApp:       "/app/launch",
	},
	ClassSpeaker: {
		epBeginPair:       "/pairing/start",
		epFinishPair:      "/pairing/pair",
		epCancelPair:      "/pairing/cancel",
		epInputs:          "/menu_native/dynamic/audio_settings/input",
		epCurrentInput:    "/menu_native/dynamic/audio_settings/input/current_input",
		epESN:             "/menu_native/dynamic/audio_settings/system/system_information/uli_information/esn",
		epSerialNumber:    "/menu_native/dynamic/audio_settings/system/system_information/speaker_information/serial_number",
		epVersion:         "/menu_native/dynamic/audio_settings/system/system_information/speaker_information/version",
		epDeviceInfo:      "/state/device/deviceinfo",
		epPowerMode:       "/state/device/power_mode",
		epKeyPress:        "/key_command/",
		epSettings:        "/menu_native/dynamic/audio_settings",
		epSettingsOptions: "/menu_native/static/audio_settings",
	},
}

// endpoint resolves a (class, key) pair to an API path. An unknown pair is
// a programmer error, not a device condition, so resolution fails closed.
func endpoint(class DeviceClass, key string) string {
	path, ok := endpoints[class][key]
	if !ok {
		panic(fmt.Sprintf("smartcast: no endpoint %q for device class %q", key, class))
	}
	return path
}

// itemCNames maps endpoint keys to the cname the device reports for the
// matching item, where the two differ only by case convention.
var itemCNames = map[string]string{
	epCurrentInput: "current_input",
	epESN:          "esn",
	epPowerMode:    "power_mode",
	epSerialNumber: "serial_number",
	epVersion:      "version",
}

// modelNamePaths lists the known locations of the model name inside the
// deviceinfo value object, newest firmware first.
var modelNamePaths = map[DeviceClass][][]string{
	ClassTV:      {{"model_name"}, {"system_info", "model_name"}},
	ClassSpeaker: {{"name"}},
}
