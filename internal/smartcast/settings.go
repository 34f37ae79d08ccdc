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
)

// SettingOptions describes the acceptable values of one setting: numeric
// bounds with an optional default for slider and value types, an ordered
// choice list for list types. Exactly one of the two shapes is populated.
type SettingOptions struct {
	Min     *int
	Max     *int
	Default *int
	Choices []string
}

func settingsURL(class DeviceClass, parts ...string) string {
	url := endpoint(class, epSettings)
	if len(parts) > 0 {
		url += "/" + strings.Join(parts, "/")
	}
	return url
}

// settingTypesCommand lists the setting type menus the device exposes,
// excluding the pseudo-menus that are not settings trees.
type settingTypesCommand struct {
	getCommand
}

func newSettingTypesCommand(class DeviceClass) settingTypesCommand {
	return settingTypesCommand{getCommand{url: settingsURL(class)}}
}

func (c settingTypesCommand) parse(envelope map[string]any) (any, error) {
	var types []string
	for _, it := range parseItems(envelope) {
		if strings.ToLower(it.Type) != typeMenu {
			continue
		}
		switch it.CName {
		case "cast", "input", "devices", "network":
			continue
		}
		types = append(types, it.CName)
	}
	if types == nil {
		return nil, nil
	}
	return types, nil
}

// allSettingsCommand reads every setting name and current value of one
// setting type.
type allSettingsCommand struct {
	getCommand
}

func newAllSettingsCommand(class DeviceClass, settingType string) allSettingsCommand {
	return allSettingsCommand{getCommand{url: settingsURL(class, settingType)}}
}

func (c allSettingsCommand) parse(envelope map[string]any) (any, error) {
	settings := make(map[string]any)
	for _, it := range parseItems(envelope) {
		switch strings.ToLower(it.Type) {
		case typeList, typeSlider, typeValue:
			settings[it.CName] = it.Value
		}
	}
	if len(settings) == 0 {
		return nil, nil
	}
	return settings, nil
}

// settingCommand reads a single setting by type and name. A missing
// setting decodes to nil — "not found" is distinct from a zero value.
type settingCommand struct {
	getCommand
	name string
}

func newSettingCommand(class DeviceClass, settingType, name string) settingCommand {
	return settingCommand{
		getCommand: getCommand{url: settingsURL(class, settingType, name)},
		name:       strings.ToLower(name),
	}
}

func (c settingCommand) parse(envelope map[string]any) (any, error) {
	for _, it := range parseItems(envelope) {
		if strings.ToLower(it.CName) == c.name {
			item := it
			return &item, nil
		}
	}
	return nil, nil
}

// allSettingsOptionsCommand reads the static options tree of one setting
// type. The type-tag branch below decides the output shape per setting:
// slider and value settings yield bounds, list settings yield choices.
// Getting this branch wrong silently empties the output for valid
// settings, so it mirrors the device's tags exactly.
type allSettingsOptionsCommand struct {
	getCommand
}

func newAllSettingsOptionsCommand(class DeviceClass, settingType string) allSettingsOptionsCommand {
	url := endpoint(class, epSettingsOptions) + "/" + settingType
	return allSettingsOptionsCommand{getCommand{url: url}}
}

func (c allSettingsOptionsCommand) parse(envelope map[string]any) (any, error) {
	options := make(map[string]SettingOptions)
	for _, it := range parseItems(envelope) {
		switch strings.ToLower(it.Type) {
		case typeSlider, typeValue:
			options[it.CName] = SettingOptions{Min: it.Min, Max: it.Max, Default: it.Center}
		case typeList:
			choices := make([]string, len(it.Choices))
			copy(choices, it.Choices)
			options[it.CName] = SettingOptions{Choices: choices}
		}
	}
	if len(options) == 0 {
		return nil, nil
	}
	return options, nil
}

// allSettingsOptionsXListCommand reads the options of extended-list
// settings, which live under the dynamic tree and carry raw choice
// strings only, no bounds.
type allSettingsOptionsXListCommand struct {
	getCommand
}

func newAllSettingsOptionsXListCommand(class DeviceClass, settingType string) allSettingsOptionsXListCommand {
	return allSettingsOptionsXListCommand{getCommand{url: settingsURL(class, settingType)}}
}

func (c allSettingsOptionsXListCommand) parse(envelope map[string]any) (any, error) {
	options := make(map[string][]string)
	for _, it := range parseItems(envelope) {
		if strings.ToLower(it.Type) != typeXList {
			continue
		}
		choices := make([]string, len(it.Choices))
		copy(choices, it.Choices)
		options[it.CName] = choices
	}
	if len(options) == 0 {
		return nil, nil
	}
	return options, nil
}

// newChangeSettingCommand writes a new value to a setting. id is the
// hashval from the read that every setter performs first.
func newChangeSettingCommand(class DeviceClass, settingType, name string, id int, value any) putCommand {
	return newSetItemCommand(settingsURL(class, settingType, name), id, value)
}

// validateSettingName guards the URL path segments built from caller
// supplied names.
func validateSettingName(s string) error {
	if s == "" || strings.ContainsAny(s, "/ ") {
		return fmt.Errorf("invalid setting name %q", s)
	}
	return nil
}
