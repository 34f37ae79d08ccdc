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

import "sort"

// keyCode is a (codeset, code) pair understood by the key_command
// endpoint.
type keyCode struct {
	Codeset int
	Code    int
}

const keyActionPress = "KEYPRESS"

// keyCodes lists every emulatable remote key per device class. Speakers
// expose a much smaller physical key set than TVs.
var keyCodes = map[DeviceClass]map[string]keyCode{
	ClassTV: {
		"SEEK_FWD":    {2, 0},
		"SEEK_BACK":   {2, 1},
		"PAUSE":       {2, 2},
		"PLAY":        {2, 3},
		"DOWN":        {3, 0},
		"LEFT":        {3, 1},
		"OK":          {3, 2},
		"UP":          {3, 3},
		"LEFT2":       {3, 4},
		"RIGHT":       {3, 5},
		"BACK":        {4, 0},
		"SMARTCAST":   {4, 3},
		"CC_TOGGLE":   {4, 4},
		"INFO":        {4, 6},
		"MENU":        {4, 8},
		"HOME":        {4, 15},
		"VOL_DOWN":    {5, 0},
		"VOL_UP":      {5, 1},
		"MUTE_OFF":    {5, 2},
		"MUTE_ON":     {5, 3},
		"MUTE_TOGGLE": {5, 4},
		"PIC_MODE":    {6, 0},
		"PIC_SIZE":    {6, 2},
		"INPUT_NEXT":  {7, 1},
		"CH_DOWN":     {8, 0},
		"CH_UP":       {8, 1},
		"CH_PREV":     {8, 2},
		"EXIT":        {9, 0},
		"POW_OFF":     {11, 0},
		"POW_ON":      {11, 1},
		"POW_TOGGLE":  {11, 2},
	},
	ClassSpeaker: {
		"PAUSE":       {2, 2},
		"PLAY":        {2, 3},
		"VOL_DOWN":    {5, 0},
		"VOL_UP":      {5, 1},
		"MUTE_OFF":    {5, 2},
		"MUTE_ON":     {5, 3},
		"MUTE_TOGGLE": {5, 4},
		"POW_OFF":     {11, 0},
		"POW_ON":      {11, 1},
		"POW_TOGGLE":  {11, 2},
	},
}

// keyNames returns the sorted key names a device class supports.
func keyNames(class DeviceClass) []string {
	names := make([]string, 0, len(keyCodes[class]))
	for name := range keyCodes[class] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// keyEvent is one emulated key press on the wire.
type keyEvent struct {
	Codeset int    `json:"CODESET"`
	Code    int    `json:"CODE"`
	Action  string `json:"ACTION"`
}

type keyPressBody struct {
	KeyList []keyEvent `json:"KEYLIST"`
}

// newEmulateRemoteCommand batches any number of key presses into a single
// request. Multi-step operations like "volume up by 5" are one round trip
// carrying five events, not five round trips.
func newEmulateRemoteCommand(class DeviceClass, codes []keyCode) putCommand {
	events := make([]keyEvent, 0, len(codes))
	for _, kc := range codes {
		events = append(events, keyEvent{Codeset: kc.Codeset, Code: kc.Code, Action: keyActionPress})
	}
	return putCommand{
		url:  endpoint(class, epKeyPress),
		body: keyPressBody{KeyList: events},
	}
}
