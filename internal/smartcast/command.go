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
	"net/http"
	"strings"
)

// command is a single request descriptor: it knows its HTTP method, its
// resolved endpoint path, its request body, and how to decode the matching
// response envelope. One flat implementation exists per operation; shared
// behavior lives in the embedded base types below rather than a hierarchy.
type command interface {
	httpMethod() string
	uri() string
	payload() any
	parse(envelope map[string]any) (any, error)
}

// getCommand is the base for read commands: a bodyless GET whose default
// decode returns nothing.
type getCommand struct {
	url string
}

func (c getCommand) httpMethod() string { return http.MethodGet }
func (c getCommand) uri() string        { return c.url }
func (c getCommand) payload() any       { return nil }

func (c getCommand) parse(map[string]any) (any, error) { return nil, nil }

// putCommand is the base for write commands: a PUT with a JSON body whose
// default decode just reports acceptance.
type putCommand struct {
	url  string
	body any
}

func (c putCommand) httpMethod() string { return http.MethodPut }
func (c putCommand) uri() string        { return c.url }
func (c putCommand) payload() any       { return c.body }

func (c putCommand) parse(map[string]any) (any, error) { return true, nil }

// modifyBody is the fixed shape every setting write carries: the new
// value, the hashval handle obtained from a prior read, and the modify
// action marker.
type modifyBody struct {
	Value   any    `json:"VALUE"`
	HashVal int    `json:"HASHVAL"`
	Request string `json:"REQUEST"`
}

// newSetItemCommand builds a write command for an item at the given path.
// Callers must read before writing: id is the Item.ID from that read.
func newSetItemCommand(url string, id int, value any) putCommand {
	return putCommand{
		url: url,
		body: modifyBody{
			Value:   value,
			HashVal: id,
			Request: actionModify,
		},
	}
}

// itemInfoCommand reads a single item by endpoint key and returns the
// matching *Item from the response list. When the device omits the item a
// configured default value stands in; with no default the result is nil,
// which callers treat as "not found" rather than zero.
type itemInfoCommand struct {
	getCommand
	itemKey      string
	defaultValue any
}

func newItemInfoCommand(class DeviceClass, itemKey string) itemInfoCommand {
	return itemInfoCommand{
		getCommand: getCommand{url: endpoint(class, itemKey)},
		itemKey:    itemKey,
	}
}

func (c itemInfoCommand) parse(envelope map[string]any) (any, error) {
	want := itemCNames[c.itemKey]
	for _, it := range parseItems(envelope) {
		cname := strings.ToLower(it.CName)
		if cname == want || cname == strings.ToLower(c.itemKey) {
			item := it
			return &item, nil
		}
	}

	if c.defaultValue != nil {
		return defaultItem(c.defaultValue), nil
	}
	return nil, nil
}

// deviceInfoCommand reads the raw deviceinfo record.
type deviceInfoCommand struct {
	getCommand
}

func newDeviceInfoCommand(class DeviceClass) deviceInfoCommand {
	return deviceInfoCommand{getCommand{url: endpoint(class, epDeviceInfo)}}
}

func (c deviceInfoCommand) parse(envelope map[string]any) (any, error) {
	raw := getCIList(envelope, "items")
	if len(raw) == 0 {
		return nil, nil
	}
	obj, _ := raw[0].(map[string]any)
	return obj, nil
}

// modelNameCommand extracts the model name from deviceinfo, probing the
// known value paths newest firmware first.
type modelNameCommand struct {
	deviceInfoCommand
	paths [][]string
}

func newModelNameCommand(class DeviceClass) modelNameCommand {
	return modelNameCommand{
		deviceInfoCommand: newDeviceInfoCommand(class),
		paths:             modelNamePaths[class],
	}
}

func (c modelNameCommand) parse(envelope map[string]any) (any, error) {
	res, err := c.deviceInfoCommand.parse(envelope)
	if err != nil {
		return nil, err
	}
	info, _ := res.(map[string]any)
	if info == nil {
		return nil, nil
	}

	value := getCIMap(info, "value")
	for _, path := range c.paths {
		cur := value
		for i, step := range path {
			if i == len(path)-1 {
				if name := getCIString(cur, step); name != "" {
					return name, nil
				}
				break
			}
			cur = getCIMap(cur, step)
			if cur == nil {
				break
			}
		}
	}
	return nil, nil
}
