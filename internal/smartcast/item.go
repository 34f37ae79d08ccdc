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
	"strconv"
	"strings"
)

// getCI performs a case-insensitive lookup in a decoded JSON object.
// Firmware revisions disagree on key casing, so every decode boundary
// goes through this helper.
func getCI(obj map[string]any, key string) (any, bool) {
	key = strings.ToLower(key)
	for k, v := range obj {
		if strings.ToLower(k) == key {
			return v, true
		}
	}
	return nil, false
}

// getCIMap is getCI for values that are themselves JSON objects.
func getCIMap(obj map[string]any, key string) map[string]any {
	v, _ := getCI(obj, key)
	m, _ := v.(map[string]any)
	return m
}

// getCIList is getCI for values that are JSON arrays.
func getCIList(obj map[string]any, key string) []any {
	v, _ := getCI(obj, key)
	l, _ := v.([]any)
	return l
}

// getCIString is getCI for string values. Numeric values are stringified
// since the device is not consistent about quoting.
func getCIString(obj map[string]any, key string) string {
	v, _ := getCI(obj, key)
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// getCIInt is getCI for integral values, tolerating both numeric and
// quoted representations. Returns nil when the key is absent or not a
// number.
func getCIInt(obj map[string]any, key string) *int {
	v, ok := getCI(obj, key)
	if !ok {
		return nil
	}
	return asInt(v)
}

// asInt coerces a decoded JSON value to an int where possible.
func asInt(v any) *int {
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		return &n
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return &i
		}
	case bool:
		i := 0
		if n {
			i = 1
		}
		return &i
	}
	return nil
}

// Item is one device setting or state record as returned by the API.
// ID is the opaque hashval handle the device requires to write the
// setting back; it is absent on synthetic default items.
type Item struct {
	ID      *int
	CName   string
	Name    string
	Type    string
	Value   any
	Min     *int
	Max     *int
	Center  *int
	Choices []string
}

// IntValue attempts numeric coercion of the item value, falling back to
// nil when the device returned a non-numeric string.
func (it Item) IntValue() *int {
	return asInt(it.Value)
}

// StringValue renders the item value as a string.
func (it Item) StringValue() string {
	switch v := it.Value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}

// defaultItem builds the read-only stand-in used when the device omits a
// setting entirely but the command configured a fallback value.
func defaultItem(value any) *Item {
	return &Item{Value: value}
}

// parseItem builds an Item from one decoded JSON record. ok is false for
// malformed records missing the mandatory cname and type fields; list
// decoders drop those instead of failing the whole response.
func parseItem(obj map[string]any) (Item, bool) {
	it := Item{
		ID:     getCIInt(obj, "hashval"),
		CName:  getCIString(obj, "cname"),
		Name:   getCIString(obj, "name"),
		Type:   getCIString(obj, "type"),
		Min:    getCIInt(obj, "minimum"),
		Max:    getCIInt(obj, "maximum"),
		Center: getCIInt(obj, "center"),
	}
	it.Value, _ = getCI(obj, "value")

	for _, el := range getCIList(obj, "elements") {
		if s, ok := el.(string); ok {
			it.Choices = append(it.Choices, s)
		}
	}

	if it.CName == "" || it.Type == "" {
		return it, false
	}
	return it, true
}

// parseItems extracts and parses the items array of a response envelope,
// dropping malformed records.
func parseItems(envelope map[string]any) []Item {
	raw := getCIList(envelope, "items")
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		obj, ok := r.(map[string]any)
		if !ok {
			continue
		}
		if it, ok := parseItem(obj); ok {
			items = append(items, it)
		}
	}
	return items
}
