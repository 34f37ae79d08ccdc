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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCI(t *testing.T) {
	obj := map[string]any{
		"CNAME": "volume",
		"Value": float64(25),
		"type":  "t_value_abs_v1",
	}

	t.Run("matches regardless of key casing", func(t *testing.T) {
		for _, key := range []string{"cname", "CNAME", "CName"} {
			v, ok := getCI(obj, key)
			assert.True(t, ok, "key %q", key)
			assert.Equal(t, "volume", v)
		}
	})

	t.Run("reports absent keys", func(t *testing.T) {
		_, ok := getCI(obj, "missing")
		assert.False(t, ok)
	})

	t.Run("string helper stringifies numbers", func(t *testing.T) {
		assert.Equal(t, "25", getCIString(obj, "value"))
		assert.Equal(t, "volume", getCIString(obj, "cname"))
		assert.Equal(t, "", getCIString(obj, "missing"))
	})
}

func TestAsInt(t *testing.T) {
	t.Run("coerces json numbers", func(t *testing.T) {
		v := asInt(float64(31))
		require.NotNil(t, v)
		assert.Equal(t, 31, *v)
	})

	t.Run("coerces quoted numbers", func(t *testing.T) {
		v := asInt(" 7 ")
		require.NotNil(t, v)
		assert.Equal(t, 7, *v)
	})

	t.Run("coerces booleans", func(t *testing.T) {
		v := asInt(true)
		require.NotNil(t, v)
		assert.Equal(t, 1, *v)
	})

	t.Run("rejects non-numeric strings", func(t *testing.T) {
		assert.Nil(t, asInt("loud"))
		assert.Nil(t, asInt(nil))
	})
}

func TestParseItem(t *testing.T) {
	t.Run("parses a full record", func(t *testing.T) {
		it, ok := parseItem(map[string]any{
			"HASHVAL":  float64(12345),
			"CNAME":    "volume",
			"NAME":     "Volume",
			"TYPE":     "t_value_abs_v1",
			"VALUE":    float64(20),
			"MINIMUM":  float64(0),
			"MAXIMUM":  float64(100),
			"CENTER":   float64(50),
			"ELEMENTS": []any{"Off", "Low", "High"},
		})
		require.True(t, ok)

		require.NotNil(t, it.ID)
		assert.Equal(t, 12345, *it.ID)
		assert.Equal(t, "volume", it.CName)
		assert.Equal(t, "Volume", it.Name)
		require.NotNil(t, it.IntValue())
		assert.Equal(t, 20, *it.IntValue())
		assert.Equal(t, []string{"Off", "Low", "High"}, it.Choices)
		require.NotNil(t, it.Min)
		assert.Equal(t, 0, *it.Min)
		require.NotNil(t, it.Max)
		assert.Equal(t, 100, *it.Max)
		require.NotNil(t, it.Center)
		assert.Equal(t, 50, *it.Center)
	})

	t.Run("rejects records missing cname or type", func(t *testing.T) {
		_, ok := parseItem(map[string]any{"TYPE": "t_value_v1", "VALUE": float64(1)})
		assert.False(t, ok)

		_, ok = parseItem(map[string]any{"CNAME": "volume", "VALUE": float64(1)})
		assert.False(t, ok)
	})
}

func TestParseItems(t *testing.T) {
	envelope := map[string]any{
		"STATUS": map[string]any{"RESULT": "SUCCESS"},
		"ITEMS": []any{
			map[string]any{"CNAME": "volume", "TYPE": "t_value_abs_v1", "VALUE": float64(20)},
			map[string]any{"VALUE": float64(1)}, // malformed, no cname/type
			"not even an object",
			map[string]any{"CNAME": "mute", "TYPE": "t_list_v1", "VALUE": "Off"},
		},
	}

	items := parseItems(envelope)
	require.Len(t, items, 2)
	assert.Equal(t, "volume", items[0].CName)
	assert.Equal(t, "mute", items[1].CName)
}
