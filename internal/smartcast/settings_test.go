package smartcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingTypesCommandParse(t *testing.T) {
	cmd := newSettingTypesCommand(ClassTV)

	res, err := cmd.parse(map[string]any{
		"ITEMS": []any{
			map[string]any{"CNAME": "picture", "TYPE": "t_menu_v1"},
			map[string]any{"CNAME": "audio", "TYPE": "t_menu_v1"},
			// Pseudo-menus that are not settings trees.
			map[string]any{"CNAME": "cast", "TYPE": "t_menu_v1"},
			map[string]any{"CNAME": "input", "TYPE": "t_menu_v1"},
			map[string]any{"CNAME": "devices", "TYPE": "t_menu_v1"},
			map[string]any{"CNAME": "network", "TYPE": "t_menu_v1"},
			// Not a menu at all.
			map[string]any{"CNAME": "volume", "TYPE": "t_value_abs_v1"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"picture", "audio"}, res)
}

func TestSettingCommandParse(t *testing.T) {
	envelope := map[string]any{
		"ITEMS": []any{
			map[string]any{"CNAME": "treble", "TYPE": "t_value_abs_v1", "VALUE": float64(3), "HASHVAL": float64(111)},
		},
	}

	t.Run("matches by name ignoring case", func(t *testing.T) {
		cmd := newSettingCommand(ClassTV, "audio", "TREBLE")
		res, err := cmd.parse(envelope)
		require.NoError(t, err)
		item, ok := res.(*Item)
		require.True(t, ok)
		require.NotNil(t, item.IntValue())
		assert.Equal(t, 3, *item.IntValue())
	})

	t.Run("absent setting is nil, never zero", func(t *testing.T) {
		cmd := newSettingCommand(ClassTV, "audio", "bass")
		res, err := cmd.parse(envelope)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestAllSettingsOptionsCommandParse(t *testing.T) {
	cmd := newAllSettingsOptionsCommand(ClassTV, "audio")

	res, err := cmd.parse(map[string]any{
		"ITEMS": []any{
			map[string]any{
				"CNAME": "volume", "TYPE": "t_value_abs_v1",
				"MINIMUM": float64(0), "MAXIMUM": float64(100), "CENTER": float64(25),
			},
			map[string]any{
				"CNAME": "eq_mode", "TYPE": "t_list_v1",
				"ELEMENTS": []any{"Flat", "Rock", "Jazz"},
			},
			// Menus carry no options of their own.
			map[string]any{"CNAME": "advanced", "TYPE": "t_menu_v1"},
		},
	})
	require.NoError(t, err)

	options, ok := res.(map[string]SettingOptions)
	require.True(t, ok)
	require.Len(t, options, 2)

	volume := options["volume"]
	require.NotNil(t, volume.Min)
	assert.Equal(t, 0, *volume.Min)
	require.NotNil(t, volume.Max)
	assert.Equal(t, 100, *volume.Max)
	require.NotNil(t, volume.Default)
	assert.Equal(t, 25, *volume.Default)
	assert.Empty(t, volume.Choices)

	eq := options["eq_mode"]
	assert.Nil(t, eq.Min)
	assert.Equal(t, []string{"Flat", "Rock", "Jazz"}, eq.Choices)
}

func TestAllSettingsOptionsXListCommandParse(t *testing.T) {
	cmd := newAllSettingsOptionsXListCommand(ClassTV, "audio")

	res, err := cmd.parse(map[string]any{
		"ITEMS": []any{
			map[string]any{
				"CNAME": "equalizer", "TYPE": "t_list_x_v1",
				"ELEMENTS": []any{"Custom 1", "Custom 2"},
			},
			map[string]any{"CNAME": "volume", "TYPE": "t_value_abs_v1"},
		},
	})
	require.NoError(t, err)

	options, ok := res.(map[string][]string)
	require.True(t, ok)
	require.Len(t, options, 1)
	assert.Equal(t, []string{"Custom 1", "Custom 2"}, options["equalizer"])
}

func TestValidateSettingName(t *testing.T) {
	assert.NoError(t, validateSettingName("audio"))
	assert.NoError(t, validateSettingName("eq_mode"))

	assert.Error(t, validateSettingName(""))
	assert.Error(t, validateSettingName("audio/volume"))
	assert.Error(t, validateSettingName("eq mode"))
}

func TestSettingsURL(t *testing.T) {
	assert.Equal(t, "/menu_native/dynamic/tv_settings", settingsURL(ClassTV))
	assert.Equal(t, "/menu_native/dynamic/tv_settings/audio/treble", settingsURL(ClassTV, "audio", "treble"))
	assert.Equal(t, "/menu_native/dynamic/audio_settings/eq", settingsURL(ClassSpeaker, "eq"))
}
