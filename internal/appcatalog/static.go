package appcatalog

import "vizcast/internal/smartcast"

// home is the platform's own launcher surface. It is always present in
// the catalog regardless of the app service contents.
var home = smartcast.AppEntry{
	Name:      "SmartCast Home",
	Countries: []string{"*"},
	Configs: []smartcast.AppConfig{
		{AppID: "1", NameSpace: 4},
	},
}

// bundled is a snapshot of the most common catalog entries, used when the
// vendor app service is unreachable. Apps often carry several configs:
// firmware generations report the same app under different namespaces.
var bundled = []smartcast.AppEntry{
	{
		Name:      "Amazon Prime Video",
		Countries: []string{"usa", "can"},
		Configs: []smartcast.AppConfig{
			{AppID: "33", NameSpace: 4},
			{AppID: "4", NameSpace: 2},
		},
	},
	{
		Name:      "CBS All Access",
		Countries: []string{"usa"},
		Configs: []smartcast.AppConfig{
			{AppID: "9", NameSpace: 2},
		},
	},
	{
		Name:      "Crackle",
		Countries: []string{"usa"},
		Configs: []smartcast.AppConfig{
			{AppID: "8", NameSpace: 2},
		},
	},
	{
		Name:      "Hulu",
		Countries: []string{"usa"},
		Configs: []smartcast.AppConfig{
			{AppID: "19", NameSpace: 4},
			{AppID: "3", NameSpace: 2},
		},
	},
	{
		Name:      "iHeartRadio",
		Countries: []string{"usa"},
		Configs: []smartcast.AppConfig{
			{AppID: "11", NameSpace: 2},
		},
	},
	{
		Name:      "Netflix",
		Countries: []string{"*"},
		Configs: []smartcast.AppConfig{
			{AppID: "1", NameSpace: 3},
		},
	},
	{
		Name:      "Plex",
		Countries: []string{"usa", "can"},
		Configs: []smartcast.AppConfig{
			{AppID: "40", NameSpace: 4},
			{AppID: "9", NameSpace: 2},
		},
	},
	{
		Name:      "Pluto TV",
		Countries: []string{"usa"},
		Configs: []smartcast.AppConfig{
			{AppID: "65", NameSpace: 4},
			{AppID: "E6F74C01", NameSpace: 0},
		},
	},
	{
		Name:      "Tubi",
		Countries: []string{"usa"},
		Configs: []smartcast.AppConfig{
			{AppID: "90", NameSpace: 4},
			{AppID: "61", NameSpace: 2},
		},
	},
	{
		Name:      "Vudu",
		Countries: []string{"usa"},
		Configs: []smartcast.AppConfig{
			{AppID: "21", NameSpace: 2},
		},
	},
	{
		Name:      "XUMO",
		Countries: []string{"usa"},
		Configs: []smartcast.AppConfig{
			{AppID: "27", NameSpace: 4},
			{AppID: "36E1EA1F", NameSpace: 0},
		},
	},
	{
		Name:      "YouTube",
		Countries: []string{"*"},
		Configs: []smartcast.AppConfig{
			{AppID: "44", NameSpace: 5},
			{AppID: "1", NameSpace: 2},
		},
	},
	{
		Name:      "YouTube TV",
		Countries: []string{"usa"},
		Configs: []smartcast.AppConfig{
			{AppID: "45", NameSpace: 5},
		},
	},
}

// Bundled returns the static fallback catalog, launcher entry first.
func Bundled() []smartcast.AppEntry {
	out := make([]smartcast.AppEntry, 0, len(bundled)+1)
	out = append(out, home)
	out = append(out, bundled...)
	return out
}
