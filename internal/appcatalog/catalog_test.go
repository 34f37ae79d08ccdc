package appcatalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vizcast/internal/smartcast"
)

func TestBundled(t *testing.T) {
	apps := Bundled()
	require.NotEmpty(t, apps)

	t.Run("launcher entry comes first", func(t *testing.T) {
		assert.Equal(t, "SmartCast Home", apps[0].Name)
	})

	t.Run("every entry is launchable", func(t *testing.T) {
		for _, app := range apps {
			assert.NotEmpty(t, app.Configs, "app %s has no launch config", app.Name)
			assert.NotEmpty(t, app.Countries, "app %s has no countries", app.Name)
		}
	})
}

func TestMerge(t *testing.T) {
	names := []nameRecord{
		{Name: "Hulu", ID: "hulu-us", Country: []string{"USA"}},
		{Name: "Hulu", ID: "hulu-ca", Country: []string{"CAN"}},
		{Name: "Ghost", ID: "no-payload", Country: []string{"USA"}},
	}
	payloads := []payloadRecord{
		{
			ID: "hulu-us",
			Chipsets: map[string][]struct {
				AppTypePayload string `json:"app_type_payload"`
			}{
				// The same payload repeated across chipsets must collapse.
				"chip1": {{AppTypePayload: `{"APP_ID":"19","NAME_SPACE":4}`}},
				"chip2": {{AppTypePayload: `{"APP_ID":"19","NAME_SPACE":4}`}},
			},
		},
		{
			ID: "hulu-ca",
			Chipsets: map[string][]struct {
				AppTypePayload string `json:"app_type_payload"`
			}{
				"chip1": {{AppTypePayload: `{"APP_ID":"3","NAME_SPACE":2}`}},
			},
		},
	}

	entries := merge(names, payloads)
	require.Len(t, entries, 1, "same-named regional apps collapse, payload-less apps drop")

	hulu := entries[0]
	assert.Equal(t, "Hulu", hulu.Name)
	assert.Len(t, hulu.Configs, 2)
	assert.Contains(t, hulu.Configs, smartcast.AppConfig{AppID: "19", NameSpace: 4})
	assert.Contains(t, hulu.Configs, smartcast.AppConfig{AppID: "3", NameSpace: 2})
}

func TestAppsFetchesAndCaches(t *testing.T) {
	var fetches atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/names", func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		json.NewEncoder(w).Encode([]nameRecord{
			{Name: "Netflix", ID: "nf", Country: []string{"USA"}},
		})
	})
	mux.HandleFunc("/payloads", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"id": "nf",
				"chipsets": map[string]any{
					"chip1": []map[string]any{
						{"app_type_payload": `{"APP_ID":"1","NAME_SPACE":3}`},
					},
				},
			},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	source := New(WithURLs(server.URL+"/names", server.URL+"/payloads"))

	first := source.Apps()
	require.Len(t, first, 1)
	assert.Equal(t, "Netflix", first[0].Name)

	// Second read must come from the cache.
	second := source.Apps()
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), fetches.Load())
}

func TestAppsFallsBackWhenUnreachable(t *testing.T) {
	source := New(WithURLs("http://127.0.0.1:1/names", "http://127.0.0.1:1/payloads"))

	apps := source.Apps()
	require.NotEmpty(t, apps, "catalog must never be empty")
	assert.Equal(t, Bundled(), apps)
}

func TestNames(t *testing.T) {
	source := New(WithURLs("http://127.0.0.1:1/names", "http://127.0.0.1:1/payloads"))

	t.Run("all countries", func(t *testing.T) {
		names := source.Names("all")
		assert.Contains(t, names, "Netflix")
		assert.Contains(t, names, "Hulu")
		assert.IsIncreasing(t, names)
	})

	t.Run("country filter keeps wildcards", func(t *testing.T) {
		names := source.Names("can")
		assert.Contains(t, names, "Netflix", "wildcard country")
		assert.Contains(t, names, "Plex", "explicit can entry")
		assert.NotContains(t, names, "Hulu", "usa only")
	})
}
