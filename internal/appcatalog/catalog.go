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

// Package appcatalog supplies the app catalog the core's identity
// resolver consumes: a list of (name, countries, launch configs) records
// fetched from the vendor's app service, with a bundled static table as
// fallback when the service is unreachable.
package appcatalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"

	"vizcast/internal/logger"
	"vizcast/internal/smartcast"
)

const (
	defaultNamesURL    = "http://scfs.vizio.com/appservice/vizio_apps_prod.json"
	defaultPayloadsURL = "http://scfs.vizio.com/appservice/app_availability_prod.json"

	cacheKey = "apps"
	cacheTTL = 24 * time.Hour
)

// Source fetches and caches the app catalog.
type Source struct {
	namesURL    string
	payloadsURL string
	client      *http.Client
	cache       *ttlcache.Cache[string, []smartcast.AppEntry]
	log         zerolog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithURLs overrides the vendor app service URLs.
func WithURLs(namesURL, payloadsURL string) Option {
	return func(s *Source) {
		s.namesURL = namesURL
		s.payloadsURL = payloadsURL
	}
}

// WithHTTPClient overrides the HTTP client used for fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Source) { s.client = client }
}

// New creates a catalog source.
func New(opts ...Option) *Source {
	s := &Source{
		namesURL:    defaultNamesURL,
		payloadsURL: defaultPayloadsURL,
		client:      &http.Client{Timeout: 10 * time.Second},
		cache: ttlcache.New(
			ttlcache.WithTTL[string, []smartcast.AppEntry](cacheTTL),
		),
		log: logger.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apps returns the current catalog: the cached remote list when fresh, a
// new fetch when stale, and the bundled table when the service cannot be
// reached. Never returns an empty catalog.
func (s *Source) Apps() []smartcast.AppEntry {
	if item := s.cache.Get(cacheKey); item != nil {
		return item.Value()
	}

	apps, err := s.fetch()
	if err != nil {
		s.log.Warn().Err(err).Msg("App service unreachable, using bundled catalog")
		return Bundled()
	}

	s.cache.Set(cacheKey, apps, ttlcache.DefaultTTL)
	return apps
}

// Names returns the sorted app names in the catalog, optionally filtered
// by supported country ("all" disables the filter; a catalog country of
// "*" means everywhere).
func (s *Source) Names(country string) []string {
	country = strings.ToLower(country)

	var names []string
	for _, app := range s.Apps() {
		if country != "all" && !supportsCountry(app, country) {
			continue
		}
		names = append(names, app.Name)
	}
	sort.Strings(names)
	return names
}

func supportsCountry(app smartcast.AppEntry, country string) bool {
	for _, c := range app.Countries {
		if c == "*" || strings.EqualFold(c, country) {
			return true
		}
	}
	return false
}

// nameRecord and payloadRecord mirror the vendor app service documents.
type nameRecord struct {
	Name    string   `json:"name"`
	ID      string   `json:"id"`
	Country []string `json:"country"`
}

type payloadRecord struct {
	ID       string `json:"id"`
	Chipsets map[string][]struct {
		AppTypePayload string `json:"app_type_payload"`
	} `json:"chipsets"`
}

func (s *Source) fetch() ([]smartcast.AppEntry, error) {
	var names []nameRecord
	if err := s.getJSON(s.namesURL, &names); err != nil {
		return nil, fmt.Errorf("failed to fetch app names: %w", err)
	}

	var payloads []payloadRecord
	if err := s.getJSON(s.payloadsURL, &payloads); err != nil {
		return nil, fmt.Errorf("failed to fetch app payloads: %w", err)
	}

	return merge(names, payloads), nil
}

func (s *Source) getJSON(url string, out any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// merge joins the name and payload documents into catalog entries. Apps
// sharing a name across regions collapse into one entry with the union of
// their launch configs; payload strings are embedded JSON app configs and
// are deduplicated verbatim before decoding.
func merge(names []nameRecord, payloads []payloadRecord) []smartcast.AppEntry {
	payloadsByID := make(map[string]payloadRecord, len(payloads))
	for _, p := range payloads {
		payloadsByID[p.ID] = p
	}

	byName := make(map[string]*smartcast.AppEntry)
	var entries []*smartcast.AppEntry

	for _, name := range names {
		payload, ok := payloadsByID[name.ID]
		if !ok {
			continue
		}

		seen := make(map[string]bool)
		var configs []smartcast.AppConfig
		for _, chipset := range payload.Chipsets {
			for _, item := range chipset {
				if seen[item.AppTypePayload] {
					continue
				}
				seen[item.AppTypePayload] = true

				var cfg smartcast.AppConfig
				if err := json.Unmarshal([]byte(item.AppTypePayload), &cfg); err != nil {
					continue
				}
				configs = append(configs, cfg)
			}
		}
		if len(configs) == 0 {
			continue
		}

		countries := make([]string, 0, len(name.Country))
		for _, c := range name.Country {
			countries = append(countries, strings.ToLower(c))
		}

		key := strings.ToLower(name.Name)
		if existing, ok := byName[key]; ok {
			existing.Configs = append(existing.Configs, configs...)
			continue
		}

		entry := &smartcast.AppEntry{
			Name:      name.Name,
			Countries: countries,
			Configs:   configs,
		}
		byName[key] = entry
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	out := make([]smartcast.AppEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	return out
}
