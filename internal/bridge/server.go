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

// Package bridge exposes SmartCast devices over a small REST API so smart
// home platforms can poll and drive them without speaking the vendor
// protocol. Every handler is a thin caller of the core facade: a device
// that does not answer yields a 503 with no state change here.
package bridge

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"vizcast/internal/appcatalog"
	"vizcast/internal/logger"
	"vizcast/internal/smartcast"
)

// tokenHeader carries a per-request auth token overriding the configured
// default, so one bridge can front devices paired under different tokens.
const tokenHeader = "X-Device-Token"

// Server is the bridge HTTP server.
type Server struct {
	cfg     Config
	router  *mux.Router
	devices *lru.Cache[string, *smartcast.Device]
	catalog *appcatalog.Source
	log     zerolog.Logger
}

// NewServer creates a bridge server from config.
func NewServer(cfg Config) (*Server, error) {
	devices, err := lru.New[string, *smartcast.Device](cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		router:  mux.NewRouter(),
		devices: devices,
		catalog: appcatalog.New(),
		log:     logger.New(),
	}
	s.routes()
	return s, nil
}

// Handler returns the router for serving or testing.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the bridge until the listener fails.
func (s *Server) ListenAndServe() error {
	s.log.Info().Str("addr", s.cfg.BindAddr).Msg("Bridge listening")
	return http.ListenAndServe(s.cfg.BindAddr, s.router)
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/apps", s.handleAppList).Methods(http.MethodGet)

	dev := api.PathPrefix("/devices/{host}").Subrouter()
	dev.HandleFunc("/power", s.handleGetPower).Methods(http.MethodGet)
	dev.HandleFunc("/power/{state:on|off|toggle}", s.handleSetPower).Methods(http.MethodPut)
	dev.HandleFunc("/volume", s.handleGetVolume).Methods(http.MethodGet)
	dev.HandleFunc("/volume/{dir:up|down}", s.handleChangeVolume).Methods(http.MethodPut)
	dev.HandleFunc("/mute/{state:on|off|toggle}", s.handleSetMute).Methods(http.MethodPut)
	dev.HandleFunc("/keys/{name}", s.handleKey).Methods(http.MethodPut)
	dev.HandleFunc("/inputs", s.handleInputs).Methods(http.MethodGet)
	dev.HandleFunc("/input", s.handleGetInput).Methods(http.MethodGet)
	dev.HandleFunc("/input/{name}", s.handleSetInput).Methods(http.MethodPut)
	dev.HandleFunc("/app", s.handleGetApp).Methods(http.MethodGet)
	dev.HandleFunc("/app/{name}", s.handleLaunchApp).Methods(http.MethodPut)
	dev.HandleFunc("/settings/{type}", s.handleAllSettings).Methods(http.MethodGet)
	dev.HandleFunc("/settings/{type}/{name}", s.handleGetSetting).Methods(http.MethodGet)
	dev.HandleFunc("/settings/{type}/{name}", s.handleSetSetting).Methods(http.MethodPut)
}

// device returns the client for the host in the request path, reusing a
// cached instance so port resolution survives across requests.
func (s *Server) device(r *http.Request) (*smartcast.Device, error) {
	host := mux.Vars(r)["host"]

	token := r.Header.Get(tokenHeader)
	if token == "" {
		token = s.cfg.AuthToken
	}
	class := r.URL.Query().Get("class")
	if class == "" {
		class = s.cfg.DeviceClass
	}

	key := host + "|" + class + "|" + token
	if d, ok := s.devices.Get(key); ok {
		return d, nil
	}

	d, err := smartcast.New("vizcast-bridge", host, "Vizcast Bridge", smartcast.DeviceClass(class),
		smartcast.WithAuthToken(token),
		smartcast.WithTimeout(s.cfg.Timeout),
	)
	if err != nil {
		return nil, err
	}
	s.devices.Add(key, d)
	return d, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleAppList(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	if country == "" {
		country = "all"
	}
	writeJSON(w, http.StatusOK, map[string]any{"apps": s.catalog.Names(country)})
}

func (s *Server) handleGetPower(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	state, err := d.PowerState()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if state == nil {
		writeUnreachable(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"on": *state})
}

func (s *Server) handleSetPower(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var ok bool
	switch mux.Vars(r)["state"] {
	case "on":
		ok, err = d.PowerOn()
	case "off":
		ok, err = d.PowerOff()
	default:
		ok, err = d.PowerToggle()
	}
	s.writeCommandResult(w, ok, err)
}

func (s *Server) handleGetVolume(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	volume, err := d.CurrentVolume()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if volume == nil {
		writeUnreachable(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"volume": *volume, "max": d.MaxVolume()})
}

func (s *Server) handleChangeVolume(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	steps := 1
	if raw := r.URL.Query().Get("steps"); raw != "" {
		steps, err = strconv.Atoi(raw)
		if err != nil || steps < 1 {
			writeError(w, http.StatusBadRequest, errors.New("steps must be a positive integer"))
			return
		}
	}

	var ok bool
	if mux.Vars(r)["dir"] == "up" {
		ok, err = d.VolumeUp(steps)
	} else {
		ok, err = d.VolumeDown(steps)
	}
	s.writeCommandResult(w, ok, err)
}

func (s *Server) handleSetMute(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var ok bool
	switch mux.Vars(r)["state"] {
	case "on":
		ok, err = d.MuteOn()
	case "off":
		ok, err = d.MuteOff()
	default:
		ok, err = d.MuteToggle()
	}
	s.writeCommandResult(w, ok, err)
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ok, err := d.Key(mux.Vars(r)["name"])
	s.writeCommandResult(w, ok, err)
}

func (s *Server) handleInputs(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	inputs, err := d.Inputs()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if inputs == nil {
		writeUnreachable(w)
		return
	}

	names := make([]string, 0, len(inputs))
	for _, in := range inputs {
		names = append(names, in.MetaName)
	}
	writeJSON(w, http.StatusOK, map[string]any{"inputs": names})
}

func (s *Server) handleGetInput(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	input, err := d.CurrentInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if input == nil {
		writeUnreachable(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"input": input.MetaName})
}

func (s *Server) handleSetInput(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ok, err := d.SetInput(mux.Vars(r)["name"])
	s.writeCommandResult(w, ok, err)
}

func (s *Server) handleGetApp(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	name, err := d.CurrentApp(s.catalog.Apps())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"app": name})
}

func (s *Server) handleLaunchApp(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ok, err := d.LaunchApp(mux.Vars(r)["name"], s.catalog.Apps())
	s.writeCommandResult(w, ok, err)
}

func (s *Server) handleAllSettings(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	settings, err := d.AllSettings(mux.Vars(r)["type"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if settings == nil {
		writeUnreachable(w)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	vars := mux.Vars(r)
	value, err := d.Setting(vars["type"], vars["name"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if value == nil {
		writeError(w, http.StatusNotFound, errors.New("setting not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"value": value})
}

func (s *Server) handleSetSetting(w http.ResponseWriter, r *http.Request) {
	d, err := s.device(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var body struct {
		Value any `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Value == nil {
		writeError(w, http.StatusBadRequest, errors.New("request body must be {\"value\": ...}"))
		return
	}

	vars := mux.Vars(r)
	ok, err := d.SetSetting(vars["type"], vars["name"], body.Value)
	s.writeCommandResult(w, ok, err)
}

// writeCommandResult maps the facade's result contract onto HTTP: a
// config error is the caller's fault, an absent result means the device
// did not answer.
func (s *Server) writeCommandResult(w http.ResponseWriter, ok bool, err error) {
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !ok {
		writeUnreachable(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeUnreachable(w http.ResponseWriter) {
	writeError(w, http.StatusServiceUnavailable, errors.New("device did not answer"))
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
