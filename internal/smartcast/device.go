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

// Package smartcast implements a client for the SmartCast HTTP control
// protocol spoken by Vizio-style TVs and speakers: pairing, state queries,
// setting mutation, input switching, app launching and emulated remote key
// presses.
//
// Facade methods return a non-nil error only for configuration mistakes
// (bad device class, missing auth token, unknown key name). Transport and
// protocol failures are logged and reported as an absent result (nil
// pointer, false, empty value) so that long-running poll loops survive an
// unreachable device.
package smartcast

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"vizcast/internal/logger"
)

// Device is a client for one SmartCast device. The only state shared
// across calls is the resolved host:port (write-once) and the auth token;
// callers must not change the token concurrently with in-flight calls.
type Device struct {
	deviceID string
	name     string
	host     string
	class    DeviceClass

	authToken   string
	timeout     time.Duration
	logFailures bool

	httpClient *http.Client
	log        zerolog.Logger

	resolved string
}

// Option configures a Device.
type Option func(*Device)

// WithAuthToken sets the bearer token obtained from a previous pairing.
func WithAuthToken(token string) Option {
	return func(d *Device) { d.authToken = token }
}

// WithTimeout overrides the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Device) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithoutFailureLogging silences the dispatcher's failure logs. Results
// are unchanged; useful for probes that are expected to fail.
func WithoutFailureLogging() Option {
	return func(d *Device) { d.logFailures = false }
}

// New creates a client for the device at host (bare host or host:port).
// deviceID and name identify this client to the device during pairing.
func New(deviceID, host, name string, class DeviceClass, opts ...Option) (*Device, error) {
	class, err := ParseDeviceClass(string(class))
	if err != nil {
		return nil, err
	}

	d := &Device{
		deviceID:    deviceID,
		name:        name,
		host:        strings.TrimSpace(host),
		class:       class,
		timeout:     DefaultTimeout,
		logFailures: true,
		log:         logger.New(),
	}
	for _, opt := range opts {
		opt(d)
	}

	// Devices present self-signed certificates; certificate validation is
	// disabled by policy, not by choice.
	d.httpClient = &http.Client{
		Timeout: d.timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	return d, nil
}

// Class returns the device class this client targets.
func (d *Device) Class() DeviceClass { return d.class }

// Host returns the address the client was created with.
func (d *Device) Host() string { return d.host }

// AuthToken returns the bearer token currently in use.
func (d *Device) AuthToken() string { return d.authToken }

// SetAuthToken installs the bearer token obtained from pairing. Not safe
// to call concurrently with in-flight commands.
func (d *Device) SetAuthToken(token string) { d.authToken = token }

// key sends one batched key-press command for the named keys. Every name
// is validated against the class key table first; an unknown name fails
// locally without a network call.
func (d *Device) key(names ...string) (bool, error) {
	codes := make([]keyCode, 0, len(names))
	for _, name := range names {
		kc, ok := keyCodes[d.class][strings.ToUpper(name)]
		if !ok {
			return false, fmt.Errorf("%w: %q for device class %q", ErrUnknownKey, name, d.class)
		}
		codes = append(codes, kc)
	}

	res, err := d.invokeMayNeedAuth(newEmulateRemoteCommand(d.class, codes))
	if err != nil {
		return false, err
	}
	return res != nil, nil
}

// keyRepeat batches the same key n times into one command.
func (d *Device) keyRepeat(name string, n int) (bool, error) {
	if n < 1 {
		n = 1
	}
	names := make([]string, n)
	for i := range names {
		names[i] = name
	}
	return d.key(names...)
}

// Key emulates a single remote key press by name.
func (d *Device) Key(name string) (bool, error) {
	return d.key(name)
}

// Keys emulates several key presses, batched into a single request in
// the order given.
func (d *Device) Keys(names ...string) (bool, error) {
	return d.key(names...)
}

// KeyList returns the remote key names this device class supports.
func (d *Device) KeyList() []string {
	return keyNames(d.class)
}

// PowerState reports whether the device is on. A nil result means the
// device did not answer.
func (d *Device) PowerState() (*bool, error) {
	cmd := newItemInfoCommand(d.class, epPowerMode)
	cmd.defaultValue = 0
	res, err := d.invokeMayNeedAuth(cmd)
	if err != nil {
		return nil, err
	}
	item, _ := res.(*Item)
	if item == nil {
		return nil, nil
	}
	v := item.IntValue()
	if v == nil {
		return nil, nil
	}
	on := *v == 1
	return &on, nil
}

// PowerOn powers the device on.
func (d *Device) PowerOn() (bool, error) { return d.key("POW_ON") }

// PowerOff powers the device off.
func (d *Device) PowerOff() (bool, error) { return d.key("POW_OFF") }

// PowerToggle toggles device power.
func (d *Device) PowerToggle() (bool, error) { return d.key("POW_TOGGLE") }

// VolumeUp raises the volume by n steps in one request.
func (d *Device) VolumeUp(n int) (bool, error) { return d.keyRepeat("VOL_UP", n) }

// VolumeDown lowers the volume by n steps in one request.
func (d *Device) VolumeDown(n int) (bool, error) { return d.keyRepeat("VOL_DOWN", n) }

// MuteOn mutes the device.
func (d *Device) MuteOn() (bool, error) { return d.key("MUTE_ON") }

// MuteOff unmutes the device.
func (d *Device) MuteOff() (bool, error) { return d.key("MUTE_OFF") }

// MuteToggle toggles mute.
func (d *Device) MuteToggle() (bool, error) { return d.key("MUTE_TOGGLE") }

// Play resumes playback.
func (d *Device) Play() (bool, error) { return d.key("PLAY") }

// Pause pauses playback.
func (d *Device) Pause() (bool, error) { return d.key("PAUSE") }

// ChannelUp changes channel up by n steps.
func (d *Device) ChannelUp(n int) (bool, error) { return d.keyRepeat("CH_UP", n) }

// ChannelDown changes channel down by n steps.
func (d *Device) ChannelDown(n int) (bool, error) { return d.keyRepeat("CH_DOWN", n) }

// ChannelPrev returns to the previous channel.
func (d *Device) ChannelPrev() (bool, error) { return d.key("CH_PREV") }

// CurrentVolume reads the current volume level.
func (d *Device) CurrentVolume() (*int, error) {
	value, err := d.AudioSetting("volume")
	if err != nil || value == nil {
		return nil, err
	}
	return asInt(value), nil
}

// MaxVolume returns the volume ceiling for this device class.
func (d *Device) MaxVolume() int { return MaxVolume(d.class) }

// IsMuted reports whether the device is muted.
func (d *Device) IsMuted() (*bool, error) {
	value, err := d.AudioSetting("mute")
	if err != nil || value == nil {
		return nil, err
	}
	s, ok := value.(string)
	if !ok {
		return nil, nil
	}
	muted := strings.EqualFold(s, "on")
	return &muted, nil
}

// Inputs lists the selectable inputs.
func (d *Device) Inputs() ([]InputItem, error) {
	res, err := d.invokeMayNeedAuth(newInputsListCommand(d.class))
	if err != nil {
		return nil, err
	}
	inputs, _ := res.([]InputItem)
	return inputs, nil
}

// CurrentInput reports the active input. A nil result means the device
// did not answer or reported none.
func (d *Device) CurrentInput() (*InputItem, error) {
	res, err := d.invokeMayNeedAuth(newCurrentInputCommand(d.class))
	if err != nil {
		return nil, err
	}
	in, _ := res.(*InputItem)
	return in, nil
}

// SetInput switches the active input by name. The change command needs
// the current input's hashval, so this is an unavoidable two-call
// read-then-write sequence.
func (d *Device) SetInput(name string) (bool, error) {
	current, err := d.CurrentInput()
	if err != nil {
		return false, err
	}
	if current == nil || current.ID == nil {
		d.log.Error().Msg("Couldn't detect current input")
		return false, nil
	}

	res, err := d.invokeMayNeedAuth(newChangeInputCommand(d.class, *current.ID, name))
	if err != nil {
		return false, err
	}
	return res != nil, nil
}

// NextInput cycles to the next input. A single press only raises the
// input overlay with the current selection, hence the double press.
func (d *Device) NextInput() (bool, error) {
	return d.keyRepeat("INPUT_NEXT", 2)
}

// ESN reads the device's electronic serial number.
func (d *Device) ESN() (string, error) {
	return d.itemValue(newItemInfoCommand(d.class, epESN), true)
}

// SerialNumber reads the device serial number. Unauthenticated by design:
// it doubles as the pre-pairing unique identifier.
func (d *Device) SerialNumber() (string, error) {
	return d.itemValue(newItemInfoCommand(d.class, epSerialNumber), false)
}

// Version reads the device firmware version.
func (d *Device) Version() (string, error) {
	return d.itemValue(newItemInfoCommand(d.class, epVersion), false)
}

func (d *Device) itemValue(cmd itemInfoCommand, needsAuth bool) (string, error) {
	var res any
	var err error
	if needsAuth {
		res, err = d.invokeMayNeedAuth(cmd)
		if err != nil {
			return "", err
		}
	} else {
		res = d.invoke(cmd, nil)
	}
	item, _ := res.(*Item)
	if item == nil {
		return "", nil
	}
	return item.StringValue(), nil
}

// ModelName reads the device model name.
func (d *Device) ModelName() (string, error) {
	res := d.invoke(newModelNameCommand(d.class), nil)
	name, _ := res.(string)
	return name, nil
}

// DeviceInfo reads the raw deviceinfo record.
func (d *Device) DeviceInfo() (map[string]any, error) {
	res := d.invoke(newDeviceInfoCommand(d.class), nil)
	info, _ := res.(map[string]any)
	return info, nil
}

// UniqueID returns a stable identifier for the device, usable before
// pairing.
func (d *Device) UniqueID() (string, error) {
	return d.SerialNumber()
}

// CanConnect reports whether the device answers the API at all,
// regardless of authorization.
func (d *Device) CanConnect() bool {
	info, _ := d.DeviceInfo()
	return info != nil
}

// CanConnectWithAuth reports whether the device answers authenticated
// calls with the configured token.
func (d *Device) CanConnectWithAuth() bool {
	settings, err := d.AllAudioSettings()
	return err == nil && settings != nil
}

// StartPair begins the pairing exchange. The caller must keep the
// returned challenge values and pass them to Pair.
func (d *Device) StartPair() (*PairChallenge, error) {
	res := d.invoke(newBeginPairCommand(d.class, d.deviceID, d.name), nil)
	challenge, _ := res.(*PairChallenge)
	return challenge, nil
}

// Pair completes the pairing exchange with the pin shown on the device
// screen. Speakers display no pin and accept a fixed "0000".
func (d *Device) Pair(challengeType, token int, pin string) (*PairCredentials, error) {
	if d.class == ClassSpeaker {
		pin = "0000"
	}
	res := d.invoke(newFinishPairCommand(d.class, d.deviceID, challengeType, token, pin), nil)
	creds, _ := res.(*PairCredentials)
	return creds, nil
}

// CancelPair abandons a pairing exchange in progress.
func (d *Device) CancelPair() (bool, error) {
	return d.invoke(newCancelPairCommand(d.class, d.deviceID, d.name), nil) != nil, nil
}

// SettingTypes lists the setting type menus the device exposes.
func (d *Device) SettingTypes() ([]string, error) {
	res, err := d.invokeMayNeedAuth(newSettingTypesCommand(d.class))
	if err != nil {
		return nil, err
	}
	types, _ := res.([]string)
	return types, nil
}

// AllSettings reads every setting name and value of one setting type.
func (d *Device) AllSettings(settingType string) (map[string]any, error) {
	if err := validateSettingName(settingType); err != nil {
		return nil, err
	}
	res, err := d.invokeMayNeedAuth(newAllSettingsCommand(d.class, settingType))
	if err != nil {
		return nil, err
	}
	settings, _ := res.(map[string]any)
	return settings, nil
}

// Setting reads the current value of one setting, coerced to int when the
// device returned a numeric value. A nil result means the setting was not
// found or the device did not answer — never a silent zero.
func (d *Device) Setting(settingType, name string) (any, error) {
	if err := validateSettingName(settingType); err != nil {
		return nil, err
	}
	if err := validateSettingName(name); err != nil {
		return nil, err
	}

	res, err := d.invokeMayNeedAuth(newSettingCommand(d.class, settingType, name))
	if err != nil {
		return nil, err
	}
	item, _ := res.(*Item)
	if item == nil {
		return nil, nil
	}
	if v := item.IntValue(); v != nil {
		return *v, nil
	}
	return item.Value, nil
}

// SettingOptions reads the acceptable values of one setting.
func (d *Device) SettingOptions(settingType, name string) (*SettingOptions, error) {
	all, err := d.AllSettingsOptions(settingType)
	if err != nil || all == nil {
		return nil, err
	}
	opts, ok := all[name]
	if !ok {
		return nil, nil
	}
	return &opts, nil
}

// AllSettingsOptions reads the acceptable values of every setting of one
// type.
func (d *Device) AllSettingsOptions(settingType string) (map[string]SettingOptions, error) {
	if err := validateSettingName(settingType); err != nil {
		return nil, err
	}
	res, err := d.invokeMayNeedAuth(newAllSettingsOptionsCommand(d.class, settingType))
	if err != nil {
		return nil, err
	}
	options, _ := res.(map[string]SettingOptions)
	return options, nil
}

// AllSettingsOptionsXList reads the options of every extended-list
// setting of one type.
func (d *Device) AllSettingsOptionsXList(settingType string) (map[string][]string, error) {
	if err := validateSettingName(settingType); err != nil {
		return nil, err
	}
	res, err := d.invokeMayNeedAuth(newAllSettingsOptionsXListCommand(d.class, settingType))
	if err != nil {
		return nil, err
	}
	options, _ := res.(map[string][]string)
	return options, nil
}

// SettingOptionsXList reads the options of one extended-list setting.
func (d *Device) SettingOptionsXList(settingType, name string) ([]string, error) {
	all, err := d.AllSettingsOptionsXList(settingType)
	if err != nil || all == nil {
		return nil, err
	}
	return all[name], nil
}

// SetSetting writes a new value to a setting. The write needs the item's
// hashval, so the setter reads the setting first.
func (d *Device) SetSetting(settingType, name string, value any) (bool, error) {
	if err := validateSettingName(settingType); err != nil {
		return false, err
	}
	if err := validateSettingName(name); err != nil {
		return false, err
	}

	res, err := d.invokeMayNeedAuth(newSettingCommand(d.class, settingType, name))
	if err != nil {
		return false, err
	}
	item, _ := res.(*Item)
	if item == nil || item.ID == nil {
		d.log.Error().
			Str("setting_type", settingType).
			Str("setting", name).
			Msg("Couldn't detect setting to modify")
		return false, nil
	}

	res, err = d.invokeMayNeedAuth(newChangeSettingCommand(d.class, settingType, name, *item.ID, value))
	if err != nil {
		return false, err
	}
	return res != nil, nil
}

// AllAudioSettings reads every audio setting name and value.
func (d *Device) AllAudioSettings() (map[string]any, error) {
	return d.AllSettings("audio")
}

// AudioSetting reads one audio setting.
func (d *Device) AudioSetting(name string) (any, error) {
	return d.Setting("audio", name)
}

// AudioSettingOptions reads the acceptable values of one audio setting.
func (d *Device) AudioSettingOptions(name string) (*SettingOptions, error) {
	return d.SettingOptions("audio", name)
}

// SetAudioSetting writes one audio setting.
func (d *Device) SetAudioSetting(name string, value any) (bool, error) {
	return d.SetSetting("audio", name, value)
}

// CurrentAppConfig reads the identity tuple of the running app. A nil
// result means no app is running or the device did not answer. App
// control exists on TVs only.
func (d *Device) CurrentAppConfig() (*AppConfig, error) {
	if d.class != ClassTV {
		return nil, fmt.Errorf("%w: app control", ErrNotSupported)
	}
	res, err := d.invokeMayNeedAuth(newCurrentAppConfigCommand(d.class))
	if err != nil {
		return nil, err
	}
	cfg, _ := res.(*AppConfig)
	return cfg, nil
}

// CurrentApp resolves the running app to a human-readable name using the
// supplied catalog. See FindAppName for the resolution order.
func (d *Device) CurrentApp(catalog []AppEntry) (string, error) {
	cfg, err := d.CurrentAppConfig()
	if err != nil {
		return "", err
	}
	return FindAppName(cfg, catalog), nil
}

// LaunchApp launches a catalogued app by name.
func (d *Device) LaunchApp(name string, catalog []AppEntry) (bool, error) {
	entry := FindAppEntry(name, catalog)
	if entry == nil || len(entry.Configs) == 0 {
		return false, fmt.Errorf("app %q not found in catalog", name)
	}
	return d.LaunchAppConfig(entry.Configs[0])
}

// LaunchAppConfig launches an app by its raw identity tuple.
func (d *Device) LaunchAppConfig(cfg AppConfig) (bool, error) {
	if d.class != ClassTV {
		return false, fmt.Errorf("%w: app control", ErrNotSupported)
	}
	res, err := d.invokeMayNeedAuth(newLaunchAppCommand(d.class, cfg))
	if err != nil {
		return false, err
	}
	return res != nil, nil
}
