package smartcast

import "errors"

// Configuration errors. These are the only errors the facade returns: they
// indicate caller mistakes detected before any network call. Transport and
// protocol failures are absorbed by the dispatcher and surface as an absent
// result instead (see dispatch.go).
var (
	// ErrInvalidDeviceClass is returned for a device class other than tv
	// or speaker.
	ErrInvalidDeviceClass = errors.New("invalid device class")

	// ErrAuthRequired is returned when an authenticated command is issued
	// without a token against a non-speaker device. Speakers are the one
	// class the vendor allows to run unauthenticated.
	ErrAuthRequired = errors.New("auth token required for this device class")

	// ErrUnknownKey is returned for a remote key name the device class
	// does not expose.
	ErrUnknownKey = errors.New("unknown remote key")

	// ErrNotSupported is returned for operations the device class does not
	// have endpoints for, such as app control on speakers.
	ErrNotSupported = errors.New("operation not supported by this device class")
)
