// Package common contains shared constants and sentinel errors used across
// Ágora client components.
package common

const (
	// DeviceIDKey is the storage key that holds the stable per-install
	// device identifier. The same key is used by every storage backend in
	// the identity chain so a value written by one backend can be read back
	// through another.
	DeviceIDKey = "agora_device_id"

	// LanguageKey is the preference-store key holding the display language.
	LanguageKey = "agora_language"
)
