package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates invalid backend settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidIdentityConfigs indicates invalid identity-provider settings
	// (for example, missing base URL or project key).
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
)
