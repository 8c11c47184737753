package config

import "time"

// StructuredConfig is the top-level configuration container for the console.
// It aggregates all sub-configurations and is populated by merging values
// from command-line flags, environment variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level.
	App App `envPrefix:"APP_"`

	// Backend holds the ApoloNotes REST API connection settings.
	Backend Backend `envPrefix:"BACKEND_"`

	// Identity holds the external identity-provider settings.
	Identity Identity `envPrefix:"IDENTITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Backend holds connection settings for the ApoloNotes REST API.
type Backend struct {
	// BaseURL is the API root, e.g. "http://localhost:8080/apolonotes".
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the fixed per-request timeout applied by the HTTP
	// adapter to every call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Identity holds settings for the external identity provider. All values are
// injected at deploy time; the console never issues or refreshes credentials
// itself.
type Identity struct {
	// BaseURL is the provider's REST endpoint root.
	BaseURL string `env:"BASE_URL"`

	// ProjectKey is the provider project credential sent with every auth
	// request.
	ProjectKey string `env:"PROJECT_KEY"`

	// CaptchaSiteKey is the bot-verification site key forwarded on
	// account-creation requests.
	CaptchaSiteKey string `env:"CAPTCHA_SITE_KEY"`
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Backend.BaseURL == "" || cfg.Backend.RequestTimeout <= 0 {
		return ErrInvalidBackendConfigs
	}
	if cfg.Identity.BaseURL == "" || cfg.Identity.ProjectKey == "" {
		return ErrInvalidIdentityConfigs
	}
	return nil
}

// GetConfig builds the merged console configuration.
//
// Sources are applied in priority order (flags first, then environment
// variables, then the optional JSON file named by either of the former)
// and missing fields are filled with defaults before validation.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}
	if cfg.Backend.RequestTimeout == 0 {
		cfg.Backend.RequestTimeout = 20 * time.Second
	}
}
