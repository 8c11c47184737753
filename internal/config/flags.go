package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-backend-url ApoloNotes API base URL
//	-request-timeout fixed per-request timeout (e.g., "20s", "1m")
//	-identity-url identity provider base URL
//	-identity-project-key identity provider project credential
//	-captcha-site-key bot-verification site key for sign-up
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backendURL string
	var requestTimeout time.Duration
	var identityURL string
	var identityProjectKey string
	var captchaSiteKey string
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&backendURL, "backend-url", "", "ApoloNotes API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 20s, 1m)")
	flag.StringVar(&identityURL, "identity-url", "", "Identity provider base URL")
	flag.StringVar(&identityProjectKey, "identity-project-key", "", "Identity provider project key")
	flag.StringVar(&captchaSiteKey, "captcha-site-key", "", "Bot-verification site key")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Backend: Backend{
			BaseURL:        backendURL,
			RequestTimeout: requestTimeout,
		},
		Identity: Identity{
			BaseURL:        identityURL,
			ProjectKey:     identityProjectKey,
			CaptchaSiteKey: captchaSiteKey,
		},
		JSONFilePath: jsonConfigPath,
	}
}
