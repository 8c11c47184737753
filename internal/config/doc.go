// Package config assembles the console configuration from three sources:
// command-line flags, environment variables (with optional .env file), and
// an optional JSON file, merged in that priority order.
//
// All values are supplied at deploy time: the backend base URL, the
// identity-provider endpoint and project credential, the bot-verification
// site key, and the request timeout. Nothing is reloaded at runtime.
package config
