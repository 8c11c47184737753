package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the optional JSON file
// source. Durations are accepted as strings ("20s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Backend struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Identity struct {
		BaseURL        string `json:"base_url"`
		ProjectKey     string `json:"project_key"`
		CaptchaSiteKey string `json:"captcha_site_key"`
	} `json:"identity,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json config: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
		},
		Backend: Backend{
			BaseURL:        jsonCfg.Backend.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Identity: Identity{
			BaseURL:        jsonCfg.Identity.BaseURL,
			ProjectKey:     jsonCfg.Identity.ProjectKey,
			CaptchaSiteKey: jsonCfg.Identity.CaptchaSiteKey,
		},
	}, nil
}

// Duration wraps time.Duration to accept JSON string values like "20s" in
// addition to plain nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", raw)
	}
}
