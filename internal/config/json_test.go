package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "duration string", input: `"20s"`, expected: 20 * time.Second},
		{name: "minutes string", input: `"1m30s"`, expected: 90 * time.Second},
		{name: "nanosecond number", input: `5000000000`, expected: 5 * time.Second},
		{name: "garbage string", input: `"soon"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"log_level": "debug"},
		"backend": map[string]any{
			"base_url":        "http://localhost:8080/apolonotes",
			"request_timeout": "20s",
		},
		"identity": map[string]any{
			"base_url":         "https://id.example.com",
			"project_key":      "proj",
			"captcha_site_key": "captcha",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "http://localhost:8080/apolonotes", cfg.Backend.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "captcha", cfg.Identity.CaptchaSiteKey)
}
