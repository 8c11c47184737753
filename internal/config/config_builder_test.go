package config

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

// TestBuild_MergePriority verifies that earlier sources win over later ones:
// a value set by the first config is not overwritten by the second.
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Backend: Backend{BaseURL: "http://flags:8080"}},
		&StructuredConfig{
			Backend: Backend{BaseURL: "http://env:8080", RequestTimeout: 30 * time.Second},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flags:8080", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout, "gaps are filled from later sources")
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://api.test:9000/apolonotes")
	t.Setenv("BACKEND_REQUEST_TIMEOUT", "25s")
	t.Setenv("IDENTITY_PROJECT_KEY", "proj-123")

	cfg, err := newConfigBuilder().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "http://api.test:9000/apolonotes", cfg.Backend.BaseURL)
	assert.Equal(t, 25*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "proj-123", cfg.Identity.ProjectKey)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_MergesFileNamedByEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"backend": map[string]any{
			"base_url":        "http://json:8080",
			"request_timeout": "15s",
		},
		"identity": map[string]any{
			"base_url":    "https://id.example.com",
			"project_key": "key-from-json",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "http://json:8080", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "key-from-json", cfg.Identity.ProjectKey)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	cfg, err := b.withJSON().build()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	cfg, err := newConfigBuilder().withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// ── validate / defaults ───────────────────────────────────────────────────────

func TestValidate_RejectsIncompleteGroups(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "missing backend url",
			cfg:     StructuredConfig{Backend: Backend{RequestTimeout: time.Second}},
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name: "missing identity project key",
			cfg: StructuredConfig{
				Backend:  Backend{BaseURL: "http://x", RequestTimeout: time.Second},
				Identity: Identity{BaseURL: "https://id"},
			},
			wantErr: ErrInvalidIdentityConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 20*time.Second, cfg.Backend.RequestTimeout)
}
