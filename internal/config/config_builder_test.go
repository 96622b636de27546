package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that the built-in defaults form a valid
// configuration on their own.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout)
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, cfg.API.DefaultHeaders)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, ResourceCharacters, cfg.Fetch.Resource)
	assert.Equal(t, DefaultPage, cfg.Fetch.Page)
	assert.Equal(t, DefaultLimit, cfg.Fetch.Limit)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a config with no base
// URL is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAPIConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win, zero fields keep earlier values, and header maps are merged
// key by key.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{
			API: API{
				BaseURL:        "https://env.example.com",
				DefaultHeaders: map[string]string{"X-Client": "env"},
			},
		},
		&StructuredConfig{
			API:   API{Timeout: 5 * time.Second},
			Fetch: Fetch{Page: 4},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "application/json", cfg.API.DefaultHeaders["Content-Type"])
	assert.Equal(t, "env", cfg.API.DefaultHeaders["X-Client"])
	assert.Equal(t, 4, cfg.Fetch.Page)
	assert.Equal(t, DefaultLimit, cfg.Fetch.Limit)
}

// TestBuild_DoesNotMutateDefaults verifies that merging never writes into a
// fresh Defaults() value.
func TestBuild_DoesNotMutateDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		API: API{DefaultHeaders: map[string]string{"X-Client": "env"}},
	})

	_, err := b.build()
	require.NoError(t, err)

	assert.Len(t, Defaults().API.DefaultHeaders, 1)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://env.example.com")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://env.example.com", b.configs[0].API.BaseURL)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("API_TIMEOUT", "never")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-page", "2"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 2, b.configs[0].Fetch.Page)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeJSONFile(t, `{"api": {"base_url": "https://json.example.com"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://json.example.com", b.configs[1].API.BaseURL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeJSONFile(t, `{"fetch": {"page": 1}}`)
	last := writeJSONFile(t, `{"fetch": {"page": 9}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: last},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, 9, b.configs[3].Fetch.Page)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	path := writeJSONFile(t, `{"fetch": {"limit": 50}}`)
	t.Setenv("API_BASE_URL", "https://env.example.com")
	t.Setenv("FETCH_LIMIT", "20")

	cfg, err := GetStructuredConfig([]string{
		"-timeout", "3s",
		"-limit", "30",
		"-config", path,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 50, cfg.Fetch.Limit)
	assert.Equal(t, ResourceCharacters, cfg.Fetch.Resource)
}
