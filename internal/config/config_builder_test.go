package config

import (
	"encoding/json"
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

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// config holding only the defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DriverMemory, cfg.Storage.DB.Driver)
	assert.Equal(t, defaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Auth.TokenSignKey)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenSignKey: "secret"}},
		&StructuredConfig{Auth: Auth{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "issuer", cfg.Auth.TokenIssuer)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later source
// overrides the value of an earlier one, while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Server:  Server{HTTPAddress: "localhost:1111", RequestTimeout: time.Second},
			Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: "file:env.db"}},
		},
		&StructuredConfig{
			Server: Server{HTTPAddress: "localhost:2222"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:env.db", cfg.Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].Auth.TokenSignKey)
	assert.Equal(t, "env-issuer", b.configs[0].Auth.TokenIssuer)
}

func TestWithEnv_SetsErrorOnBadDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_KeepsPositionalArgs(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-token", "abc", "get", "1"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "abc", b.configs[0].Adapter.Token)
	assert.Equal(t, []string{"get", "1"}, b.remainingArgs())
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
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
	payload := StructuredJSONConfig{}
	payload.Auth.TokenSignKey = "json-secret"
	payload.Auth.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-secret", b.configs[1].Auth.TokenSignKey)
	assert.Equal(t, "json-issuer", b.configs[1].Auth.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.LogLevel = "warn"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "warn", b.configs[2].Server.LogLevel)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestChain_JSONOverridesFlagsOverridesEnv verifies the source priority of
// the builder chain used by GetStructuredConfig.
func TestChain_JSONOverridesFlagsOverridesEnv(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Auth.TokenIssuer = "from-json"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("AUTH_TOKEN_SIGN_KEY", "from-env")
	t.Setenv("AUTH_TOKEN_ISSUER", "from-env")
	t.Setenv("SERVER_ADDRESS", "localhost:1000")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", "localhost:2000", "-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.TokenSignKey)
	assert.Equal(t, "from-json", cfg.Auth.TokenIssuer)
	assert.Equal(t, "localhost:2000", cfg.Server.HTTPAddress)
	require.NoError(t, cfg.validate())
}
