package config

import (
	"encoding/json"
	"os"
	"path/filepath"
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

func testBuilder() *configBuilder {
	b := newConfigBuilder()
	b.args = nil
	return b
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
	cfg, err := testBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := testBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigOverrides verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterConfigOverrides(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsSevenDayToken(t *testing.T) {
	cfg, err := testBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.False(t, cfg.App.StrictOwnership)
	assert.Equal(t, ImagesBackendFile, cfg.Storage.Images.Backend)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up
// and override defaults.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_DURATION", "1h")

	cfg, err := testBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "go-flashcards", cfg.App.TokenIssuer)
}

// TestWithEnv_BadValueSetsError verifies that an unparsable env value is
// collected into the builder error.
func TestWithEnv_BadValueSetsError(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "forever")

	b := testBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFileWithoutOverriding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_ISSUER=from-file\nAPP_VERSION=file-version\n"), 0o600))

	t.Setenv(dotEnvPathVar, path)
	t.Setenv("APP_VERSION", "from-env")
	// registers cleanup for the variable godotenv is about to set
	t.Setenv("APP_TOKEN_ISSUER", "")
	require.NoError(t, os.Unsetenv("APP_TOKEN_ISSUER"))

	cfg, err := testBuilder().withDotEnv().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.App.TokenIssuer)
	assert.Equal(t, "from-env", cfg.App.Version)
}

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	t.Setenv(dotEnvPathVar, filepath.Join(t.TempDir(), "absent.env"))

	b := testBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_OverridesEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")

	b := testBuilder()
	b.args = []string{"-d", "postgres://flag", "-strict-ownership"}

	cfg, err := b.withEnv().withFlags().build()
	require.NoError(t, err)

	assert.Equal(t, "postgres://flag", cfg.Storage.DB.DSN)
	assert.True(t, cfg.App.StrictOwnership)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := testBuilder()
	b.args = []string{"-no-such-flag"}

	b.withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSkips verifies that no JSON config is appended when no
// source provided a path.
func TestWithJSON_NoPathSkips(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_PathFromFlags verifies that the JSON file named by a flag is
// read and merged last.
func TestWithJSON_PathFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "json-key", "token_duration": "2h"},
	})

	b := testBuilder()
	b.args = []string{"-c", path, "-token-sign-key", "flag-key"}

	cfg, err := b.withDefaults().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
}

// TestWithJSON_MissingFileSetsError verifies that an unreadable JSON file is
// reported.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func validServerConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/flashcards"
	return cfg
}

func TestValidate_ServerConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad cost", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 2 }, wantErr: ErrInvalidAppConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown backend", mutate: func(c *StructuredConfig) { c.Storage.Images.Backend = "ftp" }, wantErr: ErrInvalidStorageConfigs},
		{name: "s3 without bucket", mutate: func(c *StructuredConfig) { c.Storage.Images.Backend = ImagesBackendS3 }, wantErr: ErrInvalidStorageConfigs},
		{
			name: "grpc without health interval",
			mutate: func(c *StructuredConfig) {
				c.Server.GRPCAddress = ":9090"
				c.Workers.HealthCheckInterval = 0
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ClientConfig(t *testing.T) {
	cfg := newClientConfig(defaultConfig())
	assert.NoError(t, cfg.validate())

	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = newClientConfig(defaultConfig())
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}
