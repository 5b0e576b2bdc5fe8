package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"LOG_LEVEL", "HTTP_HOST", "PORT", "PLACEHOLDER_BASE_URL", "ATTRIBUTE_STORE",
	"NEO4J_URI", "NEO4J_USERNAME", "NEO4J_PASSWORD", "REDIS_URL", "REDIS_TTL",
	"GOOGLE_SHEETS_CREDENTIALS_PATH", "SESSION_TTL",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.Placeholder.BaseURL)
	assert.Equal(t, StoreNone, cfg.AttributeStore)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadNeo4jRequiresCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("ATTRIBUTE_STORE", "Neo4j")
	t.Setenv("NEO4J_URI", "neo4j://localhost:7687")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEO4J_USERNAME")
	assert.Contains(t, err.Error(), "NEO4J_PASSWORD")
	assert.NotContains(t, err.Error(), "NEO4J_URI")
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	clearEnv(t)
	t.Setenv("ATTRIBUTE_STORE", "postgres")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATTRIBUTE_STORE")
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	body := "ATTRIBUTE_STORE=redis\nREDIS_URL=redis://localhost:6379/0\nREDIS_TTL=1h\nPORT=9090\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Cleanup(func() {
		for _, k := range configVars {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.AttributeStore)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadInvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_TTL", "soon")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TTL")
}
