package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinical-records-api/internal/adapters/storage/sqldb"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AZURE_SQL_SERVER", "tcp:deass.database.windows.net,1433")
	t.Setenv("AZURE_SQL_DATABASE", "medication")

	cfg, err := LoadFile(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, StorageSQL, cfg.Storage)
	assert.False(t, cfg.TokenCacheEnabled())
	assert.False(t, cfg.Interactive())
	assert.Equal(t, 5*time.Minute, cfg.TokenRefreshSkew)

	db := cfg.Database()
	assert.True(t, db.Encrypt)
	assert.False(t, db.TrustServerCertificate)
	assert.Equal(t, 30*time.Second, db.ConnectionTimeout)
	assert.Equal(t, "clinical-records-api", db.AppName)

	full, err := db.WithDefaults()
	require.NoError(t, err)
	assert.Equal(t, sqldb.DriverSQLServer, full.Driver)
	assert.Equal(t, "deass.database.windows.net", full.Server)
	assert.Equal(t, 1433, full.Port)
}

func TestLoad_BoolishAndOverrides(t *testing.T) {
	t.Setenv("AZURE_SQL_DRIVER", "postgres")
	t.Setenv("AZURE_SQL_SERVER", "pg.postgres.database.azure.com")
	t.Setenv("AZURE_SQL_DATABASE", "mimic")
	t.Setenv("AZURE_SQL_ENCRYPT", "No")
	t.Setenv("AZURE_SQL_TRUST_CERTIFICATE", "YES")
	t.Setenv("AZURE_SQL_CONNECTION_TIMEOUT", "12")
	t.Setenv("AZURE_TOKEN_CACHE", "true")
	t.Setenv("AZURE_TOKEN_REFRESH_SKEW", "90s")

	cfg, err := LoadFile(noEnvFile(t))
	require.NoError(t, err)

	db := cfg.Database()
	assert.False(t, db.Encrypt)
	assert.True(t, db.TrustServerCertificate)
	assert.Equal(t, 12*time.Second, db.ConnectionTimeout)
	assert.True(t, cfg.TokenCacheEnabled())
	assert.Equal(t, 90*time.Second, cfg.TokenRefreshSkew)
}

func TestLoad_SQLRequiresServerAndDatabase(t *testing.T) {
	t.Setenv("AZURE_SQL_SERVER", "")
	t.Setenv("AZURE_SQL_DATABASE", "")

	_, err := LoadFile(noEnvFile(t))
	require.Error(t, err)

	t.Setenv("STORAGE", "memory")
	cfg, err := LoadFile(noEnvFile(t))
	require.NoError(t, err)
	assert.True(t, cfg.UseMemory())
	assert.Equal(t, 60, cfg.MemorySeedRecords)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("STORAGE", "memory")

	t.Setenv("AZURE_SQL_ENCRYPT", "maybe")
	_, err := LoadFile(noEnvFile(t))
	assert.Error(t, err)
	t.Setenv("AZURE_SQL_ENCRYPT", "yes")

	t.Setenv("LOG_FORMAT", "xml")
	_, err = LoadFile(noEnvFile(t))
	assert.Error(t, err)
	t.Setenv("LOG_FORMAT", "json")

	t.Setenv("STORAGE", "sql")
	t.Setenv("AZURE_SQL_SERVER", "srv")
	t.Setenv("AZURE_SQL_DATABASE", "db")
	t.Setenv("AZURE_SQL_DRIVER", "oracle")
	_, err = LoadFile(noEnvFile(t))
	assert.Error(t, err)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE=memory\nMEMORY_SEED_RECORDS=12\nPORT=9090\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.UseMemory())
	assert.Equal(t, 12, cfg.MemorySeedRecords)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_MalformedEnvFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE=memory\nthis line is not a pair\n"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestParseBoolish(t *testing.T) {
	for _, s := range []string{"yes", "Y", "true", "1", "on"} {
		v, ok := parseBoolish(s)
		assert.True(t, ok, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "false", "0", "OFF"} {
		v, ok := parseBoolish(s)
		assert.True(t, ok, s)
		assert.False(t, v, s)
	}
	_, ok := parseBoolish("sometimes")
	assert.False(t, ok)
}
