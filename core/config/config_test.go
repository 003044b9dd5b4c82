package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv blanks the keys a test touches and restores them afterwards.
// Empty variables are ignored by Viper, so defaults apply.
func isolateEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

var testKeys = []string{
	"LOG_LEVEL", "DATABASE_DRIVER", "DATABASE_NAME", "STORAGE_BUCKET",
	"SETTLEMENT_TOLERANCE", "SETTLEMENT_STRICT", "REPORT_RECENT_LIMIT", "REPORT_ARCHIVE_PREFIX",
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateEnv(t, testKeys...)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "empanada_tracker.db", cfg.Database.Name)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "empanada-reports", cfg.Storage.Bucket)
	assert.Equal(t, "0.001", cfg.Settlement.Tolerance)
	assert.False(t, cfg.Settlement.Strict)
	assert.Equal(t, 10, cfg.Report.RecentLimit)
	assert.Equal(t, "empanadas", cfg.Report.ArchivePrefix)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	isolateEnv(t, testKeys...)

	dir := t.TempDir()
	env := "DATABASE_DRIVER=mysql\nDATABASE_NAME=empanadas\nSETTLEMENT_STRICT=true\nREPORT_RECENT_LIMIT=25\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "empanadas", cfg.Database.Name)
	assert.True(t, cfg.Settlement.Strict)
	assert.Equal(t, 25, cfg.Report.RecentLimit)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("Driver", func(t *testing.T) {
		isolateEnv(t, testKeys...)
		t.Setenv("DATABASE_DRIVER", "postgres")

		_, err := LoadConfig(t.TempDir())
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("Tolerance", func(t *testing.T) {
		isolateEnv(t, testKeys...)
		t.Setenv("SETTLEMENT_TOLERANCE", "lots")

		_, err := LoadConfig(t.TempDir())
		assert.ErrorContains(t, err, "invalid settlement tolerance")
	})
}
