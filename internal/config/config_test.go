package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/cartola-scouts/internal/source"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("SOURCE_BASE_URL", "")
	t.Setenv("REFRESH_INTERVAL_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "cartola.db", cfg.SQLitePath)
	assert.Equal(t, source.DefaultBaseURL, cfg.SourceBaseURL)
	assert.Equal(t, 1, cfg.SourceFirstRound)
	assert.Equal(t, 38, cfg.SourceLastRound)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 6*time.Hour, cfg.RefreshInterval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/cartola")
	t.Setenv("SOURCE_LAST_ROUND", "12")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("API_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 12, cfg.SourceLastRound)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, 8000, cfg.APIPort)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "mysql")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SOURCE_FIRST_ROUND", "10")
	t.Setenv("SOURCE_LAST_ROUND", "3")
	_, err = Load()
	assert.Error(t, err)
}
