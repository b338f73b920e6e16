//go:build unit

package config_test

import (
	"testing"
	"time"

	"scheme-console/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
		assert.Equal(t, config.SequencerMemory, cfg.Scheme.Sequencer)
		assert.Equal(t, "SCH", cfg.Scheme.CodePrefix)
		assert.False(t, cfg.Scheme.EnforceExpiryWithinRange)
		assert.Equal(t, 19800, cfg.Log.TimeZoneOffset)
		assert.Equal(t, 12*time.Hour, cfg.CORS.MaxAge)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("SCHEME_SEQUENCER", "redis")
		t.Setenv("SCHEME_ENFORCE_EXPIRY_WITHIN_RANGE", "true")
		t.Setenv("DB_HOST", "db.internal")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
		assert.Equal(t, config.SequencerRedis, cfg.Scheme.Sequencer)
		assert.True(t, cfg.Scheme.EnforceExpiryWithinRange)
		assert.Contains(t, cfg.DB.BuildDSN(), "@db.internal:5432/schemes")
	})

	t.Run("rejects unknown drivers", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("STORE_DRIVER", "sqlite")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})

	t.Run("rejects unknown sequencers", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("SCHEME_SEQUENCER", "zookeeper")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "SCHEME_SEQUENCER")
	})
}
