package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, BackendMemory, cfg.KV.Backend)
	assert.Equal(t, "30 2 * * *", cfg.Retention.CronSchedule)
	assert.Equal(t, 100, cfg.Retention.AuditKeep)
	assert.Equal(t, "Asia/Kolkata", cfg.Retention.Timezone)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("KV_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis-1:6379")
	t.Setenv("AUDIT_RETENTION", "25")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, BackendRedis, cfg.KV.Backend)
	assert.Equal(t, "redis-1:6379", cfg.KV.RedisAddr)
	assert.Equal(t, 25, cfg.Retention.AuditKeep)
}

func TestLoadRejectsBadRetention(t *testing.T) {
	t.Setenv("AUDIT_RETENTION", "not-a-number")

	_, err := Load("does-not-exist.env")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080"},
			KV:        KVConfig{Backend: BackendMemory},
			Retention: RetentionConfig{CronSchedule: "30 2 * * *", AuditKeep: 100, Timezone: "UTC"},
		}
	}

	require.NoError(t, base().Validate())

	cfg := base()
	cfg.KV.Backend = "cassandra"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.KV.Backend = BackendRedis
	cfg.KV.RedisAddr = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Sheets.SpreadsheetID = "sheet-id"
	assert.Error(t, cfg.Validate(), "sheets export needs credentials and sheet id together")

	cfg = base()
	cfg.Retention.AuditKeep = 0
	assert.Error(t, cfg.Validate())
}
