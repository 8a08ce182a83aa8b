package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(Test, "testdata")
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)

	assert.Equal(t, 5, cfg.Lifecycle.ConflictRetries)
	assert.Equal(t, 10*time.Millisecond, cfg.Lifecycle.RetryBaseDelay)

	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "0 */15 * * * *", cfg.Scheduler.CompletionSchedule)
	assert.Equal(t, 100, cfg.Scheduler.BatchSize)
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.JobTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SIP_DB_HOST", "db.internal")
	t.Setenv("SIP_DB_USERNAME", "sip")
	t.Setenv("SIP_DB_PASSWORD", "secret")
	t.Setenv("SIP_DB_NAME", "sip_processor")
	t.Setenv("SIP_DB_PORT", "6543")
	t.Setenv("SIP_SCHEDULER_BATCHSIZE", "25")
	t.Setenv("SIP_LIFECYCLE_RETRYBASEDELAY", "50ms")

	// No production.yaml in testdata: defaults plus environment only.
	cfg, err := Load(Production, "testdata")
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "sip", cfg.Database.Username)
	assert.Equal(t, "sip_processor", cfg.Database.Database)
	assert.Equal(t, 25, cfg.Scheduler.BatchSize)
	assert.Equal(t, 50*time.Millisecond, cfg.Lifecycle.RetryBaseDelay)
	assert.Equal(t, "@every 1h", cfg.Scheduler.CompletionSchedule)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadReportsAllMissingSettings(t *testing.T) {
	_, err := Load(Production, t.TempDir())
	require.Error(t, err)

	for _, want := range []string{"SIP_DB_HOST", "SIP_DB_USERNAME", "SIP_DB_PASSWORD", "SIP_DB_NAME"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 8080, ShutdownTimeout: time.Second},
			Database:  DatabaseConfig{Driver: "sqlite", Database: "sip.db", QueryTimeout: time.Second},
			Logger:    LoggerConfig{Level: "info"},
			Lifecycle: LifecycleConfig{ConflictRetries: 3, RetryBaseDelay: time.Millisecond, RetryMaxDelay: time.Second},
			Scheduler: SchedulerConfig{Enabled: true, CompletionSchedule: "@every 1h", BatchSize: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "Valid", mutate: func(*Config) {}},
		{name: "Bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "Unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "not supported"},
		{name: "Bad log level", mutate: func(c *Config) { c.Logger.Level = "verbose" }, wantErr: "logger.level"},
		{name: "Negative retries", mutate: func(c *Config) { c.Lifecycle.ConflictRetries = -1 }, wantErr: "conflictRetries"},
		{name: "Max delay below base", mutate: func(c *Config) { c.Lifecycle.RetryMaxDelay = 0 }, wantErr: "retryMaxDelay"},
		{name: "Scheduler without batch size", mutate: func(c *Config) { c.Scheduler.BatchSize = 0 }, wantErr: "batchSize"},
		{name: "Disabled scheduler skips its checks", mutate: func(c *Config) {
			c.Scheduler = SchedulerConfig{Enabled: false}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
