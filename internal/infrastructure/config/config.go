package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Lifecycle   LifecycleConfig `mapstructure:"lifecycle"`
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`
	LogLevel        string        `mapstructure:"logLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
	SeedData        bool          `mapstructure:"seedData"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// LifecycleConfig is the HTTP caller's retry policy for lifecycle operations
type LifecycleConfig struct {
	ConflictRetries int           `mapstructure:"conflictRetries"`
	RetryBaseDelay  time.Duration `mapstructure:"retryBaseDelay"`
	RetryMaxDelay   time.Duration `mapstructure:"retryMaxDelay"`
}

// SchedulerConfig controls the background completion sweep
type SchedulerConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	CompletionSchedule string        `mapstructure:"completionSchedule"`
	BatchSize          int           `mapstructure:"batchSize"`
	JobTimeout         time.Duration `mapstructure:"jobTimeout"`
}

// IsProduction reports whether the production environment is selected
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate reports every invalid or missing setting at once
func (c *Config) Validate() error {
	var problems []error
	require := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	require(c.Server.Port > 0 && c.Server.Port <= 65535, "server.port must be between 1 and 65535, got %d", c.Server.Port)
	require(c.Server.ShutdownTimeout > 0, "server.shutdownTimeout must be positive")

	switch c.Database.Driver {
	case "postgres":
		require(c.Database.Host != "", "database.host is required (SIP_DB_HOST)")
		require(c.Database.Username != "", "database.username is required (SIP_DB_USERNAME)")
		require(c.Database.Password != "", "database.password is required (SIP_DB_PASSWORD)")
	case "sqlite":
	default:
		problems = append(problems, fmt.Errorf("database.driver %q is not supported", c.Database.Driver))
	}
	require(c.Database.Database != "", "database.database is required (SIP_DB_NAME)")
	require(c.Database.QueryTimeout > 0, "database.queryTimeout must be positive")

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	require(validLevels[c.Logger.Level], "logger.level %q is not one of debug, info, warn, error", c.Logger.Level)

	require(c.Lifecycle.ConflictRetries >= 0, "lifecycle.conflictRetries must not be negative")
	require(c.Lifecycle.RetryBaseDelay > 0, "lifecycle.retryBaseDelay must be positive")
	require(c.Lifecycle.RetryMaxDelay >= c.Lifecycle.RetryBaseDelay, "lifecycle.retryMaxDelay must not be below retryBaseDelay")

	if c.Scheduler.Enabled {
		require(c.Scheduler.CompletionSchedule != "", "scheduler.completionSchedule is required when the scheduler is enabled")
		require(c.Scheduler.BatchSize > 0, "scheduler.batchSize must be positive")
	}

	return errors.Join(problems...)
}
