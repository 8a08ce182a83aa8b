package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SIP"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// sensitiveEnv binds config keys to short variable names for credentials and endpoints
var sensitiveEnv = map[string]string{
	"database.driver":   "SIP_DB_DRIVER",
	"database.host":     "SIP_DB_HOST",
	"database.port":     "SIP_DB_PORT",
	"database.username": "SIP_DB_USERNAME",
	"database.password": "SIP_DB_PASSWORD",
	"database.database": "SIP_DB_NAME",
	"database.sslMode":  "SIP_DB_SSL_MODE",
	"server.port":       "SIP_SERVER_PORT",
	"logger.level":      "SIP_LOGGER_LEVEL",
}

// LoadConfig loads configuration for the environment selected by SIP_ENV
func LoadConfig() (*Config, error) {
	loadDotEnvFile()
	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads <env>.yaml from the first matching path, then applies SIP_ environment overrides.
// A missing config file is not an error: defaults and the environment still apply.
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envName := range sensitiveEnv {
		if err := v.BindEnv(key, envName); err != nil {
			return nil, fmt.Errorf("binding %s: %w", envName, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. Variables already set are not overwritten.
func loadDotEnvFile() {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.connMaxIdleTime", "15m")
	v.SetDefault("database.queryTimeout", "5s")
	v.SetDefault("database.slowThreshold", "200ms")
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", "1s")
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("database.seedData", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("lifecycle.conflictRetries", 3)
	v.SetDefault("lifecycle.retryBaseDelay", "20ms")
	v.SetDefault("lifecycle.retryMaxDelay", "500ms")

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.completionSchedule", "@every 1h")
	v.SetDefault("scheduler.batchSize", 500)
	v.SetDefault("scheduler.jobTimeout", "5m")
}

// getEnvironment determines the environment from SIP_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		return Development
	}
	return strings.ToLower(env)
}
