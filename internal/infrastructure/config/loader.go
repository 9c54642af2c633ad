package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. ES_DB_HOST
const EnvPrefix = "ES"

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

// envBindings maps environment variables onto config keys.
// Environment values win over the YAML file.
var envBindings = map[string]string{
	"ES_SERVER_HOST":              "server.host",
	"ES_SERVER_PORT":              "server.port",
	"ES_SERVER_MODE":              "server.mode",
	"ES_SERVER_REQUEST_TIMEOUT":   "server.requestTimeout",
	"ES_DB_DRIVER":                "database.driver",
	"ES_DB_HOST":                  "database.host",
	"ES_DB_PORT":                  "database.port",
	"ES_DB_USERNAME":              "database.username",
	"ES_DB_PASSWORD":              "database.password",
	"ES_DB_NAME":                  "database.database",
	"ES_DB_SSL_MODE":              "database.sslMode",
	"ES_DB_MAX_OPEN_CONNS":        "database.maxOpenConns",
	"ES_DB_MAX_IDLE_CONNS":        "database.maxIdleConns",
	"ES_DB_QUERY_TIMEOUT_SECONDS": "database.queryTimeout",
	"ES_DB_RETRY_ATTEMPTS":        "database.retryAttempts",
	"ES_DB_LOG_LEVEL":             "database.logLevel",
	"ES_LOGGER_LEVEL":             "logger.level",
	"ES_LOGGER_FORMAT":            "logger.format",
	"ES_JWT_SECRET":               "auth.jwtSecret",
	"ES_JWT_TTL_HOURS":            "auth.tokenTTL",
	"ES_CORS_ALLOWED_ORIGINS":     "cors.allowedOrigins",
	"ES_METRICS_ENABLED":          "metrics.enabled",
	"ES_SEED_ENABLED":             "seed.enabled",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v, env)
}

// LoadFromViper decodes an already populated viper instance. Used by tests and tools.
func LoadFromViper(v *viper.Viper, env string) (*Config, error) {
	setDefaults(v)
	return decode(v, env)
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.requestTimeout", 10)    // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	v.SetDefault("auth.issuer", "expense-splitter")
	v.SetDefault("auth.tokenTTL", 168) // hours
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Authorization", "Content-Type"})
	v.SetDefault("cors.maxAge", 300)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.poolInterval", 15) // seconds

	v.SetDefault("seed.enabled", false)
}

// getEnvironment determines the environment from ES_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides copies set environment variables onto their config keys
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envBindings {
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			continue
		}
		switch {
		case key == "cors.allowedOrigins":
			v.Set(key, strings.Split(value, ","))
		case isNumber(value):
			// durations are configured as plain numbers
			n, _ := strconv.Atoi(value)
			v.Set(key, n)
		default:
			v.Set(key, value)
		}
	}
}

func isNumber(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}

// processDurations converts the raw numbers read from YAML into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Server.RequestTimeout = time.Duration(config.Server.RequestTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Hour
	config.Metrics.PoolInterval = time.Duration(config.Metrics.PoolInterval) * time.Second
}

// Validate checks the settings every environment needs
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RequestTimeout <= 0 {
		return errors.New("server.requestTimeout must be positive")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret is required (set ES_JWT_SECRET)")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTTL must be positive")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	return nil
}

// IsProduction reports whether the production profile is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
