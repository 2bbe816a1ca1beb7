package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

/* Config é um pacote auxiliar. Poderia ser uma lib externa*/

type Config struct {
	Port string `mapstructure:"PORT"`

	PostgresHost     string `mapstructure:"POSTGRES_HOST"`
	PostgresPort     string `mapstructure:"POSTGRES_PORT"`
	PostgresUser     string `mapstructure:"POSTGRES_USER"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB       string `mapstructure:"POSTGRES_DB"`
	PostgresSSLMode  string `mapstructure:"POSTGRES_SSLMODE"`

	PostgresMaxOpenConns       int `mapstructure:"POSTGRES_MAX_OPEN_CONNS"`
	PostgresMaxIdleConns       int `mapstructure:"POSTGRES_MAX_IDLE_CONNS"`
	PostgresConnMaxLifeMinutes int `mapstructure:"POSTGRES_CONN_MAX_LIFE_MINUTES"`

	JWTSecret        string `mapstructure:"JWT_SECRET"`
	FinePerDay       int64  `mapstructure:"FINE_PER_DAY"`
	AccessPolicyFile string `mapstructure:"ACCESS_POLICY_FILE"`

	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int    `mapstructure:"REDIS_DB"`
	StatsCacheSeconds int    `mapstructure:"STATS_CACHE_SECONDS"`

	LogJSON               bool   `mapstructure:"LOG_JSON"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	RequestTimeoutSeconds int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
}

var defaults = map[string]any{
	"PORT":                           "8080",
	"POSTGRES_HOST":                  "localhost",
	"POSTGRES_PORT":                  "5432",
	"POSTGRES_USER":                  "postgres",
	"POSTGRES_PASSWORD":              "",
	"POSTGRES_DB":                    "library",
	"POSTGRES_SSLMODE":               "disable",
	"POSTGRES_MAX_OPEN_CONNS":        25,
	"POSTGRES_MAX_IDLE_CONNS":        5,
	"POSTGRES_CONN_MAX_LIFE_MINUTES": 5,
	"JWT_SECRET":                     "",
	"FINE_PER_DAY":                   1000,
	"ACCESS_POLICY_FILE":             "",
	"REDIS_ADDR":                     "",
	"REDIS_PASSWORD":                 "",
	"REDIS_DB":                       0,
	"STATS_CACHE_SECONDS":            30,
	"LOG_JSON":                       true,
	"LOG_LEVEL":                      "info",
	"REQUEST_TIMEOUT_SECONDS":        30,
}

// GetConfig reads .env from the working directory; environment variables win over the file
func GetConfig() (*Config, error) {
	return Load(".")
}

// Load reads the .env file found in dir. A missing file leaves defaults and environment.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var config Config
	err = v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	return &config, nil
}

// Validate checks the settings the API cannot start without
func (c *Config) Validate() error {
	if err := c.ValidatePostgres(); err != nil {
		return err
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.FinePerDay < 0 {
		return fmt.Errorf("FINE_PER_DAY cannot be negative")
	}
	return nil
}

// ValidatePostgres checks the connection settings
func (c *Config) ValidatePostgres() error {
	if c.PostgresHost == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}
	if c.PostgresUser == "" {
		return fmt.Errorf("POSTGRES_USER is required")
	}
	if c.PostgresDB == "" {
		return fmt.Errorf("POSTGRES_DB is required")
	}
	return nil
}

// PostgresConnectionString builds a lib/pq URL from the settings
func (c *Config) PostgresConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     c.PostgresHost + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=" + url.QueryEscape(c.PostgresSSLMode),
	}
	return u.String()
}

// RequestTimeout is the per-request deadline of the HTTP API
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// StatsCacheTTL is how long a stats snapshot stays in Redis
func (c *Config) StatsCacheTTL() time.Duration {
	if c.StatsCacheSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.StatsCacheSeconds) * time.Second
}
