package config

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppName names the data directory under XDG_DATA_HOME.
const AppName = "police-lumos-rp"

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrMissingDBConfig is returned when the postgres connection settings are incomplete.
var ErrMissingDBConfig = errors.New("database environment variables are not configured")

// ErrUnknownDriver is returned when DB_DRIVER names an unsupported driver.
var ErrUnknownDriver = errors.New("unknown database driver")

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string
	DBPath     string

	HTTPAddr  string
	CacheTTL  time.Duration
	RateLimit float64
	LogLevel  string
	APIURL    string
}

// DefaultDBPath is where the sqlite database lives when DB_PATH is unset.
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, AppName, "crimes.db")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_PATH", DefaultDBPath())
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("RATE_LIMIT", 20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_URL", "http://localhost:8080/api/v1")
}

// Load reads .env files (dev only) and the process environment and
// validates the database settings.
func Load() (*Config, error) {
	return FromViper(Read())
}

// Read returns a viper instance over .env files and the process
// environment with defaults applied.
func Read() *viper.Viper {
	// dev convenience, missing files are fine
	_ = godotenv.Load(".env.local", ".env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := Parse(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse builds a Config from v without validating it. Commands that never
// open the database use it directly.
func Parse(v *viper.Viper) *Config {
	return &Config{
		DBDriver:   strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),
		DBTimezone: v.GetString("DB_TIMEZONE"),
		DBPath:     v.GetString("DB_PATH"),
		HTTPAddr:   v.GetString("HTTP_ADDR"),
		CacheTTL:   v.GetDuration("CACHE_TTL"),
		RateLimit:  v.GetFloat64("RATE_LIMIT"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		APIURL:     strings.TrimRight(v.GetString("API_URL"), "/"),
	}
}

// Validate checks that the selected driver has what it needs to connect.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBHost == "" || c.DBPort == "" || c.DBUser == "" || c.DBName == "" {
			return ErrMissingDBConfig
		}
	case DriverSQLite:
		if c.DBPath == "" {
			return ErrMissingDBConfig
		}
	default:
		return ErrUnknownDriver
	}
	return nil
}
