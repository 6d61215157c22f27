package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/dawitg/card-services/internal/cardsvc/store"
)

const (
	DefaultPort      = "8080"
	DefaultDBPort    = 5432
	DefaultRateLimit = 100
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string // optional, connects to the user default database when empty
	DBPort     int
	Table      string
	Port       string
	RateLimit  int // requests per minute per client IP
}

// Load reads the service configuration from the environment. Missing
// required values or an unsafe table name fail here so the process can
// stop at startup instead of interpolating a bad identifier later.
func Load() (*Config, error) {
	c := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     DefaultDBPort,
		Table:      store.DefaultTable,
		Port:       DefaultPort,
		RateLimit:  DefaultRateLimit,
	}

	if c.DBHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	if c.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT value %q: %w", v, err)
		}
		c.DBPort = port
	}

	if v := os.Getenv("CARD_TABLE"); v != "" {
		if !store.ValidIdentifier(v) {
			return nil, fmt.Errorf("CARD_TABLE %q is not a valid identifier", v)
		}
		c.Table = v
	}

	if v := os.Getenv("SERVICE_PORT"); v != "" {
		c.Port = v
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT value %q: %w", v, err)
		}
		c.RateLimit = limit
	}

	return c, nil
}

// DSN builds the postgres connection string. The password is URL-escaped
// so special characters cannot break the URL structure.
func (c *Config) DSN() string {
	hostPort := net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort))
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.DBUser,
		url.QueryEscape(c.DBPassword),
		hostPort,
		c.DBName,
	)
}
