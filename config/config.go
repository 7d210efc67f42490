package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Repository selects where entities are read from and written to.
type Repository string

const (
	REPOSITORY_LIVE     Repository = "live"
	REPOSITORY_MOCK     Repository = "mock"
	REPOSITORY_POSTGRES Repository = "postgres"
)

type Config struct {
	Port       int
	Repository Repository

	SportsDayURL          string
	SportsDayToken        string
	SportsDayClientID     string
	SportsDayClientSecret string
	SportsDayTokenURL     string

	PostgresConnString string

	// Upper bound of concurrent per-item fetches in a single load.
	FetchConcurrency int
	RequestTimeout   time.Duration
	LogLevel         zerolog.Level

	AdminUser     string
	AdminPassword string
}

// Load reads the configuration from the environment. A .env file in the working
// directory is loaded first when there is one.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := &Config{
		Repository:            Repository(strings.ToLower(firstNonEmpty(os.Getenv("REPOSITORY"), string(REPOSITORY_MOCK)))),
		SportsDayURL:          os.Getenv("SPORTSDAY_API_URL"),
		SportsDayToken:        os.Getenv("SPORTSDAY_API_TOKEN"),
		SportsDayClientID:     os.Getenv("SPORTSDAY_CLIENT_ID"),
		SportsDayClientSecret: os.Getenv("SPORTSDAY_CLIENT_SECRET"),
		SportsDayTokenURL:     os.Getenv("SPORTSDAY_TOKEN_URL"),
		PostgresConnString:    os.Getenv("POSTGRES_CONN_STR"),
		AdminUser:             os.Getenv("ADMIN_USER"),
		AdminPassword:         os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.Port, err = strconv.Atoi(firstNonEmpty(os.Getenv("PORT"), "3000")); err != nil {
		return nil, fmt.Errorf("error parsing PORT: %w", err)
	}
	if cfg.FetchConcurrency, err = strconv.Atoi(firstNonEmpty(os.Getenv("FETCH_CONCURRENCY"), "4")); err != nil {
		return nil, fmt.Errorf("error parsing FETCH_CONCURRENCY: %w", err)
	}
	if cfg.RequestTimeout, err = time.ParseDuration(firstNonEmpty(os.Getenv("REQUEST_TIMEOUT"), "30s")); err != nil {
		return nil, fmt.Errorf("error parsing REQUEST_TIMEOUT: %w", err)
	}
	if cfg.LogLevel, err = zerolog.ParseLevel(firstNonEmpty(os.Getenv("LOG_LEVEL"), "info")); err != nil {
		return nil, fmt.Errorf("error parsing LOG_LEVEL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.FetchConcurrency < 1 {
		return errors.New("FETCH_CONCURRENCY must be at least 1")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}

	switch c.Repository {
	case REPOSITORY_LIVE:
		if c.SportsDayURL == "" {
			return errors.New("missing SPORTSDAY_API_URL for the live repository")
		}
		if (c.SportsDayClientID == "") != (c.SportsDayClientSecret == "") {
			return errors.New("SPORTSDAY_CLIENT_ID and SPORTSDAY_CLIENT_SECRET must be set together")
		}
		if c.SportsDayClientID != "" && c.SportsDayTokenURL == "" {
			return errors.New("missing SPORTSDAY_TOKEN_URL for client credentials")
		}
	case REPOSITORY_POSTGRES:
		if c.PostgresConnString == "" {
			return errors.New("missing POSTGRES_CONN_STR for the postgres repository")
		}
	case REPOSITORY_MOCK:
	default:
		return fmt.Errorf("unknown REPOSITORY '%s', expected live, mock or postgres", c.Repository)
	}

	if (c.AdminUser == "") != (c.AdminPassword == "") {
		return errors.New("ADMIN_USER and ADMIN_PASSWORD must be set together")
	}
	return nil
}

// AdminEnabled is true when admin credentials are configured.
func (c *Config) AdminEnabled() bool {
	return c.AdminUser != "" && c.AdminPassword != ""
}

func (c *Config) Redacted() string {
	return fmt.Sprintf(
		"port=%d repository=%s sportsDayURL=%s token=%s clientID=%s clientSecret=%s postgres=%s fetchConcurrency=%d requestTimeout=%s logLevel=%s admin=%s",
		c.Port, c.Repository, c.SportsDayURL, set(c.SportsDayToken), c.SportsDayClientID, set(c.SportsDayClientSecret),
		set(c.PostgresConnString), c.FetchConcurrency, c.RequestTimeout, c.LogLevel, set(c.AdminPassword),
	)
}

func set(v string) string {
	if v == "" {
		return "[empty]"
	}
	return "[set]"
}

func firstNonEmpty(v, d string) string {
	if v == "" {
		return d
	}
	return v
}
