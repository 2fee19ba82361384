package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the bookshelf binaries.
type Config struct {
	ServiceName string
	Addr        string
	LogLevel    string

	DatabaseDSN string
	DBTimeout   time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
	EnableHSTS     bool

	CoverSearchTemplate string
	CoverStaticTemplate string

	SeedOnStart   bool
	MigrationsDir string
}

// LoadEnvFiles reads .env and .env.local without overriding variables already set
// by the runtime.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load resolves configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVICE_NAME", "bookshelf")
	v.SetDefault("APP_ADDR", ":3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "books")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEOUT", "5s")
	v.SetDefault("RATE_LIMIT_RPS", 20.0)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("ENABLE_HSTS", false)
	v.SetDefault("SEED_ON_START", true)
	v.SetDefault("MIGRATIONS_DIR", "db/migrations")

	cfg := &Config{
		ServiceName:         v.GetString("SERVICE_NAME"),
		Addr:                v.GetString("APP_ADDR"),
		LogLevel:            strings.ToLower(v.GetString("LOG_LEVEL")),
		DatabaseDSN:         v.GetString("DB_DSN"),
		DBTimeout:           v.GetDuration("DB_TIMEOUT"),
		RateLimitRPS:        v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:      v.GetInt("RATE_LIMIT_BURST"),
		MaxBodyBytes:        v.GetInt64("MAX_BODY_BYTES"),
		EnableHSTS:          v.GetBool("ENABLE_HSTS"),
		CoverSearchTemplate: v.GetString("COVER_SEARCH_TEMPLATE"),
		CoverStaticTemplate: v.GetString("COVER_STATIC_TEMPLATE"),
		SeedOnStart:         v.GetBool("SEED_ON_START"),
		MigrationsDir:       v.GetString("MIGRATIONS_DIR"),
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = buildDSN(
			v.GetString("DB_USER"), v.GetString("DB_PASSWORD"),
			v.GetString("DB_HOST"), v.GetInt("DB_PORT"),
			v.GetString("DB_NAME"), v.GetString("DB_SSLMODE"),
		)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBTimeout <= 0 {
		return fmt.Errorf("DB_TIMEOUT must be positive, got %s", c.DBTimeout)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if c.CoverSearchTemplate != "" && strings.Count(c.CoverSearchTemplate, "%s") != 1 {
		return fmt.Errorf("COVER_SEARCH_TEMPLATE must contain exactly one %%s")
	}
	return nil
}

func buildDSN(user, password, host string, port int, name, sslmode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     fmt.Sprintf("%s:%d", host, port),
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	return u.String()
}

// RedactDSN hides the credentials of a URL-style DSN for logging.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.LastIndex(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
