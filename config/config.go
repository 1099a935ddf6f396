package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const appID = "storefront"

// Config is read from STOREFRONT_* environment variables, optionally
// seeded from a .env file.
type Config struct {
	ServeRESTAddress string        `envconfig:"serve_rest_address" default:":8080"`
	LogLevel         string        `envconfig:"log_level" default:"info"`
	LogFormat        string        `envconfig:"log_format" default:"json"`
	AllowOrigins     []string      `envconfig:"allow_origins" default:"http://localhost:3000"`
	JWTSecret        string        `envconfig:"jwt_secret"`
	SessionTTL       time.Duration `envconfig:"session_ttl" default:"24h"`
	SweepInterval    time.Duration `envconfig:"sweep_interval" default:"5m"`
	CatalogCacheTTL  time.Duration `envconfig:"catalog_cache_ttl" default:"5m"`
	MongoURL         string        `envconfig:"mongo_url"`
	MongoDatabase    string        `envconfig:"mongo_database" default:"autoparts"`
	RedisURL         string        `envconfig:"redis_url"`
	RateLimit        int           `envconfig:"rate_limit" default:"100"`
	RateWindow       time.Duration `envconfig:"rate_window" default:"1m"`
	ConnectTimeout   time.Duration `envconfig:"connect_timeout" default:"10s"`
}

// Load reads the optional .env file and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{}
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	return c, nil
}

// ValidateServe checks the settings the HTTP server cannot run without.
func (c *Config) ValidateServe() error {
	if c.JWTSecret == "" {
		return errors.New("STOREFRONT_JWT_SECRET must be set")
	}
	if c.SessionTTL <= 0 {
		return errors.New("STOREFRONT_SESSION_TTL must be positive")
	}
	if c.SweepInterval <= 0 {
		return errors.New("STOREFRONT_SWEEP_INTERVAL must be positive")
	}
	return nil
}
