package config

import (
	"errors"
	"os"
	"time"

	"tmscraper/internal/components/configutil"
	"tmscraper/internal/components/otlp"
	"tmscraper/internal/scrapers/transfermarkt"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultBaseUrl   = "https://www.transfermarkt.co.uk"
	DefaultUserAgent = "Mozilla/5.0"
	DefaultTimeout   = 30

	EnvBaseUrl   = "TMSCRAPER_BASE_URL"
	EnvUserAgent = "TMSCRAPER_USER_AGENT"
)

type Config struct {
	BaseUrl        string `json:"base_url" validate:"required,http_url"`
	UserAgent      string `json:"user_agent" validate:"required"`
	TimeoutSeconds int    `json:"timeout_seconds" validate:"gte=0"`
	// sets the cloudflare bypass transport on the http client
	CloudflareBypass bool `json:"cloudflare_bypass"`
	// writes every fetched page to this directory
	DumpDir string      `json:"dump_dir"`
	Otlp    otlp.Config `json:"otlp"`
}

func Default() Config {
	return Config{
		BaseUrl:        DefaultBaseUrl,
		UserAgent:      DefaultUserAgent,
		TimeoutSeconds: DefaultTimeout,
	}
}

// Load reads `name` (searched upward from the working directory), fills whatever it
// leaves empty with Default() and applies environment overrides. A missing file is
// not an error, the defaults are used as is.
//
// `.env` files in the working directory are loaded into the environment first,
// variables already set take precedence over them.
func Load(name string) (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	cfg, err := configutil.ReadRecursively[Config](name)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	return finish(cfg)
}

func finish(cfg Config) (Config, error) {
	err := mergo.Merge(&cfg, Default())
	if err != nil {
		return Config{}, err
	}

	if value := os.Getenv(EnvBaseUrl); value != "" {
		cfg.BaseUrl = value
	}
	if value := os.Getenv(EnvUserAgent); value != "" {
		cfg.UserAgent = value
	}

	err = validator.New().Struct(cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) ClientOptions() transfermarkt.ClientOptions {
	return transfermarkt.ClientOptions{
		BaseUrl:          c.BaseUrl,
		UserAgent:        c.UserAgent,
		Timeout:          time.Duration(c.TimeoutSeconds) * time.Second,
		CloudflareBypass: c.CloudflareBypass,
		DumpDir:          c.DumpDir,
	}
}
