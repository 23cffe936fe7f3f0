package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	ConfigPathEnvVar = "CONFIG_PATH"

	defaultJWTSecret = "change-me-jwt-secret"
	maxPageSize      = 100
)

var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

type Config struct {
	App       AppConfig       `koanf:"app"`
	HTTP      HTTPConfig      `koanf:"http"`
	Database  DatabaseConfig  `koanf:"database"`
	JWT       JWTConfig       `koanf:"jwt"`
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Page      PageConfig      `koanf:"page"`
	Log       LogConfig       `koanf:"log"`
}

type AppConfig struct {
	Env string `koanf:"env"`
}

type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

type DatabaseConfig struct {
	URL string `koanf:"url"`
}

type JWTConfig struct {
	Secret string        `koanf:"secret"`
	TTL    time.Duration `koanf:"ttl"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

type RateLimitConfig struct {
	RPS   float64 `koanf:"rps"`
	Burst int     `koanf:"burst"`
}

type PageConfig struct {
	Size int `koanf:"size"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	return &Config{
		App:      AppConfig{Env: "dev"},
		HTTP:     HTTPConfig{Addr: ":8080"},
		Database: DatabaseConfig{URL: "file:foodgram.db?_pragma=foreign_keys(1)"},
		JWT: JWTConfig{
			Secret: defaultJWTSecret,
			TTL:    24 * time.Hour,
		},
		CORS: CORSConfig{AllowedOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}},
		RateLimit: RateLimitConfig{RPS: 20, Burst: 40},
		Page:      PageConfig{Size: 6},
		Log:       LogConfig{Level: "info", Format: "json"},
	}
}

// envKeys maps the supported environment variables to config paths.
// Anything else in the environment is ignored.
var envKeys = map[string]string{
	"APP_ENV":              "app.env",
	"HTTP_ADDR":            "http.addr",
	"DATABASE_URL":         "database.url",
	"JWT_SECRET":           "jwt.secret",
	"JWT_TTL":              "jwt.ttl",
	"CORS_ALLOWED_ORIGINS": "cors.allowed_origins",
	"RATE_LIMIT_RPS":       "rate_limit.rps",
	"RATE_LIMIT_BURST":     "rate_limit.burst",
	"PAGE_SIZE":            "page.size",
	"LOG_LEVEL":            "log.level",
	"LOG_FORMAT":           "log.format",
}

// Load layers defaults, an optional YAML file and the environment, in that
// order of precedence, then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransformFunc maps known variables to their config keys and drops the
// rest. List values are comma-separated.
func envTransformFunc(key, value string) (string, any) {
	k, ok := envKeys[key]
	if !ok {
		return "", nil
	}
	if k == "cors.allowed_origins" {
		return k, strings.Split(value, ",")
	}
	return k, value
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *Config) normalize() {
	c.App.Env = strings.ToLower(strings.TrimSpace(c.App.Env))
	c.JWT.Secret = strings.TrimSpace(c.JWT.Secret)

	origins := c.CORS.AllowedOrigins[:0]
	for _, o := range c.CORS.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORS.AllowedOrigins = origins
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be > 0")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be > 0")
	}
	if c.Page.Size <= 0 || c.Page.Size > maxPageSize {
		return fmt.Errorf("PAGE_SIZE must be between 1 and %d", maxPageSize)
	}
	if f := strings.ToLower(c.Log.Format); f != "json" && f != "console" {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}

	if c.IsProdLike() && isEmptyOrDefault(c.JWT.Secret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func (c *Config) IsProdLike() bool {
	return c.App.Env == "prod" || c.App.Env == "production" || c.App.Env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
