package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const envDevelopment = "development"

type Config struct {
	Port           string `env:"PORT,                 default=3000"`
	Env            string `env:"ENV,                  default=development"`
	JWTSecret      string `env:"JWT_SECRET"`
	LogLevel       string `env:"LOG_LEVEL,            default=info"`
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS, default=*"`
	// SeedDemo is the raw SEED_DEMO_USERS value; read SeedDemoUsers instead.
	SeedDemo string `env:"SEED_DEMO_USERS"`

	// SeedDemoUsers is resolved by Load: SEED_DEMO_USERS when set, otherwise
	// true only in development.
	SeedDemoUsers bool

	SQLite SQLiteConfig
	Redis  RedisConfig
}

// ToolConfig is the subset read by offline tooling, which never signs tokens.
type ToolConfig struct {
	LogLevel string `env:"LOG_LEVEL, default=info"`

	SQLite SQLiteConfig
}

type SQLiteConfig struct {
	Path string `env:"DB_PATH, default=salone.db"`
}

// RedisConfig is optional; an empty Addr disables the stats cache.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	StatsTTL time.Duration `env:"STATS_CACHE_TTL, default=30s"`
}

// devSecret signs tokens in development when JWT_SECRET is unset.
const devSecret = "salon-development-secret"

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadTool reads the settings needed by offline tooling. Unlike Load it does
// not require JWT_SECRET.
func LoadTool(ctx context.Context, envFiles ...string) (*ToolConfig, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	var cfg ToolConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &cfg, nil
}

func loadEnvFiles(envFiles []string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		if !c.IsDevelopment() {
			return errors.New("JWT_SECRET is required outside development")
		}
		c.JWTSecret = devSecret
	}

	c.SeedDemoUsers = c.IsDevelopment()
	if c.SeedDemo != "" {
		seed, err := strconv.ParseBool(c.SeedDemo)
		if err != nil {
			return fmt.Errorf("SEED_DEMO_USERS: %w", err)
		}
		c.SeedDemoUsers = seed
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == envDevelopment
}

// Origins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
