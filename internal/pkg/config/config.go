package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	Port          string        `env:"PORT,           default=3000"`
	Env           string        `env:"ENV,            default=development"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`
	JWTSecret     string        `env:"JWT_SECRET,     required"`
	TokenTTL      time.Duration `env:"TOKEN_TTL,      default=24h"`
	SessionSecret string        `env:"SESSION_SECRET, required"`
	BcryptCost    int           `env:"BCRYPT_COST,    default=10"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Login     LoginConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,    default=blog"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// LoginConfig bounds failed login attempts per username.
type LoginConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	Lockout     time.Duration `env:"LOGIN_LOCKOUT,      default=15m"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS,   default=20"`
	Burst int     `env:"RATE_LIMIT_BURST, default=40"`
}

// IsDevelopment reports whether human-friendly output should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads a .env file when present and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith resolves the configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
