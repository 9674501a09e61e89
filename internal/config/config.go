package config

import (
	"log"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type key string

const (
	KeyUUID        = key("uuid")
	KeyEmail       = key("email")
	KeyTokenID     = key("token_id")
	KeyTokenExpiry = key("token_expiry")
	KeyLogger      = key("logger")
	KeyMetrics     = key("metrics")
)

type Config struct {
	Service   Service
	Postgres  ReadEnvPostgres
	Redis     Redis
	Logger    Logger
	Metrics   Metrics
	Platform  Platform
	Supabase  Supabase
	Token     Token
	CORS      CORS
	RateLimit RateLimit
}

type Service struct {
	Name       string `env:"SERVICE_NAME" env-default:"echo-service"`
	Version    string `env:"SERVICE_VERSION" env-default:"1.0.0"`
	Port       string `env:"SERVICE_PORT" env-default:"8000"`
	TrustProxy bool   `env:"TRUST_PROXY" env-default:"false"`
}

type ReadEnvPostgres struct {
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB"`
	Host     string `env:"POSTGRES_HOST"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
	SSLMode  string `env:"POSTGRES_SSLMODE" env-default:"require"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST" env-default:"localhost"`
	Port     string `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"development"`
}

// Supabase holds the hosted auth service settings. The service role key is
// only needed for admin lookups; the anon key is used for everything else.
type Supabase struct {
	URL            string        `env:"SUPABASE_URL" env-required:"true"`
	AnonKey        string        `env:"SUPABASE_ANON_KEY" env-required:"true"`
	ServiceRoleKey string        `env:"SUPABASE_SERVICE_ROLE_KEY"`
	Timeout        time.Duration `env:"SUPABASE_TIMEOUT" env-default:"10s"`
}

type Token struct {
	Secret    string        `env:"SECRET_KEY" env-required:"true"`
	Algorithm string        `env:"ALGORITHM" env-default:"HS256"`
	TTL       time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"30m"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173,http://localhost:3000"`
}

type RateLimit struct {
	AuthEvery time.Duration `env:"AUTH_RATE_LIMIT_EVERY" env-default:"5s"`
	AuthBurst int           `env:"AUTH_RATE_LIMIT_BURST" env-default:"5"`
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading process environment")
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}

	return cfg
}

// AdminKey returns the key used for admin identity calls.
func (s Supabase) AdminKey() string {
	if s.ServiceRoleKey != "" {
		return s.ServiceRoleKey
	}
	return s.AnonKey
}

// CredentialsAllowed is false when any origin is a wildcard.
func (c CORS) CredentialsAllowed() bool {
	for _, origin := range c.AllowedOrigins {
		if strings.Contains(origin, "*") {
			return false
		}
	}
	return len(c.AllowedOrigins) > 0
}

func (p Platform) IsProduction() bool {
	return p.Env == "production"
}
