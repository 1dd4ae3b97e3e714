package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ContextCacheTTL enforces retention for normalized bureau data. Raw and
// normalized credit records are sensitive; keep them short-lived.
var ContextCacheTTL = 5 * time.Minute

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
}

// Redis configures the normalized-context cache. An empty URL disables it.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Postgres configures the report archive. An empty URL disables archiving.
type Postgres struct {
	URL string
}

// Kafka configures the audit event sink. No brokers means audit events stay
// in the in-memory store only.
type Kafka struct {
	Brokers []string
	Topic   string
}

// RateLimit caps consultations per client inside a sliding window.
type RateLimit struct {
	Limit  int
	Window time.Duration
}

// Config aggregates all service configuration.
type Config struct {
	Server    Server
	Redis     Redis
	Postgres  Postgres
	Kafka     Kafka
	RateLimit RateLimit
}

// FromEnv builds the full config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("SPC_GATEWAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	topic := os.Getenv("AUDIT_KAFKA_TOPIC")
	if topic == "" {
		topic = "spc-gateway.audit"
	}

	return Config{
		Server: Server{
			Addr:          addr,
			JWTSigningKey: jwtSigningKey,
		},
		Redis: Redis{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: Postgres{
			URL: os.Getenv("DATABASE_URL"),
		},
		Kafka: Kafka{
			Brokers: envList("AUDIT_KAFKA_BROKERS"),
			Topic:   topic,
		},
		RateLimit: RateLimit{
			Limit:  envInt("RATE_LIMIT_PER_WINDOW", 60),
			Window: envDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func envList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
