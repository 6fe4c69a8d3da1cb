package config

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env   string
	Port  int
	Store string
	DBURL string

	JWTSecret     string
	TokenLifetime time.Duration

	StudentName   string
	StudentNumber string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	OTelEnabled  bool
	OTelEndpoint string

	AllowedOrigins []string
	MaxBodyBytes   int64
}

// IsDevelop reports whether internal error details may be exposed to callers.
func (c Config) IsDevelop() bool {
	return c.Env == "dev" || c.Env == "develop"
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	// a missing .env is fine, real deployments use the environment
	_ = godotenv.Load()

	env := getEnv("APP_ENV", getEnv("MODE", "prod"))
	port := getEnvInt("PORT", 3001)

	secret := getEnv("JWT_SECRET", getEnv("PRIVATE_KEY", ""))

	return Config{
		Env:   env,
		Port:  port,
		Store: getEnv("STORE", "postgres"),
		DBURL: getEnv("DATABASE_URL", buildDBURL()),

		JWTSecret:     secret,
		TokenLifetime: time.Duration(getEnvInt("TOKEN_LIFE_TIME", 86400)) * time.Second,

		StudentName:   getEnv("STUDENT_NAME", ""),
		StudentNumber: getEnv("STUDENT_NUMBER", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,

		OTelEnabled:  getEnvBool("OTEL_ENABLED", false),
		OTelEndpoint: getEnv("OTEL_ENDPOINT", "localhost:4317"),

		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
	}
}

func buildDBURL() string {
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "volcanoes")
	pass := getEnv("DB_PASSWORD", "volcanoes")
	name := getEnv("DB_NAME", "volcanoes")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
			return fallback
		}

		return num
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return b
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	out := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
