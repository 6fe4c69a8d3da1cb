package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("MODE", "")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_LIFE_TIME", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "prod", cfg.Env)
	assert.False(t, cfg.IsDevelop())
	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenLifetime)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Contains(t, cfg.DBURL, "postgres://")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("PORT", "8081")
	t.Setenv("PRIVATE_KEY", "legacy-secret")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_LIFE_TIME", "60")
	t.Setenv("STUDENT_NAME", "Jane Doe")
	t.Setenv("STUDENT_NUMBER", "n1234567")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg := Load()

	assert.True(t, cfg.IsDevelop())
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "legacy-secret", cfg.JWTSecret)
	assert.Equal(t, time.Minute, cfg.TokenLifetime)
	assert.Equal(t, "Jane Doe", cfg.StudentName)
	assert.Equal(t, "n1234567", cfg.StudentNumber)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))
}
