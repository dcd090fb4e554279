package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `PORT=4000
ENVIRONMENT=development
POSTGRES_HOST=localhost
POSTGRES_PORT=5432
POSTGRES_USER=user
POSTGRES_PASSWORD=password
POSTGRES_DB=blogpages
TOKEN_SECRET=super-secret-key
TOKEN_EXPIRY=2h
ARTICLE_MIN_LENGTH=100
LIMITER_ENABLED=false
RABBITMQ_HOST=localhost
RABBITMQ_PORT=5672
RABBITMQ_USER=guest
RABBITMQ_PASSWORD=guest
MAIL_HOST=smtp.example.com
MAIL_PORT=587
MAIL_USER=mailer
MAIL_PASSWORD=mailerpass
MAIL_SENDER=noreply@example.com
`)

	cfg, err := loadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "blogpages", cfg.DBName)
	assert.Equal(t, "super-secret-key", cfg.TokenSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, 100, cfg.ArticleMinLength)
	assert.False(t, cfg.LimiterEnabled)
	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, "noreply@example.com", cfg.MailSender)

	// Defaults for keys absent from the file.
	assert.Equal(t, float64(2), cfg.LimiterRPS)
	assert.Equal(t, 4, cfg.LimiterBurst)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `PORT=4000
TOKEN_SECRET=super-secret-key
`)

	cfg, err := loadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, 50, cfg.ArticleMinLength)
	assert.True(t, cfg.LimiterEnabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
