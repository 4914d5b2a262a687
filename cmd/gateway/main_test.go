package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("LESSONSTREAM_HTTP_ADDR", ":8080")
	t.Setenv("LESSONSTREAM_HTTP_CERT_FILE", "test-cert.pem")
	t.Setenv("LESSONSTREAM_HTTP_KEY_FILE", "test-key.pem")

	t.Setenv("LESSONSTREAM_LESSONS_ADDR", "lessons:50051")

	t.Setenv("LESSONSTREAM_AUTH_ENABLED", "true")
	t.Setenv("LESSONSTREAM_AUTH_TOKEN_ISSUER", "test-issuer")
	t.Setenv("LESSONSTREAM_AUTH_ACCESS_TOKEN_SECRET", "test-access-secret")
	t.Setenv("LESSONSTREAM_AUTH_ACCESS_TOKEN_EXPIRY", "1h")

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "test-cert.pem", cfg.HTTP.CertFile)
	assert.Equal(t, "test-key.pem", cfg.HTTP.KeyFile)
	assert.Equal(t, "lessons:50051", cfg.Lessons.Addr)
	assert.Equal(t, true, cfg.Auth.Enabled)
	assert.Equal(t, "test-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, "test-access-secret", cfg.Auth.AccessTokenSecret)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenExpiry)

	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigYAML(t *testing.T) {
	dummyConfig := `
http:
  addr: ":9090"
  cert_file: test-cert.pem
  key_file: test-key.pem

lessons:
  addr: lessons:50051

auth:
  enabled: true
  token_issuer: test-issuer
  access_token_secret: test-access-secret
  access_token_expiry: 30m
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(dummyConfig), 0644))
	require.NoError(t, rootCmd.PersistentFlags().Set("config", configPath))
	t.Cleanup(func() {
		rootCmd.PersistentFlags().Set("config", "")
	})

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "lessons:50051", cfg.Lessons.Addr)
	assert.Equal(t, true, cfg.Auth.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenExpiry)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr)
	assert.Equal(t, "127.0.0.1:50051", cfg.Lessons.Addr)
	assert.False(t, cfg.Auth.Enabled)
}
