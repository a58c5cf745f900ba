package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "https://api.ekqr.in", cfg.Gateway.BaseURL)
	assert.True(t, decimal.NewFromInt(1).Equal(cfg.Gateway.Fee()))
	assert.Equal(t, "cricket-club/players", cfg.Storage.Folder)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.Storage.Enabled())
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`env: production
auth:
  jwt_secret: from-file
gateway:
  key: gw-key
  registration_fee: "250"
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "gw-key", cfg.Gateway.Key)
	assert.True(t, decimal.NewFromInt(250).Equal(cfg.Gateway.Fee()))
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Auth:    Auth{JWTSecret: "s", TokenTTL: time.Hour},
			Gateway: Gateway{RegistrationFee: "1"},
			Log:     Log{Encoding: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero fee", mutate: func(c *Config) { c.Gateway.RegistrationFee = "0" }, wantErr: "REGISTRATION_FEE"},
		{name: "bad fee", mutate: func(c *Config) { c.Gateway.RegistrationFee = "one" }, wantErr: "REGISTRATION_FEE"},
		{name: "bad encoding", mutate: func(c *Config) { c.Log.Encoding = "xml" }, wantErr: "LOG_ENCODING"},
		{name: "zero ttl", mutate: func(c *Config) { c.Auth.TokenTTL = 0 }, wantErr: "JWT_TOKEN_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
