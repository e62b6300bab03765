package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "secretKey", cfg.SecretKey)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL)
	assert.Equal(t, 8, cfg.SeedPosts)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devapi.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"addr": ":9000",
		"secret_key": "from-json",
		"token_ttl": "2h",
		"otp_ttl": 60000000000
	}`), 0o600))

	cfg, err := LoadConfig([]string{"-config", path, "-k", "from-flag", "-n", "0"})
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "from-flag", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, time.Minute, cfg.OTPTTL)
	assert.Equal(t, 0, cfg.SeedPosts)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-k="})
	require.ErrorIs(t, err, ErrEmptySecret)

	_, err = LoadConfig([]string{"-t", "0"})
	require.ErrorIs(t, err, ErrInvalidTokenTTL)

	_, err = LoadConfig([]string{"-t", "soon"})
	require.Error(t, err)
}
