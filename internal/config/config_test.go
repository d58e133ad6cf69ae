package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "test-admin-pass")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, 0.4, cfg.AdvanceRate)
	require.Equal(t, "name", cfg.IDPolicy)
	require.Equal(t, "gmail.com", cfg.AllowedEmailDomain)
	require.Equal(t, 10, cfg.MaxAccountsPerEmail)
	require.Equal(t, "project-notifications", cfg.NotifyQueue)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/var/lib/intake")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("ADVANCE_RATE", "0.5")
	t.Setenv("ID_POLICY", "random")
	t.Setenv("MAX_ACCOUNTS_PER_EMAIL", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "/var/lib/intake", cfg.DataDir)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 0.5, cfg.AdvanceRate)
	require.Equal(t, "random", cfg.IDPolicy)
	require.Equal(t, 3, cfg.MaxAccountsPerEmail)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "test-admin-pass")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfig_MissingAdminCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ADMIN_USERNAME")
}

func TestLoadConfig_RejectsBadAdvanceRate(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADVANCE_RATE", "1.5")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ADVANCE_RATE")
}

func TestLoadConfig_RejectsUnknownIDPolicy(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ID_POLICY", "sequential")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ID_POLICY")
}
