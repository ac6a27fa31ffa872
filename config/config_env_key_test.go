package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"session": map[string]any{
			"cookieName":      "session",
			"cleanupInterval": "10m",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_CLEANUPINTERVAL", want: "session.cleanupInterval"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "SESSION_SECRET", want: "session.secret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplySessionDefaults(t *testing.T) {
	t.Run("missing section requires a secret", func(t *testing.T) {
		cfg := &Config{}

		err := applySessionDefaults(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "session.secret")
	})

	t.Run("fills optional values", func(t *testing.T) {
		cfg := &Config{Session: &SessionConfig{Secret: "s3cr3t"}}

		require.NoError(t, applySessionDefaults(cfg))
		assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
		assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
		assert.Equal(t, defaultSessionCleanupInterval, cfg.Session.CleanupInterval)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := &Config{Session: &SessionConfig{
			Secret:          "s3cr3t",
			CookieName:      "gh_session",
			TTL:             time.Hour,
			CleanupInterval: -1,
		}}

		require.NoError(t, applySessionDefaults(cfg))
		assert.Equal(t, "gh_session", cfg.Session.CookieName)
		assert.Equal(t, time.Hour, cfg.Session.TTL)
		assert.Equal(t, time.Duration(-1), cfg.Session.CleanupInterval)
	})
}
