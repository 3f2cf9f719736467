package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so host environment leaks
// do not affect the test.
func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"ENVIRONMENT", "HTTP_ADDR", "LLM_SERVICE_ADDR", "WORKSPACE_DIR",
		"ADMIN_DEBUG_ENABLED", "POLICY_MODE", "EMBEDDINGS_PROVIDER",
		"EMBEDDINGS_MODEL", "OPENAI_API_KEY", "OPENAI_BASE_URL",
		"RATE_LIMIT_PER_MINUTE", "MAX_CONSECUTIVE_FAILURES",
		"CONFIRMATION_TTL_SECONDS", "SESSION_TTL_HOURS",
		"TURN_TIMEOUT_SECONDS", "TOOL_TIMEOUT_SECONDS",
		"CLEANUP_INTERVAL_SECONDS", "EVENT_RETENTION_DAYS", "EMBED_CACHE_SIZE",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvironmentDevelopment, cfg.Environment)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "localhost:50051", cfg.LLMServiceAddr)
	assert.Equal(t, "./workspace", cfg.WorkspaceDir)
	assert.False(t, cfg.AdminDebugEnabled)

	assert.Equal(t, PolicyModeEnforce, cfg.Policy.Mode)
	assert.Equal(t, 300*time.Second, cfg.Policy.ConfirmationTTL)

	assert.Equal(t, EmbeddingsProviderLocal, cfg.Embeddings.Provider)
	assert.Equal(t, "text-embedding-3-small", cfg.Embeddings.Model)
	assert.Equal(t, 1024, cfg.Embeddings.CacheSize)

	assert.Equal(t, 10, cfg.Guards.RateLimitPerMinute)
	assert.Equal(t, 3, cfg.Guards.MaxConsecutiveFailures)

	assert.Equal(t, 300*time.Second, cfg.Timeouts.Turn)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.Tool)

	assert.Equal(t, time.Duration(0), cfg.Retention.SessionTTL)
	assert.Equal(t, 60*time.Second, cfg.Retention.CleanupInterval)
	assert.Equal(t, 14, cfg.Retention.EventRetentionDays)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("POLICY_MODE", "audit")
	t.Setenv("ADMIN_DEBUG_ENABLED", "true")
	t.Setenv("EMBEDDINGS_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test-key")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("SESSION_TTL_HOURS", "24")
	t.Setenv("TOOL_TIMEOUT_SECONDS", "5")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvironmentProduction, cfg.Environment)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, PolicyModeAudit, cfg.Policy.Mode)
	assert.True(t, cfg.AdminDebugEnabled)
	assert.Equal(t, EmbeddingsProviderOpenAI, cfg.Embeddings.Provider)
	assert.Equal(t, "sk-test-key", cfg.Embeddings.OpenAIAPIKey)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Embeddings.OpenAIBaseURL)
	assert.Equal(t, 24*time.Hour, cfg.Retention.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.Tool)
	assert.Equal(t, 100, cfg.Guards.RateLimitPerMinute)
}

func TestLoad_InvalidEnums(t *testing.T) {
	tests := []struct {
		name    string
		envVar  string
		value   string
		wantVar string
	}{
		{"bad environment", "ENVIRONMENT", "staging", "ENVIRONMENT"},
		{"bad policy mode", "POLICY_MODE", "permissive", "POLICY_MODE"},
		{"bad provider", "EMBEDDINGS_PROVIDER", "cohere", "EMBEDDINGS_PROVIDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.envVar, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantVar, verr.Var)
		})
	}
}

func TestLoad_OpenAIRequiresKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMBEDDINGS_PROVIDER", "openai")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredVar)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "OPENAI_API_KEY", verr.Var)
}

func TestLoad_IntValidation(t *testing.T) {
	t.Run("not an integer", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TURN_TIMEOUT_SECONDS", "five minutes")

		_, err := Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("below minimum", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

		_, err := Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("zero session TTL is allowed", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SESSION_TTL_HOURS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), cfg.Retention.SessionTTL)
	})
}

func TestLoad_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_DEBUG_ENABLED", "yes please")

	_, err := Load()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ADMIN_DEBUG_ENABLED", verr.Var)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg.Policy)
	require.NotNil(t, cfg.Embeddings)
	require.NotNil(t, cfg.Guards)
	require.NotNil(t, cfg.Timeouts)
	require.NotNil(t, cfg.Retention)
	assert.Equal(t, EnvironmentTest, cfg.Environment)
	assert.Equal(t, PolicyModeEnforce, cfg.Policy.Mode)
}
