package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object for the application,
// loaded from environment variables at startup. Database connection
// settings are loaded separately by pkg/database.
type Config struct {
	// Environment selects production/development/test behavior.
	// Production disables the X-User-ID auth bypass.
	Environment Environment

	// HTTPAddr is the listen address for the API server.
	HTTPAddr string

	// LLMServiceAddr is the gRPC address of the intent parsing service.
	LLMServiceAddr string

	// WorkspaceDir is the root directory the file tools operate under.
	WorkspaceDir string

	// AdminDebugEnabled gates the /admin endpoints (superuser still required).
	AdminDebugEnabled bool

	Policy     *PolicyConfig
	Embeddings *EmbeddingsConfig
	Guards     *GuardsConfig
	Timeouts   *TimeoutConfig
	Retention  *RetentionConfig
}

// PolicyConfig controls how policy decisions are applied and how long
// pending confirmations stay valid.
type PolicyConfig struct {
	// Mode is enforce (default) or audit. Audit logs and persists
	// decisions but executes as if ALLOW.
	Mode PolicyMode

	// ConfirmationTTL is how long a PENDING confirmation can be resolved
	// before the cleanup loop expires it.
	ConfirmationTTL time.Duration
}

// EmbeddingsConfig selects and parameterizes the embedding provider.
type EmbeddingsConfig struct {
	Provider EmbeddingsProvider

	// Model is the embedding model name (openai provider).
	Model string

	// OpenAIAPIKey authenticates against the OpenAI API. Required when
	// Provider is openai.
	OpenAIAPIKey string

	// OpenAIBaseURL overrides the OpenAI API base URL (optional, for
	// proxies and compatible servers).
	OpenAIBaseURL string

	// CacheSize is the number of entries in the embedding LRU cache.
	CacheSize int
}

// GuardsConfig parameterizes the per-session execution guards.
type GuardsConfig struct {
	// RateLimitPerMinute caps executed tool calls per session per
	// sliding 60-second window.
	RateLimitPerMinute int

	// MaxConsecutiveFailures is how many consecutive non-success calls
	// of the same tool trip the loop breaker.
	MaxConsecutiveFailures int
}

// TimeoutConfig holds the execution deadlines.
type TimeoutConfig struct {
	// Turn bounds one full orchestrator turn.
	Turn time.Duration

	// Tool bounds a single tool handler invocation.
	Tool time.Duration
}

// RetentionConfig controls cleanup and data retention behavior.
type RetentionConfig struct {
	// SessionTTL expires sessions idle longer than this (0 = no expiry).
	SessionTTL time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration

	// EventRetentionDays is how many days to keep event rows and purged
	// soft-deleted memories.
	EventRetentionDays int
}

// Load reads configuration from the environment, applying defaults and
// validating values. It fails fast on the first invalid value.
func Load() (*Config, error) {
	env := Environment(getEnv("ENVIRONMENT", string(EnvironmentDevelopment)))
	if !env.IsValid() {
		return nil, NewValidationError("ENVIRONMENT", fmt.Errorf("%w: %q", ErrInvalidValue, env))
	}

	mode := PolicyMode(getEnv("POLICY_MODE", string(PolicyModeEnforce)))
	if !mode.IsValid() {
		return nil, NewValidationError("POLICY_MODE", fmt.Errorf("%w: %q", ErrInvalidValue, mode))
	}

	provider := EmbeddingsProvider(getEnv("EMBEDDINGS_PROVIDER", string(EmbeddingsProviderLocal)))
	if !provider.IsValid() {
		return nil, NewValidationError("EMBEDDINGS_PROVIDER", fmt.Errorf("%w: %q", ErrInvalidValue, provider))
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if provider == EmbeddingsProviderOpenAI && apiKey == "" {
		return nil, NewValidationError("OPENAI_API_KEY",
			fmt.Errorf("%w (required for the openai embeddings provider)", ErrMissingRequiredVar))
	}

	adminDebug, err := boolEnv("ADMIN_DEBUG_ENABLED", false)
	if err != nil {
		return nil, err
	}

	rateLimit, err := intEnv("RATE_LIMIT_PER_MINUTE", 10, 1)
	if err != nil {
		return nil, err
	}
	maxFailures, err := intEnv("MAX_CONSECUTIVE_FAILURES", 3, 1)
	if err != nil {
		return nil, err
	}
	confirmationTTL, err := intEnv("CONFIRMATION_TTL_SECONDS", 300, 1)
	if err != nil {
		return nil, err
	}
	sessionTTLHours, err := intEnv("SESSION_TTL_HOURS", 0, 0)
	if err != nil {
		return nil, err
	}
	turnTimeout, err := intEnv("TURN_TIMEOUT_SECONDS", 300, 1)
	if err != nil {
		return nil, err
	}
	toolTimeout, err := intEnv("TOOL_TIMEOUT_SECONDS", 30, 1)
	if err != nil {
		return nil, err
	}
	cleanupInterval, err := intEnv("CLEANUP_INTERVAL_SECONDS", 60, 1)
	if err != nil {
		return nil, err
	}
	eventRetention, err := intEnv("EVENT_RETENTION_DAYS", 14, 1)
	if err != nil {
		return nil, err
	}
	cacheSize, err := intEnv("EMBED_CACHE_SIZE", 1024, 1)
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment:       env,
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		LLMServiceAddr:    getEnv("LLM_SERVICE_ADDR", "localhost:50051"),
		WorkspaceDir:      getEnv("WORKSPACE_DIR", "./workspace"),
		AdminDebugEnabled: adminDebug,
		Policy: &PolicyConfig{
			Mode:            mode,
			ConfirmationTTL: time.Duration(confirmationTTL) * time.Second,
		},
		Embeddings: &EmbeddingsConfig{
			Provider:      provider,
			Model:         getEnv("EMBEDDINGS_MODEL", "text-embedding-3-small"),
			OpenAIAPIKey:  apiKey,
			OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
			CacheSize:     cacheSize,
		},
		Guards: &GuardsConfig{
			RateLimitPerMinute:     rateLimit,
			MaxConsecutiveFailures: maxFailures,
		},
		Timeouts: &TimeoutConfig{
			Turn: time.Duration(turnTimeout) * time.Second,
			Tool: time.Duration(toolTimeout) * time.Second,
		},
		Retention: &RetentionConfig{
			SessionTTL:         time.Duration(sessionTTLHours) * time.Hour,
			CleanupInterval:    time.Duration(cleanupInterval) * time.Second,
			EventRetentionDays: eventRetention,
		},
	}, nil
}

// Default returns a fully-defaulted configuration for tests.
func Default() *Config {
	return &Config{
		Environment:    EnvironmentTest,
		HTTPAddr:       ":8080",
		LLMServiceAddr: "localhost:50051",
		WorkspaceDir:   "./workspace",
		Policy: &PolicyConfig{
			Mode:            PolicyModeEnforce,
			ConfirmationTTL: 300 * time.Second,
		},
		Embeddings: &EmbeddingsConfig{
			Provider:  EmbeddingsProviderLocal,
			Model:     "text-embedding-3-small",
			CacheSize: 1024,
		},
		Guards: &GuardsConfig{
			RateLimitPerMinute:     10,
			MaxConsecutiveFailures: 3,
		},
		Timeouts: &TimeoutConfig{
			Turn: 300 * time.Second,
			Tool: 30 * time.Second,
		},
		Retention: &RetentionConfig{
			SessionTTL:         0,
			CleanupInterval:    60 * time.Second,
			EventRetentionDays: 14,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnv(key string, defaultValue, min int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewValidationError(key, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, raw))
	}
	if v < min {
		return 0, NewValidationError(key, fmt.Errorf("%w: %d is below minimum %d", ErrInvalidValue, v, min))
	}
	return v, nil
}

func boolEnv(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, NewValidationError(key, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, raw))
	}
	return v, nil
}
