package config

// Environment identifies the deployment environment.
type Environment string

const (
	// EnvironmentProduction disables debug affordances (X-User-ID auth bypass).
	EnvironmentProduction Environment = "production"
	// EnvironmentDevelopment is the default for local runs.
	EnvironmentDevelopment Environment = "development"
	// EnvironmentTest is used by the test harness.
	EnvironmentTest Environment = "test"
)

// IsValid checks if the environment is valid
func (e Environment) IsValid() bool {
	return e == EnvironmentProduction || e == EnvironmentDevelopment || e == EnvironmentTest
}

// PolicyMode controls how policy decisions are applied.
type PolicyMode string

const (
	// PolicyModeEnforce blocks, confirms, and denies per the policy decision.
	PolicyModeEnforce PolicyMode = "enforce"
	// PolicyModeAudit logs and persists decisions but executes as if ALLOW.
	PolicyModeAudit PolicyMode = "audit"
)

// IsValid checks if the policy mode is valid
func (m PolicyMode) IsValid() bool {
	return m == PolicyModeEnforce || m == PolicyModeAudit
}

// EmbeddingsProvider selects the text embedding backend.
type EmbeddingsProvider string

const (
	// EmbeddingsProviderOpenAI uses the OpenAI embeddings API.
	EmbeddingsProviderOpenAI EmbeddingsProvider = "openai"
	// EmbeddingsProviderLocal uses the deterministic in-process provider.
	EmbeddingsProviderLocal EmbeddingsProvider = "local"
)

// IsValid checks if the embeddings provider is valid
func (p EmbeddingsProvider) IsValid() bool {
	return p == EmbeddingsProviderOpenAI || p == EmbeddingsProviderLocal
}
