package models

// DefaultUserScopes is the least-privilege scope set granted to new users.
var DefaultUserScopes = []string{"core", "tool.web.search", "tool.system.rag", "tool.files.read"}

// CreateUserRequest contains fields for provisioning a user. The API key
// is hashed before storage and never persisted in clear.
type CreateUserRequest struct {
	UserID      string         `json:"user_id,omitempty"`
	Email       string         `json:"email,omitempty"`
	DisplayName string         `json:"display_name,omitempty"`
	Scopes      []string       `json:"scopes,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
	IsSuperuser bool           `json:"is_superuser,omitempty"`
	APIKey      string         `json:"-"`
}

// EffectiveScopes resolves the scopes in force for a session: the
// session override when present, else the user's scopes.
func EffectiveScopes(userScopes, override []string) []string {
	if override != nil {
		return override
	}
	return userScopes
}

// HasScope reports whether scopes contains scope.
func HasScope(scopes []string, scope string) bool {
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}
