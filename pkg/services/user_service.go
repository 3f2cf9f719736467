package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/user"
	"github.com/valet-assistant/valet/pkg/models"
)

// UserService manages user provisioning and API key lookups
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// HashAPIKey returns the hex SHA-256 digest stored for an API key.
// The key itself is never persisted.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// CreateUser provisions a new user. Scopes default to the
// least-privilege set when none are given.
func (s *UserService) CreateUser(_ context.Context, req models.CreateUserRequest) (*ent.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userID := req.UserID
	if userID == "" {
		userID = uuid.New().String()
	}
	scopes := req.Scopes
	if scopes == nil {
		scopes = models.DefaultUserScopes
	}

	builder := s.client.User.Create().
		SetID(userID).
		SetScopes(scopes).
		SetIsSuperuser(req.IsSuperuser)

	if req.Email != "" {
		builder.SetEmail(req.Email)
	}
	if req.DisplayName != "" {
		builder.SetDisplayName(req.DisplayName)
	}
	if req.Settings != nil {
		builder.SetSettings(req.Settings)
	}
	if req.APIKey != "" {
		builder.SetAPIKeyHash(HashAPIKey(req.APIKey))
	}

	u, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetActiveUser retrieves a user by ID, rejecting deactivated accounts
func (s *UserService) GetActiveUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(user.IDEQ(userID), user.IsActiveEQ(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByAPIKey resolves an API key to its active user. The lookup is
// by SHA-256 hash; a miss and a deactivated account are both ErrNotFound.
func (s *UserService) GetUserByAPIKey(ctx context.Context, apiKey string) (*ent.User, error) {
	if apiKey == "" {
		return nil, ErrNotFound
	}

	u, err := s.client.User.Query().
		Where(
			user.APIKeyHashEQ(HashAPIKey(apiKey)),
			user.IsActiveEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user by api key: %w", err)
	}
	return u, nil
}

// SetAPIKey replaces a user's API key hash
func (s *UserService) SetAPIKey(_ context.Context, userID, apiKey string) error {
	if apiKey == "" {
		return NewValidationError("api_key", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.User.UpdateOneID(userID).
		SetAPIKeyHash(HashAPIKey(apiKey)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to set api key: %w", err)
	}
	return nil
}

// UpdateScopes replaces a user's scope set
func (s *UserService) UpdateScopes(_ context.Context, userID string, scopes []string) (*ent.User, error) {
	if scopes == nil {
		return nil, NewValidationError("scopes", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	u, err := s.client.User.UpdateOneID(userID).
		SetScopes(scopes).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update scopes: %w", err)
	}
	return u, nil
}

// DeactivateUser marks a user inactive; their API key stops resolving
func (s *UserService) DeactivateUser(_ context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.User.UpdateOneID(userID).
		SetIsActive(false).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}
