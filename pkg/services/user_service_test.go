package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/models"
)

func TestUserService_CreateUser(t *testing.T) {
	client := newTestDB(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("new user gets the default scopes", func(t *testing.T) {
		user, err := service.CreateUser(ctx, models.CreateUserRequest{UserID: "u-default"})
		require.NoError(t, err)
		assert.Equal(t, "u-default", user.ID)
		assert.Equal(t, models.DefaultUserScopes, user.Scopes)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsSuperuser)
	})

	t.Run("explicit scopes override the defaults", func(t *testing.T) {
		user, err := service.CreateUser(ctx, models.CreateUserRequest{
			UserID: "u-custom",
			Scopes: []string{"core", "tool.system.execute"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"core", "tool.system.execute"}, user.Scopes)
	})

	t.Run("generates an id when omitted", func(t *testing.T) {
		user, err := service.CreateUser(ctx, models.CreateUserRequest{})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("api key is stored as a hash", func(t *testing.T) {
		user, err := service.CreateUser(ctx, models.CreateUserRequest{
			UserID: "u-keyed",
			APIKey: "sekrit-key",
		})
		require.NoError(t, err)
		require.NotNil(t, user.APIKeyHash)
		assert.Equal(t, HashAPIKey("sekrit-key"), *user.APIKeyHash)
		assert.NotContains(t, *user.APIKeyHash, "sekrit")
	})

	t.Run("duplicate id reads as already exists", func(t *testing.T) {
		_, err := service.CreateUser(ctx, models.CreateUserRequest{UserID: "u-default"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestUserService_GetActiveUser(t *testing.T) {
	client := newTestDB(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	_, err := service.CreateUser(ctx, models.CreateUserRequest{UserID: "u-live"})
	require.NoError(t, err)

	user, err := service.GetActiveUser(ctx, "u-live")
	require.NoError(t, err)
	assert.Equal(t, "u-live", user.ID)

	require.NoError(t, service.DeactivateUser(ctx, "u-live"))

	_, err = service.GetActiveUser(ctx, "u-live")
	assert.ErrorIs(t, err, ErrNotFound)

	// The row itself is still readable.
	user, err = service.GetUser(ctx, "u-live")
	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestUserService_GetUserByAPIKey(t *testing.T) {
	client := newTestDB(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	_, err := service.CreateUser(ctx, models.CreateUserRequest{
		UserID: "u-auth",
		APIKey: "valet-key-123",
	})
	require.NoError(t, err)

	t.Run("resolves the key owner", func(t *testing.T) {
		user, err := service.GetUserByAPIKey(ctx, "valet-key-123")
		require.NoError(t, err)
		assert.Equal(t, "u-auth", user.ID)
	})

	t.Run("wrong key is not found", func(t *testing.T) {
		_, err := service.GetUserByAPIKey(ctx, "valet-key-999")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty key never matches", func(t *testing.T) {
		_, err := service.GetUserByAPIKey(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deactivated owner cannot authenticate", func(t *testing.T) {
		require.NoError(t, service.DeactivateUser(ctx, "u-auth"))
		_, err := service.GetUserByAPIKey(ctx, "valet-key-123")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_SetAPIKey(t *testing.T) {
	client := newTestDB(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	_, err := service.CreateUser(ctx, models.CreateUserRequest{UserID: "u-rotate"})
	require.NoError(t, err)

	require.NoError(t, service.SetAPIKey(ctx, "u-rotate", "fresh-key"))

	user, err := service.GetUserByAPIKey(ctx, "fresh-key")
	require.NoError(t, err)
	assert.Equal(t, "u-rotate", user.ID)

	t.Run("rotation invalidates the old key", func(t *testing.T) {
		require.NoError(t, service.SetAPIKey(ctx, "u-rotate", "newer-key"))
		_, err := service.GetUserByAPIKey(ctx, "fresh-key")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		err := service.SetAPIKey(ctx, "u-rotate", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestUserService_UpdateScopes(t *testing.T) {
	client := newTestDB(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	_, err := service.CreateUser(ctx, models.CreateUserRequest{UserID: "u-scoped"})
	require.NoError(t, err)

	user, err := service.UpdateScopes(ctx, "u-scoped", []string{"core", "tool.files.write"})
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "tool.files.write"}, user.Scopes)

	_, err = service.UpdateScopes(ctx, "no-such-user", []string{"core"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEffectiveScopes(t *testing.T) {
	userScopes := []string{"core", "tool.files.read"}

	t.Run("no override uses the user scopes", func(t *testing.T) {
		assert.Equal(t, userScopes, models.EffectiveScopes(userScopes, nil))
	})

	t.Run("override replaces entirely", func(t *testing.T) {
		override := []string{"core"}
		assert.Equal(t, override, models.EffectiveScopes(userScopes, override))
	})

	t.Run("empty override revokes everything", func(t *testing.T) {
		assert.Empty(t, models.EffectiveScopes(userScopes, []string{}))
	})
}
