package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/services"
)

func TestAuthAPIKey(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUserWithKey(t, "user-key", apiScopes, "valet-test-key")

	t.Run("valid key authenticates", func(t *testing.T) {
		rec := h.request(t, http.MethodGet, "/api/v1/sessions", nil, map[string]string{
			"X-API-Key": "valet-test-key",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		rec := h.request(t, http.MethodGet, "/api/v1/sessions", nil, map[string]string{
			"X-API-Key": "not-a-key",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", errorCode(t, rec))
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		_, err := h.client.Client.User.Create().
			SetID("user-gone").
			SetScopes(apiScopes).
			SetAPIKeyHash(services.HashAPIKey("gone-key")).
			SetIsActive(false).
			Save(context.Background())
		require.NoError(t, err)

		rec := h.request(t, http.MethodGet, "/api/v1/sessions", nil, map[string]string{
			"X-API-Key": "gone-key",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing credentials are rejected", func(t *testing.T) {
		rec := h.request(t, http.MethodGet, "/api/v1/sessions", nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", errorCode(t, rec))
	})
}

func TestAuthDevBypass(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-dev", apiScopes)

	t.Run("identity header works outside production", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/sessions", nil, "user-dev")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown identity is rejected", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/sessions", nil, "user-nobody")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("production refuses the identity header", func(t *testing.T) {
		defer gin.SetMode(gin.TestMode)
		prodCfg := config.Default()
		prodCfg.Environment = config.EnvironmentProduction
		prod := NewServer(prodCfg, h.server.deps)

		rec := requestOn(t, prod, http.MethodGet, "/api/v1/sessions", nil, map[string]string{
			"X-User-ID": "user-dev",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("api key still works in production", func(t *testing.T) {
		defer gin.SetMode(gin.TestMode)
		h.seedUserWithKey(t, "user-prod", apiScopes, "prod-key")
		prodCfg := config.Default()
		prodCfg.Environment = config.EnvironmentProduction
		prod := NewServer(prodCfg, h.server.deps)

		rec := requestOn(t, prod, http.MethodGet, "/api/v1/sessions", nil, map[string]string{
			"X-API-Key": "prod-key",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminGate(t *testing.T) {
	h := newAPIHarness(t)
	h.seedSuperuser(t, "admin-1")
	h.seedUser(t, "user-plain", apiScopes)

	t.Run("superuser reaches admin routes", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/admin/stats", nil, "admin-1")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-superuser is forbidden", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/admin/stats", nil, "user-plain")
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "forbidden", errorCode(t, rec))
	})

	t.Run("disabled debug endpoints look absent", func(t *testing.T) {
		offCfg := config.Default()
		off := NewServer(offCfg, h.server.deps)

		rec := requestOn(t, off, http.MethodGet, "/api/v1/admin/stats", nil, map[string]string{
			"X-User-ID": "admin-1",
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errorCode(t, rec))
	})
}
