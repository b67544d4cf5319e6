package middlewares

import (
	"careplan-service/internal/app/config"
	"careplan-service/internal/pkg/constvars"
	"careplan-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), &config.InternalConfig{})

	t.Run("generates an id when the client sends none", func(t *testing.T) {
		var gotRequestID string
		var gotIsClient bool
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			gotIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/care-plans", nil))

		assert.NotEmpty(t, gotRequestID)
		assert.False(t, gotIsClient)
		assert.Equal(t, gotRequestID, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("keeps the client-provided id", func(t *testing.T) {
		var gotRequestID string
		var gotIsClient bool
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			gotIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest("POST", "/api/v1/care-plans", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", gotRequestID)
		assert.True(t, gotIsClient)
	})
}

func TestAuthentication(t *testing.T) {
	secret := "middleware-test-secret"
	m := NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		JWT: config.JWT{Secret: secret, ExpTimeInHour: 1},
	})

	t.Run("valid bearer token reaches the handler with context set", func(t *testing.T) {
		token, err := utils.GeneratePrincipalJWT("Practitioner/bob", "token-1", secret, 1)
		require.NoError(t, err)

		var gotPrincipal, gotToken string
		handler := m.Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPrincipal, _ = r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(string)
			gotToken, _ = r.Context().Value(constvars.CONTEXT_BEARER_TOKEN_KEY).(string)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest("POST", "/api/v1/care-plans", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Practitioner/bob", gotPrincipal)
		assert.Equal(t, token, gotToken)
	})

	t.Run("missing header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := m.Authentication(okHandler())
		handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/care-plans", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/care-plans", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		handler := m.Authentication(okHandler())
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAPIKeyAuth(t *testing.T) {
	apiKey := "service-key-12345"
	hash, err := utils.HashAPIKey(apiKey)
	require.NoError(t, err)

	m := NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{ServiceAPIKeyHash: hash},
	})

	t.Run("valid key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/care-plans", nil)
		req.Header.Set(constvars.HeaderXAPIKey, apiKey)

		rr := httptest.NewRecorder()
		m.APIKeyAuth(okHandler()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "success", rr.Body.String())
	})

	t.Run("missing key", func(t *testing.T) {
		rr := httptest.NewRecorder()
		m.APIKeyAuth(okHandler()).ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/care-plans", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/care-plans", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "SERVICE-KEY-12345")

		rr := httptest.NewRecorder()
		m.APIKeyAuth(okHandler()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("no hash configured disables the guard", func(t *testing.T) {
		open := NewMiddlewares(zap.NewNop(), &config.InternalConfig{})

		rr := httptest.NewRecorder()
		open.APIKeyAuth(okHandler()).ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/care-plans", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
