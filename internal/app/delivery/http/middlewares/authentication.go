package middlewares

import (
	"careplan-service/internal/pkg/constvars"
	"careplan-service/internal/pkg/exceptions"
	"careplan-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
)

// Authentication pulls the bearer token off the request, verifies it, and
// stores both the raw token and the proven principal in the context. The
// authorization gate re-checks the token against the asserted principal
// and the revocation set inside the command itself.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		principal, _, err := utils.ParsePrincipalJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_BEARER_TOKEN_KEY, tokenString)
		ctx = context.WithValue(ctx, constvars.CONTEXT_PRINCIPAL_KEY, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// APIKeyAuth guards service-to-service traffic with a shared API key,
// checked against its bcrypt hash so the key itself never sits in config.
// The guard is a no-op when no hash is configured.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hash := m.InternalConfig.App.ServiceAPIKeyHash
		if hash == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey == "" || !utils.CheckAPIKeyHash(apiKey, hash) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyInvalid(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
