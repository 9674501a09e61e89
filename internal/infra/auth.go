package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/echo-service/internal/config"
	api "github.com/s21platform/echo-service/internal/generated"
)

const bearerPrefix = "Bearer "

// AuthInterceptorHTTP guards operations that declare bearer security. It is
// installed as a generated-server middleware so the security scopes are
// already in the request context.
func AuthInterceptorHTTP(tokens TokenValidator, revocations RevocationStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, secured := r.Context().Value(api.BearerAuthScopes).([]string); !secured {
				next.ServeHTTP(w, r)
				return
			}

			logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
			logger.AddFuncName("AuthInterceptorHTTP")

			token := BearerToken(r)
			if token == "" {
				writeError(w, "not authenticated", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateAccessToken(token)
			if err != nil {
				logger.Warn(fmt.Sprintf("failed to validate access token: %v", err))
				writeError(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			revoked, err := revocations.IsTokenRevoked(r.Context(), claims.ID)
			if err != nil {
				logger.Warn(fmt.Sprintf("failed to check token revocation, letting it through: %v", err))
			} else if revoked {
				writeError(w, "token has been revoked", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Subject)
			ctx = context.WithValue(ctx, config.KeyEmail, claims.Email)
			ctx = context.WithValue(ctx, config.KeyTokenID, claims.ID)
			if claims.ExpiresAt != nil {
				ctx = context.WithValue(ctx, config.KeyTokenExpiry, claims.ExpiresAt.Time)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken returns the token from the Authorization header, or "".
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	if statusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Message: message})
}
