package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// AuthMiddleware extracts the token from "Authorization: Bearer <token>",
// validates it and injects the claims into the request context.
//
// A missing or malformed header is 401; a token that fails verification
// is 403. The asymmetry is part of the API contract.
func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			sendErrorResponse(w, http.StatusUnauthorized, "Missing authorization header")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			sendErrorResponse(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := h.service.ParseJWT(bearerToken[1])
		if err != nil {
			sendErrorResponse(w, http.StatusForbidden, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext extracts claims from request context.
func GetClaimsFromContext(r *http.Request) (*Claims, error) {
	claims, ok := r.Context().Value(ClaimsContextKey).(*Claims)
	if !ok {
		return nil, errors.New("no claims found in context")
	}
	return claims, nil
}
