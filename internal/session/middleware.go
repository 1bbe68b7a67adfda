package session

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

// SessionIDFromContext returns the session resolved by Middleware, or "" when
// the request carried no token
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// ContextWithSessionID attaches a session id the way Middleware does
func ContextWithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// Middleware resolves the session token of a request. The token comes from
// the Authorization header, or from the token query parameter for websocket
// upgrades that cannot set headers.
func (t *TokenIssuer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("token")

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}
			raw = parts[1]
		}

		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		sessionID, err := t.Validate(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := ContextWithSessionID(r.Context(), sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
