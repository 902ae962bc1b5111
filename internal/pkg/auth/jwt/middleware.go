package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"dmchat/internal/pkg/errs"
	"dmchat/internal/pkg/logx"
	"dmchat/internal/pkg/resp"
)

// Context key type for storing the authenticated user id, preventing collisions with other packages.
type contextKey string

const (
	// ContextUserIDKey is the key under which the authenticated user id is stored in the request Context.
	ContextUserIDKey contextKey = "auth_user_id"
)

// RequireAuth returns a middleware that rejects any request without a valid
// "Authorization: Bearer <token>" header. On success it binds the authenticated
// user id into the request Context for downstream handlers. There are no roles:
// every authenticated user has identical capabilities.
func RequireAuth(secretKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logx.Warn("auth: no token provided", "path", r.URL.Path)
				resp.RespondError(w, r, errs.NewError(errs.ErrMissingToken))
				return
			}

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				logx.Warn("auth: malformed authorization header", "path", r.URL.Path)
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidToken))
				return
			}

			userID, err := ParseToken(parts[1], secretKey)
			if err != nil {
				// Expired and invalid tokens get the same response but distinct logs.
				if errors.Is(err, ErrTokenExpired) {
					logx.Warn("auth: token expired", "path", r.URL.Path)
				} else {
					logx.Warn("auth: token invalid", "path", r.URL.Path, "error", err)
				}
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidToken))
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserIDKey, userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user id from the request Context.
// Behind RequireAuth it is always non-empty; an empty string means unauthenticated.
func UserIDFromContext(r *http.Request) string {
	userID, ok := r.Context().Value(ContextUserIDKey).(string)
	if !ok {
		return ""
	}

	return userID
}
