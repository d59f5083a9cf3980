package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DavidL050/Forex/common"
	"github.com/DavidL050/Forex/model"
	"github.com/DavidL050/Forex/service"
)

type contextKey string

const (
	UserKey  contextKey = "user"
	TokenKey contextKey = "token"
)

// TokenCookieName is the cookie that carries the session token.
const TokenCookieName = "token"

// AuthMiddleware resolves the request's token to a user and stores both in
// the request context. Every failure is a 401.
func AuthMiddleware(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				authError(err).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			ctx = context.WithValue(ctx, TokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken prefers the token cookie over the Authorization header. A
// "Bearer " prefix is stripped from the header value when present.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func authError(err error) *common.AppError {
	switch {
	case errors.Is(err, service.ErrTokenMissing):
		return common.NewAppError(http.StatusUnauthorized, "Token is missing", nil)
	case errors.Is(err, service.ErrTokenExpired):
		return common.NewAppError(http.StatusUnauthorized, "Token has expired", nil)
	case errors.Is(err, service.ErrTokenMalformed):
		return common.NewAppError(http.StatusUnauthorized, "Invalid token", nil)
	case errors.Is(err, service.ErrUserNotFound):
		return common.NewAppError(http.StatusUnauthorized, "User not found", nil)
	default:
		return common.NewAppError(http.StatusUnauthorized, "Token validation error", err)
	}
}

// UserFromContext returns the user stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey).(*model.User)
	return user, ok && user != nil
}

// TokenFromContext returns the token stored by AuthMiddleware.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(TokenKey).(string)
	return token
}
