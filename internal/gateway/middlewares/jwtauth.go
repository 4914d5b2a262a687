package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tradelearn/lessonstream/internal/gateway/auth"
	"github.com/tradelearn/lessonstream/internal/gateway/handlers/api"
)

const (
	bearerPrefix   = "Bearer "
	authHeader     = "Authorization"
	userContextKey = "user" // key to store the user identifier in the gin context
	roleContextKey = "role" // key to store the user role in the gin context
)

// JWTAuth creates a middleware that validates access tokens and stores the
// subject and role in the request context. When auth is disabled it is a no-op.
func JWTAuth(authService *auth.AuthService) gin.HandlerFunc {
	if !authService.IsEnabled() {
		slog.Info("auth middleware disabled")
		return func(ctx *gin.Context) {
			ctx.Next()
		}
	}
	slog.Info("auth middleware enabled")
	return func(ctx *gin.Context) {
		authHeaderValue := ctx.GetHeader(authHeader)
		if authHeaderValue == "" {
			api.AbortWithError(ctx, http.StatusUnauthorized, api.CodeAuthInvalidCredentials, errors.New("authorization header is missing"))
			return
		}

		if !strings.HasPrefix(authHeaderValue, bearerPrefix) {
			api.AbortWithError(ctx, http.StatusUnauthorized, api.CodeAuthInvalidCredentials, errors.New("authorization header format must be Bearer {token}"))
			return
		}

		tokenString := strings.TrimPrefix(authHeaderValue, bearerPrefix)
		if tokenString == "" {
			api.AbortWithError(ctx, http.StatusUnauthorized, api.CodeAuthInvalidCredentials, errors.New("token is missing"))
			return
		}

		claims, err := authService.ValidateAccessToken(ctx, tokenString)
		if err != nil {
			api.AbortWithError(ctx, http.StatusUnauthorized, api.CodeAuthInvalidCredentials, err)
			return
		}

		ctx.Set(userContextKey, claims.Subject)
		ctx.Set(roleContextKey, claims.Role)

		ctx.Next()
	}
}

// RequireRole gates a route group to a single role. It must run after JWTAuth.
// When auth is disabled there are no claims to check, so the gate is open.
func RequireRole(authService *auth.AuthService, role string) gin.HandlerFunc {
	if !authService.IsEnabled() {
		return func(ctx *gin.Context) {
			ctx.Next()
		}
	}
	return func(ctx *gin.Context) {
		if ctx.GetString(roleContextKey) != role {
			api.AbortWithError(ctx, http.StatusForbidden, api.CodeAccessDenied, errors.New("insufficient role"))
			return
		}
		ctx.Next()
	}
}
