package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/utils"
)

// Context keys set by the auth middlewares.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// RequireAuth rejects requests without a valid Bearer token. A missing
// header, a header without the Bearer scheme, and an empty token segment
// are all treated as "no credential", not as an invalid token.
func RequireAuth(ts *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.RespondError(c, utils.NewAuthError("No token provided"))
			c.Abort()
			return
		}

		claims, err := ts.Verify(tokenString)
		if err != nil {
			appErr := &utils.AppError{
				Status:  http.StatusUnauthorized,
				Code:    "INVALID_TOKEN",
				Message: "Invalid token",
			}
			if errors.Is(err, utils.ErrTokenExpired) {
				appErr.Code = "TOKEN_EXPIRED"
				appErr.Message = "Token expired"
			}
			utils.RespondError(c, appErr)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuth annotates the request with an identity when a valid token is
// present and proceeds unannotated otherwise. An invalid token is treated
// the same as no token.
func OptionalAuth(ts *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := ts.Verify(tokenString)
		if err != nil {
			utils.InfoLogger.Printf("Ignoring invalid token on %s: %v", c.Request.URL.Path, err)
			c.Next()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole restricts access to identities whose role is in the allow-list.
// It never verifies tokens itself and must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextRoleKey)
		if !exists {
			utils.RespondError(c, utils.NewAuthError("User not authenticated"))
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || !allowed[role] {
			userID, _ := c.Get(ContextUserIDKey)
			utils.InfoLogger.Printf("User %v with role %v denied access to %s", userID, roleValue, c.Request.URL.Path)
			utils.RespondError(c, &utils.AppError{
				Status:  http.StatusForbidden,
				Code:    "FORBIDDEN",
				Message: "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The second return is false when no usable token is present.
func bearerToken(c *gin.Context) (string, bool) {
	const prefix = "Bearer "

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
