package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/domain/services"
	"github.com/praveen-sripati/society-backend/internal/error/code"
	"github.com/praveen-sripati/society-backend/internal/error/response"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "token"

// Context keys populated by Authentication
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
	ContextClaimsKey = "claims"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware initializes the authentication middleware
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// Authentication reads and verifies the session cookie on every protected
// request. An absent cookie yields 401; a cookie that fails verification
// (bad signature or expired) yields 403.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			response.Fail(c, code.ErrTokenMissing)
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			response.Fail(c, code.ErrTokenInvalid)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// CurrentUser returns the authenticated caller's id and role from the
// context. The bool is false when Authentication did not run.
func CurrentUser(c *gin.Context) (uint, models.Role, bool) {
	id, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, "", false
	}
	role, ok := c.Get(ContextRoleKey)
	if !ok {
		return 0, "", false
	}
	userID, ok := id.(uint)
	if !ok {
		return 0, "", false
	}
	userRole, ok := role.(models.Role)
	if !ok {
		return 0, "", false
	}
	return userID, userRole, true
}
