package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"webintake-backend-go/internal/auth"
	"webintake-backend-go/internal/models"
	"webintake-backend-go/pkg/cache"
)

// Context keys set by the auth middleware.
const (
	identityKey = "identity"
	tokenKey    = "sessionToken"
)

// ErrorResponse mirrors the one in internal/api to avoid an import cycle.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware provides Gin middleware for session-token authentication.
type AuthMiddleware struct {
	tokens   *auth.Manager
	denylist cache.Cache
}

// NewAuthMiddleware creates a new AuthMiddleware instance. The denylist holds
// tokens invalidated by logout; it must not be nil.
func NewAuthMiddleware(tokens *auth.Manager, denylist cache.Cache) *AuthMiddleware {
	if tokens == nil || denylist == nil {
		panic("AuthMiddleware requires a token manager and a denylist cache")
	}
	return &AuthMiddleware{tokens: tokens, denylist: denylist}
}

// authenticate verifies the bearer token, rejects revoked tokens and sets the
// caller's identity into the Gin context. It aborts the request and returns
// false on failure; it never advances the handler chain itself.
func (m *AuthMiddleware) authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
		return false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
		return false
	}
	token := parts[1]

	if revoked, _ := m.denylist.Get(token); revoked != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Session has been logged out"})
		return false
	}

	identity, err := m.tokens.Verify(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
		return false
	}

	c.Set(identityKey, identity)
	c.Set(tokenKey, token)
	return true
}

// RequireAuth admits any caller with a valid, unrevoked session token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequireAdmin admits only authenticated callers with the admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			return
		}
		if !IdentityFromContext(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Admin privileges required"})
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the identity set by RequireAuth, or an anonymous
// identity when the middleware did not run.
func IdentityFromContext(c *gin.Context) models.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(models.Identity); ok {
			return id
		}
	}
	return models.Identity{}
}

// TokenFromContext returns the raw bearer token set by RequireAuth.
func TokenFromContext(c *gin.Context) string {
	return c.GetString(tokenKey)
}
