package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"webintake-backend-go/internal/auth"
	"webintake-backend-go/internal/core"
	"webintake-backend-go/internal/middleware"
	"webintake-backend-go/internal/models"
	"webintake-backend-go/pkg/cache"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	userService core.UserService
	tokens      *auth.Manager
	denylist    cache.Cache
	tokenTTL    time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us core.UserService, tokens *auth.Manager, denylist cache.Cache, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{userService: us, tokens: tokens, denylist: denylist, tokenTTL: tokenTTL}
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.userService.SignUp(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SignUpResponse{
		Success: true,
		Message: "Account created successfully! You can now login.",
		User:    user.Public(),
	})
}

// Login handles POST /api/auth/login for both regular users and the admin.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	identity, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	token, err := h.tokens.Issue(identity)
	if err != nil {
		log.Printf("Error issuing session token for %q: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not create session"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Identity: identity})
}

// Logout handles POST /api/auth/logout. The bearer token is denylisted for
// the rest of its lifetime so it cannot be replayed.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.TokenFromContext(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No active session"})
		return
	}
	// Denylist entries expire with the token itself; the full configured TTL
	// is only a fallback when the expiry cannot be read.
	retention, err := h.tokens.Remaining(token)
	if err != nil || retention <= 0 {
		retention = h.tokenTTL
	}
	if err := h.denylist.Set(token, "revoked", retention); err != nil {
		log.Printf("Error denylisting session token: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not end session"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Logged out"})
}

// Me handles GET /api/users/me.
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if identity.IsAdmin() {
		// The admin principal has no stored account.
		c.JSON(http.StatusOK, identity)
		return
	}
	user, err := h.userService.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}
