package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webintake-backend-go/internal/auth"
	"webintake-backend-go/internal/core"
	"webintake-backend-go/internal/middleware"
	"webintake-backend-go/pkg/cache"
)

// SetupRoutes configures all application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) is applied to the
// router before this function is called, in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	tokens *auth.Manager,
	denylist cache.Cache,
	tokenTTL time.Duration,
	userService core.UserService,
	projectService core.ProjectService,
) {
	authMW := middleware.NewAuthMiddleware(tokens, denylist)

	authHandler := NewAuthHandler(userService, tokens, denylist, tokenTTL)
	projectHandler := NewProjectHandler(projectService)

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMW.RequireAuth(), authHandler.Logout)
		}

		apiGroup.GET("/users/me", authMW.RequireAuth(), authHandler.Me)

		projectsGroup := apiGroup.Group("/projects")
		{
			projectsGroup.POST("", authMW.RequireAuth(), projectHandler.Create)
			projectsGroup.GET("", authMW.RequireAdmin(), projectHandler.ListAll)
			projectsGroup.GET("/user", authMW.RequireAuth(), projectHandler.ListOwn)
			projectsGroup.GET("/:projectId", authMW.RequireAuth(), projectHandler.Get)
			projectsGroup.PUT("/:projectId", authMW.RequireAdmin(), projectHandler.Update)
			projectsGroup.POST("/:projectId/bill", authMW.RequireAdmin(), projectHandler.GenerateBill)
			projectsGroup.POST("/:projectId/payment", authMW.RequireAdmin(), projectHandler.MarkPayment)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "Intake portal API is running"})
	})

	logger.Info("API routes configured successfully under /api and /health.")
}
