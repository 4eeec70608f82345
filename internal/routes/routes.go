package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/repositories"
)

// RegisterRoutes mounts the public API and the admin API. The admin guard is
// applied once on the admin group, so every mutating route gets the same
// authentication and role check.
func RegisterRoutes(
	r *gin.Engine,
	appHandlers *handlers.AppHandlers,
	users repositories.UserRepository,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		appHandlers.AuthHandler.RegisterPublicRoutes(api)
		appHandlers.ContentHandler.RegisterPublicRoutes(api)
		appHandlers.SkillHandler.RegisterPublicRoutes(api)
		appHandlers.ExperienceHandler.RegisterPublicRoutes(api)
		appHandlers.ProjectHandler.RegisterPublicRoutes(api)
		appHandlers.ContactHandler.RegisterPublicRoutes(api)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		appHandlers.AuthHandler.RegisterUserRoutes(authed)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminOnly(users)...)
	{
		appHandlers.ContentHandler.RegisterAdminRoutes(admin)
		appHandlers.SkillHandler.RegisterAdminRoutes(admin)
		appHandlers.ExperienceHandler.RegisterAdminRoutes(admin)
		appHandlers.ProjectHandler.RegisterAdminRoutes(admin)
		appHandlers.ContactHandler.RegisterAdminRoutes(admin)
	}
}
