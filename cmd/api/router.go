package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/awomotoyosi/blogs-api/internal/shared/middleware"
	"github.com/awomotoyosi/blogs-api/internal/shared/response"
	"github.com/awomotoyosi/blogs-api/pkg/container"
)

// SetupRouter mounts middleware and all API routes.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler(c))

	auth := middleware.AuthMiddleware(c.JWTManager)

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/signup", c.UserHandler.Register)
			users.POST("/login", c.UserHandler.Login)
		}

		blogs := v1.Group("/blogs")
		{
			// Static route first so it never collides with :id.
			blogs.GET("/my-blogs", auth, c.BlogHandler.ListOwned)

			blogs.GET("", c.BlogHandler.ListPublished)
			blogs.POST("", auth, c.BlogHandler.Create)

			blogs.GET("/:id", c.BlogHandler.GetByID)
			blogs.PUT("/:id", auth, c.BlogHandler.Update)
			blogs.DELETE("/:id", auth, c.BlogHandler.Delete)
		}
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.Error(ctx, http.StatusNotFound, "Route not found")
	})

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			response.Error(ctx, http.StatusServiceUnavailable, "Database unreachable")
			return
		}

		response.Success(ctx, http.StatusOK, "OK", gin.H{
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}
