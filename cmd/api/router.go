package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recipe-site-backend/internal/shared/middleware"
	"recipe-site-backend/pkg/container"
)

const healthTimeout = 2 * time.Second

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.ClientIP(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupRatingRoutes(api, c)
		setupCommentRoutes(api, c)
		setupContentRoutes(api, c)
	}

	return router
}

// ========================================
// RATING ROUTES
// ========================================
func setupRatingRoutes(api *gin.RouterGroup, c *container.Container) {
	ratings := api.Group("/ratings")
	{
		ratings.GET("", c.RatingHandler.MissingRecipeID)
		ratings.GET("/:recipeId", c.RatingHandler.GetRatingStats)
		ratings.POST("", c.RatingHandler.SubmitRating)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(api *gin.RouterGroup, c *container.Container) {
	comments := api.Group("/comments")
	{
		comments.GET("", c.CommentHandler.MissingRecipeID)
		comments.GET("/:recipeId", c.CommentHandler.ListComments)
		comments.POST("", c.CommentHandler.SubmitComment)
	}
}

// ========================================
// CONTENT ROUTES
// ========================================
func setupContentRoutes(api *gin.RouterGroup, c *container.Container) {
	h := c.ContentHandler

	recipes := api.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:slug", h.GetRecipe)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:slug", h.GetCategory)
		categories.GET("/:slug/recipes", h.ListCategoryRecipes)
	}

	authors := api.Group("/authors")
	{
		authors.GET("", h.ListAuthors)
		authors.GET("/:slug", h.GetAuthor)
		authors.GET("/:slug/recipes", h.ListAuthorRecipes)
	}

	api.GET("/home", h.GetHomePage)
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		services := appCtx.Health(ctx)

		status := "ok"
		for _, s := range services {
			if s == "unhealthy" {
				status = "degraded"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
