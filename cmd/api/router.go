package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blueprint-registry/internal/shared/middleware"
	"blueprint-registry/internal/shared/response"
	"blueprint-registry/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	v1 := router.Group("/api/v1")
	{
		// Health: reports whether the chain store can serve requests
		v1.GET("/health", func(ctx *gin.Context) {
			available, _ := c.Store.IsAvailable(ctx.Request.Context())
			if !available {
				response.ErrorWithDetails(ctx, http.StatusServiceUnavailable,
					"STORE_UNAVAILABLE", "chain store is unavailable", gin.H{
						"name":    c.Config.App.Name,
						"version": c.Config.App.Version,
					})
				return
			}
			response.Success(ctx, http.StatusOK, gin.H{
				"name":            c.Config.App.Name,
				"version":         c.Config.App.Version,
				"store_available": available,
			})
		})

		// Wallet sessions
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/nonce", c.AuthHandler.Nonce)
			authGroup.POST("/login", c.AuthHandler.Login)
		}

		// Reveal session parameters (public; the signature itself gates
		// the reveal, not the session token)
		v1.GET("/reveal/session", c.RevealHandler.Session)

		// Registry reads are public; the list view decodes prices
		// unconditionally
		blueprints := v1.Group("/blueprints")
		{
			blueprints.GET("", c.BlueprintHandler.List)
			blueprints.GET("/stats", c.BlueprintHandler.Stats)
			blueprints.GET("/:id", c.BlueprintHandler.GetByID)
			blueprints.POST("/:id/reveal", c.RevealHandler.Reveal)

			// Mutations require an authenticated wallet session
			authed := blueprints.Group("")
			authed.Use(middleware.WalletAuth(c.JWTManager))
			{
				authed.POST("", c.BlueprintHandler.Create)
				authed.POST("/:id/publish", c.BlueprintHandler.Publish)
				authed.POST("/:id/sell", c.BlueprintHandler.MarkSold)
			}
		}
	}

	return router
}
