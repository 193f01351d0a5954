package main

import (
	"github.com/gin-gonic/gin"
	"leadflow.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	leadHandler    *handlers.LeadHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
		}

		// Lead routes (protected)
		leads := api.Group("/leads")
		leads.Use(d.authMiddleware)
		{
			leads.GET("", d.leadHandler.ListLeads)
			// analytics must be registered before the id wildcard
			leads.GET("/analytics", d.leadHandler.GetAnalytics)
			leads.GET("/:id", d.leadHandler.GetLead)
		}
	}
}
