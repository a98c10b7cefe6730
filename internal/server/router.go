// Package server assembles the gin router: middleware, CORS policy and the
// route table.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ersi-ai/ersi-backend/internal/handlers"
	"github.com/ersi-ai/ersi-backend/internal/middleware"
)

// RouterConfig carries the handlers and middleware the router wires up.
type RouterConfig struct {
	Health  *handlers.HealthHandler
	Vendors *handlers.VendorHandler
	Plans   *handlers.PlanHandler
	Assist  *handlers.AssistHandler
	Auth    *handlers.AuthHandler

	RequireAuth gin.HandlerFunc
}

// NewRouter builds the application router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	// Open CORS: the API serves browser frontends on arbitrary origins.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Requested-With"},
	}))

	router.GET("/", cfg.Health.Root)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", cfg.Health.Health)
		api.GET("/schema", handlers.Schema)

		api.GET("/vendors", cfg.Vendors.List)
		api.GET("/recommendations", cfg.Vendors.Recommend)
		api.POST("/seed/vendors", cfg.Vendors.Seed)

		api.POST("/preferences", cfg.Plans.CreatePreference)
		api.POST("/plan", cfg.Plans.GeneratePlan)
		api.POST("/inquiries", cfg.Plans.CreateInquiry)

		api.POST("/assist", cfg.Assist.Assist)

		api.POST("/register", cfg.Auth.Register)
		api.POST("/login", cfg.Auth.Login)
	}

	protected := router.Group("/api")
	protected.Use(cfg.RequireAuth)
	protected.GET("/me", cfg.Auth.Me)

	return router
}
