package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/brand-voice/internal/telemetry"
)

// RegisterRoutes wires all endpoints onto the router. The extraction
// endpoints are JWT protected when a secret is configured.
func RegisterRoutes(router *gin.Engine, handler *Handler, provider *telemetry.Provider, jwtSecret string) {
	router.GET("/health", handler.Health)
	router.GET("/ready", handler.Ready)
	router.GET("/metrics", gin.WrapH(provider.Handler()))

	v1 := router.Group("/api/v1")
	if jwtSecret != "" {
		v1.Use(JWTAuth(jwtSecret))
	}
	v1.POST("/extract", handler.Extract)
	v1.GET("/catalogs", handler.Catalogs)
}
