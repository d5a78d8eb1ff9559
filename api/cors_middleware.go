package api

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// handling CORS
func (service *Service) corsMiddleware() gin.HandlerFunc {
	allowAll := slices.Contains(service.config.AllowedOrigins, "*")

	return func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		switch {
		case allowAll:
			ctx.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(service.config.AllowedOrigins, origin):
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Vary", "Origin")
		}

		// the api is read-only
		ctx.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type")

		// If someone sends preflight (OPTIONS), respond 204 and return
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
