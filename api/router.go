package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// api routes
	WhoColorByTitleURL  = "/whocolor/:lang/:title"
	WhoColorByPageIDURL = "/whocolor/:lang/page_id/:page_id"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	// titles like "AC/DC" arrive with an encoded slash and still match :title
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.GET(WhoColorByTitleURL, service.getWhoColorByTitle)
	router.GET(WhoColorByPageIDURL, service.getWhoColorByPageID)

	server.Handler = router
	service.router = router
}
