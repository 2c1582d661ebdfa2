// README: HTTP route registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourweaver/internal/http/handlers"
)

func registerRoutes(r *gin.Engine, s *Server) {
	generation := []gin.HandlerFunc{}
	if s.limiter != nil {
		generation = append(generation, s.limiter.Limit())
	}

	pages := handlers.NewPageHandler(s.planner)
	r.GET("/", pages.Form)
	r.POST("/plan", append(generation, pages.Plan)...)

	api := r.Group("/api")

	itineraryHandler := handlers.NewItineraryHandler(s.planner)
	api.POST("/itinerary", append(generation, itineraryHandler.Generate)...)

	enrichHandler := handlers.NewEnrichHandler(s.enricher)
	api.GET("/photos", enrichHandler.Photo)
	api.GET("/hotels", enrichHandler.Hotels)

	exportHandler := handlers.NewExportHandler()
	api.POST("/packing-list/export", exportHandler.PackingList)
	api.GET("/booking/qr", exportHandler.BookingQR)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}
