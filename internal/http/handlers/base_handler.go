// README: Base handler utilities (JSON helpers, collaborator contracts).
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"tourweaver/internal/enrich"
	"tourweaver/internal/itinerary"
	"tourweaver/internal/maps"
	"tourweaver/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Planner runs one itinerary round trip.
type Planner interface {
	Plan(ctx context.Context, req itinerary.TripRequest) service.ActionResult
}

// Enricher serves the per-card photo and hotel lookups.
type Enricher interface {
	Photo(ctx context.Context, query string) enrich.PhotoResult
	Hotels(ctx context.Context, q maps.HotelQuery) []itinerary.Hotel
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}
