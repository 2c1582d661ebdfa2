// README: JSON itinerary endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourweaver/internal/itinerary"
)

type ItineraryHandler struct {
	planner Planner
}

func NewItineraryHandler(planner Planner) *ItineraryHandler {
	return &ItineraryHandler{planner: planner}
}

// Generate handles POST /api/itinerary.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req itinerary.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := h.planner.Plan(c.Request.Context(), req)
	if !result.Success {
		_ = c.Error(errorString(result.Error))
		writeJSON(c, http.StatusBadGateway, result)
		return
	}
	writeJSON(c, http.StatusOK, result)
}

// errorString lets a failure message ride along in gin's error list for the request log.
type errorString string

func (e errorString) Error() string { return string(e) }
