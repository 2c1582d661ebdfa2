// README: Per-card enrichment endpoints (photo and hotel lookups).
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tourweaver/internal/itinerary"
	"tourweaver/internal/maps"
)

type EnrichHandler struct {
	enricher Enricher
}

func NewEnrichHandler(enricher Enricher) *EnrichHandler {
	return &EnrichHandler{enricher: enricher}
}

// Photo handles GET /api/photos?query=.
func (h *EnrichHandler) Photo(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}
	writeJSON(c, http.StatusOK, h.enricher.Photo(c.Request.Context(), query))
}

// Hotels handles GET /api/hotels?location=&minRating=&budget=.
func (h *EnrichHandler) Hotels(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		writeError(c, http.StatusBadRequest, "missing location")
		return
	}
	q := maps.HotelQuery{Location: location, Budget: itinerary.BudgetTier(c.Query("budget"))}
	if v := c.Query("minRating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil || rating < 0 || rating > 5 {
			writeError(c, http.StatusBadRequest, "minRating must be a number between 0 and 5")
			return
		}
		q.MinRating = rating
	}
	writeJSON(c, http.StatusOK, gin.H{"hotels": h.enricher.Hotels(c.Request.Context(), q)})
}
