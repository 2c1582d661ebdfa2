// README: HTML pages: the trip form and the tabbed result.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tourweaver/internal/http/web"
	"tourweaver/internal/itinerary"
)

type PageHandler struct {
	planner Planner
	now     func() time.Time
}

func NewPageHandler(planner Planner) *PageHandler {
	return &PageHandler{planner: planner, now: time.Now}
}

type pageData struct {
	Title   string
	Today   string
	Budgets []itinerary.BudgetTier
	Request itinerary.TripRequest
	View    *itinerary.View
	Error   string
}

func (h *PageHandler) data(req itinerary.TripRequest) pageData {
	return pageData{
		Title:   "Trip planner",
		Today:   h.now().Format(itinerary.DateLayout),
		Budgets: itinerary.BudgetTiers,
		Request: req,
	}
}

// Form handles GET /.
func (h *PageHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, web.FormPage, h.data(itinerary.TripRequest{Adults: 1}))
}

// Plan handles POST /plan. On failure the form is shown again with the message
// and no itinerary.
func (h *PageHandler) Plan(c *gin.Context) {
	var req itinerary.TripRequest
	if err := c.ShouldBind(&req); err != nil {
		data := h.data(req)
		data.Error = "Please check the form: " + err.Error()
		c.HTML(http.StatusBadRequest, web.FormPage, data)
		return
	}

	result := h.planner.Plan(c.Request.Context(), req)
	data := h.data(req.Normalize())
	if !result.Success {
		data.Error = result.Error
		c.HTML(http.StatusOK, web.FormPage, data)
		return
	}
	data.Title = "Your trip to " + result.Data.Location
	data.View = result.Data
	c.HTML(http.StatusOK, web.ResultPage, data)
}
