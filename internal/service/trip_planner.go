// README: TripPlanner is the server action behind the form; failures come back as values.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"tourweaver/internal/ai"
	"tourweaver/internal/enrich"
	"tourweaver/internal/itinerary"
	"tourweaver/internal/maps"
)

// ErrNoItinerary is shown to the user when the model returned neither
// destinations nor a day plan.
var ErrNoItinerary = errors.New("AI failed to return a valid itinerary structure")

const failurePrefix = "Failed to generate itinerary. "

// ActionResult is the single outcome of one planning round trip.
type ActionResult struct {
	Success bool            `json:"success"`
	Data    *itinerary.View `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type Options struct {
	// Timeout bounds the generation call. Zero disables it.
	Timeout time.Duration
	// EnrichHotels replaces generated hotels with places results when the search finds any.
	EnrichHotels bool
}

// TripPlanner orchestrates generation, normalization and enrichment.
type TripPlanner struct {
	generator ai.Generator
	enricher  *enrich.Service
	opts      Options
	log       *zap.Logger
}

// NewTripPlanner creates a TripPlanner with initialized dependencies.
func NewTripPlanner(generator ai.Generator, enricher *enrich.Service, opts Options, log *zap.Logger) *TripPlanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &TripPlanner{generator: generator, enricher: enricher, opts: opts, log: log.Named("planner")}
}

// Plan validates req, generates an itinerary and returns its view. It never
// returns a Go error; a failed round trip has Success=false and a message.
func (p *TripPlanner) Plan(ctx context.Context, req itinerary.TripRequest) ActionResult {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return p.fail(req, err)
	}

	res, err := p.generate(ctx, req)
	if err != nil {
		return p.fail(req, err)
	}
	if !res.Has(itinerary.SectionDestinations) && !res.Has(itinerary.SectionItinerary) {
		return p.fail(req, ErrNoItinerary)
	}
	if len(res.Degraded) > 0 {
		p.log.Warn("sections dropped during normalization",
			zap.String("location", req.Location),
			zap.String("shape", string(res.Shape)),
			zap.Any("sections", res.Degraded))
	}

	res.Destinations = p.enricher.DestinationImages(ctx, res.Destinations)
	if p.opts.EnrichHotels {
		hotels := p.enricher.Hotels(ctx, maps.HotelQuery{
			Location:  req.Location,
			MinRating: req.MinRating,
			Budget:    req.Budget,
		})
		if len(hotels) > 0 {
			res.Hotels = hotels
		}
	}
	if res.Has(itinerary.SectionHotels) {
		fillSearchParameters(res, req)
	}

	view := itinerary.NewView(res)
	view.Location = req.Location

	p.log.Info("itinerary generated",
		zap.String("location", req.Location),
		zap.String("shape", string(res.Shape)),
		zap.Int("destinations", len(res.Destinations)),
		zap.Int("days", len(res.Itinerary)),
		zap.Int("hotels", len(res.Hotels)))
	return ActionResult{Success: true, Data: &view}
}

func (p *TripPlanner) generate(ctx context.Context, req itinerary.TripRequest) (*itinerary.Result, error) {
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}
	return p.generator.GenerateItinerary(ctx, req)
}

func (p *TripPlanner) fail(req itinerary.TripRequest, err error) ActionResult {
	if errors.Is(err, itinerary.ErrInvalidRequest) {
		p.log.Info("trip request rejected", zap.Error(err))
	} else {
		p.log.Error("itinerary generation failed", zap.String("location", req.Location), zap.Error(err))
	}
	return ActionResult{Error: failureMessage(err)}
}

// failureMessage turns err into the sentence shown to the user.
func failureMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	if !strings.HasSuffix(msg, ".") && !strings.HasSuffix(msg, "!") && !strings.HasSuffix(msg, "?") {
		msg += "."
	}
	return failurePrefix + msg
}

// fillSearchParameters completes the hotel envelope from the request when the
// model omitted it or left fields empty.
func fillSearchParameters(res *itinerary.Result, req itinerary.TripRequest) {
	sp := res.SearchParameters
	if sp == nil {
		sp = &itinerary.HotelSearchParameters{MinUserRating: req.MinRating}
		res.SearchParameters = sp
	}
	if sp.CheckInDate == "" {
		sp.CheckInDate = req.CheckInDate
	}
	if sp.LengthOfStay == 0 {
		sp.LengthOfStay = req.Days
	}
	if sp.Adults == 0 {
		sp.Adults = req.Adults
	}
	if sp.Currency == "" {
		for _, h := range res.Hotels {
			if h.TotalStayPrice != nil && h.TotalStayPrice.Currency != "" {
				sp.Currency = h.TotalStayPrice.Currency
				break
			}
		}
	}
}
