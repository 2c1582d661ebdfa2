package ai

import (
	"context"

	"tourweaver/internal/itinerary"
)

// Generator turns a validated trip request into a normalized itinerary.
// Implementations wrap one model provider (Gemini, OpenAI) and share the
// decode and contract checks in decode.go.
type Generator interface {
	// GenerateItinerary returns ErrNoUsableOutput when the provider fails or its
	// reply cannot be turned into an itinerary.
	GenerateItinerary(ctx context.Context, req itinerary.TripRequest) (*itinerary.Result, error)
}
