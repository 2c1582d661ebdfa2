// README: Hotel lookup through Google Places text search.
package maps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"googlemaps.github.io/maps"

	"tourweaver/internal/itinerary"
)

// DefaultMaxHotels caps a search when no limit is configured.
const DefaultMaxHotels = 15

// ErrMissingAPIKey is returned by every search when no Places key is configured.
var ErrMissingAPIKey = errors.New("google places api key is not configured")

// HotelQuery holds the search refinements taken from the trip request.
type HotelQuery struct {
	Location  string
	MinRating float64
	Budget    itinerary.BudgetTier
}

// HotelSearcher finds lodging for a location.
type HotelSearcher interface {
	SearchHotels(ctx context.Context, q HotelQuery) ([]itinerary.Hotel, error)
}

// NewHotelSearcher returns the live Places searcher, or one that always fails
// with ErrMissingAPIKey when apiKey is empty.
func NewHotelSearcher(apiKey string, maxHotels int, opts ...maps.ClientOption) (HotelSearcher, error) {
	if apiKey == "" {
		return unconfiguredSearcher{}, nil
	}
	return NewPlacesService(apiKey, maxHotels, opts...)
}

type unconfiguredSearcher struct{}

func (unconfiguredSearcher) SearchHotels(context.Context, HotelQuery) ([]itinerary.Hotel, error) {
	return nil, ErrMissingAPIKey
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client    *maps.Client
	maxHotels int
}

// NewPlacesService creates a new PlacesService with the given API Key. Extra
// options (e.g. maps.WithBaseURL) are passed to the maps client.
func NewPlacesService(apiKey string, maxHotels int, opts ...maps.ClientOption) (*PlacesService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	if maxHotels < 1 {
		maxHotels = DefaultMaxHotels
	}
	return &PlacesService{client: client, maxHotels: maxHotels}, nil
}

// SearchHotels runs "hotels in <location>" restricted to lodging and the budget's
// price levels. Unrated places and places below MinRating are dropped.
func (s *PlacesService) SearchHotels(ctx context.Context, q HotelQuery) ([]itinerary.Hotel, error) {
	location := strings.TrimSpace(q.Location)
	if location == "" {
		return nil, errors.New("places search: location is required")
	}

	minPrice, maxPrice := priceRange(q.Budget)
	r := &maps.TextSearchRequest{
		Query:    "hotels in " + location,
		Type:     maps.PlaceTypeLodging,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	hotels := make([]itinerary.Hotel, 0, s.maxHotels)
	for _, result := range resp.Results {
		if result.Rating <= 0 {
			continue
		}
		// Compare in the API's precision; rounding is for display only.
		if result.Rating < float32(q.MinRating) {
			continue
		}
		h := itinerary.Hotel{
			Name:         result.Name,
			ReviewRating: math.Round(float64(result.Rating)*10) / 10,
			BookingURL:   bookingSearchURL(result.Name, result.FormattedAddress),
		}
		if result.UserRatingsTotal > 0 {
			n := result.UserRatingsTotal
			h.ReviewCount = &n
		}
		hotels = append(hotels, h)

		if len(hotels) >= s.maxHotels {
			break
		}
	}
	return hotels, nil
}

// priceRange maps a budget tier to Places price levels.
func priceRange(b itinerary.BudgetTier) (maps.PriceLevel, maps.PriceLevel) {
	switch b {
	case itinerary.BudgetLow:
		return maps.PriceLevelInexpensive, maps.PriceLevelModerate
	case itinerary.BudgetMid:
		return maps.PriceLevelModerate, maps.PriceLevelExpensive
	case itinerary.BudgetLuxury:
		return maps.PriceLevelExpensive, maps.PriceLevelVeryExpensive
	default:
		return maps.PriceLevelInexpensive, maps.PriceLevelVeryExpensive
	}
}

// bookingSearchURL stands in for a booking link; Places has no booking data.
func bookingSearchURL(name, address string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(strings.TrimSpace(name+" "+address))
}
