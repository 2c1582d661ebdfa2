// README: Itinerary domain types shared by generation, normalization and rendering.
package itinerary

import "tourweaver/internal/types"

// BudgetTier is the optional spending level a traveller picks on the form.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "Budget"
	BudgetMid    BudgetTier = "Mid-Range"
	BudgetLuxury BudgetTier = "Luxury"
)

// BudgetTiers lists the selectable tiers in display order.
var BudgetTiers = []BudgetTier{BudgetLow, BudgetMid, BudgetLuxury}

// TripRequest is the validated form submission. It is built once per request and
// never mutated after Normalize.
type TripRequest struct {
	Location    string     `json:"location" form:"location" validate:"required,min=2"`
	Days        int        `json:"noOfDays" form:"noOfDays" validate:"required,min=1,max=30"`
	CheckInDate string     `json:"checkInDate" form:"checkInDate" validate:"required,datetime=2006-01-02"`
	Adults      int        `json:"adults" form:"adults" validate:"required,min=1"`
	MinRating   float64    `json:"minUserRating" form:"minUserRating" validate:"gte=0,lte=5"`
	Budget      BudgetTier `json:"budget,omitempty" form:"budget" validate:"omitempty,oneof=Budget Mid-Range Luxury"`
}

// Destination is a place worth visiting. Either ImageURL is set by the model or
// ImageHint is used to look one up.
type Destination struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty" validate:"omitempty,http_url"`
	ImageHint   string `json:"imageHint,omitempty"`
	// ImageFound is false when ImageURL holds the placeholder image.
	ImageFound bool `json:"imageFound"`
}

// ItineraryDay is one entry of the day-by-day plan.
type ItineraryDay struct {
	Day        int    `json:"day" validate:"min=1"`
	Activities string `json:"activities" validate:"required"`
}

// Hotel is a lodging option, either generated by the model or mapped from a places search.
type Hotel struct {
	Name           string       `json:"hotel_name" validate:"required"`
	Class          string       `json:"hotel_class,omitempty"`
	ReviewRating   float64      `json:"review_rating" validate:"gte=0,lte=5"`
	ReviewCount    *int         `json:"review_count,omitempty" validate:"omitempty,gte=0"`
	TotalStayPrice *types.Money `json:"total_stay_price,omitempty"`
	DealInfo       string       `json:"deal_info,omitempty"`
	BookingURL     string       `json:"bookingUrl,omitempty" validate:"omitempty,http_url"`
}

// HotelSearchParameters is the envelope some result shapes wrap around the hotel list.
type HotelSearchParameters struct {
	CheckInDate   string  `json:"check_in_date"`
	LengthOfStay  int     `json:"length_of_stay"`
	Adults        int     `json:"adults"`
	Currency      string  `json:"currency,omitempty"`
	MinUserRating float64 `json:"min_user_rating"`
}

// Section names one tab of the rendered itinerary.
type Section string

const (
	SectionDestinations Section = "destinations"
	SectionItinerary    Section = "itinerary"
	SectionHotels       Section = "hotels"
	SectionPackingList  Section = "packingList"
)

// Result is the normalized itinerary, independent of the wire shape it came from.
type Result struct {
	Destinations     []Destination          `json:"destinations" validate:"dive"`
	Itinerary        []ItineraryDay         `json:"itinerary" validate:"dive"`
	Hotels           []Hotel                `json:"hotels" validate:"dive"`
	SearchParameters *HotelSearchParameters `json:"search_parameters,omitempty"`
	PackingList      []string               `json:"packingList,omitempty" validate:"omitempty,dive,required"`

	// Shape records which wire layout the result was decoded from.
	Shape Shape `json:"-"`
	// Degraded lists sections that were present on the wire but could not be decoded.
	Degraded []Section `json:"-"`
}

// Has reports whether a section carries displayable data.
func (r *Result) Has(s Section) bool {
	if r == nil {
		return false
	}
	switch s {
	case SectionDestinations:
		return len(r.Destinations) > 0
	case SectionItinerary:
		return len(r.Itinerary) > 0
	case SectionHotels:
		return len(r.Hotels) > 0
	case SectionPackingList:
		return len(r.PackingList) > 0
	}
	return false
}
