package itinerary

import (
	"fmt"
	"math"

	"tourweaver/internal/types"
)

// Placeholder texts shown when a section has nothing to render.
const (
	PlaceholderDestinations = "No destinations were generated. Please try refining your search."
	PlaceholderItinerary    = "No itinerary was generated. Please try refining your search."
	PlaceholderHotels       = "No hotel data available."
	PlaceholderPackingList  = "No packing list was generated for this trip."
)

// SectionStatus tells the renderer whether to draw the section or its placeholder.
type SectionStatus struct {
	Available   bool   `json:"available"`
	Placeholder string `json:"placeholder,omitempty"`
}

type DestinationsView struct {
	SectionStatus
	Items []Destination `json:"items"`
}

type ItineraryView struct {
	SectionStatus
	Days []ItineraryDay `json:"days"`
}

// HotelView is a hotel row with its display strings precomputed.
type HotelView struct {
	Hotel       Hotel  `json:"hotel"`
	Stars       int    `json:"stars"`
	PriceText   string `json:"priceText"`
	ReviewsText string `json:"reviewsText"`
}

type HotelsView struct {
	SectionStatus
	Summary string      `json:"summary,omitempty"`
	Items   []HotelView `json:"items"`
}

type PackingListView struct {
	SectionStatus
	Items []string `json:"items"`
}

// View is the tabbed display model of one itinerary.
type View struct {
	Location     string           `json:"location,omitempty"`
	Destinations DestinationsView `json:"destinations"`
	Itinerary    ItineraryView    `json:"itinerary"`
	Hotels       HotelsView       `json:"hotels"`
	PackingList  PackingListView  `json:"packingList"`
}

// NewView builds the display model. It never fails: every section is either
// available or carries its placeholder.
func NewView(res *Result) View {
	if res == nil {
		res = &Result{}
	}
	v := View{
		Destinations: DestinationsView{SectionStatus: status(res, SectionDestinations, PlaceholderDestinations), Items: res.Destinations},
		Itinerary:    ItineraryView{SectionStatus: status(res, SectionItinerary, PlaceholderItinerary), Days: res.Itinerary},
		Hotels:       HotelsView{SectionStatus: status(res, SectionHotels, PlaceholderHotels)},
		PackingList:  PackingListView{SectionStatus: status(res, SectionPackingList, PlaceholderPackingList), Items: res.PackingList},
	}
	if v.Hotels.Available {
		v.Hotels.Summary = hotelSummary(res.SearchParameters)
		v.Hotels.Items = make([]HotelView, 0, len(res.Hotels))
		for _, h := range res.Hotels {
			v.Hotels.Items = append(v.Hotels.Items, newHotelView(h))
		}
	}
	return v
}

func status(res *Result, s Section, placeholder string) SectionStatus {
	if res.Has(s) {
		return SectionStatus{Available: true}
	}
	return SectionStatus{Placeholder: placeholder}
}

func hotelSummary(p *HotelSearchParameters) string {
	if p == nil || p.LengthOfStay == 0 || p.Adults == 0 || p.CheckInDate == "" {
		return ""
	}
	return fmt.Sprintf("Based on your search for a %d-day stay for %d adult(s) from %s.",
		p.LengthOfStay, p.Adults, p.CheckInDate)
}

func newHotelView(h Hotel) HotelView {
	hv := HotelView{
		Hotel:       h,
		Stars:       int(math.Round(math.Max(0, math.Min(5, h.ReviewRating)))),
		PriceText:   "N/A",
		ReviewsText: "N/A",
	}
	if h.TotalStayPrice != nil {
		hv.PriceText = h.TotalStayPrice.String()
	}
	if h.ReviewCount != nil {
		hv.ReviewsText = types.FormatCount(*h.ReviewCount)
	}
	return hv
}
