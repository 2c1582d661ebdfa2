package itinerary

import (
	"errors"
	"strings"
	"testing"
)

func validRequest() TripRequest {
	return TripRequest{
		Location:    "Kyoto, Japan",
		Days:        5,
		CheckInDate: "2025-04-01",
		Adults:      2,
		MinRating:   4.0,
		Budget:      BudgetMid,
	}
}

func TestTripRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TripRequest)
		wantMsg string
	}{
		{"valid", func(*TripRequest) {}, ""},
		{"budget optional", func(r *TripRequest) { r.Budget = "" }, ""},
		{"fractional rating", func(r *TripRequest) { r.MinRating = 3.7 }, ""},
		{"short location", func(r *TripRequest) { r.Location = "K" }, "location must be at least 2 characters"},
		{"missing location", func(r *TripRequest) { r.Location = "" }, "location is required"},
		{"zero days", func(r *TripRequest) { r.Days = 0 }, "noOfDays is required"},
		{"too many days", func(r *TripRequest) { r.Days = 31 }, "noOfDays cannot exceed 30"},
		{"bad date", func(r *TripRequest) { r.CheckInDate = "01/04/2025" }, "checkInDate must be a date formatted as YYYY-MM-DD"},
		{"impossible date", func(r *TripRequest) { r.CheckInDate = "2025-02-30" }, "checkInDate must be a date"},
		{"no adults", func(r *TripRequest) { r.Adults = 0 }, "adults is required"},
		{"rating above five", func(r *TripRequest) { r.MinRating = 5.5 }, "minUserRating must be 5 or less"},
		{"negative rating", func(r *TripRequest) { r.MinRating = -1 }, "minUserRating must be 0 or more"},
		{"unknown budget", func(r *TripRequest) { r.Budget = "Cheap" }, "budget must be one of: Budget, Mid-Range, Luxury"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestTripRequest_Normalize(t *testing.T) {
	req := TripRequest{Location: "  Lisbon ", CheckInDate: " 2025-05-02", Budget: " Luxury "}.Normalize()
	if req.Location != "Lisbon" || req.CheckInDate != "2025-05-02" || req.Budget != BudgetLuxury {
		t.Errorf("Normalize() = %+v", req)
	}
}

func TestTripRequest_BudgetLabel(t *testing.T) {
	if got := (TripRequest{}).BudgetLabel(); got != "Not specified" {
		t.Errorf("empty budget label = %q", got)
	}
	if got := (TripRequest{Budget: BudgetLow}).BudgetLabel(); got != "Budget" {
		t.Errorf("budget label = %q", got)
	}
}

func TestTripRequest_CheckIn(t *testing.T) {
	got := validRequest().CheckIn()
	if got.Year() != 2025 || got.Month() != 4 || got.Day() != 1 {
		t.Errorf("CheckIn() = %v", got)
	}
}
